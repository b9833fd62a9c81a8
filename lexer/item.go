// SPDX-License-Identifier: MIT
package lexer

import "fmt"

type (
	// ItemID int holding an identifier for the Item tokens
	ItemID int

	// Item type holding the token type & value of a lexed template fragment.
	//
	// Items are plain values, two Items are equal when their fields are equal.
	Item struct {
		Err error
		Val string // The value of this Item, set for ItemText & ItemIdentifier.
		ID  ItemID // The type of this Item
	}
)

// iota is used to define an incrementing number sequence for const
// declarations
const (
	_               ItemID = iota // Consume 0 to start actual numbering at 1.
	ItemError                     // Notify occurrence of an `error`.
	ItemText                      // Characters outside a tag.
	ItemLMustache                 // The open delimiter.
	ItemRMustache                 // The close delimiter.
	ItemUnescapeTag               // '&'.
	ItemPound                     // '#'.
	ItemSlash                     // '/'.
	ItemHat                       // '^'.
	ItemIdentifier                // [A-Za-z0-9_]+ within a tag.
)

var itemNames = [...]string{
	ItemError:       "Error",
	ItemText:        "Text",
	ItemLMustache:   "LMustache",
	ItemRMustache:   "RMustache",
	ItemUnescapeTag: "UnescapeTag",
	ItemPound:       "Pound",
	ItemSlash:       "Slash",
	ItemHat:         "Hat",
	ItemIdentifier:  "Id",
}

// markers maps the single rune tag markers to their Item types, in match order.
var markers = [...]struct {
	val string
	id  ItemID
}{
	{"#", ItemPound},
	{"&", ItemUnescapeTag},
	{"/", ItemSlash},
	{"^", ItemHat},
}

// String is the `fmt.Stringer` implementation for ItemID.
func (i ItemID) String() string {
	if i > 0 && int(i) < len(itemNames) {
		return itemNames[i]
	}

	return fmt.Sprintf("ItemID(%d)", int(i))
}

// Marker obtains the literal marker text for marker Items.
func (i ItemID) Marker() (val string, ok bool) {
	for index := range markers {
		if markers[index].id == i {
			return markers[index].val, true
		}
	}

	return
}

// Text constructs an ItemText.
func Text(val string) Item { return Item{ID: ItemText, Val: val} }

// Identifier constructs an ItemIdentifier.
func Identifier(val string) Item { return Item{ID: ItemIdentifier, Val: val} }

// String is the `fmt.Stringer` implementation for Item.
func (i Item) String() string {
	switch i.ID {
	case ItemText, ItemIdentifier:
		return fmt.Sprintf("%s(%q)", i.ID, i.Val)
	case ItemError:
		return fmt.Sprintf("%s(%v)", i.ID, i.Err)
	default:
		return i.ID.String()
	}
}
