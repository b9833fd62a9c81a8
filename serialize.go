// SPDX-License-Identifier: MIT
package mustache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"gitlab.com/fisherprime/mustache/lexer"
)

// Serialization errors.
var (
	ErrSerialize       = errors.New("failed to serialize tokens")
	ErrDelimiterInText = errors.New("text contains the open delimiter")
	ErrUnknownItem     = errors.New("unknown item")
)

// Serialize transforms Tokens into template text using the Config's delimiters.
//
// Spaces within tags are not retained; a single space separates an identifier from a following
// identifier or close delimiter that would otherwise merge with it.
func (t Tokens) Serialize(ctx context.Context, cfg *lexer.Config) (output string, err error) {
	cfg.Validate()

	defer func() {
		if err != nil {
			err = fmt.Errorf("%w: %w", ErrSerialize, err)
		}
	}()

	var buffer strings.Builder
	for index, item := range t {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			return
		default:
		}

		var val string
		switch item.ID {
		case lexer.ItemText:
			if strings.Contains(item.Val, cfg.OpenDelim) {
				err = fmt.Errorf("%w (%s): %q", ErrDelimiterInText, cfg.OpenDelim, item.Val)
				return
			}
			val = item.Val
		case lexer.ItemIdentifier:
			val = item.Val
		case lexer.ItemLMustache:
			val = cfg.OpenDelim
		case lexer.ItemRMustache:
			val = cfg.CloseDelim
		default:
			var ok bool
			if val, ok = item.ID.Marker(); !ok {
				err = fmt.Errorf("%w at %d: %v", ErrUnknownItem, index, item)
				return
			}
		}

		if index > 0 && t[index-1].ID == lexer.ItemIdentifier && item.ID != lexer.ItemText && startsIdentifier(val) {
			buffer.WriteByte(' ')
		}
		buffer.WriteString(val)
	}

	output = buffer.String()

	return
}

// startsIdentifier checks whether some value begins with an identifier rune.
func startsIdentifier(val string) bool {
	r, _ := utf8.DecodeRuneInString(val)
	return r == '_' || (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
