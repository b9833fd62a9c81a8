// SPDX-License-Identifier: MIT
package mustache

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"gitlab.com/fisherprime/mustache/lexer"
)

func TestTokenizeAll(t *testing.T) {
	const src = "a{{#b}}{{&c}}{{/b}}d"

	sources := map[string]io.RuneReader{}
	for index := 0; index < 64; index++ {
		sources[fmt.Sprintf("tpl-%02d", index)] = strings.NewReader(src)
	}
	sources["broken"] = strings.NewReader("{{ok}}{{?")

	ctx := context.Background()
	want, err := TokenizeString(ctx, src)
	if err != nil {
		t.Fatalf("TokenizeString() error = %v", err)
	}

	got, err := TokenizeAll(ctx, sources, 4, lexer.WithDelimiters("{{", "}}"))
	if !errors.Is(err, lexer.ErrUnrecognizedTagContent) {
		t.Errorf("TokenizeAll() error = %v, wantErr %v", err, lexer.ErrUnrecognizedTagContent)
	}
	if err != nil && !strings.Contains(err.Error(), "(broken)") {
		t.Errorf("TokenizeAll() error = %v, want the template name", err)
	}

	if len(got) != len(sources) {
		t.Fatalf("TokenizeAll() returned %d results, want %d", len(got), len(sources))
	}
	for name, tokens := range got {
		if name == "broken" {
			if wantBroken := (Tokens{lMustache, lexer.Identifier("ok"), rMustache, lMustache}); !tokens.Equal(wantBroken) {
				t.Errorf("TokenizeAll()[%s] = %v, want %v", name, tokens, wantBroken)
			}
			continue
		}

		if !tokens.Equal(want) {
			t.Errorf("TokenizeAll()[%s] = %v, want %v", name, tokens, want)
		}
	}
}

func TestTokenizeAll_empty(t *testing.T) {
	got, err := TokenizeAll(context.Background(), nil, 0)
	if err != nil {
		t.Errorf("TokenizeAll() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("TokenizeAll() = %v, want none", got)
	}
}
