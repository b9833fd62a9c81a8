// SPDX-License-Identifier: MIT
package mustache

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"

	"gitlab.com/fisherprime/mustache/lexer"
)

type (
	// Tokens is a type wrapper for a lexed []lexer.Item sequence.
	//
	// Tokens never contain a lexer.ItemError, errors are returned alongside them.
	Tokens []lexer.Item
)

// Tokenization errors.
var (
	ErrTokenize = errors.New("failed to tokenize template")
)

var fLogger logrus.FieldLogger = logrus.NewEntry(logrus.New())

// SetLogger configures a logrus.FieldLogger for the package.
func SetLogger(l logrus.FieldLogger) { fLogger = l }

// Tokenize lexes a template source, configured via lexer.WithSource, into Tokens.
//
// An invalid template yields the Tokens lexed before the failure & an error wrapping the
// lexer's error.
func Tokenize(ctx context.Context, opts ...lexer.Option) (tokens Tokens, err error) {
	l := lexer.New(opts...)
	tokens = Tokens{}

	defer func() {
		if err == nil {
			return
		}
		err = fmt.Errorf("%w: %w", ErrTokenize, err)

		fLogger.Debugf("tokens: %s", spew.Sprint(tokens))
	}()

	for {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			return
		default:
		}

		item, proceed := l.Next()
		if !proceed {
			break
		}

		if item.ID == lexer.ItemError {
			// Stop input processing.
			err = item.Err
			return
		}
		tokens = append(tokens, item)
	}

	fLogger.WithFields(logrus.Fields{
		"tokens": len(tokens),
		"opened": l.OpenCount(),
		"closed": l.CloseCount(),
	}).Debug("tokenized template")

	return
}

// TokenizeString lexes a template string into Tokens.
func TokenizeString(ctx context.Context, src string, opts ...lexer.Option) (Tokens, error) {
	return Tokenize(ctx, append(opts[:len(opts):len(opts)], lexer.WithSource(strings.NewReader(src)))...)
}

// Equal reports whether two Tokens sequences hold the same Items.
func (t Tokens) Equal(other Tokens) bool { return slices.Equal(t, other) }

// Identifiers lists the identifiers referenced within the Tokens, in order of appearance.
func (t Tokens) Identifiers() (ids []string) {
	for index := range t {
		if t[index].ID == lexer.ItemIdentifier && !slices.Contains(ids, t[index].Val) {
			ids = append(ids, t[index].Val)
		}
	}

	return
}
