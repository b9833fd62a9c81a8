// SPDX-License-Identifier: MIT
package lexer

// REF: https://mustache.github.io/mustache.5.html
// REF: https://gitlab.com/fisherprime/go-ddbms/-/blob/master/internal/v1/lexer.go

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
)

type (
	// LexState identifies the Lexer's position relative to the template's tags.
	LexState int

	// Lexer defines a type to capture mustache tokens from a rune source.
	//
	// A Lexer is not safe for concurrent use; independent Lexers share no state.
	Lexer struct {
		openDelim  string
		closeDelim string
		strict     bool
		debug      bool
		logger     logrus.FieldLogger

		// c is a channel for communicating lexed Items, populated by Lex.
		c chan Item

		// source is the input source, wrapped by stream.
		source io.RuneReader
		stream *Stream

		state LexState

		// done is set once the Item sequence ends.
		done bool

		openCounter  int
		closeCounter int
	}
)

// Lexer states.
const (
	StateNormal LexState = iota // Outside a tag.
	StateInTag                  // Between an open & a close delimiter.
)

const (
	sourceLimit   = 512
	defBufferSize = 10
)

// Lexing errors.
var (
	ErrUnterminatedTag        = errors.New("unterminated tag")
	ErrUnrecognizedTagContent = errors.New("unrecognized tag content")
	ErrSourceRead             = errors.New("failed to read source")
)

// identifierSymbols holds the ASCII runes valid within an identifier.
var identifierSymbols = func() (table [utf8.RuneSelf]bool) {
	for r := 'a'; r <= 'z'; r++ {
		table[r] = true
		table[r-'a'+'A'] = true
	}
	for r := '0'; r <= '9'; r++ {
		table[r] = true
	}
	table['_'] = true

	return
}()

// New creates a new Lexer, by default a strict one over an empty source using the "{{" & "}}"
// delimiters.
func New(opts ...Option) *Lexer {
	l := &Lexer{
		strict: true,
		c:      make(chan Item, defBufferSize),
	}

	for _, opt := range opts {
		opt(l)
	}
	l.validate()

	l.stream = NewStream(l.source)

	return l
}

// String is the `fmt.Stringer` implementation for LexState.
func (s LexState) String() string {
	if s == StateInTag {
		return "InTag"
	}

	return "Normal"
}

// Delimiters obtains the configured open & close delimiters.
func (l *Lexer) Delimiters() (openDelim, closeDelim string) { return l.openDelim, l.closeDelim }

// Strict obtains the strict option.
func (l *Lexer) Strict() bool { return l.strict }

// State obtains the current LexState.
func (l *Lexer) State() LexState { return l.state }

// OpenCount obtains the number of open delimiters lexed.
func (l *Lexer) OpenCount() int { return l.openCounter }

// CloseCount obtains the number of close delimiters lexed.
func (l *Lexer) CloseCount() int { return l.closeCounter }

// Logger obtains the logger.
func (l *Lexer) Logger() logrus.FieldLogger { return l.logger }

// Next lexes the next Item from the source.
//
// ok is false once the sequence has ended; an ItemError is always the last Item.
func (l *Lexer) Next() (i Item, ok bool) {
	if l.done {
		return
	}

	switch l.state {
	case StateInTag:
		i, ok = l.lexTag()
	default:
		i, ok = l.lexText()
	}

	if !ok || i.ID == ItemError {
		l.done = true
	}

	if ok && l.debug {
		// Debug operation makes this operation un-inlinable.
		l.logger.Debug("lexer Next: ", i)
	}

	return
}

// lexText search for text & the open delimiter.
func (l *Lexer) lexText() (Item, bool) {
	if l.stream.StartsWith(l.openDelim) {
		l.state = StateInTag
		l.openCounter++

		return Item{ID: ItemLMustache}, true
	}

	if val, ok := l.stream.AcceptUntil(l.openDelim); ok {
		return Text(val), true
	}

	return l.end(nil)
}

// lexTag search for markers, identifiers & the close delimiter.
func (l *Lexer) lexTag() (Item, bool) {
	// Ignore spaces, discard instead of emit.
	l.stream.SkipSpaces()

	for index := range markers {
		if l.stream.StartsWith(markers[index].val) {
			return Item{ID: markers[index].id}, true
		}
	}

	if l.stream.StartsWith(l.closeDelim) {
		l.state = StateNormal
		l.closeCounter++

		return Item{ID: ItemRMustache}, true
	}

	if val, ok := l.stream.AcceptWhile(isIdentifier); ok {
		return Identifier(val), true
	}

	// The remaining input is either exhausted or a fragment of the close delimiter.
	pending := l.stream.Pending(sourceLimit)
	if strings.HasPrefix(l.closeDelim, pending) {
		return l.end(ErrUnterminatedTag)
	}

	return l.end(fmt.Errorf("%w: %s", ErrUnrecognizedTagContent, pending))
}

// end terminates the Item sequence, with an ItemError for strict Lexers.
func (l *Lexer) end(err error) (i Item, ok bool) {
	if sErr := l.stream.Err(); sErr != nil {
		err = fmt.Errorf("%w: %v", ErrSourceRead, sErr)
	}

	if err == nil {
		return
	}

	if !l.strict {
		if l.debug {
			l.logger.Debug("lexer end (suppressed): ", err)
		}

		return
	}

	return Item{ID: ItemError, Err: err}, true
}

// Lex lexes the whole input, sending the Items over the Lexer's channel.
//
// The channel is closed at the end of the sequence; a context cancelation is reported as an
// ItemError. Lex blocks until the consumer has received every Item, the error included, so
// callers must drain Item until it reports false.
func (l *Lexer) Lex(ctx context.Context) {
	defer close(l.c)

	for {
		select {
		case <-ctx.Done():
			l.emitError(ctx.Err())
			return
		default:
		}

		i, ok := l.Next()
		if !ok {
			return
		}

		select {
		case l.c <- i:
		case <-ctx.Done():
			l.emitError(ctx.Err())
			return
		}
	}
}

// emitError sends an error over the Lexer's channel.
//
// This terminates the Item sequence.
func (l *Lexer) emitError(err error) {
	l.done = true

	if l.debug {
		l.logger.Debug("lexer emitError: ", err)
	}
	l.c <- Item{ID: ItemError, Err: err}
}

// Item return a lexed Item sent by Lex.
//
// Item is only valid while, or after, Lex runs; without Lex it blocks forever. Use Next to pull
// Items directly.
func (l *Lexer) Item() (i Item, ok bool) {
	i, ok = <-l.c
	return
}
