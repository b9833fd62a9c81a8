// SPDX-License-Identifier: MIT
package lexer

import (
	"io"

	"github.com/sirupsen/logrus"
)

type (
	// Option defines the Lexer functional option type
	Option func(*Lexer)
)

const (
	// DefaultOpenDelim is the conventional open delimiter.
	DefaultOpenDelim = "{{"

	// DefaultCloseDelim is the conventional close delimiter.
	DefaultCloseDelim = "}}"
)

// WithSource configures the source option.
func WithSource(source io.RuneReader) Option { return func(l *Lexer) { l.source = source } }

// WithDelimiters configures the open & close delimiters.
//
// An empty delimiter is replaced by its default.
func WithDelimiters(openDelim, closeDelim string) Option {
	return func(l *Lexer) {
		l.openDelim = openDelim
		l.closeDelim = closeDelim
	}
}

// WithStrict configures the strict option.
//
// A strict Lexer reports unterminated tags, unrecognized tag content & source failures as an
// ItemError; otherwise the Item sequence silently ends.
func WithStrict(strict bool) Option { return func(l *Lexer) { l.strict = strict } }

// WithDebug configures the debug option.
func WithDebug(debug bool) Option { return func(l *Lexer) { l.debug = debug } }

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option { return func(l *Lexer) { l.logger = logger } }

// validate populates missing options with defaults.
func (l *Lexer) validate() {
	if l.openDelim == "" {
		l.openDelim = DefaultOpenDelim
	}
	if l.closeDelim == "" {
		l.closeDelim = DefaultCloseDelim
	}
	if l.logger == nil {
		l.logger = logrus.New()
	}
}
