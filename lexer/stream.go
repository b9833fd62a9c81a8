// SPDX-License-Identifier: MIT
package lexer

import (
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/edwingeng/deque"
)

type (
	// ValidationFunction type for functions that validate rune identities
	ValidationFunction func(rune) bool

	// Stream wraps a forward only rune source, allowing read runes to be pushed back.
	//
	// The pending queue, read front to back & followed by the remaining source, always yields the
	// runes the source would have produced had nothing been read ahead.
	Stream struct {
		// source is the input source.
		source io.RuneReader

		// pending holds runes pushed back onto the stream, the front is read next.
		pending deque.Deque

		// err holds the first non io.EOF error returned by the source.
		err error
	}
)

// NewStream instantiates a Stream over a rune source.
func NewStream(source io.RuneReader) *Stream {
	if source == nil {
		source = strings.NewReader("")
	}

	return &Stream{
		source:  source,
		pending: deque.NewDeque(),
	}
}

// Err obtains the first read error, other than io.EOF, returned by the source.
func (s *Stream) Err() error { return s.err }

// Next return the next rune in the input, preferring pushed back runes over the source.
//
// ok is false at the end of the input.
func (s *Stream) Next() (r rune, ok bool) {
	if !s.pending.Empty() {
		return s.pending.PopFront().(rune), true
	}

	if s.err != nil {
		return
	}

	r, _, err := s.source.ReadRune()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			s.err = err
		}

		return 0, false
	}

	return r, true
}

// Backup pushes a rune to the front of the stream.
func (s *Stream) Backup(r rune) { s.pending.PushFront(r) }

// BackupString pushes a string to the front of the stream.
//
// The runes are pushed last to first so that they are read back in their original order.
func (s *Stream) BackupString(str string) {
	for len(str) > 0 {
		r, size := utf8.DecodeLastRuneInString(str)
		s.Backup(r)
		str = str[:len(str)-size]
	}
}

// NextN reads exactly n runes.
//
// Should the input end before n runes are read, the read runes are pushed back & ok is false.
func (s *Stream) NextN(n int) (val string, ok bool) {
	var buf strings.Builder
	for index := 0; index < n; index++ {
		r, more := s.Next()
		if !more {
			s.BackupString(buf.String())
			return
		}
		buf.WriteRune(r)
	}

	return buf.String(), true
}

// AcceptUntil consumes runes until the consumed content ends with delim.
//
// The delimiter is pushed back for a later read. The end of the input terminates the read as
// well; ok is false only when nothing precedes the delimiter or the end of the input.
func (s *Stream) AcceptUntil(delim string) (val string, ok bool) {
	var buf strings.Builder
	for {
		r, more := s.Next()
		if !more {
			break
		}
		buf.WriteRune(r)

		if delim != "" && strings.HasSuffix(buf.String(), delim) {
			s.BackupString(delim)

			val = buf.String()
			val = val[:len(val)-len(delim)]

			return val, val != ""
		}
	}

	val = buf.String()

	return val, val != ""
}

// AcceptWhile consumes runes while condition is true.
//
// The first rune failing the condition is pushed back.
func (s *Stream) AcceptWhile(fn ValidationFunction) (val string, ok bool) {
	var buf strings.Builder
	for {
		r, more := s.Next()
		if !more {
			break
		}

		// End of current token type.
		if !fn(r) {
			s.Backup(r)
			break
		}
		buf.WriteRune(r)
	}

	val = buf.String()

	return val, val != ""
}

// StartsWith consumes str if the stream begins with it.
//
// On a mismatch the stream is left as it was.
func (s *Stream) StartsWith(str string) bool {
	val, ok := s.NextN(utf8.RuneCountInString(str))
	if !ok {
		return false
	}

	if val != str {
		s.BackupString(val)
		return false
	}

	return true
}

// SkipSpaces discards consecutive ' ' runes; tabs & newlines are retained.
func (s *Stream) SkipSpaces() { _, _ = s.AcceptWhile(isSpace) }

// Pending obtains up to n runes from the front of the stream without consuming them.
func (s *Stream) Pending(n int) string {
	var buf strings.Builder
	for index := 0; index < n; index++ {
		r, more := s.Next()
		if !more {
			break
		}
		buf.WriteRune(r)
	}

	val := buf.String()
	s.BackupString(val)

	return val
}

// isSpace return true for the space rune only.
func isSpace(r rune) bool { return r == ' ' }

// isIdentifier return true for ASCII letters, digits & '_'.
func isIdentifier(r rune) bool { return r < utf8.RuneSelf && identifierSymbols[r] }
