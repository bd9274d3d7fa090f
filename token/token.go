// Package token splits line-oriented INI text into structural events:
// section headers, key/value lines, continuation lines and comments.
//
// The tokenizer is a pure producer; it holds no store state. Consumers
// implement Sink and receive events in file order.
package token

import (
	"fmt"

	"github.com/signadot/ini-format/go-ini/format"
)

// Pos locates an event in the input.
type Pos struct {
	Filename string
	Line     int // 1-based
}

func (p *Pos) String() string {
	if p == nil {
		return "-"
	}
	if p.Filename == "" {
		return fmt.Sprintf("line %d", p.Line)
	}
	return fmt.Sprintf("%s:%d", p.Filename, p.Line)
}

// Sink receives tokenizer events in file order. Returning a non-nil error
// aborts tokenization and propagates the error unchanged.
type Sink interface {
	// Section reports a `[name]` header line.
	Section(pos *Pos, name string) error
	// KeyValue reports a `key = value` line, or a continuation line when
	// isContinuation is true. section is the name of the most recent
	// header, or "" before any header.
	KeyValue(pos *Pos, section, name, value string, isContinuation bool) error
	// Comment reports one comment line, marker stripped.
	Comment(pos *Pos, text string) error
}

// Error is a tokenization failure at a position.
type Error struct {
	Pos *Pos
	Err error
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %s: %s", e.Err, e.Pos, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

func syntaxErr(pos *Pos, msg string, args ...any) error {
	return &Error{Pos: pos, Err: format.ErrSyntax, Msg: fmt.Sprintf(msg, args...)}
}
