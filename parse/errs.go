package parse

import (
	"fmt"

	"github.com/signadot/ini-format/go-ini/format"
	"github.com/signadot/ini-format/go-ini/token"
)

// Error is a parse failure. It unwraps to one of the format package
// sentinels and carries the input position when one is known.
type Error struct {
	Pos *token.Pos
	Err error
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %s: %s", e.Err, e.Pos, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

func syntaxErr(pos *token.Pos, msg string, args ...any) error {
	return &Error{Pos: pos, Err: format.ErrSyntax, Msg: fmt.Sprintf(msg, args...)}
}

func resourceErr(pos *token.Pos, msg string, args ...any) error {
	return &Error{Pos: pos, Err: format.ErrResource, Msg: fmt.Sprintf(msg, args...)}
}
