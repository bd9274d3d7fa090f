package encode

import (
	"fmt"

	"github.com/signadot/ini-format/go-ini/format"
)

// Error is an emission failure, unwrapping to a format package sentinel.
type Error struct {
	Err error
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

func invariantErr(msg string, args ...any) error {
	return &Error{Err: format.ErrInvariant, Msg: fmt.Sprintf(msg, args...)}
}

func ioErr(err error) error {
	return &Error{Err: format.ErrIO, Msg: err.Error()}
}
