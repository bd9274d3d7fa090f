package token

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/signadot/ini-format/go-ini/format"
)

type tokenOpts struct {
	filename  string
	multiline bool
	maxLine   int
}

type TokenOpt func(*tokenOpts)

// WithFilename sets the filename reported in positions.
func WithFilename(name string) TokenOpt {
	return func(o *tokenOpts) { o.filename = name }
}

// WithMultiline enables continuation lines: a line starting with blank
// space extends the value of the preceding key.
func WithMultiline(v bool) TokenOpt {
	return func(o *tokenOpts) { o.multiline = v }
}

// WithMaxLine overrides the maximum accepted line length in bytes.
func WithMaxLine(n int) TokenOpt {
	return func(o *tokenOpts) { o.maxLine = n }
}

const defaultMaxLine = 1 << 20

// Tokenize reads r line by line and reports events to sink. The first
// error, from the input, the format, or the sink, aborts the scan.
func Tokenize(r io.Reader, sink Sink, opts ...TokenOpt) error {
	o := &tokenOpts{maxLine: defaultMaxLine}
	for _, f := range opts {
		f(o)
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), o.maxLine)

	var (
		section  string
		prevName string
		lineNo   int
	)
	for sc.Scan() {
		lineNo++
		pos := &Pos{Filename: o.filename, Line: lineNo}
		line := strings.TrimRight(sc.Text(), "\r")
		if lineNo == 1 {
			line = strings.TrimPrefix(line, "\uFEFF")
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		indented := line[0] == ' ' || line[0] == '\t'
		trimmed := strings.TrimSpace(line)

		switch {
		case o.multiline && indented && prevName != "":
			if err := sink.KeyValue(pos, section, prevName, trimmed, true); err != nil {
				return err
			}
		case trimmed[0] == format.CommentMarker || trimmed[0] == '#':
			if err := sink.Comment(pos, trimmed[1:]); err != nil {
				return err
			}
		case trimmed[0] == '[':
			end := strings.IndexByte(trimmed, ']')
			if end < 0 {
				return syntaxErr(pos, "unterminated section header %q", trimmed)
			}
			name := strings.TrimSpace(trimmed[1:end])
			if name == "" {
				return syntaxErr(pos, "empty section name")
			}
			section = name
			prevName = ""
			if err := sink.Section(pos, name); err != nil {
				return err
			}
		default:
			if o.multiline && indented {
				return syntaxErr(pos, "continuation line without a preceding key")
			}
			eq := strings.IndexByte(trimmed, '=')
			if eq < 0 {
				return syntaxErr(pos, "expected key = value, got %q", trimmed)
			}
			name := strings.TrimSpace(trimmed[:eq])
			if name == "" {
				return syntaxErr(pos, "empty key name")
			}
			value := strings.TrimSpace(trimmed[eq+1:])
			prevName = name
			if err := sink.KeyValue(pos, section, name, value, false); err != nil {
				return err
			}
		}
	}
	if err := sc.Err(); err != nil {
		pos := &Pos{Filename: o.filename, Line: lineNo + 1}
		if errors.Is(err, bufio.ErrTooLong) {
			return &Error{Pos: pos, Err: format.ErrResource, Msg: err.Error()}
		}
		return &Error{Pos: pos, Err: format.ErrIO, Msg: err.Error()}
	}
	return nil
}
