package parse

import "github.com/signadot/ini-format/go-ini/token"

type parseOpts struct {
	multiline bool
	arrays    bool
	filename  string
	maxLine   int
}

type ParseOption func(*parseOpts)

// ParseMultiline enables continuation-line support.
func ParseMultiline(v bool) ParseOption {
	return func(o *parseOpts) { o.multiline = v }
}

// ParseArrays enables merging repeated keys into indexed arrays. When
// disabled a repeated key overwrites the previous value.
func ParseArrays(v bool) ParseOption {
	return func(o *parseOpts) { o.arrays = v }
}

// WithFilename sets the filename reported in error positions.
func WithFilename(name string) ParseOption {
	return func(o *parseOpts) { o.filename = name }
}

// WithMaxLine caps the accepted input line length.
func WithMaxLine(n int) ParseOption {
	return func(o *parseOpts) { o.maxLine = n }
}

func (o *parseOpts) tokenOpts() []token.TokenOpt {
	res := []token.TokenOpt{
		token.WithMultiline(o.multiline),
	}
	if o.filename != "" {
		res = append(res, token.WithFilename(o.filename))
	}
	if o.maxLine > 0 {
		res = append(res, token.WithMaxLine(o.maxLine))
	}
	return res
}
