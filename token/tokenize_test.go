package token

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/ini-format/go-ini/format"
)

// recSink records events as strings for comparison.
type recSink struct {
	events []string
}

func (r *recSink) Section(pos *Pos, name string) error {
	r.events = append(r.events, fmt.Sprintf("sec(%s)", name))
	return nil
}

func (r *recSink) KeyValue(pos *Pos, section, name, value string, cont bool) error {
	if cont {
		r.events = append(r.events, fmt.Sprintf("cont(%s,%s,%s)", section, name, value))
		return nil
	}
	r.events = append(r.events, fmt.Sprintf("kv(%s,%s,%s)", section, name, value))
	return nil
}

func (r *recSink) Comment(pos *Pos, text string) error {
	r.events = append(r.events, fmt.Sprintf("com(%s)", text))
	return nil
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts []TokenOpt
		want []string
	}{
		{
			name: "sections and keys",
			in:   "k0 = a\n[sec]\nk1 = b\n\nk2=c\n",
			want: []string{"kv(,k0,a)", "sec(sec)", "kv(sec,k1,b)", "kv(sec,k2,c)"},
		},
		{
			name: "comments",
			in:   ";first\n#second\nk = v\n",
			want: []string{"com(first)", "com(second)", "kv(,k,v)"},
		},
		{
			name: "continuation",
			in:   "k = line1\n\tline2\n  line3\n",
			opts: []TokenOpt{WithMultiline(true)},
			want: []string{"kv(,k,line1)", "cont(,k,line2)", "cont(,k,line3)"},
		},
		{
			name: "section resets continuation target",
			in:   "k = v\n[s]\na = b\n\tmore\n",
			opts: []TokenOpt{WithMultiline(true)},
			want: []string{"kv(,k,v)", "sec(s)", "kv(s,a,b)", "cont(s,a,more)"},
		},
		{
			name: "indented key without multiline",
			in:   "  k = v\n",
			want: []string{"kv(,k,v)"},
		},
		{
			name: "crlf and bom",
			in:   "\uFEFFk = v\r\n[s]\r\n",
			want: []string{"kv(,k,v)", "sec(s)"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sink := &recSink{}
			if err := Tokenize(strings.NewReader(tc.in), sink, tc.opts...); err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(tc.want, sink.events); d != "" {
				t.Error(d)
			}
		})
	}
}

func TestTokenizeSyntaxErrors(t *testing.T) {
	tests := []struct {
		in   string
		opts []TokenOpt
		line int
	}{
		{in: "[unterminated\n", line: 1},
		{in: "k = v\nno equals sign\n", line: 2},
		{in: "[]\n", line: 1},
		{in: "= v\n", line: 1},
		{in: "  orphan continuation\n", opts: []TokenOpt{WithMultiline(true)}, line: 1},
	}
	for _, tc := range tests {
		err := Tokenize(strings.NewReader(tc.in), &recSink{}, tc.opts...)
		if !errors.Is(err, format.ErrSyntax) {
			t.Errorf("%q: want ErrSyntax, got %v", tc.in, err)
			continue
		}
		var te *Error
		if !errors.As(err, &te) || te.Pos.Line != tc.line {
			t.Errorf("%q: want line %d, got %v", tc.in, tc.line, err)
		}
	}
}

type failReader struct{}

func (failReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestTokenizeIOError(t *testing.T) {
	err := Tokenize(failReader{}, &recSink{})
	if !errors.Is(err, format.ErrIO) {
		t.Errorf("want ErrIO, got %v", err)
	}
}

func TestTokenizeLineTooLong(t *testing.T) {
	in := "k = " + strings.Repeat("x", 256) + "\n"
	err := Tokenize(strings.NewReader(in), &recSink{}, WithMaxLine(64))
	if !errors.Is(err, format.ErrResource) {
		t.Errorf("want ErrResource, got %v", err)
	}
}
