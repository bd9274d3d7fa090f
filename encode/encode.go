package encode

import (
	"bytes"
	"io"
	"strings"

	"github.com/signadot/ini-format/go-ini/format"
	"github.com/signadot/ini-format/go-ini/store"
)

type encState struct {
	sections bool
	arrays   bool
	colors   *Colors

	w       io.Writer
	werr    error
	started bool
}

// Encode writes st as INI text to w.
func Encode(st *store.Store, w io.Writer, opts ...EncodeOption) error {
	es := &encState{
		sections: true,
		arrays:   true,
		w:        w,
	}
	for _, opt := range opts {
		opt(es)
	}
	if err := es.encode(st); err != nil {
		return err
	}
	if es.werr != nil {
		return ioErr(es.werr)
	}
	return nil
}

// EncodeString renders st as a string.
func EncodeString(st *store.Store, opts ...EncodeOption) (string, error) {
	var buf bytes.Buffer
	if err := Encode(st, &buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (es *encState) encode(st *store.Store) error {
	root := st.Root()
	entries := st.ByOrder()
	consumed := map[string]bool{}
	currentSection := root

	for _, e := range entries {
		if e.Path().Equal(root) || consumed[e.Path().String()] {
			continue
		}
		if !es.sections {
			if err := es.flat(e, root); err != nil {
				return err
			}
			continue
		}
		switch {
		case e.IsSection:
			name := e.Path().Name(root)
			if name == "" {
				return invariantErr("section %q has no name relative to root %q", e.Path(), root)
			}
			if es.started {
				es.write("\n")
			}
			es.comments(e)
			es.write(es.color(sectionColor, "[%s]", name), "\n")
			currentSection = e.Path()
		case e.IsArrayHead() && es.arrays:
			if e.ArrayNext <= 1 {
				return invariantErr("array head %q has next index %d", e.Path(), e.ArrayNext)
			}
			name := format.EscapeName(e.Path().Base())
			es.comments(e)
			for i := 0; i < e.ArrayNext; i++ {
				m := st.Lookup(e.MemberPath(i))
				if m == nil {
					return invariantErr("array %q is missing member %d", e.Path(), i)
				}
				es.keyValue(name, m.Value)
				consumed[m.Path().String()] = true
			}
		case e.IsKey:
			base := currentSection
			if len(e.ParentSection) > 0 {
				base = e.ParentSection
			}
			name := e.Path().Name(base)
			if name == "" {
				name = e.Path().Name(root)
			}
			if name == "" {
				return invariantErr("key %q has no emittable name under %q or %q", e.Path(), base, root)
			}
			es.comments(e)
			es.keyValue(name, e.Value)
		default:
			// meta-only entry, not written
		}
	}
	return nil
}

// flat emits a leaf under its full root-relative name, used when section
// headers are disabled.
func (es *encState) flat(e *store.Entry, root store.Path) error {
	if !e.IsKey {
		return nil
	}
	name := e.Path().Name(root)
	if name == "" {
		return invariantErr("key %q has no name relative to root %q", e.Path(), root)
	}
	es.comments(e)
	es.keyValue(name, e.Value)
	return nil
}

// keyValue writes name = value, splitting embedded line breaks into
// indented continuation lines.
func (es *encState) keyValue(name, value string) {
	lines := strings.Split(value, "\n")
	es.write(es.color(keyColor, "%s", name), " = ", es.color(valueColor, "%s", lines[0]), "\n")
	for _, ln := range lines[1:] {
		es.write("\t", es.color(valueColor, "%s", ln), "\n")
	}
}

func (es *encState) comments(e *store.Entry) {
	if e.Comment == "" {
		return
	}
	for _, ln := range strings.Split(e.Comment, "\n") {
		es.write(es.color(commentColor, "%c%s", format.CommentMarker, ln), "\n")
	}
}

func (es *encState) write(parts ...string) {
	if es.werr != nil {
		return
	}
	es.started = true
	for _, part := range parts {
		if _, err := io.WriteString(es.w, part); err != nil {
			es.werr = err
			return
		}
	}
}

func (es *encState) color(attr colorAttr, msg string, args ...any) string {
	if es.colors == nil {
		return sprintf(msg, args...)
	}
	return es.colors.color(attr, msg, args...)
}
