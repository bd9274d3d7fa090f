package store

import (
	"fmt"
	"strings"

	"github.com/signadot/ini-format/go-ini/format"
)

// Entry is a node in the store: a leaf key, a section marker, or an array
// head. Attribute fields mirror the metadata the codec needs to reconstruct
// section and array grouping from a flat, ordered set of entries.
type Entry struct {
	path Path

	// Value is the textual value; HasValue distinguishes an empty value
	// from no value at all (section markers carry none).
	Value    string
	HasValue bool

	// IsKey marks leaf data entries, IsSection marks section markers.
	IsKey     bool
	IsSection bool

	// Order is the entry's position token (see the order package).
	Order string

	// Section is the ordinal of the nearest enclosing section header;
	// 0 is the synthetic root, -1 means not yet resolved.
	Section int

	// ArrayNext, when > 0, marks this entry as an array head and records
	// the index the next appended member would receive.
	ArrayNext int

	// Comment is the newline-joined comment block preceding the entry.
	Comment string

	// ParentSection caches the nearest ancestor section path, used for
	// relative-name computation on emission.
	ParentSection Path
}

// NewEntry creates an unresolved entry at p.
func NewEntry(p Path) *Entry {
	return &Entry{path: p, Section: -1}
}

func (e *Entry) Path() Path { return e.path }

// SetValue sets the value and marks it present.
func (e *Entry) SetValue(v string) {
	e.Value = v
	e.HasValue = true
}

// AppendLine extends the value with a continuation line.
func (e *Entry) AppendLine(line string) {
	e.Value = e.Value + "\n" + line
	e.HasValue = true
}

// IsArrayHead reports whether the entry heads a merged array group.
func (e *Entry) IsArrayHead() bool { return e.ArrayNext > 0 }

// MemberPath returns the path of the array member at index i under head e.
func (e *Entry) MemberPath(i int) Path {
	return e.path.Child(fmt.Sprintf("%c%d", format.IndexPrefix, i))
}

// Clone returns a deep copy with the same path.
func (e *Entry) Clone() *Entry {
	dup := *e
	dup.path = e.path.Child()
	dup.ParentSection = e.ParentSection.Child()
	return &dup
}

// CloneAt returns a deep copy rekeyed to p.
func (e *Entry) CloneAt(p Path) *Entry {
	dup := e.Clone()
	dup.path = p
	return dup
}

func (e *Entry) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s", e.path)
	if e.HasValue {
		fmt.Fprintf(&sb, "=%q", e.Value)
	}
	if e.IsSection {
		sb.WriteString(" [section]")
	}
	if e.IsArrayHead() {
		fmt.Fprintf(&sb, " [array next=%d]", e.ArrayNext)
	}
	if e.Order != "" {
		fmt.Fprintf(&sb, " order=%s", e.Order)
	}
	if e.Section >= 0 {
		fmt.Fprintf(&sb, " section=%d", e.Section)
	}
	return sb.String()
}
