package format

import "errors"

// Error taxonomy. Every failure surfaced by this module unwraps to exactly
// one of these sentinels, so hosts can classify without string matching.
var (
	// ErrIO indicates the underlying text could not be read or written.
	ErrIO = errors.New("i/o error")
	// ErrSyntax indicates malformed input; parse errors carry a line number.
	ErrSyntax = errors.New("syntax error")
	// ErrResource indicates allocation or index exhaustion.
	ErrResource = errors.New("resource exhausted")
	// ErrInvariant indicates an internal consistency violation detected
	// before emission. It is never silently repaired.
	ErrInvariant = errors.New("invariant violation")
)

const (
	// Separator is the structural path separator in section and key names.
	Separator = '/'
	// Escape escapes a literal Separator inside a name.
	Escape = '\\'
	// CommentMarker starts an emitted comment line.
	CommentMarker = ';'
	// RootSection is the synthetic section segment assigned to keys that
	// appear before any section header. It is stripped before emission.
	RootSection = "GLOBALROOT"
	// IndexPrefix starts an array member segment, as in "#0", "#1".
	IndexPrefix = '#'
)

// EscapeName escapes structural separators in a single name segment.
func EscapeName(seg string) string {
	out := make([]byte, 0, len(seg))
	for i := 0; i < len(seg); i++ {
		if seg[i] == Separator {
			out = append(out, Escape)
		}
		out = append(out, seg[i])
	}
	return string(out)
}

// SplitName splits a textual section or key name on unescaped separators,
// unescaping each resulting segment. Empty segments are dropped.
func SplitName(name string) []string {
	var segs []string
	var cur []byte
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch c {
		case Escape:
			if i+1 < len(name) && name[i+1] == Separator {
				cur = append(cur, Separator)
				i++
				continue
			}
			cur = append(cur, c)
		case Separator:
			if len(cur) > 0 {
				segs = append(segs, string(cur))
				cur = nil
			}
		default:
			cur = append(cur, c)
		}
	}
	if len(cur) > 0 {
		segs = append(segs, string(cur))
	}
	return segs
}
