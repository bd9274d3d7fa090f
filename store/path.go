package store

import (
	"strings"

	"github.com/signadot/ini-format/go-ini/format"
)

// Path is an ordered sequence of name segments addressing an entry.
// Segments are held unescaped; structural separators embedded in a segment
// are escaped only in the textual forms produced by String and Name.
type Path []string

// ParsePath parses a textual path, splitting on unescaped separators.
func ParsePath(s string) Path {
	return Path(format.SplitName(s))
}

func (p Path) String() string {
	segs := make([]string, len(p))
	for i, seg := range p {
		segs[i] = format.EscapeName(seg)
	}
	return strings.Join(segs, string(format.Separator))
}

// Child returns a new path with the given segments appended. The receiver
// is not modified.
func (p Path) Child(segs ...string) Path {
	res := make(Path, 0, len(p)+len(segs))
	res = append(res, p...)
	res = append(res, segs...)
	return res
}

// Parent returns the path with the last segment removed.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return nil
	}
	return p[:len(p)-1]
}

// Base returns the last segment, or "" for an empty path.
func (p Path) Base() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

func (p Path) Equal(o Path) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

// IsBelow reports whether p is a strict descendant of ancestor.
func (p Path) IsBelow(ancestor Path) bool {
	if len(p) <= len(ancestor) {
		return false
	}
	return p[:len(ancestor)].Equal(ancestor)
}

// RelativeTo returns the segments of p below ancestor, or nil if p is not
// below ancestor.
func (p Path) RelativeTo(ancestor Path) Path {
	if !p.IsBelow(ancestor) {
		return nil
	}
	return p[len(ancestor):]
}

// Name renders p relative to base as a textual name, escaping structural
// separators inside each segment. It returns "" when p is not strictly
// below base.
func (p Path) Name(base Path) string {
	rel := p.RelativeTo(base)
	if rel == nil {
		return ""
	}
	return rel.String()
}

// Strip returns p with every segment equal to seg removed. The result is a
// fresh path; p is unchanged.
func (p Path) Strip(seg string) Path {
	res := make(Path, 0, len(p))
	for _, s := range p {
		if s == seg {
			continue
		}
		res = append(res, s)
	}
	return res
}

// Contains reports whether any segment of p equals seg.
func (p Path) Contains(seg string) bool {
	for _, s := range p {
		if s == seg {
			return true
		}
	}
	return false
}
