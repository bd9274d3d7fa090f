// Package order generates and compares the stable position tokens that
// determine entry emission order.
//
// A token is one or more zero-padded 9-digit decimal segments joined by '/'.
// Lexicographic comparison of full tokens matches numeric comparison at each
// level because of the padding, and because '/' sorts before any digit a
// subdivided token always sorts between its parent and the parent's
// successor. Subdivision trades token length for never renumbering existing
// siblings.
package order

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/ini-format/go-ini/format"
)

const (
	width = 9
	sep   = "/"

	maxSegment = 999999999
)

// Initial returns the smallest token, held by the store root before any
// entry is ordered.
func Initial() string {
	return pad(0)
}

// Next returns the token immediately after all currently assigned tokens,
// where max is the highest token assigned so far. Only the leading segment
// participates; subdivided suffixes of max are discarded.
func Next(max string) (string, error) {
	lead := max
	if i := strings.Index(max, sep); i >= 0 {
		lead = max[:i]
	}
	n, err := strconv.Atoi(lead)
	if err != nil {
		return "", fmt.Errorf("%w: bad order token %q", format.ErrInvariant, max)
	}
	if n >= maxSegment {
		return "", fmt.Errorf("%w: order space exhausted at %q", format.ErrResource, max)
	}
	return pad(n + 1), nil
}

// Between returns a token strictly between low and high, leaving both
// unchanged. It first tries to bump low's last segment; when the bumped
// token would not sort below high it subdivides instead, appending segments
// until the result fits. high may be empty, meaning no upper bound.
func Between(low, high string) (string, error) {
	if high != "" && high <= low {
		return "", fmt.Errorf("%w: order range %q..%q is empty", format.ErrInvariant, low, high)
	}
	if i := strings.LastIndex(low, sep); i >= 0 {
		last, err := strconv.Atoi(low[i+1:])
		if err != nil {
			return "", fmt.Errorf("%w: bad order token %q", format.ErrInvariant, low)
		}
		if last < maxSegment {
			if c := low[:i+1] + pad(last+1); high == "" || c < high {
				return c, nil
			}
		}
	}
	suffix := sep + pad(1)
	for {
		c := low + suffix
		if high == "" || c < high {
			return c, nil
		}
		if len(suffix) > len(high) {
			return "", fmt.Errorf("%w: no order token between %q and %q", format.ErrInvariant, low, high)
		}
		suffix = sep + pad(0) + suffix
	}
}

// Compare orders two tokens. Comparison is plain lexicographic over the
// token text; the subdivision scheme depends on this, so tokens must never
// be compared numerically.
func Compare(a, b string) int {
	return strings.Compare(a, b)
}

func pad(n int) string {
	return fmt.Sprintf("%0*d", width, n)
}
