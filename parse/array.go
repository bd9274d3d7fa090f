package parse

import (
	"math"

	"github.com/signadot/ini-format/go-ini/order"
	"github.com/signadot/ini-format/go-ini/store"
	"github.com/signadot/ini-format/go-ini/token"
)

const maxArrayIndex = math.MaxInt32

// mergeArray folds a repeated key into an indexed array group. The first
// occurrence becomes the group head; members live at the head's path with
// an index segment appended and sort directly after the head via
// subdivided order tokens, so the group keeps the head's first-seen
// position.
func (p *parser) mergeArray(pos *token.Pos, head *store.Entry, value string) error {
	if head.IsArrayHead() {
		idx := head.ArrayNext
		if idx >= maxArrayIndex {
			return resourceErr(pos, "array index space exhausted at %q", head.Path())
		}
		prev := p.st.Lookup(head.MemberPath(idx - 1))
		low := head.Order
		if prev != nil && prev.Order != "" {
			low = prev.Order
		}
		m, err := p.newMember(head, idx, value, low)
		if err != nil {
			return resourceErr(pos, "%v", err)
		}
		p.st.Put(m)
		head.ArrayNext = idx + 1
		return nil
	}

	// promote: index 0 keeps the original value, index 1 takes the
	// incoming one, the head's own value is cleared.
	m0, err := p.newMember(head, 0, head.Value, head.Order)
	if err != nil {
		return resourceErr(pos, "%v", err)
	}
	m1, err := p.newMember(head, 1, value, m0.Order)
	if err != nil {
		return resourceErr(pos, "%v", err)
	}
	p.st.Put(m0)
	p.st.Put(m1)
	head.SetValue("")
	head.ArrayNext = 2
	return nil
}

func (p *parser) newMember(head *store.Entry, idx int, value, low string) (*store.Entry, error) {
	tok, err := order.Between(low, "")
	if err != nil {
		return nil, err
	}
	m := store.NewEntry(head.MemberPath(idx))
	m.IsKey = true
	m.SetValue(value)
	m.Section = head.Section
	m.Order = tok
	p.st.NoteOrder(tok)
	return m, nil
}
