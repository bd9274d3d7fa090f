package ini

import (
	"github.com/signadot/ini-format/go-ini/debug"
	"github.com/signadot/ini-format/go-ini/format"
	"github.com/signadot/ini-format/go-ini/order"
	"github.com/signadot/ini-format/go-ini/parse"
	"github.com/signadot/ini-format/go-ini/store"
)

// regroup prepares a store for emission. Entries that already carry an
// order token pass through untouched, keeping their tokens valid for any
// external references. Entries the host added without one are assigned a
// section id and an order token: at the end of the file, or, with
// PreserveOrder, next to their path-order sibling inside their section.
// src is never modified.
func (p *Plugin) regroup(src *store.Store) (*store.Store, error) {
	dst := store.New(src.Root())
	var pending []*store.Entry
	for _, e := range src.Entries() {
		if e.Path().Equal(src.Root()) {
			continue
		}
		if e.Order == "" {
			pending = append(pending, e)
			continue
		}
		dup := e.Clone()
		dst.Put(dup)
		dst.NoteOrder(dup.Order)
		dst.NoteSection(dup.Section)
	}
	for _, e := range pending {
		if e.Path().Base() == format.RootSection {
			continue
		}
		if debug.Store() {
			debug.Logf("regroup: placing %s", e.Path())
		}
		if err := p.insert(dst, e); err != nil {
			return nil, err
		}
	}
	parse.Normalize(dst)
	return dst, nil
}

// insert places one unordered host entry into dst.
func (p *Plugin) insert(dst *store.Store, e *store.Entry) error {
	root := dst.Root()
	rel := e.Path().RelativeTo(root)
	if rel == nil {
		// not under the root, nothing to emit
		return nil
	}
	if e.IsSection {
		_, err := p.insertSection(dst, e.Path(), e)
		return err
	}

	secPath := e.Path().Parent()
	if len(rel) == 1 {
		// a key directly below the root lives under the sentinel
		// section until the finishing pass splices it back
		secPath = root.Child(format.RootSection)
		marker := dst.Ensure(secPath)
		if marker.Section < 0 {
			marker.Section = 0
		}
	} else if dst.Lookup(secPath) == nil && p.cfg.AutoSections {
		if _, err := p.insertSection(dst, secPath, nil); err != nil {
			return err
		}
	}

	keyPath := e.Path()
	if len(rel) == 1 {
		keyPath = secPath.Child(rel...)
	}
	dup := e.CloneAt(keyPath)
	dup.IsKey = true
	dup.Section = -1
	dst.Put(dup)
	parse.ResolveSection(dst, dup)
	tok, err := p.orderFor(dst, dup)
	if err != nil {
		return err
	}
	dup.Order = tok
	dst.NoteOrder(tok)
	return nil
}

// insertSection creates or completes a section marker at secPath. A
// marker whose section id exceeds all previously ordered ones goes to the
// end of the file; otherwise it is ordered after the last entry already
// inside that section.
func (p *Plugin) insertSection(dst *store.Store, secPath store.Path, src *store.Entry) (*store.Entry, error) {
	oldLast := dst.LastSection()
	marker := dst.Lookup(secPath)
	if marker == nil {
		if src != nil {
			marker = src.CloneAt(secPath)
			marker.Section = -1
			marker.Order = ""
		} else {
			marker = store.NewEntry(secPath)
		}
		dst.Put(marker)
	}
	marker.IsSection = true
	parse.ResolveSection(dst, marker)
	if marker.Order != "" {
		return marker, nil
	}
	if marker.Section > oldLast {
		tok, err := order.Next(dst.MaxOrder())
		if err != nil {
			return nil, err
		}
		marker.Order = tok
		dst.NoteOrder(tok)
		return marker, nil
	}
	// section already existed in the ordered content: subdivide after
	// its last ordered entry
	last := sectionMaxOrder(dst, marker.Section)
	tok, err := order.Between(last, "")
	if err != nil {
		return nil, err
	}
	marker.Order = tok
	dst.NoteOrder(tok)
	return marker, nil
}

// orderFor picks the order token for a newly inserted key. Keys under
// the sentinel root section always get position-stable insertion: a
// trailing token would put them after the last section header, where a
// reparse would misattribute them.
func (p *Plugin) orderFor(dst *store.Store, e *store.Entry) (string, error) {
	sentinel := e.Path().Contains(format.RootSection)
	if !p.cfg.PreserveOrder && !sentinel {
		return order.Next(dst.MaxOrder())
	}
	// position-stable insertion: subdivide after the path-order
	// predecessor among the ordered entries of the same section,
	// bounded by the successor's token
	var prev, next *store.Entry
	for _, cand := range dst.ByOrder() {
		if cand.Section != e.Section || cand.Order == "" {
			continue
		}
		if cand.Path().String() < e.Path().String() {
			prev = cand
			continue
		}
		if cand.Path().Equal(e.Path()) {
			continue
		}
		next = cand
		break
	}
	switch {
	case prev != nil && next != nil:
		return order.Between(prev.Order, next.Order)
	case prev != nil:
		return order.Between(prev.Order, "")
	case next != nil:
		// before every sibling: subdivide under the predecessor of
		// the section's first entry, staying inside the section
		return order.Between(sectionFloor(dst, next), next.Order)
	case sentinel:
		// no ordered global keys yet: go before the first section
		first := firstOrdered(dst)
		if first == "" {
			return order.Next(dst.MaxOrder())
		}
		return order.Between(order.Initial(), first)
	default:
		return order.Next(dst.MaxOrder())
	}
}

// firstOrdered returns the smallest assigned order token, or "".
func firstOrdered(dst *store.Store) string {
	for _, cand := range dst.ByOrder() {
		if cand.Order != "" {
			return cand.Order
		}
	}
	return ""
}

// sectionFloor returns the order token immediately preceding first in the
// full ordered sweep, falling back to the initial token.
func sectionFloor(dst *store.Store, first *store.Entry) string {
	floor := order.Initial()
	for _, cand := range dst.ByOrder() {
		if cand.Order == "" {
			continue
		}
		if cand.Path().Equal(first.Path()) {
			break
		}
		floor = cand.Order
	}
	return floor
}

func sectionMaxOrder(dst *store.Store, section int) string {
	last := order.Initial()
	for _, cand := range dst.ByOrder() {
		if cand.Section != section || cand.Order == "" {
			continue
		}
		if order.Compare(cand.Order, last) > 0 {
			last = cand.Order
		}
	}
	return last
}
