package parse

import (
	"github.com/signadot/ini-format/go-ini/format"
	"github.com/signadot/ini-format/go-ini/store"
)

// ResolveSection assigns e the id of its nearest enclosing section,
// walking ancestors toward the store root. A cache hit on an ancestor
// wins; at the root a fresh id is drawn from the store counter and
// memoized on the topmost walked ancestor, so later siblings resolve to
// the same id. Resolution never mutates any entry other than e and that
// memoization target. Exported for the write path, which must resolve
// entries inserted by the host.
func ResolveSection(st *store.Store, e *store.Entry) {
	if e.Section >= 0 {
		return
	}
	if e.Path().Base() == format.RootSection {
		e.Section = 0
		return
	}
	root := st.Root()
	last := e.Path()
	for cur := e.Path().Parent(); ; cur = cur.Parent() {
		if cur.Equal(root) || !cur.IsBelow(root) {
			id := st.NextSection()
			e.Section = id
			if !last.Equal(e.Path()) {
				st.Ensure(last).Section = id
			}
			return
		}
		if anc := st.Lookup(cur); anc != nil && anc.Section >= 0 {
			e.Section = anc.Section
			return
		}
		last = cur
	}
}

// Normalize runs the finishing passes over a freshly built store:
// sentinel stripping, then parent section computation. Stripping happens
// first so cached parent paths never name the sentinel.
func Normalize(st *store.Store) {
	stripSentinel(st)
	setParents(st)
}

// stripSentinel splices entries under the sentinel root section directly
// below the store root, removing the sentinel segment from their paths.
func stripSentinel(st *store.Store) {
	for _, e := range st.Entries() {
		if !e.Path().Contains(format.RootSection) {
			continue
		}
		st.Rekey(e.Path(), e.Path().Strip(format.RootSection))
	}
}

// setParents caches, on every entry, the path of its nearest ancestor
// section marker, falling back to the store root.
func setParents(st *store.Store) {
	for _, e := range st.Entries() {
		e.ParentSection = findParent(st, e.Path())
	}
}

func findParent(st *store.Store, p store.Path) store.Path {
	root := st.Root()
	for cur := p.Parent(); cur.IsBelow(root); cur = cur.Parent() {
		if anc := st.Lookup(cur); anc != nil && anc.IsSection {
			return cur.Child()
		}
	}
	return root.Child()
}
