// Package store implements the hierarchical, ordered key store the codec
// reads into and writes from. Entries are unique by path; iteration is
// stable; lookups are O(log n) over a sorted key index.
package store

import (
	"slices"
	"strings"

	"github.com/signadot/ini-format/go-ini/order"
)

type Store struct {
	root   Path
	byPath map[string]*Entry
	keys   []string // sorted canonical paths

	// parse/write state kept on the store root (see the design of the
	// section resolver and order assignment): the highest section id
	// handed out and the highest order token assigned so far.
	lastSection int
	maxOrder    string
}

// New creates an empty store rooted at root.
func New(root Path) *Store {
	return &Store{
		root:     root.Child(),
		byPath:   map[string]*Entry{},
		maxOrder: order.Initial(),
	}
}

func (s *Store) Root() Path { return s.root }

func (s *Store) Len() int { return len(s.byPath) }

// Lookup returns the entry at p, or nil.
func (s *Store) Lookup(p Path) *Entry {
	return s.byPath[p.String()]
}

// Put inserts e, replacing any entry already at its path. Paths stay
// unique: a second insertion replaces attributes, never duplicates.
func (s *Store) Put(e *Entry) {
	k := e.path.String()
	if _, ok := s.byPath[k]; !ok {
		i, _ := slices.BinarySearch(s.keys, k)
		s.keys = slices.Insert(s.keys, i, k)
	}
	s.byPath[k] = e
}

// Ensure returns the entry at p, creating an unresolved one if absent.
func (s *Store) Ensure(p Path) *Entry {
	if e := s.Lookup(p); e != nil {
		return e
	}
	e := NewEntry(p)
	s.Put(e)
	return e
}

// Delete removes the entry at p, if any.
func (s *Store) Delete(p Path) {
	k := p.String()
	if _, ok := s.byPath[k]; !ok {
		return
	}
	delete(s.byPath, k)
	i, _ := slices.BinarySearch(s.keys, k)
	s.keys = slices.Delete(s.keys, i, i+1)
}

// Rekey moves the entry at from to to, replacing any entry at to.
func (s *Store) Rekey(from, to Path) {
	e := s.Lookup(from)
	if e == nil {
		return
	}
	s.Delete(from)
	e.path = to
	s.Put(e)
}

// Entries returns all entries in canonical path order.
func (s *Store) Entries() []*Entry {
	res := make([]*Entry, 0, len(s.keys))
	for _, k := range s.keys {
		res = append(res, s.byPath[k])
	}
	return res
}

// ByOrder returns all entries sorted by order token. Entries with no token
// sort first, keeping their relative path order.
func (s *Store) ByOrder() []*Entry {
	res := s.Entries()
	slices.SortStableFunc(res, func(a, b *Entry) int {
		return strings.Compare(a.Order, b.Order)
	})
	return res
}

// Dup returns a deep copy sharing no entries with s.
func (s *Store) Dup() *Store {
	dup := New(s.root)
	dup.lastSection = s.lastSection
	dup.maxOrder = s.maxOrder
	for _, k := range s.keys {
		dup.Put(s.byPath[k].Clone())
	}
	return dup
}

// NextSection increments and returns the store-wide section counter.
func (s *Store) NextSection() int {
	s.lastSection++
	return s.lastSection
}

// LastSection returns the highest section id handed out so far.
func (s *Store) LastSection() int { return s.lastSection }

// NoteSection records id as in use, raising the counter if needed.
func (s *Store) NoteSection(id int) {
	if id > s.lastSection {
		s.lastSection = id
	}
}

// MaxOrder returns the highest order token assigned so far.
func (s *Store) MaxOrder() string { return s.maxOrder }

// NoteOrder records tok as assigned, raising the maximum if needed.
func (s *Store) NoteOrder(tok string) {
	if order.Compare(tok, s.maxOrder) > 0 {
		s.maxOrder = tok
	}
}
