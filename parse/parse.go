package parse

import (
	"io"
	"strings"

	"github.com/signadot/ini-format/go-ini/format"
	"github.com/signadot/ini-format/go-ini/order"
	"github.com/signadot/ini-format/go-ini/store"
	"github.com/signadot/ini-format/go-ini/token"
)

// Parse reads INI text from r into a fresh store rooted at root.
func Parse(r io.Reader, root store.Path, opts ...ParseOption) (*store.Store, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{
		st:   store.New(root),
		opts: pOpts,
	}
	if err := token.Tokenize(r, p, pOpts.tokenOpts()...); err != nil {
		return nil, err
	}
	p.finish()
	return p.st, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(s string, root store.Path, opts ...ParseOption) (*store.Store, error) {
	return Parse(strings.NewReader(s), root, opts...)
}

// parser is the token.Sink building up the store.
type parser struct {
	st      *store.Store
	opts    *parseOpts
	comment []string
}

func (p *parser) Section(pos *token.Pos, name string) error {
	secPath := p.st.Root().Child(format.SplitName(name)...)
	e := p.st.Lookup(secPath)
	created := e == nil
	if created {
		e = store.NewEntry(secPath)
		p.st.Put(e)
	}
	e.IsSection = true
	p.resolveSection(e)
	if created || e.Order == "" {
		tok, err := order.Next(p.st.MaxOrder())
		if err != nil {
			return resourceErr(pos, "%v", err)
		}
		e.Order = tok
		p.st.NoteOrder(tok)
	}
	p.flushComment(e)
	return nil
}

func (p *parser) KeyValue(pos *token.Pos, section, name, value string, isContinuation bool) error {
	secPath := p.sectionPath(section)
	keyPath := secPath.Child(format.SplitName(name)...)

	if isContinuation {
		e := p.st.Lookup(keyPath)
		if e == nil {
			return syntaxErr(pos, "continuation for unknown key %q", name)
		}
		if e.IsArrayHead() {
			return syntaxErr(pos, "continuation after repeated key %q", name)
		}
		e.AppendLine(value)
		return nil
	}

	p.ensureSection(secPath)
	if existing := p.st.Lookup(keyPath); existing != nil && existing.IsKey {
		if p.opts.arrays {
			return p.mergeArray(pos, existing, value)
		}
		// last write wins, position is kept
		existing.SetValue(value)
		p.flushComment(existing)
		return nil
	}

	e := store.NewEntry(keyPath)
	e.IsKey = true
	e.SetValue(value)
	p.st.Put(e)
	p.resolveSection(e)
	tok, err := p.orderForKey(e.Section)
	if err != nil {
		return resourceErr(pos, "%v", err)
	}
	e.Order = tok
	p.st.NoteOrder(tok)
	p.flushComment(e)
	return nil
}

// orderForKey picks the token for a fresh key in section sec. While sec
// is the section at the end of the file this is the next tail token; for
// a section reopened by a later header the token subdivides into the
// section's existing span, keeping the key under its header on emission.
func (p *parser) orderForKey(sec int) (string, error) {
	last := ""
	for _, cand := range p.st.Entries() {
		if cand.Section != sec || cand.Order == "" {
			continue
		}
		if last == "" || order.Compare(cand.Order, last) > 0 {
			last = cand.Order
		}
	}
	if last == "" || last == p.st.MaxOrder() {
		return order.Next(p.st.MaxOrder())
	}
	next := ""
	for _, cand := range p.st.Entries() {
		if cand.Order == "" || order.Compare(cand.Order, last) <= 0 {
			continue
		}
		if next == "" || order.Compare(cand.Order, next) < 0 {
			next = cand.Order
		}
	}
	if next == "" {
		return order.Next(p.st.MaxOrder())
	}
	return order.Between(last, next)
}

func (p *parser) Comment(pos *token.Pos, text string) error {
	p.comment = append(p.comment, text)
	return nil
}

// sectionPath maps a raw header name to the store path of the section,
// substituting the sentinel root section for keys with no header.
func (p *parser) sectionPath(section string) store.Path {
	if section == "" {
		return p.st.Root().Child(format.RootSection)
	}
	return p.st.Root().Child(format.SplitName(section)...)
}

// ensureSection makes the sentinel root-section marker exist so section
// resolution for keys below it has an ancestor to hit. Named sections get
// their marker from the Section event.
func (p *parser) ensureSection(secPath store.Path) {
	if secPath.Base() != format.RootSection {
		return
	}
	e := p.st.Ensure(secPath)
	if e.Section < 0 {
		e.Section = 0
	}
}

// flushComment attaches the pending comment block to e. A block left
// unflushed at end of input is discarded.
func (p *parser) flushComment(e *store.Entry) {
	if len(p.comment) == 0 {
		return
	}
	e.Comment = strings.Join(p.comment, "\n")
	p.comment = nil
}

// finish runs the post-callback passes.
func (p *parser) finish() {
	Normalize(p.st)
}

func (p *parser) resolveSection(e *store.Entry) {
	ResolveSection(p.st, e)
}
