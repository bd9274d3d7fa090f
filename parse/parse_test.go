package parse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/ini-format/go-ini/format"
	"github.com/signadot/ini-format/go-ini/order"
	"github.com/signadot/ini-format/go-ini/store"
)

var testRoot = store.ParsePath("user/test")

func mustParse(t *testing.T, in string, opts ...ParseOption) *store.Store {
	t.Helper()
	st, err := ParseString(in, testRoot, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return st
}

func lookup(t *testing.T, st *store.Store, rel string) *store.Entry {
	t.Helper()
	e := st.Lookup(testRoot.Child(store.ParsePath(rel)...))
	if e == nil {
		t.Fatalf("no entry at %q", rel)
	}
	return e
}

func TestParseBasic(t *testing.T) {
	st := mustParse(t, "[a]\nx = 1\ny = two words\n")
	sec := lookup(t, st, "a")
	if !sec.IsSection {
		t.Error("a is not a section marker")
	}
	x := lookup(t, st, "a/x")
	if !x.IsKey || x.Value != "1" {
		t.Errorf("x = %v", x)
	}
	if y := lookup(t, st, "a/y"); y.Value != "two words" {
		t.Errorf("y = %q", y.Value)
	}
	if x.Section != sec.Section {
		t.Errorf("x section %d != a section %d", x.Section, sec.Section)
	}
}

func TestParseGlobalKeys(t *testing.T) {
	st := mustParse(t, "g = 0\n[a]\nx = 1\n")
	g := lookup(t, st, "g")
	if g.Section != 0 {
		t.Errorf("global key section = %d, want 0", g.Section)
	}
	// sentinel stripped
	for _, e := range st.Entries() {
		if e.Path().Contains(format.RootSection) {
			t.Errorf("sentinel left in path %q", e.Path())
		}
	}
	if g.ParentSection == nil || !g.ParentSection.Equal(testRoot) {
		t.Errorf("global key parent section = %v", g.ParentSection)
	}
}

func TestSectionNumberingMonotonic(t *testing.T) {
	st := mustParse(t, "[s1]\na = 1\n[s2]\nb = 2\nc = 3\n[s3]\nd = 4\n")
	s1 := lookup(t, st, "s1/a").Section
	b := lookup(t, st, "s2/b").Section
	c := lookup(t, st, "s2/c").Section
	s3 := lookup(t, st, "s3/d").Section
	if b != c {
		t.Errorf("keys in s2 disagree: %d vs %d", b, c)
	}
	if !(s1 < b && b < s3) {
		t.Errorf("section ids not monotonic: %d, %d, %d", s1, b, s3)
	}
}

func TestParseOrderTotal(t *testing.T) {
	st := mustParse(t, "g = 0\n[a]\nx = 1\ny = 2\n[b]\nz = 3\n")
	seen := map[string]bool{}
	var prev string
	for _, e := range st.ByOrder() {
		if e.Order == "" {
			continue
		}
		if seen[e.Order] {
			t.Errorf("duplicate order token %q", e.Order)
		}
		seen[e.Order] = true
		if order.Compare(e.Order, prev) < 0 {
			t.Errorf("order not sorted: %q after %q", e.Order, prev)
		}
		prev = e.Order
	}
	if len(seen) != 6 {
		t.Errorf("want 6 ordered entries, got %d", len(seen))
	}
}

func TestReopenedSectionKeyOrder(t *testing.T) {
	st := mustParse(t, "[a]\nx = 1\n[b]\ny = 2\n[a]\nz = 3\n")
	x := lookup(t, st, "a/x")
	z := lookup(t, st, "a/z")
	b := lookup(t, st, "b")
	if z.Section != x.Section {
		t.Errorf("z section %d != a section %d", z.Section, x.Section)
	}
	// z stays inside a's span, before the [b] header
	if order.Compare(z.Order, x.Order) <= 0 {
		t.Errorf("z order %q not after x order %q", z.Order, x.Order)
	}
	if order.Compare(z.Order, b.Order) >= 0 {
		t.Errorf("z order %q not before b order %q", z.Order, b.Order)
	}
	var names []string
	for _, e := range st.ByOrder() {
		if e.IsSection || e.IsKey {
			names = append(names, e.Path().Name(testRoot))
		}
	}
	want := []string{"a", "a/x", "a/z", "b", "b/y"}
	if d := cmp.Diff(want, names); d != "" {
		t.Error(d)
	}
}

func TestParseComments(t *testing.T) {
	st := mustParse(t, ";one\n;two\n[a]\n;for x\nx = 1\n")
	if got := lookup(t, st, "a").Comment; got != "one\ntwo" {
		t.Errorf("section comment %q", got)
	}
	if got := lookup(t, st, "a/x").Comment; got != "for x" {
		t.Errorf("key comment %q", got)
	}
}

func TestTrailingCommentDiscarded(t *testing.T) {
	st := mustParse(t, "[a]\nx = 1\n;dangling\n")
	for _, e := range st.Entries() {
		if e.Comment == "dangling" {
			t.Errorf("trailing comment attached to %q", e.Path())
		}
	}
}

func TestContinuation(t *testing.T) {
	st := mustParse(t, "[a]\nk = line1\n\tline2\n", ParseMultiline(true))
	if got := lookup(t, st, "a/k").Value; got != "line1\nline2" {
		t.Errorf("value = %q", got)
	}
}

func TestArrayPromotion(t *testing.T) {
	st := mustParse(t, "[a]\nk = 1\nk = 2\n", ParseArrays(true))
	head := lookup(t, st, "a/k")
	if !head.IsArrayHead() || head.ArrayNext != 2 {
		t.Fatalf("head = %v", head)
	}
	m0 := st.Lookup(head.MemberPath(0))
	m1 := st.Lookup(head.MemberPath(1))
	if m0 == nil || m0.Value != "1" {
		t.Errorf("member 0 = %v", m0)
	}
	if m1 == nil || m1.Value != "2" {
		t.Errorf("member 1 = %v", m1)
	}
	if m0.Section != head.Section || m1.Section != head.Section {
		t.Error("members not in head's section")
	}
}

func TestArrayAppend(t *testing.T) {
	st := mustParse(t, "[a]\nk = 1\nk = 2\nk = 3\nk = 4\n", ParseArrays(true))
	head := lookup(t, st, "a/k")
	if head.ArrayNext != 4 {
		t.Fatalf("next index = %d, want 4", head.ArrayNext)
	}
	want := []string{"1", "2", "3", "4"}
	for i, w := range want {
		m := st.Lookup(head.MemberPath(i))
		if m == nil || m.Value != w {
			t.Errorf("member %d = %v, want %q", i, m, w)
		}
	}
}

func TestArrayKeepsPosition(t *testing.T) {
	st := mustParse(t, "[a]\nk = 1\nmid = m\nk = 2\n", ParseArrays(true))
	head := lookup(t, st, "a/k")
	mid := lookup(t, st, "a/mid")
	m1 := st.Lookup(head.MemberPath(1))
	if order.Compare(head.Order, mid.Order) >= 0 {
		t.Error("head moved past mid")
	}
	if order.Compare(m1.Order, mid.Order) >= 0 {
		t.Error("members not adjacent to head")
	}
}

func TestOverwriteWithoutArrays(t *testing.T) {
	st := mustParse(t, "[a]\nk = 1\nk = 2\n")
	k := lookup(t, st, "a/k")
	if k.IsArrayHead() {
		t.Error("array created with arrays disabled")
	}
	if k.Value != "2" {
		t.Errorf("value = %q, want last write", k.Value)
	}
}

func TestContinuationAfterArrayIsSyntax(t *testing.T) {
	_, err := ParseString("[a]\nk = 1\nk = 2\n\tcont\n", testRoot,
		ParseArrays(true), ParseMultiline(true))
	if !errors.Is(err, format.ErrSyntax) {
		t.Errorf("want ErrSyntax, got %v", err)
	}
}

func TestSyntaxErrorLine(t *testing.T) {
	_, err := ParseString("[a]\nx = 1\nbroken line\n", testRoot)
	if !errors.Is(err, format.ErrSyntax) {
		t.Fatalf("want ErrSyntax, got %v", err)
	}
}

func TestEscapedSeparators(t *testing.T) {
	st := mustParse(t, "[a]\nk\\/s = 1\n[b/c]\nx = 2\n")
	k := st.Lookup(testRoot.Child("a", "k/s"))
	if k == nil || k.Value != "1" {
		t.Fatalf("escaped key = %v", k)
	}
	x := st.Lookup(testRoot.Child("b", "c", "x"))
	if x == nil || x.Value != "2" {
		t.Fatalf("nested section key = %v", x)
	}
}
