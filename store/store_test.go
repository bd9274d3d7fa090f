package store

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPathName(t *testing.T) {
	root := ParsePath("user/config")
	tests := []struct {
		p    Path
		base Path
		want string
	}{
		{p: root.Child("sec", "key"), base: root.Child("sec"), want: "key"},
		{p: root.Child("sec", "sub", "key"), base: root.Child("sec"), want: "sub/key"},
		{p: root.Child("a/b"), base: root, want: `a\/b`},
		{p: root, base: root, want: ""},
		{p: root.Child("x"), base: root.Child("y"), want: ""},
	}
	for _, tc := range tests {
		if got := tc.p.Name(tc.base); got != tc.want {
			t.Errorf("Name(%v, %v) = %q, want %q", tc.p, tc.base, got, tc.want)
		}
	}
}

func TestPathStrip(t *testing.T) {
	p := ParsePath("root/GLOBALROOT/key")
	got := p.Strip("GLOBALROOT")
	if d := cmp.Diff(Path{"root", "key"}, got); d != "" {
		t.Error(d)
	}
	// original unchanged
	if len(p) != 3 {
		t.Errorf("source path modified: %v", p)
	}
}

func TestPutReplaces(t *testing.T) {
	st := New(ParsePath("root"))
	p := st.Root().Child("k")
	a := NewEntry(p)
	a.SetValue("1")
	st.Put(a)
	b := NewEntry(p)
	b.SetValue("2")
	st.Put(b)
	if st.Len() != 1 {
		t.Fatalf("len = %d, want 1", st.Len())
	}
	if got := st.Lookup(p).Value; got != "2" {
		t.Errorf("value = %q, want %q", got, "2")
	}
}

func TestByOrder(t *testing.T) {
	st := New(ParsePath("root"))
	mk := func(name, ord string) {
		e := NewEntry(st.Root().Child(name))
		e.Order = ord
		st.Put(e)
	}
	mk("c", "000000001")
	mk("a", "000000002/000000001")
	mk("b", "000000002")
	var got []string
	for _, e := range st.ByOrder() {
		got = append(got, e.Path().Base())
	}
	want := []string{"c", "b", "a"}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
}

func TestDup(t *testing.T) {
	st := New(ParsePath("root"))
	e := NewEntry(st.Root().Child("k"))
	e.SetValue("v")
	st.Put(e)
	dup := st.Dup()
	dup.Lookup(dup.Root().Child("k")).SetValue("changed")
	if st.Lookup(st.Root().Child("k")).Value != "v" {
		t.Error("Dup shares entries with the source store")
	}
}
