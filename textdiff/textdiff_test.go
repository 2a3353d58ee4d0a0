package textdiff

import (
	"testing"
)

type editsTest struct {
	from string
	to   string
}

var editsTests = []editsTest{
	{from: "", to: ""},
	{from: "same", to: "same"},
	{from: "", to: "hello"},
	{from: "hello", to: ""},
	{from: "Hello, world!", to: "Hello, Yjs!"},
	{from: "kitten", to: "sitting"},
	{from: "the quick brown fox", to: "the slow brown cat"},
	{from: "über", to: "uber"},
	{from: "línea uno\nlínea dos", to: "línea uno\nlínea tres"},
	{from: "aaaa", to: "aabaa"},
}

// applyEdits replays an edit script the way a live text node would,
// sequentially against the evolving content.
func applyEdits(from string, edits []Edit) string {
	rs := []rune(from)
	for _, e := range edits {
		rest := append([]rune(e.Insert), rs[e.Offset+e.Delete:]...)
		rs = append(rs[:e.Offset:e.Offset], rest...)
	}
	return string(rs)
}

func TestEditsTransform(t *testing.T) {
	for _, tst := range editsTests {
		edits := Edits(tst.from, tst.to)
		if got := applyEdits(tst.from, edits); got != tst.to {
			t.Errorf("Edits(%q, %q) = %v; applying gave %q", tst.from, tst.to, edits, got)
		}
	}
}

func TestEditsEqualIsNil(t *testing.T) {
	if edits := Edits("unchanged", "unchanged"); edits != nil {
		t.Fatalf("Edits on equal strings = %v", edits)
	}
}

func TestEditsFoldsReplace(t *testing.T) {
	// a replaced run comes back as one edit, not a delete plus an insert
	edits := Edits("Hello, world!", "Hello, Yjs!")
	if len(edits) != 1 {
		t.Fatalf("edits = %v, want a single folded edit", edits)
	}
	e := edits[0]
	if e.Delete == 0 || e.Insert == "" {
		t.Fatalf("edit %v not folded", e)
	}
}

func TestEditsOffsetsInRunes(t *testing.T) {
	edits := Edits("día", "días")
	want := Edit{Offset: 3, Delete: 0, Insert: "s"}
	if len(edits) != 1 || edits[0] != want {
		t.Fatalf("edits = %v, want [%v]", edits, want)
	}
}
