package vyjs

import (
	"testing"

	"github.com/samuraiexx/vyjs/doc"
)

type textEditsTest struct {
	from  string
	to    string
	edits []textEdit
}

var textEditsTests = []textEditsTest{
	{from: "", to: "", edits: []textEdit{}},
	{from: "same", to: "same", edits: []textEdit{}},
	{from: "", to: "abc", edits: []textEdit{{offset: 0, del: 0, insert: "abc"}}},
	{from: "abc", to: "", edits: []textEdit{{offset: 0, del: 3, insert: ""}}},
	{
		from:  "Hello, world!",
		to:    "Hello, Yjs!",
		edits: []textEdit{{offset: 7, del: 5, insert: "Yjs"}},
	},
	{
		from: "kitten",
		to:   "sitting",
		edits: []textEdit{
			{offset: 0, del: 1, insert: "s"},
			{offset: 4, del: 1, insert: "i"},
			{offset: 6, del: 0, insert: "g"},
		},
	},
	{
		from:  "abc",
		to:    "axbxc",
		edits: []textEdit{{offset: 1, del: 0, insert: "x"}, {offset: 3, del: 0, insert: "x"}},
	},
	{
		from:  "día",
		to:    "días",
		edits: []textEdit{{offset: 3, del: 0, insert: "s"}},
	},
}

func TestTextEdits(t *testing.T) {
	for _, tst := range textEditsTests {
		got := textEdits(tst.from, tst.to)
		if !eqTextEdits(got, tst.edits) {
			t.Errorf("textEdits(%q, %q) = %v, want %v", tst.from, tst.to, got, tst.edits)
		}
	}
}

func TestApplyText(t *testing.T) {
	for _, tst := range textEditsTests {
		txt := doc.NewText(tst.from)
		applyText(tst.from, tst.to, txt)
		if txt.String() != tst.to {
			t.Errorf("applyText(%q, %q) left %q", tst.from, tst.to, txt.String())
		}
	}
}

func TestReplaceText(t *testing.T) {
	for _, tst := range textEditsTests {
		txt := doc.NewText(tst.from)
		replaceText(txt, tst.to)
		if txt.String() != tst.to {
			t.Errorf("replaceText(%q, %q) left %q", tst.from, tst.to, txt.String())
		}
	}
}

func eqTextEdits(a, b []textEdit) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
