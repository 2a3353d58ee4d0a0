package vyjs

import (
	"github.com/samuraiexx/vyjs/align"
	"github.com/samuraiexx/vyjs/doc"
	"github.com/samuraiexx/vyjs/textdiff"
)

// textEdit is one batched run of the text walk: delete del runes at
// offset, then insert insert at offset. Offsets are valid at apply
// time given the preceding edits were applied in order.
type textEdit struct {
	offset int
	del    int
	insert string
}

// textEdits derives the contiguous-run edit script from the rune
// alignment of from and to.
func textEdits(from, to string) []textEdit {
	fr, tr := []rune(from), []rune(to)
	leftIdx, rightIdx := align.Runes(from, to)
	res := []textEdit{}
	oi, ni, off := 0, 0, 0
	for k := 0; k <= len(leftIdx); k++ {
		mo, mn := len(fr), len(tr)
		if k < len(leftIdx) {
			mo, mn = leftIdx[k], rightIdx[k]
		}
		if mo > oi || mn > ni {
			res = append(res, textEdit{offset: off, del: mo - oi, insert: string(tr[ni:mn])})
			off += mn - ni
			oi = mo
			ni = mn
		}
		if k < len(leftIdx) {
			oi++
			ni++
			off++
		}
	}
	return res
}

// applyText edits t, currently holding old, into new with the minimal
// insert/delete runs from the rune alignment.
func applyText(old, new string, t *doc.Text) {
	for _, e := range textEdits(old, new) {
		if e.del > 0 {
			t.Delete(e.offset, e.del)
		}
		if e.insert != "" {
			t.Insert(e.offset, e.insert)
		}
	}
}

// replaceText rewrites the full content of t to s while preserving the
// characters t already shares with s, so concurrent cursors near
// unchanged spans survive. The script comes from textdiff rather than
// the quadratic aligner since full-content replaces can be large.
func replaceText(t *doc.Text, s string) {
	for _, e := range textdiff.Edits(t.String(), s) {
		if e.Delete > 0 {
			t.Delete(e.Offset, e.Delete)
		}
		if e.Insert != "" {
			t.Insert(e.Offset, e.Insert)
		}
	}
}
