// Package textdiff turns two strings into an edit script of
// offset-addressed insert/delete runs, suitable for applying to a live
// text node without disturbing the characters both strings share.
package textdiff

import diffpatch "github.com/sergi/go-diff/diffmatchpatch"

// Edit is one step of an edit script. Offset is in runes and is valid
// at the moment the edit is applied, assuming the preceding edits in
// the script were applied in order. Delete removes Delete runes at
// Offset; Insert then places Insert at Offset.
type Edit struct {
	Offset int
	Delete int
	Insert string
}

// Edits computes an edit script transforming from into to. Adjacent
// delete/insert runs at one offset are folded into a single edit.
func Edits(from, to string) []Edit {
	if from == to {
		return nil
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(from, to, false)
	res := []Edit{}
	off := 0
	for i := range diffs {
		diff := &diffs[i]
		n := len([]rune(diff.Text))
		switch diff.Type {
		case diffpatch.DiffEqual:
			off += n
		case diffpatch.DiffDelete:
			res = append(res, Edit{Offset: off, Delete: n})
		case diffpatch.DiffInsert:
			if k := len(res) - 1; k >= 0 && res[k].Offset == off && res[k].Insert == "" {
				res[k].Insert = diff.Text
			} else {
				res = append(res, Edit{Offset: off, Insert: diff.Text})
			}
			off += n
		}
	}
	return res
}
