package vyjs

import (
	"fmt"

	"github.com/samuraiexx/vyjs/align"
	"github.com/samuraiexx/vyjs/doc"
	"github.com/samuraiexx/vyjs/snap"
)

// AlignSequences returns the matched index pairs of a longest common
// subsequence of left and right under deep value equality. See
// align.Align for the determinism guarantees.
func AlignSequences(left, right []*snap.Value) (leftIdx, rightIdx []int) {
	return align.Align(left, right, snap.Equal)
}

// applySequence walks old and new against their alignment. Elements on
// the alignment are left untouched, unmatched old/new elements facing
// each other are recursed as in-place modification candidates, and the
// remainder of each gap becomes deletes or inserts at the live index.
func applySequence(old, new *snap.Value, list *doc.List) error {
	leftIdx, rightIdx := AlignSequences(old.Values, new.Values)
	oi, ni, live := 0, 0, 0
	// one extra round for the (len(old), len(new)) sentinel pair
	for k := 0; k <= len(leftIdx); k++ {
		mo, mn := len(old.Values), len(new.Values)
		if k < len(leftIdx) {
			mo, mn = leftIdx[k], rightIdx[k]
		}
		for oi < mo && ni < mn {
			err := applyValue(old.Values[oi], new.Values[ni], list.Get(live), &slot{inList: list, index: live})
			if err != nil {
				return fmt.Errorf("%w (index %d)", err, live)
			}
			oi++
			ni++
			live++
		}
		for oi < mo {
			list.Delete(live, 1)
			oi++
		}
		for ni < mn {
			list.Insert(live, Materialize(new.Values[ni]))
			ni++
			live++
		}
		if k < len(leftIdx) {
			oi++
			ni++
			live++
		}
	}
	if list.Len() > len(new.Values) {
		list.Delete(len(new.Values), list.Len()-len(new.Values))
	}
	return nil
}
