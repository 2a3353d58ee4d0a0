// Package delta defines the portable, serializable delta format: a
// tree mirroring the snapshot tree where map keys carry either a
// nested delta, a 1-element array (addition), a 2-element array
// (modification) or a deletion-sentinel array, and sequence deltas are
// marked objects keyed by index, with a "_" prefix distinguishing
// deletions at old indices from entries at new indices.
//
// The portable form is the canonical diff representation: Make
// produces it from two snapshots so that applying it portably
// converges with applying the snapshots directly.
package delta

import (
	"errors"
	"sort"
	"strconv"

	"github.com/samuraiexx/vyjs/align"
	"github.com/samuraiexx/vyjs/snap"
)

const (
	// ArrayMarkerKey marks an object-shaped delta as a sequence delta.
	ArrayMarkerKey = "_t"
	// ArrayMarkerValue is the marker's required value.
	ArrayMarkerValue = "a"
	// OldIndexPrefix prefixes keys addressing old sequence indices.
	OldIndexPrefix = "_"
)

// ErrInvalidShape reports a delta entry that matches no recognized
// addition/modification/deletion/nested pattern.
var ErrInvalidShape = errors.New("invalid delta shape")

// Op classifies one delta entry.
type Op int

const (
	OpNone Op = iota
	OpNested
	OpAdd
	OpModify
	OpDelete
)

func (o Op) String() string {
	switch o {
	case OpNested:
		return "nested"
	case OpAdd:
		return "add"
	case OpModify:
		return "modify"
	case OpDelete:
		return "delete"
	}
	return "<unrecognized op>"
}

// Classify determines which operation a delta entry encodes. OpNone
// means the shape is not recognized; callers report it and skip the
// entry rather than fail the batch.
func Classify(entry *snap.Value) Op {
	if entry == nil {
		return OpNone
	}
	switch entry.Type {
	case snap.ObjectType:
		return OpNested
	case snap.ArrayType:
		switch len(entry.Values) {
		case 1:
			return OpAdd
		case 2:
			return OpModify
		case 3:
			if isZero(entry.Values[1]) && isZero(entry.Values[2]) {
				return OpDelete
			}
		}
	}
	return OpNone
}

func isZero(v *snap.Value) bool {
	return v != nil && v.Type == snap.NumberType && v.Number == 0
}

// IsSequence reports whether a nested delta describes a sequence,
// which is decided by the array marker alone. Element shapes are never
// consulted, so a sequence of one-character strings cannot be taken
// for a text delta.
func IsSequence(nested *snap.Value) bool {
	if nested == nil || nested.Type != snap.ObjectType {
		return false
	}
	m := nested.Map[ArrayMarkerKey]
	return m != nil && m.Type == snap.StringType && m.String == ArrayMarkerValue
}

// Make computes the portable delta turning old into new, nil when the
// values are equal.
func Make(old, new *snap.Value) *snap.Value {
	if snap.Equal(old, new) {
		return nil
	}
	oldKind := old.Kind()
	if oldKind != new.Kind() || oldKind == snap.Primitive || oldKind == snap.Text {
		return modify(old, new)
	}
	if oldKind == snap.Mapping {
		return makeMapping(old, new)
	}
	return makeSequence(old, new)
}

func add(v *snap.Value) *snap.Value {
	return snap.FromSlice([]*snap.Value{v})
}

func modify(old, new *snap.Value) *snap.Value {
	return snap.FromSlice([]*snap.Value{old, new})
}

func del(old *snap.Value) *snap.Value {
	return snap.FromSlice([]*snap.Value{old, snap.FromNumber(0), snap.FromNumber(0)})
}

func makeMapping(old, new *snap.Value) *snap.Value {
	res := map[string]*snap.Value{}
	for _, k := range old.Keys() {
		if _, ok := new.Map[k]; !ok {
			res[k] = del(old.Map[k])
		}
	}
	for _, k := range new.Keys() {
		if _, ok := old.Map[k]; !ok {
			res[k] = add(new.Map[k])
		}
	}
	for _, k := range old.Keys() {
		newChild, ok := new.Map[k]
		if !ok {
			continue
		}
		if d := Make(old.Map[k], newChild); d != nil {
			res[k] = d
		}
	}
	if len(res) == 0 {
		return nil
	}
	return snap.FromMap(res)
}

// makeSequence mirrors the application walk: aligned elements are
// absent from the delta, unmatched elements facing each other become
// entries at their new index, the rest of each gap becomes deletions
// at old indices or additions at new indices.
func makeSequence(old, new *snap.Value) *snap.Value {
	leftIdx, rightIdx := align.Align(old.Values, new.Values, snap.Equal)
	res := map[string]*snap.Value{
		ArrayMarkerKey: snap.FromString(ArrayMarkerValue),
	}
	oi, ni := 0, 0
	for k := 0; k <= len(leftIdx); k++ {
		mo, mn := len(old.Values), len(new.Values)
		if k < len(leftIdx) {
			mo, mn = leftIdx[k], rightIdx[k]
		}
		for oi < mo && ni < mn {
			if d := Make(old.Values[oi], new.Values[ni]); d != nil {
				res[strconv.Itoa(ni)] = d
			}
			oi++
			ni++
		}
		for oi < mo {
			res[OldIndexPrefix+strconv.Itoa(oi)] = del(old.Values[oi])
			oi++
		}
		for ni < mn {
			res[strconv.Itoa(ni)] = add(new.Values[ni])
			ni++
		}
		if k < len(leftIdx) {
			oi++
			ni++
		}
	}
	if len(res) == 1 {
		return nil
	}
	return snap.FromMap(res)
}

// Deletions returns the old indices deleted by a sequence delta in
// descending order, the order they must be applied in.
func Deletions(nested *snap.Value) []int {
	res := []int{}
	for k, entry := range nested.Map {
		if len(k) <= len(OldIndexPrefix) || k[:len(OldIndexPrefix)] != OldIndexPrefix {
			continue
		}
		idx, err := strconv.Atoi(k[len(OldIndexPrefix):])
		if err != nil || Classify(entry) != OpDelete {
			continue
		}
		res = append(res, idx)
	}
	sortDesc(res)
	return res
}

// Entries returns the new-index entries of a sequence delta in
// ascending order.
func Entries(nested *snap.Value) []IndexEntry {
	res := []IndexEntry{}
	for k, entry := range nested.Map {
		if k == ArrayMarkerKey {
			continue
		}
		if len(k) >= len(OldIndexPrefix) && k[:len(OldIndexPrefix)] == OldIndexPrefix {
			continue
		}
		idx, err := strconv.Atoi(k)
		if err != nil {
			res = append(res, IndexEntry{Key: k, Index: -1, Entry: entry})
			continue
		}
		res = append(res, IndexEntry{Key: k, Index: idx, Entry: entry})
	}
	sortEntries(res)
	return res
}

// IndexEntry is one new-index entry of a sequence delta. Index is -1
// when the key is not numeric; such entries are malformed.
type IndexEntry struct {
	Key   string
	Index int
	Entry *snap.Value
}

func sortDesc(xs []int) {
	sort.Sort(sort.Reverse(sort.IntSlice(xs)))
}

func sortEntries(xs []IndexEntry) {
	sort.Slice(xs, func(i, j int) bool { return xs[i].Index < xs[j].Index })
}
