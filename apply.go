package vyjs

import (
	"fmt"

	"github.com/samuraiexx/vyjs/debug"
	"github.com/samuraiexx/vyjs/doc"
	"github.com/samuraiexx/vyjs/snap"
)

// slot names the parent position a live node occupies, the only place
// a replacement can happen. A nil slot is the document root.
type slot struct {
	inMap  *doc.Map
	key    string
	inList *doc.List
	index  int
}

func (s *slot) replace(n doc.Node) {
	if s.inMap != nil {
		s.inMap.Set(s.key, n)
		return
	}
	s.inList.Delete(s.index, 1)
	s.inList.Insert(s.index, n)
}

// ApplyDelta mutates node, which must currently represent old, so that
// it represents new. Substructure shared between old and new is edited
// in place; only positions whose classification changed are destroyed
// and rebuilt. The live content is asserted against old at entry and
// the call fails with ErrStaleSnapshot when they disagree.
//
// ApplyDelta issues plain node mutations; callers group a call in the
// host's transaction scope (doc.Doc.Transact) so observers see one
// batch and an aborted call can be discarded as a unit.
func ApplyDelta(old, new *snap.Value, node doc.Node) error {
	if node == nil {
		return fmt.Errorf("%w: no live node", ErrTypeMismatch)
	}
	if !snap.Equal(node.Snapshot(), old) {
		return ErrStaleSnapshot
	}
	return applyValue(old, new, node, nil)
}

func applyValue(old, new *snap.Value, node doc.Node, parent *slot) error {
	if old == new {
		return nil
	}
	if node == nil {
		return fmt.Errorf("%w: missing live node", ErrTypeMismatch)
	}
	switch node.(type) {
	case *doc.Map, *doc.List, *doc.Text, *doc.Leaf:
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedLiveKind, node)
	}
	oldKind := old.Kind()
	if !liveKindMatches(oldKind, node) {
		return fmt.Errorf("%w: live %s, snapshot %s", ErrTypeMismatch, node.Kind(), oldKind)
	}
	if oldKind != new.Kind() || oldKind == snap.Primitive {
		if snap.Equal(old, new) {
			return nil
		}
		if parent == nil {
			return ErrRootReplace
		}
		if debug.Apply() {
			debug.Logf("replace %s -> %s\n", oldKind, new.Kind())
		}
		parent.replace(Materialize(new))
		return nil
	}
	switch n := node.(type) {
	case *doc.Map:
		return applyMapping(old, new, n)
	case *doc.List:
		return applySequence(old, new, n)
	case *doc.Text:
		applyText(old.String, new.String, n)
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedLiveKind, node)
	}
}

func applyMapping(old, new *snap.Value, m *doc.Map) error {
	for _, k := range old.Keys() {
		if _, ok := new.Map[k]; !ok {
			m.Delete(k)
		}
	}
	for _, k := range new.Keys() {
		if _, ok := old.Map[k]; !ok {
			m.Set(k, Materialize(new.Map[k]))
		}
	}
	for _, k := range old.Keys() {
		newChild, ok := new.Map[k]
		if !ok {
			continue
		}
		err := applyValue(old.Map[k], newChild, m.Get(k), &slot{inMap: m, key: k})
		if err != nil {
			return fmt.Errorf("%w (key %q)", err, k)
		}
	}
	return nil
}

func liveKindMatches(k snap.Kind, node doc.Node) bool {
	switch node.(type) {
	case *doc.Map:
		return k == snap.Mapping
	case *doc.List:
		return k == snap.Sequence
	case *doc.Text:
		return k == snap.Text
	case *doc.Leaf:
		return k == snap.Primitive
	}
	return false
}
