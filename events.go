package vyjs

import (
	"github.com/samuraiexx/vyjs/debug"
	"github.com/samuraiexx/vyjs/doc"
	"github.com/samuraiexx/vyjs/snap"
)

// Reconstructor keeps a snapshot current against a live document's
// change events. It owns its state explicitly: feed it event batches
// with Handle, read the result with Snapshot.
//
// Each event triggers a path-scoped immutable rebuild: only the
// containers on the event's path are copied, so sibling branches keep
// reference identity with the previous snapshot. One batch produces
// one onUpdate notification, however many events it holds.
type Reconstructor struct {
	current  *snap.Value
	onUpdate func(*snap.Value)
}

func NewReconstructor(initial *snap.Value, onUpdate func(*snap.Value)) *Reconstructor {
	return &Reconstructor{current: initial, onUpdate: onUpdate}
}

// Snapshot returns the current reconstructed snapshot.
func (r *Reconstructor) Snapshot() *snap.Value { return r.current }

// Handle applies one atomic event batch, in order, against
// progressively updated snapshots.
func (r *Reconstructor) Handle(batch []doc.Event) {
	if len(batch) == 0 {
		return
	}
	cur := r.current
	for _, ev := range batch {
		if debug.Events() {
			debug.Logf("event %s %s\n", ev.Action, ev.Path)
		}
		cur = rebuild(cur, ev.Path, ev.Action, ev.Value)
	}
	r.current = cur
	if r.onUpdate != nil {
		r.onUpdate(cur)
	}
}

// MakeEventHandler returns a batch handler suitable for registration
// with the live engine's deep-observation API (doc.Doc.Observe). The
// handler is a method on an owned Reconstructor, not shared state.
func MakeEventHandler(initial *snap.Value, onUpdate func(*snap.Value)) func([]doc.Event) {
	return NewReconstructor(initial, onUpdate).Handle
}

func rebuild(v *snap.Value, path snap.Path, action doc.Action, val *snap.Value) *snap.Value {
	if len(path) == 0 {
		return val
	}
	seg := path[0]
	if seg.IsIndex {
		var items []*snap.Value
		if v != nil && v.Type == snap.ArrayType {
			items = v.Values
		}
		if len(path) > 1 {
			if seg.Index < 0 || seg.Index >= len(items) {
				return v
			}
			copied := make([]*snap.Value, len(items))
			copy(copied, items)
			copied[seg.Index] = rebuild(items[seg.Index], path[1:], action, val)
			return snap.FromSlice(copied)
		}
		switch action {
		case doc.ActionAdd:
			if seg.Index < 0 || seg.Index > len(items) {
				return v
			}
			copied := make([]*snap.Value, 0, len(items)+1)
			copied = append(copied, items[:seg.Index]...)
			copied = append(copied, val)
			copied = append(copied, items[seg.Index:]...)
			return snap.FromSlice(copied)
		case doc.ActionDelete:
			if seg.Index < 0 || seg.Index >= len(items) {
				return v
			}
			copied := make([]*snap.Value, 0, len(items)-1)
			copied = append(copied, items[:seg.Index]...)
			copied = append(copied, items[seg.Index+1:]...)
			return snap.FromSlice(copied)
		default:
			if seg.Index < 0 || seg.Index >= len(items) {
				return v
			}
			copied := make([]*snap.Value, len(items))
			copy(copied, items)
			copied[seg.Index] = val
			return snap.FromSlice(copied)
		}
	}
	var entries map[string]*snap.Value
	if v != nil && v.Type == snap.ObjectType {
		entries = v.Map
	}
	copied := make(map[string]*snap.Value, len(entries)+1)
	for k, c := range entries {
		copied[k] = c
	}
	if len(path) > 1 {
		copied[seg.Key] = rebuild(entries[seg.Key], path[1:], action, val)
	} else if action == doc.ActionDelete {
		delete(copied, seg.Key)
	} else {
		copied[seg.Key] = val
	}
	return snap.FromMap(copied)
}
