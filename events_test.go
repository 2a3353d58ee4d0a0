package vyjs

import (
	"testing"

	"github.com/samuraiexx/vyjs/doc"
	"github.com/samuraiexx/vyjs/snap"
)

func TestReconstructorMirrors(t *testing.T) {
	for _, tst := range convergeTests {
		d := mustDoc(t, tst.old)
		r := NewReconstructor(d.Root().Snapshot(), nil)
		d.Observe(r.Handle)

		old, new := mustParse(t, tst.old), mustParse(t, tst.new)
		err := d.Transact(func() error {
			return ApplyDelta(old, new, d.Root())
		})
		if err != nil {
			t.Fatalf("ApplyDelta(%s -> %s): %v", tst.old, tst.new, err)
		}
		if got := r.Snapshot(); !snap.Equal(got, new) {
			t.Errorf("reconstructed %s -> %s as %v", tst.old, tst.new, got.ToAny())
		}
	}
}

func TestReconstructorOneUpdatePerBatch(t *testing.T) {
	d := mustDoc(t, `{"a": [1, 2], "b": "x"}`)
	var updates int
	h := MakeEventHandler(d.Root().Snapshot(), func(*snap.Value) { updates++ })
	d.Observe(h)

	err := d.Transact(func() error {
		return ApplyDelta(
			mustParse(t, `{"a": [1, 2], "b": "x"}`),
			mustParse(t, `{"a": [2, 3, 4], "b": "xyz", "c": null}`),
			d.Root())
	})
	if err != nil {
		t.Fatal(err)
	}
	if updates != 1 {
		t.Errorf("onUpdate called %d times, want 1", updates)
	}
}

func TestReconstructorEmptyBatch(t *testing.T) {
	var updates int
	r := NewReconstructor(mustParse(t, `{}`), func(*snap.Value) { updates++ })
	r.Handle(nil)
	r.Handle([]doc.Event{})
	if updates != 0 {
		t.Errorf("onUpdate called %d times for empty batches", updates)
	}
}

func TestReconstructorStructuralSharing(t *testing.T) {
	d := mustDoc(t, `{"left": {"a": 1}, "right": {"b": [1, 2]}}`)
	r := NewReconstructor(d.Root().Snapshot(), nil)
	d.Observe(r.Handle)

	before := r.Snapshot()
	right := before.Map["right"]

	err := d.Transact(func() error {
		return ApplyDelta(
			mustParse(t, `{"left": {"a": 1}, "right": {"b": [1, 2]}}`),
			mustParse(t, `{"left": {"a": 2}, "right": {"b": [1, 2]}}`),
			d.Root())
	})
	if err != nil {
		t.Fatal(err)
	}
	after := r.Snapshot()
	if after == before {
		t.Fatal("snapshot not replaced on change")
	}
	// the untouched branch keeps reference identity
	if after.Map["right"] != right {
		t.Error("untouched branch was copied")
	}
	if snap.Equal(after.Map["left"], before.Map["left"]) {
		t.Error("changed branch not updated")
	}
}

func TestReconstructorSequenceEvents(t *testing.T) {
	d := mustDoc(t, `{"xs": [1, 2, 3]}`)
	r := NewReconstructor(d.Root().Snapshot(), nil)
	d.Observe(r.Handle)

	list := d.Root().Get("xs").(*doc.List)
	err := d.Transact(func() error {
		list.Delete(0, 1)
		list.Insert(2, doc.NewLeaf(snap.FromInt(4)))
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := mustParse(t, `{"xs": [2, 3, 4]}`)
	if got := r.Snapshot(); !snap.Equal(got, want) {
		t.Errorf("reconstructed %v, want %v", got.ToAny(), want.ToAny())
	}
}

func TestRebuildRootReplace(t *testing.T) {
	r := NewReconstructor(mustParse(t, `{"a": 1}`), nil)
	r.Handle([]doc.Event{{Path: snap.Path{}, Action: doc.ActionUpdate, Value: mustParse(t, `{"b": 2}`)}})
	if !snap.Equal(r.Snapshot(), mustParse(t, `{"b": 2}`)) {
		t.Errorf("root replace produced %v", r.Snapshot().ToAny())
	}
}

func TestRebuildOutOfRangeIgnored(t *testing.T) {
	initial := mustParse(t, `{"xs": [1]}`)
	r := NewReconstructor(initial, nil)
	r.Handle([]doc.Event{{
		Path:   snap.Path{}.Key("xs").Index(5),
		Action: doc.ActionUpdate,
		Value:  mustParse(t, `9`),
	}})
	if !snap.Equal(r.Snapshot(), initial) {
		t.Errorf("out-of-range event changed snapshot to %v", r.Snapshot().ToAny())
	}
}
