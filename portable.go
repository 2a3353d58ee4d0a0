package vyjs

import (
	"fmt"

	"github.com/samuraiexx/vyjs/debug"
	"github.com/samuraiexx/vyjs/delta"
	"github.com/samuraiexx/vyjs/doc"
	"github.com/samuraiexx/vyjs/snap"
)

// Warning reports a malformed portable delta entry that was skipped.
// Malformed entries never abort their siblings.
type Warning struct {
	Path snap.Path
	Err  error
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %v", w.Path, w.Err)
}

// ApplyPortable applies a portable delta (see package delta) to node.
// Structural errors (kind mismatch, unknown live kind) abort the call;
// unrecognized entry shapes are collected as warnings and skipped.
//
// Like ApplyDelta, callers scope a call in the host transaction.
func ApplyPortable(node doc.Node, d *snap.Value) ([]Warning, error) {
	a := &portableApplier{}
	err := a.apply(node, d, snap.Path{})
	return a.warnings, err
}

type portableApplier struct {
	warnings []Warning
}

func (a *portableApplier) warn(path snap.Path, err error) {
	if debug.Portable() {
		debug.Logf("portable delta warning at %s: %v\n", path, err)
	}
	a.warnings = append(a.warnings, Warning{Path: path, Err: err})
}

func (a *portableApplier) apply(node doc.Node, d *snap.Value, path snap.Path) error {
	switch n := node.(type) {
	case *doc.Map:
		return a.applyMap(n, d, path)
	case *doc.List:
		return a.applyList(n, d, path)
	case *doc.Text:
		return a.applyText(n, d, path)
	case *doc.Leaf:
		return fmt.Errorf("%w: delta addressed a leaf at %s", ErrTypeMismatch, path)
	default:
		return fmt.Errorf("%w: %T at %s", ErrUnsupportedLiveKind, node, path)
	}
}

func (a *portableApplier) applyMap(m *doc.Map, d *snap.Value, path snap.Path) error {
	if d == nil || d.Type != snap.ObjectType || delta.IsSequence(d) {
		return fmt.Errorf("%w: map node needs an object delta at %s", ErrTypeMismatch, path)
	}
	for _, k := range d.Keys() {
		entry := d.Map[k]
		entryPath := path.Key(k)
		switch delta.Classify(entry) {
		case delta.OpAdd:
			m.Set(k, Materialize(entry.Values[0]))
		case delta.OpModify:
			a.modifyInMap(m, k, entry.Values[1])
		case delta.OpDelete:
			m.Delete(k)
		case delta.OpNested:
			child, err := ensureMapChild(m, k, entry)
			if err != nil {
				a.warn(entryPath, err)
				continue
			}
			if err := a.apply(child, entry, entryPath); err != nil {
				return err
			}
		default:
			a.warn(entryPath, delta.ErrInvalidShape)
		}
	}
	return nil
}

// modifyInMap overwrites the child at key. A text-to-text modification
// edits the existing Text-node in place so concurrent editors keep a
// live position; everything else is replaced wholesale.
func (a *portableApplier) modifyInMap(m *doc.Map, key string, newValue *snap.Value) {
	if t, ok := m.Get(key).(*doc.Text); ok && newValue != nil && newValue.Kind() == snap.Text {
		replaceText(t, newValue.String)
		return
	}
	m.Set(key, Materialize(newValue))
}

// ensureMapChild returns the child a nested delta recurses into. Only
// an absent key materializes an empty container of the delta's kind; an
// existing child is handed back as is, so a kind disagreement surfaces
// from the per-kind guards instead of silently rebuilding the child.
func ensureMapChild(m *doc.Map, key string, nested *snap.Value) (doc.Node, error) {
	child := m.Get(key)
	if _, ok := child.(*doc.Text); ok {
		// nested object deltas never address text; the canonical text
		// modification is a 2-element array
		return nil, fmt.Errorf("%w: nested delta on text node", delta.ErrInvalidShape)
	}
	if child != nil {
		return child, nil
	}
	if delta.IsSequence(nested) {
		l := doc.NewList()
		m.Set(key, l)
		return l, nil
	}
	mm := doc.NewMap()
	m.Set(key, mm)
	return mm, nil
}

func (a *portableApplier) applyList(l *doc.List, d *snap.Value, path snap.Path) error {
	if d == nil || d.Type != snap.ObjectType || !delta.IsSequence(d) {
		return fmt.Errorf("%w: list node needs an array-marked delta at %s", ErrTypeMismatch, path)
	}
	for _, idx := range delta.Deletions(d) {
		if idx < 0 || idx >= l.Len() {
			a.warn(path.Index(idx), fmt.Errorf("%w: deletion index out of range", delta.ErrInvalidShape))
			continue
		}
		l.Delete(idx, 1)
	}
	for _, e := range delta.Entries(d) {
		entryPath := path.Index(e.Index)
		if e.Index < 0 {
			a.warn(path.Key(e.Key), fmt.Errorf("%w: non-numeric sequence key", delta.ErrInvalidShape))
			continue
		}
		switch delta.Classify(e.Entry) {
		case delta.OpAdd:
			if e.Index > l.Len() {
				a.warn(entryPath, fmt.Errorf("%w: insert index out of range", delta.ErrInvalidShape))
				continue
			}
			l.Insert(e.Index, Materialize(e.Entry.Values[0]))
		case delta.OpModify:
			if e.Index >= l.Len() {
				a.warn(entryPath, fmt.Errorf("%w: replace index out of range", delta.ErrInvalidShape))
				continue
			}
			a.replaceInList(l, e.Index, e.Entry.Values[1])
		case delta.OpNested:
			child := l.Get(e.Index)
			if child == nil {
				a.warn(entryPath, fmt.Errorf("%w: nested index out of range", delta.ErrInvalidShape))
				continue
			}
			if err := a.apply(child, e.Entry, entryPath); err != nil {
				return err
			}
		default:
			a.warn(entryPath, delta.ErrInvalidShape)
		}
	}
	return nil
}

func (a *portableApplier) replaceInList(l *doc.List, i int, newValue *snap.Value) {
	if t, ok := l.Get(i).(*doc.Text); ok && newValue != nil && newValue.Kind() == snap.Text {
		replaceText(t, newValue.String)
		return
	}
	l.Delete(i, 1)
	l.Insert(i, Materialize(newValue))
}

// applyText handles a leaf-shaped delta on a text node: one element
// sets the content, two elements replace old with new. Either way the
// node itself survives; only the differing characters are edited.
func (a *portableApplier) applyText(t *doc.Text, d *snap.Value, path snap.Path) error {
	if d == nil || d.Type != snap.ArrayType {
		return fmt.Errorf("%w: text node needs a leaf-shaped delta at %s", ErrTypeMismatch, path)
	}
	var target *snap.Value
	switch len(d.Values) {
	case 1:
		target = d.Values[0]
	case 2:
		target = d.Values[1]
	default:
		a.warn(path, delta.ErrInvalidShape)
		return nil
	}
	if target == nil || target.Kind() != snap.Text {
		a.warn(path, fmt.Errorf("%w: text delta carries a non-string", delta.ErrInvalidShape))
		return nil
	}
	replaceText(t, target.String)
	return nil
}
