package vyjs

import (
	"fmt"

	"github.com/samuraiexx/vyjs/doc"
	"github.com/samuraiexx/vyjs/snap"
)

// NewDoc builds a live document whose root mirrors the Mapping
// snapshot s. Documents are rooted at a Map-node, so any other
// classification is rejected.
func NewDoc(s *snap.Value) (*doc.Doc, error) {
	if s.Kind() != snap.Mapping {
		return nil, fmt.Errorf("%w: document root must be a mapping, got %s", ErrTypeMismatch, s.Kind())
	}
	d := doc.New()
	for _, k := range s.Keys() {
		d.Root().Set(k, Materialize(s.Map[k]))
	}
	return d, nil
}

// Materialize builds a brand-new detached live subtree mirroring v.
// Mapping values become Map-nodes, Sequence values List-nodes, Text
// values Text-nodes seeded with the full string, and Primitive values
// leaves. The result carries no events until inserted into a document.
func Materialize(v *snap.Value) doc.Node {
	switch v.Kind() {
	case snap.Mapping:
		m := doc.NewMap()
		for _, k := range v.Keys() {
			m.Set(k, Materialize(v.Map[k]))
		}
		return m
	case snap.Sequence:
		l := doc.NewList()
		for i, c := range v.Values {
			l.Insert(i, Materialize(c))
		}
		return l
	case snap.Text:
		return doc.NewText(v.String)
	default:
		return doc.NewLeaf(v)
	}
}
