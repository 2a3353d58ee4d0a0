// Package doc provides the live document tree: mutable Map, List and
// Text nodes plus primitive leaves, with batched deep-change
// observation and transaction scoping. It is an in-process stand-in
// for an externally replicated document engine; the reconciliation
// engine only relies on the node operations and event shapes defined
// here, never on how the tree is stored or merged.
package doc

import "github.com/samuraiexx/vyjs/snap"

// Kind tags the closed set of live node kinds. Dispatch sites switch
// over the concrete node types; anything else is a caller bug surfaced
// as an unsupported-kind error, never silently skipped.
type Kind int

const (
	KindLeaf Kind = iota
	KindText
	KindList
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "Leaf"
	case KindText:
		return "Text"
	case KindList:
		return "List"
	case KindMap:
		return "Map"
	}
	return "<unknown kind>"
}

// Node is one live tree node. The set of implementations is closed:
// *Map, *List, *Text and *Leaf.
type Node interface {
	Kind() Kind
	// Snapshot serializes the subtree under this node.
	Snapshot() *snap.Value

	attach(d *Doc, parent Node)
	detach()
}

// meta carries the bookkeeping shared by all node kinds. A nil doc
// means the node is detached (freshly materialized, not yet inserted);
// detached subtrees emit no events.
type meta struct {
	doc    *Doc
	parent Node
}

func (m *meta) attachMeta(d *Doc, parent Node) {
	m.doc = d
	m.parent = parent
}

func (m *meta) detach() {
	m.doc = nil
	m.parent = nil
}

// Leaf wraps a primitive snapshot value. Leaves are immutable; changing
// a primitive replaces the leaf in its parent slot.
type Leaf struct {
	meta
	value *snap.Value
}

func NewLeaf(v *snap.Value) *Leaf {
	if v != nil && v.Kind() != snap.Primitive {
		panic("doc: leaf value must be primitive")
	}
	return &Leaf{value: v}
}

func (l *Leaf) Kind() Kind { return KindLeaf }

func (l *Leaf) Value() *snap.Value { return l.value }

func (l *Leaf) Snapshot() *snap.Value {
	if l.value == nil {
		return snap.Null()
	}
	return l.value
}

func (l *Leaf) attach(d *Doc, parent Node) { l.attachMeta(d, parent) }
