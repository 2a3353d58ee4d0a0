package doc

import "github.com/samuraiexx/vyjs/snap"

// List is an ordered, index-addressed live container.
type List struct {
	meta
	items []Node
}

func NewList() *List {
	return &List{}
}

func (l *List) Kind() Kind { return KindList }

func (l *List) Len() int { return len(l.items) }

// Get returns the element at index, nil when out of range.
func (l *List) Get(i int) Node {
	if i < 0 || i >= len(l.items) {
		return nil
	}
	return l.items[i]
}

// Insert places ns before index i. i == Len() appends.
func (l *List) Insert(i int, ns ...Node) {
	if i < 0 || i > len(l.items) {
		panic("doc: list insert index out of range")
	}
	l.items = append(l.items[:i:i], append(ns, l.items[i:]...)...)
	for off, n := range ns {
		n.attach(l.doc, l)
		l.emit(i+off, ActionAdd, n.Snapshot())
	}
}

// Delete removes count contiguous elements starting at index i.
func (l *List) Delete(i, count int) {
	if count <= 0 {
		return
	}
	if i < 0 || i+count > len(l.items) {
		panic("doc: list delete range out of range")
	}
	removed := l.items[i : i+count]
	for _, n := range removed {
		n.detach()
	}
	l.items = append(l.items[:i:i], l.items[i+count:]...)
	for range removed {
		l.emit(i, ActionDelete, nil)
	}
}

func (l *List) Snapshot() *snap.Value {
	res := make([]*snap.Value, len(l.items))
	for i, n := range l.items {
		res[i] = n.Snapshot()
	}
	return snap.FromSlice(res)
}

func (l *List) attach(d *Doc, parent Node) {
	l.attachMeta(d, parent)
	for _, n := range l.items {
		n.attach(d, l)
	}
}

func (l *List) detach() {
	l.meta.detach()
	for _, n := range l.items {
		n.detach()
	}
}

func (l *List) emit(i int, action Action, value *snap.Value) {
	if l.doc == nil {
		return
	}
	base, ok := pathOf(l)
	if !ok {
		return
	}
	l.doc.emit(Event{Path: base.Index(i), Action: action, Value: value})
}

func (l *List) indexOf(child Node) (int, bool) {
	for i, n := range l.items {
		if n == child {
			return i, true
		}
	}
	return 0, false
}
