package doc

import (
	"sort"

	"github.com/samuraiexx/vyjs/snap"
)

// Map is a string-keyed, unordered live container.
type Map struct {
	meta
	entries map[string]Node
}

func NewMap() *Map {
	return &Map{entries: map[string]Node{}}
}

func (m *Map) Kind() Kind { return KindMap }

func (m *Map) Len() int { return len(m.entries) }

func (m *Map) Has(key string) bool {
	_, ok := m.entries[key]
	return ok
}

// Get returns the child at key, nil when absent.
func (m *Map) Get(key string) Node {
	return m.entries[key]
}

// Keys returns the keys in sorted order.
func (m *Map) Keys() []string {
	keys := make([]string, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Set inserts or overwrites the child at key.
func (m *Map) Set(key string, n Node) {
	action := ActionAdd
	if old, ok := m.entries[key]; ok {
		action = ActionUpdate
		old.detach()
	}
	m.entries[key] = n
	n.attach(m.doc, m)
	m.emit(key, action, n.Snapshot())
}

// Delete removes the child at key; removing an absent key is a no-op.
func (m *Map) Delete(key string) {
	old, ok := m.entries[key]
	if !ok {
		return
	}
	delete(m.entries, key)
	old.detach()
	m.emit(key, ActionDelete, nil)
}

func (m *Map) Snapshot() *snap.Value {
	res := make(map[string]*snap.Value, len(m.entries))
	for k, n := range m.entries {
		res[k] = n.Snapshot()
	}
	return snap.FromMap(res)
}

func (m *Map) attach(d *Doc, parent Node) {
	m.attachMeta(d, parent)
	for _, n := range m.entries {
		n.attach(d, m)
	}
}

// detach cascades so no descendant of a removed subtree keeps a doc
// pointer and reports events at a bogus path.
func (m *Map) detach() {
	m.meta.detach()
	for _, n := range m.entries {
		n.detach()
	}
}

func (m *Map) emit(key string, action Action, value *snap.Value) {
	if m.doc == nil {
		return
	}
	base, ok := pathOf(m)
	if !ok {
		return
	}
	m.doc.emit(Event{Path: base.Key(key), Action: action, Value: value})
}

func (m *Map) keyOf(child Node) (string, bool) {
	for k, n := range m.entries {
		if n == child {
			return k, true
		}
	}
	return "", false
}
