package doc

import "github.com/samuraiexx/vyjs/snap"

// Text is a live character sequence supporting offset-addressed edits.
// Offsets and counts are in runes.
type Text struct {
	meta
	content []rune
}

func NewText(s string) *Text {
	return &Text{content: []rune(s)}
}

func (t *Text) Kind() Kind { return KindText }

func (t *Text) Len() int { return len(t.content) }

func (t *Text) String() string { return string(t.content) }

// Insert places s at rune offset off.
func (t *Text) Insert(off int, s string) {
	if off < 0 || off > len(t.content) {
		panic("doc: text insert offset out of range")
	}
	if s == "" {
		return
	}
	rs := []rune(s)
	t.content = append(t.content[:off:off], append(rs, t.content[off:]...)...)
	t.emit()
}

// Delete removes count runes starting at offset off.
func (t *Text) Delete(off, count int) {
	if count <= 0 {
		return
	}
	if off < 0 || off+count > len(t.content) {
		panic("doc: text delete range out of range")
	}
	t.content = append(t.content[:off:off], t.content[off+count:]...)
	t.emit()
}

func (t *Text) Snapshot() *snap.Value {
	return snap.FromString(string(t.content))
}

func (t *Text) attach(d *Doc, parent Node) { t.attachMeta(d, parent) }

func (t *Text) emit() {
	if t.doc == nil {
		return
	}
	path, ok := pathOf(t)
	if !ok {
		return
	}
	t.doc.emit(Event{Path: path, Action: ActionUpdate, Value: t.Snapshot()})
}
