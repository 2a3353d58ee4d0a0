package doc

import "github.com/samuraiexx/vyjs/snap"

// Doc owns a live tree root and delivers change events to observers.
// All mutation methods on attached nodes report into the owning Doc;
// inside a transaction the events are batched and delivered once at
// commit, outside one each mutation notifies immediately.
type Doc struct {
	root      *Map
	observers map[int]func([]Event)
	nextObs   int
	depth     int
	pending   []Event
}

// New creates a document whose root is an empty Map.
func New() *Doc {
	d := &Doc{observers: map[int]func([]Event){}}
	d.root = NewMap()
	d.root.attach(d, nil)
	return d
}

func (d *Doc) Root() *Map { return d.root }

// Transact runs fn with event delivery deferred to a single batch.
// The batch is flushed when the outermost transaction exits, also on
// error, so observers always see a committed consistent state.
func (d *Doc) Transact(fn func() error) (err error) {
	d.depth++
	defer func() {
		d.depth--
		if d.depth == 0 {
			d.flush()
		}
	}()
	return fn()
}

// Observe registers a deep observer over the whole tree. The returned
// func cancels the registration.
func (d *Doc) Observe(fn func([]Event)) func() {
	id := d.nextObs
	d.nextObs++
	d.observers[id] = fn
	return func() { delete(d.observers, id) }
}

func (d *Doc) emit(ev Event) {
	if d.depth > 0 {
		d.pending = append(d.pending, ev)
		return
	}
	d.pending = append(d.pending, ev)
	d.flush()
}

func (d *Doc) flush() {
	if len(d.pending) == 0 {
		return
	}
	batch := d.pending
	d.pending = nil
	for _, fn := range d.observers {
		fn(batch)
	}
}

// pathOf computes the path of an attached node by walking parent slots
// up to the root. The second return is false for detached nodes.
func pathOf(n Node) (snap.Path, bool) {
	steps := snap.Path{}
	for {
		var parent Node
		switch x := n.(type) {
		case *Map:
			parent = x.parent
		case *List:
			parent = x.parent
		case *Text:
			parent = x.parent
		case *Leaf:
			parent = x.parent
		}
		if parent == nil {
			break
		}
		switch p := parent.(type) {
		case *Map:
			key, ok := p.keyOf(n)
			if !ok {
				return nil, false
			}
			steps = append(snap.Path{{Key: key}}, steps...)
		case *List:
			idx, ok := p.indexOf(n)
			if !ok {
				return nil, false
			}
			steps = append(snap.Path{{Index: idx, IsIndex: true}}, steps...)
		default:
			return nil, false
		}
		n = parent
	}
	return steps, true
}
