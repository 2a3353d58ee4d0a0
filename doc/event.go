package doc

import "github.com/samuraiexx/vyjs/snap"

// Action distinguishes what happened at an event's path.
type Action int

const (
	ActionUpdate Action = iota
	ActionAdd
	ActionDelete
)

func (a Action) String() string {
	switch a {
	case ActionUpdate:
		return "update"
	case ActionAdd:
		return "add"
	case ActionDelete:
		return "delete"
	}
	return "<unknown action>"
}

// Event is one low-level change notification. Path addresses the
// changed entry from the document root as it stood when the change
// happened; Value is the post-change serialized value at that path,
// captured eagerly, and nil for deletions.
type Event struct {
	Path   snap.Path
	Action Action
	Value  *snap.Value
}
