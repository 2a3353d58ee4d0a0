package vyjs

import "errors"

var (
	// ErrTypeMismatch reports a live node whose kind disagrees with the
	// classification of the old snapshot value asserted for it. It is a
	// caller bug (stale snapshot paired with a diverged tree); the call
	// aborts and the tree must be treated as possibly part-mutated, so
	// callers wrap applications in the host transaction.
	ErrTypeMismatch = errors.New("live node kind does not match snapshot")

	// ErrStaleSnapshot reports that the live node's serialized content
	// differs from the old snapshot at entry.
	ErrStaleSnapshot = errors.New("live document does not match old snapshot")

	// ErrUnsupportedLiveKind reports a live node of a kind the
	// dispatcher does not know. The node set is closed; hitting this
	// means a foreign Node implementation reached the engine.
	ErrUnsupportedLiveKind = errors.New("unsupported live node kind")

	// ErrRootReplace reports a type change at the document root, which
	// has no parent slot to replace into.
	ErrRootReplace = errors.New("cannot replace document root")
)
