// Package vyjs reconciles immutable JSON-like snapshots with a live,
// collaboratively-edited document tree.
//
// Three entry points cover the three directions of the problem:
//
//   - [ApplyDelta] takes two snapshots and a live node representing the
//     old one, and edits the live tree in place, minimally, until it
//     represents the new one.
//   - [ApplyPortable] applies a serialized tree-shaped delta (package
//     delta) with the same per-kind mutation rules, without needing
//     both snapshots at once.
//   - [MakeEventHandler] subscribes to the live tree's change batches
//     and keeps an immutable snapshot current, sharing structure with
//     the previous snapshot outside the touched paths.
//
// Ordered sequences and text are aligned with a longest-common-
// subsequence pass (package align) so unchanged elements are never
// destroyed and recreated; only a change of classification at a
// position (package snap) replaces a subtree.
package vyjs
