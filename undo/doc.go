// Package undo provides stroke-level rollback for interactive weight
// editing: capture a per-group snapshot of the store before a mutating
// call, push it on a bounded stack, and pop-and-apply to restore.
//
// A snapshot is a full-store scan of the requested groups — every vertex is
// recorded, including explicit zeros for vertices the group does not touch.
// That is deliberately not an incremental diff: full capture is simple,
// correct under any operator, and cheap at interactive mesh sizes.
//
// The stack holds at most its capacity (default 20) snapshots; pushing onto
// a full stack silently evicts the oldest — the deepest history is lost,
// standard bounded-undo behavior, never an error. Popping an empty stack is
// an informational no-op (false), not an error.
package undo
