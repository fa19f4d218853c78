// Package store holds the canonical client-side state of the awards console.
//
// State changes only through Dispatch: each action descriptor kind has an
// applier that folds it into a new State value. Snapshots returned by
// GetState are never mutated afterwards, so callers may read them without
// locking.
package store
