package beamtree

import "errors"

var (
	// ErrArenaFull is returned by Child when a new entry is needed but every
	// arena slot is in use. Callers recover by pruning beams and retrying.
	ErrArenaFull = errors.New("arena capacity exhausted")

	// ErrDoubleDelete signals a Delete of an entry that is no longer held as
	// a beam frontier, i.e. the caller already deleted it.
	ErrDoubleDelete = errors.New("entry has no frontier reference left")

	// ErrInvalidHandle is returned for an index outside the arena or outside
	// the window of occupied slots.
	ErrInvalidHandle = errors.New("index is not an allocated entry")

	// ErrStaleHandle is returned by Resolve when the slot behind a Handle has
	// been recycled since the Handle was taken.
	ErrStaleHandle = errors.New("entry was recycled")
)
