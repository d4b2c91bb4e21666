package beamtree

import "fmt"

// Handle is an Index paired with the generation of its slot. Unlike a bare
// Index, a Handle detects that its entry was recycled and the slot reused.
type Handle struct {
	Index      Index
	Generation uint32
}

// HandleOf returns a Handle for the entry currently at index.
func (t *Tree[P]) HandleOf(index Index) Handle {
	return Handle{Index: index, Generation: t.generation[index]}
}

// Resolve returns the index behind h if it still refers to the entry it was
// taken from.
func (t *Tree[P]) Resolve(h Handle) (Index, error) {
	if !t.Valid(h.Index) {
		return NoIndex, fmt.Errorf("resolve %d: %w", h.Index, ErrInvalidHandle)
	}
	if t.generation[h.Index] != h.Generation {
		return NoIndex, fmt.Errorf("resolve %d (generation %d, now %d): %w",
			h.Index, h.Generation, t.generation[h.Index], ErrStaleHandle)
	}
	return h.Index, nil
}
