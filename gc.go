package beamtree

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Delete tells the tree that the entry at index is no longer a beam
// frontier. The entry stays in the arena, and can be found again with
// GetOrCreateChild, until it and everything older than it is unreferenced.
//
// Deleting an entry that is not currently active is a caller bug and
// returns an error wrapping ErrDoubleDelete, leaving the tree unchanged.
func (t *Tree[P]) Delete(index Index) error {
	if !t.Valid(index) {
		return fmt.Errorf("delete %d: %w", index, ErrInvalidHandle)
	}
	s := &t.slots[index]
	if !s.active || s.refs == 0 {
		t.log.WithFields(logrus.Fields{
			"index": index,
			"label": s.label,
			"refs":  s.refs,
		}).Error("delete of an entry that is not a frontier")
		return fmt.Errorf("delete %d: %w", index, ErrDoubleDelete)
	}
	s.active = false
	t.dropRef(index)
	for t.slots[index].refs == 0 {
		index = t.slots[index].parent
		if index == NoIndex {
			break
		}
		t.dropRef(index)
	}
	t.advanceRoot()
	return nil
}

// MustDelete is like Delete but panics on error.
func (t *Tree[P]) MustDelete(index Index) {
	if err := t.Delete(index); err != nil {
		panic(err)
	}
}

func (t *Tree[P]) dropRef(index Index) {
	s := &t.slots[index]
	if s.refs == 0 {
		panic(fmt.Sprintf("beamtree: reference count underflow at entry %d (label %d)", index, s.label))
	}
	s.refs--
}

// advanceRoot reclaims slots at the left edge of the arena while they are
// inactive and referenced by at most one child. An entry with one child is
// still history for every surviving beam, so it is moved to the detached
// list; an entry with none is dropped. The first entry that survives
// becomes the root.
func (t *Tree[P]) advanceRoot() {
	var reclaimed, detached int
	for t.size > 0 {
		s := &t.slots[t.left]
		if s.active || s.refs > 1 {
			break
		}
		if s.refs == 1 {
			t.detached = append(t.detached, Entry[P]{Label: s.label, Payload: s.payload})
			detached++
		}
		var zero P
		s.payload = zero
		t.generation[t.left]++
		t.left = (t.left + 1) & t.mask
		t.size--
		reclaimed++
	}
	if reclaimed == 0 {
		return
	}
	t.metrics.reclaim(reclaimed)
	t.metrics.detach(detached)
	if t.size > 0 {
		t.slots[t.left].parent = NoIndex
	}
	if debugEnabled(t.log) {
		t.log.WithFields(logrus.Fields{
			"reclaimed": reclaimed,
			"detached":  detached,
			"root":      t.Root(),
			"size":      t.size,
		}).Debug("root advanced")
	}
}
