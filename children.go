package beamtree

import "fmt"

// GetOrCreateChild returns the child of parent with the given label,
// creating it if needed. created reports whether a new entry was required.
// If the arena is full the result is (NoIndex, true) and the tree is
// unchanged; callers must check for NoIndex.
//
// A child that is found is marked active again: it becomes the frontier of
// the beam that extended into it.
func (t *Tree[P]) GetOrCreateChild(parent Index, label Label) (index Index, created bool) {
	for cur := t.slots[parent].firstChild; cur != NoIndex; cur = t.slots[cur].sibling {
		if t.slots[cur].label == label {
			t.revive(cur)
			return cur, false
		}
	}
	index = t.allocate(label, parent)
	if index == NoIndex {
		return NoIndex, true
	}
	t.slots[index].sibling = t.slots[parent].firstChild
	t.slots[parent].firstChild = index
	t.slots[parent].refs++
	return index, true
}

// Child is GetOrCreateChild with the failures reported as errors:
// ErrInvalidHandle if parent is not an occupied slot, and ErrArenaFull if a
// new entry was needed but there is no room.
func (t *Tree[P]) Child(parent Index, label Label) (Index, bool, error) {
	if !t.Valid(parent) {
		return NoIndex, false, fmt.Errorf("parent %d: %w", parent, ErrInvalidHandle)
	}
	index, created := t.GetOrCreateChild(parent, label)
	if index == NoIndex {
		return NoIndex, created, fmt.Errorf("child %d of %d: %w", label, parent, ErrArenaFull)
	}
	return index, created, nil
}

// Children returns the children of parent, newest first, including deleted
// children that have not been reclaimed.
func (t *Tree[P]) Children(parent Index) []Index {
	var children []Index
	for cur := t.slots[parent].firstChild; cur != NoIndex; cur = t.slots[cur].sibling {
		children = append(children, cur)
	}
	return children
}

// revive makes a found child a frontier again. If it had been deleted, the
// frontier reference is restored, and so is each ancestor reference that
// the deletion cascade dropped.
func (t *Tree[P]) revive(index Index) {
	s := &t.slots[index]
	if s.active {
		return
	}
	s.active = true
	for {
		s.refs++
		if s.refs > 1 || s.parent == NoIndex {
			return
		}
		s = &t.slots[s.parent]
	}
}
