package beamtree

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/sirupsen/logrus"
)

// Index identifies an entry by its arena slot.
type Index uint32

// Label is the alphabet symbol on the edge from an entry's parent to it.
type Label uint16

const (
	// NoIndex is returned when an entry could not be allocated, and is the
	// parent of the current root.
	NoIndex Index = math.MaxUint32

	// NoLabel marks the synthetic root created by Initialize and Reset.
	NoLabel Label = math.MaxUint16

	// MaxCapacity is the largest capacity New accepts.
	MaxCapacity = 1 << 31
)

// Entry is one element of a beam's history, as returned by Backtrace.
type Entry[P any] struct {
	Label   Label
	Payload P
}

// slot is the arena record for an entry.
type slot[P any] struct {
	payload P
	parent  Index
	// children are an intrusive list: firstChild is the newest child, and
	// each child's sibling is the child that was first before it.
	firstChild Index
	sibling    Index
	refs       uint32
	label      Label
	active     bool
}

// Tree is a prefix tree of beam-search hypotheses backed by a fixed-size
// circular arena. Entries are recycled strictly oldest-first, at the left
// edge of the occupied window, once nothing refers to them.
//
// A Tree is not safe for concurrent use.
type Tree[P any] struct {
	slots []slot[P]
	// generation is bumped every time a slot is recycled, see Handle.
	generation []uint32
	// detached holds, in eviction order, history evicted from the arena
	// that is still shared by every live beam.
	detached []Entry[P]
	left     Index
	right    Index
	size     uint32
	mask     Index
	log      *logrus.Entry
	metrics  *Metrics
}

// RoundCapacity returns the arena capacity New would use for the given
// requested capacity: the next power of two, and at least 1.
func RoundCapacity(capacity uint32) uint32 {
	if capacity <= 1 {
		return 1
	}
	if capacity > MaxCapacity {
		panic(fmt.Sprintf("beamtree: capacity %d exceeds maximum %d", capacity, uint32(MaxCapacity)))
	}
	return 1 << bits.Len32(capacity-1)
}

// New returns an uninitialized tree whose arena holds capacity entries,
// rounded up to a power of two. Call Initialize before use.
func New[P any](capacity uint32, options *Options) *Tree[P] {
	capacity = RoundCapacity(capacity)
	return &Tree[P]{
		slots:      make([]slot[P], capacity),
		generation: make([]uint32, capacity),
		mask:       Index(capacity - 1),
		log:        options.logger(),
		metrics:    options.metrics(),
	}
}

// Initialize places the synthetic root, labeled NoLabel, at index 0 and
// returns its index. The tree must be empty: freshly constructed, or with
// every entry reclaimed.
func (t *Tree[P]) Initialize(payload P) Index {
	if t.size != 0 {
		panic("beamtree: Initialize on a non-empty tree; use Reset")
	}
	t.clearDetached()
	t.left, t.right = 0, 0
	root := t.allocate(NoLabel, NoIndex)
	t.slots[root].payload = payload
	return root
}

// Reset discards every entry and the detached history, and reinitializes
// the tree with a new root, reusing the arena's storage. All previously
// returned indices become invalid.
func (t *Tree[P]) Reset(payload P) Index {
	if debugEnabled(t.log) {
		t.log.WithFields(logrus.Fields{
			"size":     t.size,
			"detached": len(t.detached),
		}).Debug("reset")
	}
	t.clear()
	return t.Initialize(payload)
}

func (t *Tree[P]) clear() {
	t.metrics.reclaim(int(t.size))
	clear(t.slots)
	for i := range t.generation {
		t.generation[i]++
	}
	t.clearDetached()
	t.left, t.right, t.size = 0, 0, 0
}

func (t *Tree[P]) clearDetached() {
	t.metrics.undetach(len(t.detached))
	clear(t.detached)
	t.detached = t.detached[:0]
}

// Size returns the number of occupied arena slots, including the root and
// entries that are deleted but not yet reclaimed.
func (t *Tree[P]) Size() uint32 {
	return t.size
}

// Capacity returns the number of arena slots.
func (t *Tree[P]) Capacity() uint32 {
	return uint32(len(t.slots))
}

// Detached returns the length of the history evicted from the arena but
// still shared by all live beams.
func (t *Tree[P]) Detached() int {
	return len(t.detached)
}

// Root returns the index of the current root, the lowest common ancestor
// of all live beams, or NoIndex if the tree is empty.
func (t *Tree[P]) Root() Index {
	if t.size == 0 {
		return NoIndex
	}
	return t.left
}

// Valid reports whether index lies within the window of occupied slots.
// It cannot tell a recycled slot from the entry that was there before; use
// Handle for that.
func (t *Tree[P]) Valid(index Index) bool {
	if index >= Index(len(t.slots)) {
		return false
	}
	return uint32((index-t.left)&t.mask) < t.size
}

func (t *Tree[P]) full() bool {
	return t.size > 0 && t.right == t.left
}

// allocate claims the slot at right. It returns NoIndex, without changing
// anything, if the arena is full.
func (t *Tree[P]) allocate(label Label, parent Index) Index {
	if t.full() {
		t.metrics.failed()
		if debugEnabled(t.log) {
			t.log.WithFields(logrus.Fields{
				"capacity": len(t.slots),
				"root":     t.left,
			}).Debug("arena full")
		}
		return NoIndex
	}
	index := t.right
	t.slots[index] = slot[P]{
		parent:     parent,
		firstChild: NoIndex,
		sibling:    NoIndex,
		refs:       1,
		label:      label,
		active:     true,
	}
	t.right = (t.right + 1) & t.mask
	t.size++
	t.metrics.created()
	return index
}

// Label returns the label of the entry at index.
func (t *Tree[P]) Label(index Index) Label {
	return t.slots[index].label
}

// Parent returns the parent of the entry at index, or NoIndex for the root.
func (t *Tree[P]) Parent(index Index) Index {
	return t.slots[index].parent
}

// Payload returns a pointer to the caller data stored with the entry at
// index. The pointer is valid until the entry is reclaimed or the tree is
// reset.
func (t *Tree[P]) Payload(index Index) *P {
	return &t.slots[index].payload
}

// IsActive reports whether the entry at index is currently a beam frontier.
func (t *Tree[P]) IsActive(index Index) bool {
	return t.slots[index].active
}

// RefCount returns the number of references held on the entry at index: one
// if it is active, plus one per live child.
func (t *Tree[P]) RefCount(index Index) uint32 {
	return t.slots[index].refs
}
