package beamtree

import (
	"encoding/binary"
	"slices"

	"github.com/minio/blake2b-simd"
)

// Backtrace returns the history of the beam ending at index, root first:
// the detached shared prefix followed by the path from the current root to
// index. The synthetic root, labeled NoLabel, is included when it is still
// part of the history.
//
// Backtrace returns nil if index is not occupied, or if it is a deleted
// entry whose ancestors have already been recycled.
func (t *Tree[P]) Backtrace(index Index) []Entry[P] {
	var history []Entry[P]
	ok := t.walk(index, func(s *slot[P]) {
		history = append(history, Entry[P]{Label: s.label, Payload: s.payload})
	})
	if !ok {
		return nil
	}
	for i := len(t.detached) - 1; i >= 0; i-- {
		history = append(history, t.detached[i])
	}
	slices.Reverse(history)
	return history
}

// BacktraceLabels returns the labels of the beam ending at index, root
// first, leaving out NoLabel.
func (t *Tree[P]) BacktraceLabels(index Index) []Label {
	var labels []Label
	ok := t.walk(index, func(s *slot[P]) {
		if s.label != NoLabel {
			labels = append(labels, s.label)
		}
	})
	if !ok {
		return nil
	}
	for i := len(t.detached) - 1; i >= 0; i-- {
		if t.detached[i].Label != NoLabel {
			labels = append(labels, t.detached[i].Label)
		}
	}
	slices.Reverse(labels)
	return labels
}

// walk visits index and its ancestors up to the root. It reports false if
// the chain leaves the occupied window or is longer than the tree.
func (t *Tree[P]) walk(index Index, visit func(*slot[P])) bool {
	for steps := uint32(0); steps < t.size; steps++ {
		if !t.Valid(index) {
			return false
		}
		s := &t.slots[index]
		visit(s)
		if s.parent == NoIndex {
			return true
		}
		index = s.parent
	}
	return false
}

// Digest returns a BLAKE2b-256 hash of the labels of the beam ending at
// index. Beams with equal label sequences have equal digests, whatever the
// tree shape, so it can key the merging of equivalent hypotheses.
func (t *Tree[P]) Digest(index Index) [32]byte {
	return DigestLabels(t.BacktraceLabels(index))
}

// DigestLabels hashes a label sequence the way Digest does.
func DigestLabels(labels []Label) [32]byte {
	buf := make([]byte, 0, 2*len(labels))
	for _, l := range labels {
		buf = binary.LittleEndian.AppendUint16(buf, uint16(l))
	}
	return blake2b.Sum256(buf)
}
