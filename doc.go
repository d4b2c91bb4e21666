/*
Package beamtree provides the prefix tree and allocator behind a beam-search
decoder: label-sequence decoding over time steps, as used in speech and text
recognizers.

A decoder keeps many candidate hypotheses (beams) alive at once. Each beam is
a path from a shared root through labeled edges. At every time step each
beam is extended by a few labels, and most of the extensions are pruned
soon after. The tree stores the paths so that the full label history of any
surviving beam can be recovered, without a general-purpose allocator in the
hot path.

Allocation

Entries live in a fixed-size arena used as a circular buffer. Capacity is
rounded up to a power of two so that cursor advancement is a mask. New
entries are written at the right edge; entries are recycled only at the
left edge, oldest first. When every slot is in use, GetOrCreateChild
returns NoIndex and the caller is expected to prune beams and retry.

	tree := beamtree.New[float32](1024, nil)
	root := tree.Initialize(0)
	a, _ := tree.GetOrCreateChild(root, 7)
	b, _ := tree.GetOrCreateChild(a, 3)
	tree.MustDelete(a)
	fmt.Println(tree.BacktraceLabels(b)) // [7 3]

Retention

Each entry counts one reference while it is a beam frontier (active), plus
one per child. Delete drops the frontier reference and cascades to
ancestors whose counts reach zero. Then, while the oldest entry is inactive
and referenced by at most one child, it is recycled: with no children it is
simply dropped, and with one child it is moved to the detached shared
prefix, history common to every live beam. The oldest surviving entry is
the new root, the lowest common ancestor of all live beams.

Handles

An Index is reused once its slot is recycled. A Handle pairs an Index with
a per-slot generation so that a stale reference can be detected with
Resolve instead of silently reading another entry.

Concurrency

A Tree is single-threaded: use one tree per decoding lane, or serialize
access. Pool hands out trees for independent runs and is safe for
concurrent use.
*/
package beamtree
