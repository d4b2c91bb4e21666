package beamtree

import (
	"errors"
	"fmt"
)

func ExampleTree_BacktraceLabels() {
	tree := New[float32](16, nil)
	root := tree.Initialize(0)
	a, _ := tree.GetOrCreateChild(root, 7)
	b, _ := tree.GetOrCreateChild(a, 3)
	tree.MustDelete(a)
	fmt.Println(tree.BacktraceLabels(b))
	// Output:
	// [7 3]
}

func ExampleTree_Delete() {
	tree := New[float32](16, nil)
	root := tree.Initialize(0)
	a, _ := tree.GetOrCreateChild(root, 1)
	b, _ := tree.GetOrCreateChild(a, 2)
	c, _ := tree.GetOrCreateChild(b, 3)
	d, _ := tree.GetOrCreateChild(b, 4)
	tree.MustDelete(root)
	tree.MustDelete(a)
	tree.MustDelete(b)
	fmt.Println(tree.Size(), tree.Detached())
	fmt.Println(tree.BacktraceLabels(c))
	fmt.Println(tree.BacktraceLabels(d))
	// Output:
	// 3 2
	// [1 2 3]
	// [1 2 4]
}

func ExampleTree_Child() {
	tree := New[float32](2, nil)
	root := tree.Initialize(0)
	a, created, _ := tree.Child(root, 5)
	fmt.Println(a, created)
	a, created, _ = tree.Child(root, 5)
	fmt.Println(a, created)
	_, _, err := tree.Child(a, 6)
	fmt.Println(err)
	// Output:
	// 1 true
	// 1 false
	// child 6 of 1: arena capacity exhausted
}

func ExampleTree_Resolve() {
	tree := New[float32](2, nil)
	root := tree.Initialize(0)
	h := tree.HandleOf(root)
	a, _ := tree.GetOrCreateChild(root, 1)
	tree.MustDelete(root)
	_, err := tree.Resolve(h)
	fmt.Println(errors.Is(err, ErrInvalidHandle))
	tree.GetOrCreateChild(a, 2)
	_, err = tree.Resolve(h)
	fmt.Println(errors.Is(err, ErrStaleHandle))
	// Output:
	// true
	// true
}
