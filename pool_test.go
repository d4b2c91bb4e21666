package beamtree

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPoolNeedsRoom(t *testing.T) {
	_, err := NewPool[int](0, 0, nil)
	require.Error(t, err)
	p, err := NewPool[int](0, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Idle())
}

func TestPoolReusesTrees(t *testing.T) {
	p, err := NewPool[int](2, 1, nil)
	require.NoError(t, err)
	tree, root := p.Get(5, 7)
	require.Equal(t, uint32(8), tree.Capacity())
	require.Equal(t, 7, *tree.Payload(root))
	a := mustChild(t, tree, root, 1, true)
	mustChild(t, tree, a, 2, true)
	require.NoError(t, tree.Delete(root))
	require.Equal(t, 1, tree.Detached())

	p.Put(tree)
	assert.Equal(t, 1, p.Idle())
	again, root := p.Get(8, 9)
	assert.Same(t, tree, again)
	assert.Equal(t, 0, p.Idle())
	assert.Equal(t, uint32(1), again.Size())
	assert.Equal(t, 0, again.Detached())
	assert.Equal(t, 9, *again.Payload(root))
	assert.Empty(t, again.BacktraceLabels(root))

	other, _ := p.Get(8, 0)
	assert.NotSame(t, tree, other)
}

func TestPoolLimits(t *testing.T) {
	p, err := NewPool[int](2, 1, &Options{Logger: quietLogger()})
	require.NoError(t, err)
	small1, _ := p.Get(4, 0)
	small2, _ := p.Get(4, 0)
	p.Put(small1)
	p.Put(small2)
	assert.Equal(t, 1, p.Idle())

	medium, _ := p.Get(8, 0)
	large, _ := p.Get(16, 0)
	p.Put(medium)
	p.Put(large)
	// the capacity 4 class was least recently used
	assert.Equal(t, 2, p.Idle())
	got, _ := p.Get(4, 0)
	assert.NotSame(t, small1, got)
	assert.Equal(t, 2, p.Idle())
}

func TestPoolConcurrentUse(t *testing.T) {
	p, err := NewPool[int](DefaultPoolClasses, 4, nil)
	require.NoError(t, err)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				tree, root := p.Get(uint32(1+g%3)*16, g)
				parent := root
				for l := Label(0); l < 8; l++ {
					parent, _ = tree.GetOrCreateChild(parent, l)
				}
				if len(tree.BacktraceLabels(parent)) != 8 {
					t.Errorf("lane %d: short history", g)
				}
				p.Put(tree)
			}
		}(g)
	}
	wg.Wait()
	assert.LessOrEqual(t, p.Idle(), 3*4)
}
