package beamtree

import (
	"fmt"
	"sync"

	"github.com/hashicorp/golang-lru/simplelru"
	"github.com/sirupsen/logrus"
)

// DefaultPoolClasses is how many capacity classes a Pool keeps idle trees
// for when NewPool is given 0.
const DefaultPoolClasses = 8

// Pool recycles trees between independent decoding runs, so that each run
// (or decoding lane) gets a tree without allocating a new arena. Idle trees
// are grouped by rounded capacity; when more capacity classes are idle
// than the pool allows, the least recently used class is dropped.
//
// A Pool is safe for concurrent use; the trees it hands out are not.
type Pool[P any] struct {
	mu       sync.Mutex
	idle     *simplelru.LRU
	perClass int
	options  *Options
}

// NewPool returns a pool that keeps up to perClass idle trees for each of
// up to classes capacities. Trees it creates use options.
func NewPool[P any](classes, perClass int, options *Options) (*Pool[P], error) {
	if classes == 0 {
		classes = DefaultPoolClasses
	}
	if perClass <= 0 {
		return nil, fmt.Errorf("pool needs room for at least one tree per class, got %d", perClass)
	}
	logger := options.logger()
	idle, err := simplelru.NewLRU(classes, func(key, value interface{}) {
		logger.WithFields(logrus.Fields{
			"capacity": key,
			"trees":    len(value.([]*Tree[P])),
		}).Debug("pool dropped capacity class")
	})
	if err != nil {
		return nil, fmt.Errorf("idle tree cache: %w", err)
	}
	return &Pool[P]{idle: idle, perClass: perClass, options: options}, nil
}

// Get returns an initialized tree with room for at least capacity entries,
// and its root index.
func (p *Pool[P]) Get(capacity uint32, rootPayload P) (*Tree[P], Index) {
	class := RoundCapacity(capacity)
	p.mu.Lock()
	var t *Tree[P]
	if v, ok := p.idle.Get(class); ok {
		trees := v.([]*Tree[P])
		if len(trees) > 0 {
			t = trees[len(trees)-1]
			trees[len(trees)-1] = nil
			p.idle.Add(class, trees[:len(trees)-1])
		}
	}
	p.mu.Unlock()
	if t == nil {
		t = New[P](class, p.options)
	}
	return t, t.Initialize(rootPayload)
}

// Put returns a tree to the pool. Its entries and detached history are
// released immediately; the tree must not be used after Put.
func (p *Pool[P]) Put(t *Tree[P]) {
	t.clear()
	class := t.Capacity()
	p.mu.Lock()
	defer p.mu.Unlock()
	var trees []*Tree[P]
	if v, ok := p.idle.Get(class); ok {
		trees = v.([]*Tree[P])
	}
	if len(trees) >= p.perClass {
		return
	}
	p.idle.Add(class, append(trees, t))
}

// Idle returns the number of trees waiting in the pool.
func (p *Pool[P]) Idle() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, k := range p.idle.Keys() {
		if v, ok := p.idle.Peek(k); ok {
			n += len(v.([]*Tree[P]))
		}
	}
	return n
}
