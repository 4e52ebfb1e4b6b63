// Package memory provides memory management utilities including pooling.
package memory

import "sync"

// Pool is a generic memory pool for reusing objects.
type Pool[T any] struct {
	pool sync.Pool
	new  func() T
}

// NewPool creates a new memory pool with the given constructor function.
func NewPool[T any](newFn func() T) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return newFn()
			},
		},
		new: newFn,
	}
}

// Get retrieves an object from the pool.
func (p *Pool[T]) Get() T {
	return p.pool.Get().(T)
}

// Put returns an object to the pool for reuse.
func (p *Pool[T]) Put(item T) {
	p.pool.Put(item)
}

// Float64SlicePool is a pool for float64 slices (1024 default capacity),
// used by the k-means engine to reuse per-iteration centre-accumulator
// buffers instead of allocating a fresh K*D slice on every Lloyd pass.
var Float64SlicePool = NewPool(func() []float64 {
	return make([]float64, 0, 1024)
})
