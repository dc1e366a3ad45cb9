package memory

import (
	"errors"
	"fmt"
)

// ErrAllocation indicates that a vector could not be acquired.
var ErrAllocation = errors.New("memory: allocation failed")

// An Allocator produces zeroed float64 vectors. The default allocator
// never fails; tests substitute allocators that do.
type Allocator func(n int) ([]float64, error)

func heapAllocator(n int) ([]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrAllocation, n)
	}

	return make([]float64, n), nil
}

// An Arena acquires vectors on behalf of one memory subsystem instance and
// owns them until released. A failure partway through an acquisition
// sequence leaves everything acquired so far releasable through the arena,
// so callers never reason about partially initialized state.
type Arena struct {
	alloc Allocator
	held  [][]float64

	allocCount int
	freeCount  int
	released   bool
}

// NewArena creates an Arena backed by the default allocator.
func NewArena() *Arena {
	return NewArenaWithAllocator(heapAllocator)
}

// NewArenaWithAllocator creates an Arena backed by the provided allocator.
func NewArenaWithAllocator(alloc Allocator) *Arena {
	if alloc == nil {
		panic("memory: allocator must not be nil")
	}

	return &Arena{alloc: alloc}
}

// Acquire returns a zeroed vector of length n owned by the arena.
func (a *Arena) Acquire(n int) ([]float64, error) {
	if a.released {
		panic("memory: acquire on a released arena")
	}

	v, err := a.alloc(n)
	if err != nil {
		return nil, fmt.Errorf("memory: acquire vector of length %d: %w", n, err)
	}

	a.held = append(a.held, v)
	a.allocCount++

	return v, nil
}

// Release frees every vector the arena owns. Only the first call has an
// effect; the arena must not be used afterwards.
func (a *Arena) Release() {
	if a.released {
		return
	}

	a.freeCount += len(a.held)
	a.held = nil
	a.released = true
}

// AllocCount returns the number of vectors acquired so far.
func (a *Arena) AllocCount() int {
	return a.allocCount
}

// FreeCount returns the number of vectors freed by Release.
func (a *Arena) FreeCount() int {
	return a.freeCount
}
