package guard

import "sync"

// Cell wraps a single mutable value behind an exclusive lock.
// The value is reachable only through Apply, so every read and write
// happens inside a critical section. The zero Cell is not usable;
// construct cells with NewCell.
type Cell[T any] struct {
	mu    sync.Mutex
	value T
}

// NewCell creates a cell owning the given initial value.
func NewCell[T any](value T) *Cell[T] {
	return &Cell[T]{value: value}
}

// Apply runs fn with exclusive access to the cell's value. The lock is
// released on every exit path, including a panic inside fn.
//
// fn must not call Apply on the same cell; the lock is not reentrant
// and doing so deadlocks.
func (c *Cell[T]) Apply(fn func(*T)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(&c.value)
}
