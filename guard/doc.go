// Package guard provides a minimal mutual-exclusion cell: a single value
// that can only be touched through a scoped critical section.
//
// Unlike a bare sync.Mutex next to a field, a Cell makes it impossible to
// read or write the protected value without holding the lock, and impossible
// to leave the lock held after a panic:
//
//	counter := guard.NewCell(0)
//
//	counter.Apply(func(n *int) {
//		*n++
//	})
//
//	var snapshot int
//	counter.Apply(func(n *int) {
//		snapshot = *n
//	})
//
// The lock is not reentrant. Calling Apply from inside a mutation function on
// the same cell deadlocks; callers that need to combine several steps should
// do so within a single Apply.
package guard
