package receiver

// operate builds a derived receiver: a fresh hot broadcast pair plus an
// internal subscription on src whose handler feeds the new transmitter.
// The source's listener table keeps the transmitter, and through it the
// derived receiver, alive: a derived stream lives exactly as long as its
// source, so intermediate stages of an operator chain need no explicit
// retention.
//
// Handlers run inside src's dispatch lock and are therefore serialized per
// source; operator state captured by fn needs no extra synchronization.
func operate[A, B any](src *Receiver[A], fn func(tx *Transmitter[B], value A)) *Receiver[B] {
	tx, rx := New[B](WithLogger(src.logger))
	src.Listen(func(v A) {
		fn(tx, v)
	})
	return rx
}

// Map derives a receiver that republishes transform(v) for every source
// value v.
func Map[A, B any](src *Receiver[A], transform func(A) B) *Receiver[B] {
	return operate(src, func(tx *Transmitter[B], v A) {
		tx.Broadcast(transform(v))
	})
}

// Filter derives a receiver that republishes only the values for which
// predicate holds.
func Filter[T any](src *Receiver[T], predicate func(T) bool) *Receiver[T] {
	return operate(src, func(tx *Transmitter[T], v T) {
		if predicate(v) {
			tx.Broadcast(v)
		}
	})
}

// Pair carries a value together with the one that was published before it.
// Previous is nil for the very first value of the stream.
type Pair[T any] struct {
	Previous *T
	Current  T
}

// WithPrevious derives a receiver that republishes each value paired with
// its predecessor.
func WithPrevious[T any](src *Receiver[T]) *Receiver[Pair[T]] {
	var last *T
	return operate(src, func(tx *Transmitter[Pair[T]], v T) {
		out := Pair[T]{Previous: last, Current: v}
		cp := v
		last = &cp
		tx.Broadcast(out)
	})
}

// Skip derives a receiver that discards the first count source values and
// republishes everything after them. A non-positive count republishes all
// values.
func Skip[T any](src *Receiver[T], count int) *Receiver[T] {
	remaining := count
	return operate(src, func(tx *Transmitter[T], v T) {
		if remaining > 0 {
			remaining--
			return
		}
		tx.Broadcast(v)
	})
}

// Take derives a receiver that republishes the first count source values
// and then goes permanently silent. A non-positive count republishes
// nothing.
func Take[T any](src *Receiver[T], count int) *Receiver[T] {
	remaining := count
	return operate(src, func(tx *Transmitter[T], v T) {
		if remaining <= 0 {
			return
		}
		remaining--
		tx.Broadcast(v)
	})
}

// SkipRepeats derives a receiver that republishes a value only when it
// differs from the last value republished.
func SkipRepeats[T comparable](src *Receiver[T]) *Receiver[T] {
	var last *T
	return operate(src, func(tx *Transmitter[T], v T) {
		if last != nil && *last == v {
			return
		}
		cp := v
		last = &cp
		tx.Broadcast(v)
	})
}

// UniqueValues derives a receiver that republishes only the first
// occurrence of each distinct value ever seen on the source.
func UniqueValues[T comparable](src *Receiver[T]) *Receiver[T] {
	seen := make(map[T]struct{})
	return operate(src, func(tx *Transmitter[T], v T) {
		if _, ok := seen[v]; ok {
			return
		}
		seen[v] = struct{}{}
		tx.Broadcast(v)
	})
}

// SkipNil unwraps a stream of pointers, republishing the pointed-to value
// for every non-nil source value and dropping the nils.
func SkipNil[T any](src *Receiver[*T]) *Receiver[T] {
	return operate(src, func(tx *Transmitter[T], v *T) {
		if v != nil {
			tx.Broadcast(*v)
		}
	})
}
