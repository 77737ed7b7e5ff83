package receiver

import "github.com/RuiAAPeres/Receiver/guard"

// Combined is the product emitted by CombineLatest.
type Combined[A, B any] struct {
	First  A
	Second B
}

// combineState tracks the latest value seen on each side. A side that has
// not emitted yet is nil; pairs are only published once both are set.
type combineState[A, B any] struct {
	first  *A
	second *B
}

// CombineLatest derives a receiver that republishes the pair of latest
// values every time either source emits, starting once both sources have
// emitted at least once.
//
// Each emission updates its side's latest value and republishes the current
// pair inside one critical section, so concurrent emissions from the two
// sources cannot interleave between the update and the publish. No ordering
// across the two sources beyond that per-emission atomicity is promised.
//
// Like every operator-derived stream, the result is hot and lives as long
// as either source does.
func CombineLatest[A, B any](first *Receiver[A], second *Receiver[B]) *Receiver[Combined[A, B]] {
	tx, rx := New[Combined[A, B]](WithLogger(first.logger))
	latest := guard.NewCell(combineState[A, B]{})

	first.Listen(func(v A) {
		latest.Apply(func(s *combineState[A, B]) {
			cp := v
			s.first = &cp
			if s.second != nil {
				tx.Broadcast(Combined[A, B]{First: cp, Second: *s.second})
			}
		})
	})
	second.Listen(func(v B) {
		latest.Apply(func(s *combineState[A, B]) {
			cp := v
			s.second = &cp
			if s.first != nil {
				tx.Broadcast(Combined[A, B]{First: *s.first, Second: cp})
			}
		})
	})

	return rx
}
