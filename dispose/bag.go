package dispose

import "github.com/RuiAAPeres/Receiver/guard"

type bagState struct {
	disposables []*Disposable
	torndown    bool
}

// Bag owns a collection of disposables and ties their lifetime to a scope.
// When the scope ends, a single Dispose call tears down everything the bag
// accumulated. Order of teardown across handles is unspecified.
type Bag struct {
	state *guard.Cell[bagState]
}

// NewBag creates an empty bag.
func NewBag() *Bag {
	return &Bag{state: guard.NewCell(bagState{})}
}

// Add places d under the bag's ownership. Adding to a bag that has already
// been torn down disposes d immediately.
func (b *Bag) Add(d *Disposable) {
	var late bool
	b.state.Apply(func(s *bagState) {
		if s.torndown {
			late = true
			return
		}
		s.disposables = append(s.disposables, d)
	})
	if late {
		d.Dispose()
	}
}

// Dispose tears down every disposable the bag holds, exactly once each,
// synchronously, then discards them. Subsequent calls are no-ops.
//
// Cleanup actions run outside the bag's lock, so an action may safely touch
// the bag (for example via a late Add).
func (b *Bag) Dispose() {
	var held []*Disposable
	b.state.Apply(func(s *bagState) {
		if s.torndown {
			return
		}
		s.torndown = true
		held = s.disposables
		s.disposables = nil
	})
	for _, d := range held {
		d.Dispose()
	}
}
