package dispose

import "sync"

// Disposable wraps a single cleanup action that runs at most once.
// It is the token returned by subscription-style APIs: invoking Dispose
// permanently cancels whatever the action tears down.
type Disposable struct {
	once   sync.Once
	action func()
}

// New creates a disposable around the given cleanup action.
// A nil action yields an inert disposable.
func New(action func()) *Disposable {
	return &Disposable{action: action}
}

// Dispose runs the cleanup action. Calling it again, from any goroutine,
// is a safe no-op. The action is dropped after it runs so that state it
// captured can be collected.
func (d *Disposable) Dispose() {
	d.once.Do(func() {
		if d.action != nil {
			d.action()
			d.action = nil
		}
	})
}

// DisposedBy transfers ownership of the disposable into bag.
// The caller does not need to retain the disposable afterwards; the bag
// disposes it during its own teardown.
func (d *Disposable) DisposedBy(bag *Bag) {
	bag.Add(d)
}
