// Package dispose provides cancellation tokens for subscription-style APIs.
//
// A Disposable wraps one cleanup action and guarantees it runs at most once,
// no matter how many goroutines race on Dispose. A Bag collects many
// disposables and tears them all down together, which keeps scoped teardown
// to a single call:
//
//	bag := dispose.NewBag()
//
//	rx.Listen(onUserCreated).DisposedBy(bag)
//	rx.Listen(onAudit).DisposedBy(bag)
//
//	// Later, when the owning scope ends:
//	bag.Dispose()
//
// Disposing a bag is synchronous: every held disposable has finished its
// cleanup by the time Dispose returns. A bag that has been disposed stays
// terminal; disposables added afterwards are disposed on the spot.
package dispose
