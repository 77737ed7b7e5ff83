// Package receiver implements a small push-based broadcast primitive: an
// in-process, many-listener event stream whose write and read capabilities
// live in two separate handles. It is a building block for internal
// application notifications (lifecycle events, state changes), not a durable
// or distributed message system.
//
// # Core Components
//
// New creates a broadcast pair. The Transmitter publishes values; the
// Receiver registers listeners and delivers every published value to each of
// them, synchronously, on the publishing goroutine:
//
//	tx, rx := receiver.New[string]()
//
//	sub := rx.Listen(func(s string) {
//		fmt.Println("received:", s)
//	})
//	defer sub.Dispose()
//
//	tx.Broadcast("hello")
//
// Listen returns a dispose.Disposable; disposing it permanently removes the
// listener. Disposables can be collected into a dispose.Bag for scoped
// teardown.
//
// # Replay Strategies
//
// A Strategy, fixed at creation time, decides how much history a listener
// receives at subscribe time, before Listen returns:
//
//	receiver.Hot()     // nothing published earlier is seen
//	receiver.Warm(5)   // the five most recent values, oldest first
//	receiver.Cold()    // the entire history, oldest first
//
//	tx, rx := receiver.New[int](receiver.WithStrategy(receiver.Cold()))
//	tx.Broadcast(1)
//	tx.Broadcast(2)
//	rx.Listen(h) // h immediately receives 1, then 2
//
// Replaying strategies retain history forever; it is never pruned. Replay is
// synchronous, so subscribing to a cold receiver with a large history blocks
// the subscribing goroutine for the duration.
//
// # Derived Streams
//
// Operators compose new receivers out of existing ones. Each operator
// creates a fresh hot pair and an internal subscription on its source:
//
//	evens := receiver.Filter(numbers, func(n int) bool { return n%2 == 0 })
//	labels := receiver.Map(evens, strconv.Itoa)
//	firstTwo := receiver.Take(labels, 2)
//
// Available operators: Map, Filter, WithPrevious, Skip, Take, SkipRepeats,
// UniqueValues, SkipNil, and CombineLatest over two sources.
//
// # Concurrency
//
// The package creates no goroutines. Broadcast, Listen, and Dispose may be
// called concurrently from any goroutine; all of them serialize on the
// receiver's internal lock. Listeners are invoked while that lock is held,
// which buys strict per-receiver ordering and a hard guarantee that a
// disposed listener is never invoked again, at the cost of one discipline:
// a listener must never call Listen, Broadcast, or Dispose on its own
// receiver from inside the callback, or it will deadlock. Operators follow
// this rule by only ever publishing downstream.
//
// A listener that panics is recovered and reported through the logger
// configured with WithLogger; the remaining listeners of the same broadcast
// still run.
//
// # Ownership
//
// A Transmitter owns its Receiver, and a source stream owns the streams
// derived from it, so holding any upstream handle keeps the whole downstream
// chain delivering. Disposables, in contrast, reference their receiver only
// weakly: keeping one (or parking it in a bag) never extends the stream's
// lifetime, and disposing after the stream is gone is a safe no-op.
package receiver
