package receiver

// Transmitter is the write side of a broadcast pair. It is a lightweight
// handle safe for concurrent use from any number of goroutines; concurrent
// broadcasts are serialized by the receiver's lock.
//
// A transmitter owns its receiver: holding a transmitter keeps the stream
// alive, so values published while subscribers are still wiring up are not
// lost to collection.
type Transmitter[T any] struct {
	target *Receiver[T]
}

// Broadcast publishes value to every listener currently registered on the
// paired receiver, synchronously, on the calling goroutine. It returns after
// the last listener has run. Broadcasting with no listeners only records the
// value in history (for replaying strategies). Broadcast on a nil or zero
// transmitter is a no-op.
func (t *Transmitter[T]) Broadcast(value T) {
	if t == nil || t.target == nil {
		return
	}
	t.target.broadcast(value)
}
