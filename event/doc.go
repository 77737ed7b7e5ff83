// Package event provides a typed application-event layer on top of the
// broadcast primitive: payloads travel in an Event envelope with a generated
// ID, a type-derived name, and a timestamp.
//
// # Basic Usage
//
//	type AppStarted struct {
//		Version string
//	}
//
//	bus := event.NewBus(event.WithStrategy(receiver.Warm(16)))
//
//	sub := event.On(bus, func(evt AppStarted) {
//		fmt.Println("started", evt.Version)
//	})
//	defer sub.Dispose()
//
//	bus.Publish(AppStarted{Version: "1.2.0"})
//
// Delivery is synchronous and in-process; Publish returns after every
// subscriber has run. With a warm or cold strategy, late subscribers replay
// recent history at subscribe time, which suits lifecycle events that
// components may wire up after startup.
//
// # Subscriptions
//
// Three granularities are available: Subscribe for every event, Bus.On for
// a name, and the generic On for a payload type. All three return a
// dispose.Disposable, so subscriptions compose with dispose.Bag for scoped
// teardown. Events() exposes the raw receiver for the stream operators.
//
// Event names are the bare payload type names, without package path; two
// payload types with the same name are indistinguishable by name-based
// subscriptions.
package event
