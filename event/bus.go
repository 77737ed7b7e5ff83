package event

import (
	"io"
	"log/slog"
	"reflect"

	receiver "github.com/RuiAAPeres/Receiver"
	"github.com/RuiAAPeres/Receiver/dispose"
)

// Bus is a typed application-event feed built on one broadcast pair.
// Publishing wraps the payload in an Event envelope and delivers it
// synchronously to every subscriber; the replay strategy decides what late
// subscribers see of earlier events.
//
// Example:
//
//	bus := event.NewBus(
//		event.WithStrategy(receiver.Warm(16)),
//		event.WithLogger(logger),
//	)
//
//	sub := event.On(bus, func(evt AppStarted) {
//		logger.Info("app started", slog.String("version", evt.Version))
//	})
//	defer sub.Dispose()
//
//	bus.Publish(AppStarted{Version: "1.2.0"})
type Bus struct {
	tx     *receiver.Transmitter[Event]
	rx     *receiver.Receiver[Event]
	logger *slog.Logger
}

type busConfig struct {
	strategy receiver.Strategy
	logger   *slog.Logger
}

// BusOption configures a Bus.
type BusOption func(*busConfig)

// WithStrategy selects the replay strategy for late subscribers.
// The default is hot: subscribers only see events published after they
// subscribed.
func WithStrategy(s receiver.Strategy) BusOption {
	return func(c *busConfig) {
		c.strategy = s
	}
}

// WithLogger configures structured logging for the bus. The default logger
// discards everything.
func WithLogger(logger *slog.Logger) BusOption {
	return func(c *busConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewBus creates an event bus.
func NewBus(opts ...BusOption) *Bus {
	cfg := busConfig{
		strategy: receiver.Hot(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	tx, rx := receiver.New[Event](
		receiver.WithStrategy(cfg.strategy),
		receiver.WithLogger(cfg.logger),
	)
	return &Bus{tx: tx, rx: rx, logger: cfg.logger}
}

// Publish wraps payload in an Event and broadcasts it. Subscribers run
// synchronously on the calling goroutine; Publish returns once the last one
// has.
func (b *Bus) Publish(payload any) Event {
	evt := New(payload)
	b.tx.Broadcast(evt)
	b.logger.Debug("event published",
		slog.String("event_id", evt.ID),
		slog.String("event_name", evt.Name))
	return evt
}

// Events exposes the bus's receiver for composition with the stream
// operators (Filter, Take, CombineLatest, ...).
func (b *Bus) Events() *receiver.Receiver[Event] {
	return b.rx
}

// Subscribe registers handler for every event published on the bus,
// regardless of name.
func (b *Bus) Subscribe(handler func(Event)) *dispose.Disposable {
	return b.rx.Listen(handler)
}

// On registers handler for events with the given name.
func (b *Bus) On(name string, handler func(Event)) *dispose.Disposable {
	return b.rx.Listen(func(evt Event) {
		if evt.Name == name {
			handler(evt)
		}
	})
}

// On registers a type-safe handler: it fires only for events whose payload
// is a T, with the event name derived from T's type name.
//
//	event.On(bus, func(evt UserCreated) { ... })
func On[T any](b *Bus, handler func(T)) *dispose.Disposable {
	name := typeName(reflect.TypeFor[T]())
	return b.rx.Listen(func(evt Event) {
		payload, ok := evt.Payload.(T)
		if !ok || evt.Name != name {
			return
		}
		handler(payload)
	})
}
