package receiver

import (
	"io"
	"log/slog"
	"weak"

	"github.com/RuiAAPeres/Receiver/dispose"
	"github.com/RuiAAPeres/Receiver/guard"
)

// Listener is a callback invoked with every value delivered to it.
type Listener[T any] func(T)

// state is the mutable core of a receiver: the listener table, the replay
// history, and the identifier counter. It lives inside a guard.Cell so that
// every mutation and every dispatch happens in one critical section.
type state[T any] struct {
	nextID    uint64
	listeners map[uint64]Listener[T]
	history   []T
}

// Receiver is the read side of a broadcast pair. Values published through
// the paired Transmitter are delivered synchronously, on the publishing
// goroutine, to every registered listener. New listeners may additionally
// receive replayed history according to the receiver's Strategy.
//
// Receivers are created only through New; see the package documentation for
// ownership and reentrancy rules.
type Receiver[T any] struct {
	strategy Strategy
	logger   *slog.Logger
	cell     *guard.Cell[state[T]]
}

type config struct {
	strategy Strategy
	logger   *slog.Logger
}

// Option configures a broadcast pair at creation time.
type Option func(*config)

// WithStrategy selects the replay strategy. The default is Hot.
func WithStrategy(s Strategy) Option {
	return func(c *config) {
		c.strategy = s
	}
}

// WithLogger configures the logger used to report panicking listeners.
// The default logger discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a broadcast pair: a Transmitter to publish values and the
// Receiver that delivers them. The two are the only handles to the shared
// stream state.
//
// Example:
//
//	tx, rx := receiver.New[int](receiver.WithStrategy(receiver.Warm(5)))
//
//	sub := rx.Listen(func(v int) {
//		fmt.Println("got", v)
//	})
//	defer sub.Dispose()
//
//	tx.Broadcast(42)
func New[T any](opts ...Option) (*Transmitter[T], *Receiver[T]) {
	cfg := config{
		strategy: Hot(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &Receiver[T]{
		strategy: cfg.strategy,
		logger:   cfg.logger,
		cell: guard.NewCell(state[T]{
			listeners: make(map[uint64]Listener[T]),
		}),
	}
	return &Transmitter[T]{target: r}, r
}

// Listen registers handler and returns the disposable that cancels the
// registration. Depending on the receiver's strategy, handler is first
// invoked synchronously with replayed history, in chronological order,
// before Listen returns.
//
// The returned disposable holds only a weak reference to the receiver, so
// keeping it (or putting it in a bag) never extends the receiver's lifetime.
// Disposing it is idempotent, and once Dispose returns the handler is
// guaranteed not to be invoked again.
func (r *Receiver[T]) Listen(handler Listener[T]) *dispose.Disposable {
	var id uint64
	r.cell.Apply(func(s *state[T]) {
		id = s.nextID
		s.nextID++
		s.listeners[id] = handler

		// Replay under the same critical section, so a concurrent
		// broadcast cannot deliver a new value before older replayed
		// ones.
		replay := s.history[len(s.history)-r.strategy.replayCount(len(s.history)):]
		for _, v := range replay {
			r.invoke(handler, v)
		}
	})

	target := weak.Make(r)
	return dispose.New(func() {
		rcv := target.Value()
		if rcv == nil {
			return
		}
		rcv.cell.Apply(func(s *state[T]) {
			delete(s.listeners, id)
		})
	})
}

// broadcast appends value to the history (when the strategy replays) and
// dispatches it to every registered listener. Dispatch happens while holding
// the state lock: delivery for one broadcast call finishes before the next
// one starts, and a disposed listener is never invoked afterwards. Delivery
// order across listeners within one call follows map iteration order and is
// deliberately unspecified.
func (r *Receiver[T]) broadcast(value T) {
	r.cell.Apply(func(s *state[T]) {
		if r.strategy.retains() {
			s.history = append(s.history, value)
		}
		for _, listener := range s.listeners {
			r.invoke(listener, value)
		}
	})
}

// invoke runs one listener in isolation: a panic is recovered and logged so
// that the remaining listeners of the same broadcast still run.
func (r *Receiver[T]) invoke(listener Listener[T], value T) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("listener panicked",
				slog.String("strategy", r.strategy.String()),
				slog.Any("panic", rec))
		}
	}()
	listener(value)
}
