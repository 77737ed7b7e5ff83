package receiver

import "strconv"

// Unbounded marks a warm strategy with no replay limit, making it
// equivalent to Cold.
const Unbounded = -1

// Strategy decides how much previously broadcast history a newly added
// listener receives at subscribe time. The zero value is Hot.
type Strategy struct {
	limit int
}

// Hot retains no history: a listener only sees values broadcast after it
// subscribed. This is the default strategy, and the one every
// operator-derived receiver uses.
func Hot() Strategy {
	return Strategy{}
}

// Warm replays the most recent limit values to each new listener,
// in chronological order. Warm(0) behaves like Hot; Warm(Unbounded)
// behaves like Cold. Negative limits are treated as Unbounded.
func Warm(limit int) Strategy {
	if limit < 0 {
		limit = Unbounded
	}
	return Strategy{limit: limit}
}

// Cold replays the entire history to each new listener, in chronological
// order.
func Cold() Strategy {
	return Strategy{limit: Unbounded}
}

// retains reports whether broadcast values need to be kept for replay.
func (s Strategy) retains() bool {
	return s.limit != 0
}

// replayCount returns how many trailing history values a new listener
// receives, given the current history length.
func (s Strategy) replayCount(historyLen int) int {
	if s.limit == Unbounded || s.limit > historyLen {
		return historyLen
	}
	return s.limit
}

func (s Strategy) String() string {
	switch s.limit {
	case 0:
		return "hot"
	case Unbounded:
		return "cold"
	default:
		return "warm(" + strconv.Itoa(s.limit) + ")"
	}
}
