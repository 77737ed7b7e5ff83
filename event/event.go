package event

import (
	"reflect"
	"time"

	"github.com/google/uuid"
)

// Event is the envelope carried on a bus: a payload plus identification
// metadata.
type Event struct {
	ID        string    `json:"id"`         // Unique identifier for the event
	Name      string    `json:"name"`       // Event type name (e.g., "AppStarted")
	Payload   any       `json:"payload"`    // Event data
	CreatedAt time.Time `json:"created_at"` // When the event was created
}

// New wraps payload in an Event with a generated ID and timestamp.
// The event name is derived from the payload's type name:
//
//	type AppStarted struct{ Version string }
//
//	evt := event.New(AppStarted{Version: "1.2.0"})
//	// evt.Name == "AppStarted"
func New(payload any) Event {
	return Event{
		ID:        uuid.New().String(),
		Name:      eventName(payload),
		Payload:   payload,
		CreatedAt: time.Now(),
	}
}

// eventName extracts the bare type name from a payload value, unwrapping
// pointers. Names carry no package path, so distinct packages must use
// distinct type names for their events.
func eventName(v any) string {
	return typeName(reflect.TypeOf(v))
}

func typeName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}
