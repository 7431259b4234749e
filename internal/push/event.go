package push

import (
	"context"
	"encoding/json"
	"fmt"
)

// Push-channel event names, shared by every transport.
const (
	EventConnect      = "connect"
	EventDisconnect   = "disconnect"
	EventNewLog       = "new_log"
	EventSensorUpdate = "sensor_update"
)

// Event is one message from the backend's push channel. Payload is nil for
// connect and disconnect.
type Event struct {
	Name    string          `json:"type"`
	Payload json.RawMessage `json:"data,omitempty"`
}

// Sink receives events in arrival order. Implementations must not block for long.
type Sink interface {
	Deliver(ctx context.Context, ev Event)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, ev Event)

func (f SinkFunc) Deliver(ctx context.Context, ev Event) { f(ctx, ev) }

// Source feeds a Sink until ctx is cancelled.
type Source interface {
	Run(ctx context.Context, sink Sink) error
}

// Known reports whether name is an event the kiosk handles.
func Known(name string) bool {
	switch name {
	case EventConnect, EventDisconnect, EventNewLog, EventSensorUpdate:
		return true
	}
	return false
}

func newEvent(name string, payload any) (Event, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("encode %s: %w", name, err)
	}
	return Event{Name: name, Payload: b}, nil
}
