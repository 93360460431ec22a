package dome

import (
	"sync"
	"time"
)

// EventType identifies the kind of an inbound interaction event.
type EventType string

const (
	EventGaze       EventType = "gaze"
	EventGesture    EventType = "gesture"
	EventVoice      EventType = "voice"
	EventController EventType = "controller"
	// EventNavigation mirrors navigation state changes of the controller.
	EventNavigation EventType = "navigation"
)

// Event is an interaction event reported by the dome controller.
type Event struct {
	Type      EventType   `json:"type"`
	Position  Coordinates `json:"position"`
	Data      string      `json:"data,omitempty"`
	Timestamp int64       `json:"timestamp"` // milliseconds since epoch
}

func now() int64 {
	return time.Now().UnixMilli()
}

// Bus is a publish/subscribe dispatcher keyed by event type. All listeners
// registered for a type are invoked on publish; a panicking listener is
// isolated and never prevents the remaining listeners from running.
type Bus struct {
	mu       sync.Mutex
	handlers map[EventType][]func(Event)
}

func NewBus() *Bus {
	return &Bus{handlers: map[EventType][]func(Event){}}
}

func (b *Bus) Subscribe(t EventType, fn func(Event)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[t] = append(b.handlers[t], fn)
}

func (b *Bus) Publish(e Event) {
	if e.Timestamp == 0 {
		e.Timestamp = now()
	}
	b.mu.Lock()
	handlers := make([]func(Event), len(b.handlers[e.Type]))
	copy(handlers, b.handlers[e.Type])
	b.mu.Unlock()

	for _, fn := range handlers {
		dispatch(fn, e)
	}
}

func dispatch(fn func(Event), e Event) {
	defer func() {
		recover()
	}()
	fn(e)
}
