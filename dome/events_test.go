package dome

import (
	"testing"
)

func TestBusPublish(t *testing.T) {
	b := NewBus()

	var gaze, voice []Event
	b.Subscribe(EventGaze, func(e Event) { gaze = append(gaze, e) })
	b.Subscribe(EventVoice, func(e Event) { voice = append(voice, e) })

	b.Publish(Event{Type: EventGaze, Position: Coordinates{Azimuth: 10}})
	b.Publish(Event{Type: EventGaze, Position: Coordinates{Azimuth: 20}})
	b.Publish(Event{Type: EventController})

	if len(gaze) != 2 {
		t.Fatalf("Expected 2 gaze events, got: %d", len(gaze))
	}
	if gaze[1].Position.Azimuth != 20 {
		t.Errorf("Expected azimuth: 20, got: %f", gaze[1].Position.Azimuth)
	}
	if len(voice) != 0 {
		t.Errorf("Expected no voice events, got: %d", len(voice))
	}
}

func TestBusPublish_TimestampFilled(t *testing.T) {
	b := NewBus()
	var got Event
	b.Subscribe(EventGesture, func(e Event) { got = e })
	b.Publish(Event{Type: EventGesture})
	if got.Timestamp == 0 {
		t.Error("Expected the publish timestamp to be filled")
	}

	b.Publish(Event{Type: EventGesture, Timestamp: 42})
	if got.Timestamp != 42 {
		t.Errorf("Expected the caller timestamp to be kept, got: %d", got.Timestamp)
	}
}

func TestBusPublish_PanicIsolation(t *testing.T) {
	b := NewBus()

	var after int
	b.Subscribe(EventGaze, func(Event) { panic("listener failure") })
	b.Subscribe(EventGaze, func(Event) { after++ })

	b.Publish(Event{Type: EventGaze})
	if after != 1 {
		t.Errorf("Expected the listener after the panic to run, got: %d", after)
	}
}
