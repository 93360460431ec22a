package webgl

import (
	"syscall/js"
)

type Event struct {
	event js.Value
}

func (e Event) PreventDefault() {
	e.event.Call("preventDefault")
}

func (e Event) StopPropagation() {
	e.event.Call("stopPropagation")
}

type MouseButton int

const (
	MouseButtonNull MouseButton = -1
)

type MouseEvent struct {
	Event
	OffsetX, OffsetY int
	Button           MouseButton
	AltKey           bool
	CtrlKey          bool
	ShiftKey         bool
}

func parseMouseEvent(event js.Value) MouseEvent {
	b := MouseButtonNull
	button := event.Get("button")
	if !button.IsNull() {
		b = MouseButton(button.Int())
	}
	return MouseEvent{
		Event:    Event{event: event},
		OffsetX:  event.Get("offsetX").Int(),
		OffsetY:  event.Get("offsetY").Int(),
		Button:   b,
		AltKey:   event.Get("altKey").Bool(),
		CtrlKey:  event.Get("ctrlKey").Bool(),
		ShiftKey: event.Get("shiftKey").Bool(),
	}
}

type DeltaMode int

const (
	DOM_DELTA_PIXEL DeltaMode = 0x00
	DOM_DELTA_LINE  DeltaMode = 0x01
	DOM_DELTA_PAGE  DeltaMode = 0x02
)

type WheelEvent struct {
	MouseEvent
	DeltaX, DeltaY, DeltaZ float64
	DeltaMode              DeltaMode
}

type KeyboardEvent struct {
	Event
	Code     string
	Key      string
	AltKey   bool
	CtrlKey  bool
	ShiftKey bool
}

func parseKeyboardEvent(event js.Value) KeyboardEvent {
	return KeyboardEvent{
		Event:    Event{event: event},
		Code:     event.Get("code").String(),
		Key:      event.Get("key").String(),
		AltKey:   event.Get("altKey").Bool(),
		CtrlKey:  event.Get("ctrlKey").Bool(),
		ShiftKey: event.Get("shiftKey").Bool(),
	}
}

type PointerEvent struct {
	MouseEvent
	PointerId int
	IsPrimary bool
}

func parsePointerEvent(event js.Value) PointerEvent {
	return PointerEvent{
		MouseEvent: parseMouseEvent(event),
		PointerId:  event.Get("pointerId").Int(),
		IsPrimary:  event.Get("isPrimary").Bool(),
	}
}

type WebGLContextEvent struct {
	Event
	StatusMessage string
}

func parseWebGLContextEvent(event js.Value) WebGLContextEvent {
	return WebGLContextEvent{
		Event:         Event{event: event},
		StatusMessage: event.Get("statusMessage").String(),
	}
}
