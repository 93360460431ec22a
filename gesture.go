package main

import (
	"math"
)

// pinchZoomScale converts pinch pixels into wheel deltaY units.
// Closing the fingers by 100px widens the field of view by one notch.
const pinchZoomScale = 1.0

type gestureMode int

const (
	gestureNone gestureMode = iota
	gestureLook
	gesturePinch
)

type gesturePointer struct {
	id      int
	primary bool
	x, y    int
}

// gesture folds multi-touch pointer events into the viewer's two input
// primitives: a single pointer becomes a look drag and two pointers become
// a pinch, reported as a wheel-equivalent zoom delta.
type gesture struct {
	pointers map[int]gesturePointer
	pointer0 gesturePointer

	onDragStart func(x, y int)
	onDragMove  func(x, y int)
	onDragEnd   func(x, y int)
	onZoom      func(deltaY float64)

	mode      gestureMode
	distance0 float64
}

func newGesture() *gesture {
	return &gesture{pointers: map[int]gesturePointer{}}
}

func (g *gesture) pinchDistance() float64 {
	var pp []gesturePointer
	for id := range g.pointers {
		pp = append(pp, g.pointers[id])
	}
	return math.Hypot(float64(pp[0].x-pp[1].x), float64(pp[0].y-pp[1].y))
}

func (g *gesture) pointerDown(p gesturePointer) {
	g.pointers[p.id] = p

	switch len(g.pointers) {
	case 1:
		g.pointer0 = p
	case 2:
		g.distance0 = g.pinchDistance()
	}
}

func (g *gesture) pointerMove(p gesturePointer) {
	if _, ok := g.pointers[p.id]; !ok {
		return
	}
	g.pointers[p.id] = p

	if g.mode == gestureNone {
		switch len(g.pointers) {
		case 1:
			g.onDragStart(g.pointer0.x, g.pointer0.y)
			g.mode = gestureLook
		case 2:
			g.mode = gesturePinch
		}
	}
	switch g.mode {
	case gestureLook:
		if p.primary {
			g.onDragMove(p.x, p.y)
		}
	case gesturePinch:
		if len(g.pointers) != 2 {
			break
		}
		d := g.pinchDistance()
		g.onZoom((g.distance0 - d) * pinchZoomScale)
		g.distance0 = d
	}
	if p.primary {
		g.pointer0 = p
	}
}

func (g *gesture) pointerUp(p gesturePointer) {
	if _, ok := g.pointers[p.id]; ok {
		delete(g.pointers, p.id)
	}
	if len(g.pointers) == 0 {
		if p.primary {
			g.pointer0 = p
		}
		if g.mode == gestureLook {
			g.onDragEnd(g.pointer0.x, g.pointer0.y)
		}
		g.mode = gestureNone
	}
}
