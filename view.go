package main

import (
	"math"

	"github.com/omnidome/panoview/dome"
)

const defaultViewDistance = 0.8

type dragAnchor struct {
	x, y int
}

// view is the single source of truth for the camera orientation.
// All angles are in degrees. Pitch is clamped to [-90, 90] and the field
// of view to the configured range; yaw is unbounded internally and wrapped
// to [0, 360) when reported as dome coordinates.
type view struct {
	cfg viewerConfig

	yaw, pitch, fov float64
	distance        float64

	yaw0, pitch0 float64
	drag0        *dragAnchor

	onChange func(dome.Coordinates)
}

func newView(cfg viewerConfig) *view {
	return &view{
		cfg:      cfg,
		fov:      clamp(defaultFOV, cfg.MinFOV, cfg.MaxFOV),
		distance: defaultViewDistance,
	}
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func (v *view) notify() {
	if v.onChange != nil {
		v.onChange(v.coordinates())
	}
}

func (v *view) dragging() bool {
	return v.drag0 != nil
}

func (v *view) dragStart(x, y int) {
	v.drag0 = &dragAnchor{x: x, y: y}
	v.yaw0 = v.yaw
	v.pitch0 = v.pitch
}

// drag applies the offset from the drag anchor. Dragging right moves the
// view left. A drag without a prior dragStart is a no-op.
func (v *view) drag(x, y int) {
	if v.drag0 == nil {
		return
	}
	xDiff := float64(x - v.drag0.x)
	yDiff := float64(y - v.drag0.y)
	v.yaw = v.yaw0 - xDiff*v.cfg.DragSensitivity
	v.pitch = clamp(v.pitch0-yDiff*v.cfg.DragSensitivity, -90, 90)
	v.notify()
}

func (v *view) dragEnd(x, y int) {
	if v.drag0 == nil {
		return
	}
	v.drag(x, y)
	v.drag0 = nil
}

// wheel zooms by adjusting the field of view. Positive deltaY widens it.
func (v *view) wheel(deltaY float64) {
	v.fov = clamp(v.fov+deltaY*v.cfg.WheelStep, v.cfg.MinFOV, v.cfg.MaxFOV)
	v.notify()
}

func (v *view) setFOV(fov float64) {
	v.fov = clamp(fov, v.cfg.MinFOV, v.cfg.MaxFOV)
}

// setCoordinates applies an externally supplied orientation. Out of range
// values are clamped, never rejected, so reapplying the same coordinates
// always yields the same state.
func (v *view) setCoordinates(c dome.Coordinates) {
	v.yaw = dome.WrapAzimuth(c.Azimuth)
	v.pitch = clamp(c.Elevation, -90, 90)
	v.distance = c.Distance
	v.notify()
}

func (v *view) coordinates() dome.Coordinates {
	return dome.Coordinates{
		Azimuth:   dome.WrapAzimuth(v.yaw),
		Elevation: v.pitch,
		Distance:  v.distance,
	}
}

// viewSnapshot is the per-frame orientation read by projectors.
// Fields are plain scalars; the render loop takes one snapshot at the
// start of each frame and updates are last-write-wins.
type viewSnapshot struct {
	Yaw, Pitch, FOV float64 // degrees
}

func (v *view) snapshot() viewSnapshot {
	return viewSnapshot{Yaw: v.yaw, Pitch: v.pitch, FOV: v.fov}
}

func (s viewSnapshot) yawRad() float64   { return s.Yaw * math.Pi / 180 }
func (s viewSnapshot) pitchRad() float64 { return s.Pitch * math.Pi / 180 }
func (s viewSnapshot) fovRad() float64   { return s.FOV * math.Pi / 180 }
