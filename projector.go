package main

// projector turns a view snapshot and the active panorama into a rendered
// frame. Two interchangeable strategies exist: the GPU rasterized sphere
// and the CPU per-pixel sampler. An unavailable GPU context is reported
// as webgl.ErrNotSupported before any resource is allocated; falling back
// to the sampling strategy is an explicit configuration choice, never
// silent.
type projector interface {
	SetPanorama(p *panorama) error
	Render(s viewSnapshot) error
	Resize(width, height int)
	Close()
}
