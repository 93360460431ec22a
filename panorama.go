package main

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

type projectionKind string

const (
	projectionEquirectangular projectionKind = "equirectangular"
	projectionCylindrical     projectionKind = "cylindrical"
	projectionSpherical       projectionKind = "spherical"
)

var errProjectionUnsupported = errors.New("projection not supported for rendering")

// panoramaMeta is the declared metadata of a panorama source. It is read
// from a YAML sidecar next to the image, in the format produced by the
// content pipeline.
type panoramaMeta struct {
	Image            string         `yaml:"image"`
	Width            int            `yaml:"width"`
	Height           int            `yaml:"height"`
	FieldOfView      float64        `yaml:"field_of_view"`
	Projection       projectionKind `yaml:"projection"`
	OptimizedForDome bool           `yaml:"optimized_for_dome"`
}

func defaultPanoramaMeta() panoramaMeta {
	return panoramaMeta{
		FieldOfView: 360,
		Projection:  projectionEquirectangular,
	}
}

func parsePanoramaMeta(b []byte) (panoramaMeta, error) {
	m := defaultPanoramaMeta()
	if err := yaml.Unmarshal(b, &m); err != nil {
		return m, fmt.Errorf("parse panorama metadata: %w", err)
	}
	if m.Projection == "" {
		m.Projection = projectionEquirectangular
	}
	if m.FieldOfView == 0 {
		m.FieldOfView = 360
	}
	return m, nil
}

// panoImage is a decoded image backing. The browser viewer wraps a DOM
// Image element; the native renderer wraps an image.RGBA.
type panoImage interface {
	Width() int
	Height() int
	// Interface returns the underlying backing for the active projector:
	// a js.Value on wasm builds, an *image.RGBA natively.
	Interface() interface{}
}

type panorama struct {
	url  string
	meta panoramaMeta
	img  panoImage
}

// aspectOK reports whether the image has the 2:1 ratio expected of an
// equirectangular source. Other ratios render without crashing but without
// any correctness guarantee.
func (p *panorama) aspectOK() bool {
	if p.img == nil || p.img.Height() == 0 {
		return false
	}
	return p.img.Width() == 2*p.img.Height()
}
