package main

import (
	"math"
)

// sphereMesh is an inverted longitude/latitude tessellated sphere viewed
// from its center. The seam column is duplicated so texture u runs the
// full [0, 1] range and azimuth 359°→0° is continuous; v is clamped at the
// poles, which are singular points and must not wrap.
type sphereMesh struct {
	positions []float32 // xyz triplets
	texCoords []float32 // uv pairs
	indices   []uint16
}

func (m *sphereMesh) vertexCount() int {
	return len(m.positions) / 3
}

func (m *sphereMesh) indexCount() int {
	return len(m.indices)
}

// buildSphereMesh tessellates a sphere of the given radius with lonSegs
// longitudinal and latSegs latitudinal segments. The X axis is mirrored so
// the texture faces inward. Tessellation is a fixed quality/performance
// tunable, not derived from the image resolution.
func buildSphereMesh(radius float64, lonSegs, latSegs int) *sphereMesh {
	nVert := (lonSegs + 1) * (latSegs + 1)
	m := &sphereMesh{
		positions: make([]float32, 0, nVert*3),
		texCoords: make([]float32, 0, nVert*2),
		indices:   make([]uint16, 0, lonSegs*latSegs*6),
	}

	for lat := 0; lat <= latSegs; lat++ {
		theta := float64(lat) / float64(latSegs) * math.Pi // 0 at the top pole
		sinTheta, cosTheta := math.Sincos(theta)
		for lon := 0; lon <= lonSegs; lon++ {
			phi := float64(lon) / float64(lonSegs) * 2 * math.Pi
			sinPhi, cosPhi := math.Sincos(phi)

			// Mirrored X inverts the sphere.
			x := -radius * sinTheta * cosPhi
			y := radius * cosTheta
			z := radius * sinTheta * sinPhi

			m.positions = append(m.positions, float32(x), float32(y), float32(z))
			m.texCoords = append(m.texCoords,
				float32(lon)/float32(lonSegs),
				float32(lat)/float32(latSegs),
			)
		}
	}

	stride := lonSegs + 1
	for lat := 0; lat < latSegs; lat++ {
		for lon := 0; lon < lonSegs; lon++ {
			i0 := uint16(lat*stride + lon)
			i1 := i0 + 1
			i2 := i0 + uint16(stride)
			i3 := i2 + 1
			m.indices = append(m.indices, i0, i2, i1, i1, i2, i3)
		}
	}
	return m
}
