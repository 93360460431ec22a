package main

import (
	"math"
	"testing"
)

func TestBuildSphereMesh(t *testing.T) {
	const (
		radius  = 500.0
		lonSegs = 60
		latSegs = 40
	)
	m := buildSphereMesh(radius, lonSegs, latSegs)

	expectedVerts := (lonSegs + 1) * (latSegs + 1)
	if m.vertexCount() != expectedVerts {
		t.Errorf("Expected %d vertices, got: %d", expectedVerts, m.vertexCount())
	}
	if len(m.texCoords) != expectedVerts*2 {
		t.Errorf("Expected %d texture coordinates, got: %d", expectedVerts*2, len(m.texCoords))
	}
	expectedIndices := lonSegs * latSegs * 6
	if m.indexCount() != expectedIndices {
		t.Errorf("Expected %d indices, got: %d", expectedIndices, m.indexCount())
	}

	for i, idx := range m.indices {
		if int(idx) >= m.vertexCount() {
			t.Fatalf("Index %d out of range: %d >= %d", i, idx, m.vertexCount())
		}
	}

	for i := 0; i < m.vertexCount(); i++ {
		x := float64(m.positions[i*3])
		y := float64(m.positions[i*3+1])
		z := float64(m.positions[i*3+2])
		r := math.Sqrt(x*x + y*y + z*z)
		if math.Abs(r-radius) > 1e-2 {
			t.Fatalf("Vertex %d is off the sphere: radius %f", i, r)
		}
	}
}

func TestBuildSphereMesh_SeamDuplicated(t *testing.T) {
	const (
		lonSegs = 60
		latSegs = 40
	)
	m := buildSphereMesh(500, lonSegs, latSegs)
	stride := lonSegs + 1

	for lat := 0; lat <= latSegs; lat++ {
		first := lat * stride
		last := lat*stride + lonSegs

		// Same position on both sides of the seam, but u spans the full
		// texture so azimuth 359°->0° interpolates without a visible edge.
		for c := 0; c < 3; c++ {
			d := math.Abs(float64(m.positions[first*3+c] - m.positions[last*3+c]))
			if d > 1e-3 {
				t.Fatalf("Seam positions differ at lat %d, component %d: %f", lat, c, d)
			}
		}
		if m.texCoords[first*2] != 0 {
			t.Errorf("Expected u=0 at the seam start, got: %f", m.texCoords[first*2])
		}
		if m.texCoords[last*2] != 1 {
			t.Errorf("Expected u=1 at the seam end, got: %f", m.texCoords[last*2])
		}
	}
}

func TestBuildSphereMesh_Orientation(t *testing.T) {
	const (
		radius  = 500.0
		lonSegs = 60
		latSegs = 40
	)
	m := buildSphereMesh(radius, lonSegs, latSegs)
	stride := lonSegs + 1

	// Top pole row maps to the top of the texture.
	if y := m.positions[1]; math.Abs(float64(y)-radius) > 1e-3 {
		t.Errorf("Expected top pole at y=%f, got: %f", radius, y)
	}
	if v := m.texCoords[1]; v != 0 {
		t.Errorf("Expected v=0 at the top pole, got: %f", v)
	}

	// The equator vertex at lon 0 sits on the mirrored X axis, which turns
	// the sphere inside out for a camera at the center.
	eq := (latSegs / 2) * stride
	x := float64(m.positions[eq*3])
	if math.Abs(x+radius) > 1e-3 {
		t.Errorf("Expected equator seam vertex at x=%f, got: %f", -radius, x)
	}
}
