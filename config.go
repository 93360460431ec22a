package main

const (
	defaultFOV = 90.0

	// Both historical viewer variants are representable through viewerConfig.
	// The defaults follow the reprojection variant: degrees per pixel drag
	// sensitivity and a [30, 120] field of view range.
	defaultMinFOV          = 30.0
	defaultMaxFOV          = 120.0
	defaultDragSensitivity = 0.5
	defaultWheelStep       = 0.05

	// One wheel notch on a binary (stepping) wheel in deltaY units.
	// notch * wheelStep = 5 degrees of field of view per notch.
	wheelNotch = 100.0

	sphereRadius      = 500.0
	sphereLonSegments = 60
	sphereLatSegments = 40

	defaultSampleBlock    = 2
	defaultMaxSourceWidth = 4096
)

type renderStrategy int

const (
	// strategyRasterized renders the panorama as a texture mapped
	// inverted sphere on the GPU. Preferred whenever WebGL is available.
	strategyRasterized renderStrategy = iota
	// strategySampling inverse-maps every destination pixel on the CPU.
	// Reference quality fallback, also used by the offline renderer.
	strategySampling
)

type viewerConfig struct {
	Strategy renderStrategy

	// DragSensitivity is in degrees per dragged pixel.
	DragSensitivity float64
	MinFOV, MaxFOV  float64
	// WheelStep is in degrees of field of view per wheel deltaY unit.
	WheelStep float64

	SphereRadius      float64
	SphereLonSegments int
	SphereLatSegments int

	// SampleBlock is the output block edge of the sampling strategy.
	// 1 samples every pixel, 2 replicates each sample to a 2x2 block.
	SampleBlock int
	// MaxSourceWidth caps the panorama width used by the sampling
	// strategy. Wider sources are downscaled before sampling.
	MaxSourceWidth int
}

func defaultConfig() viewerConfig {
	return viewerConfig{
		Strategy:          strategyRasterized,
		DragSensitivity:   defaultDragSensitivity,
		MinFOV:            defaultMinFOV,
		MaxFOV:            defaultMaxFOV,
		WheelStep:         defaultWheelStep,
		SphereRadius:      sphereRadius,
		SphereLonSegments: sphereLonSegments,
		SphereLatSegments: sphereLatSegments,
		SampleBlock:       defaultSampleBlock,
		MaxSourceWidth:    defaultMaxSourceWidth,
	}
}
