package main

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

// gradientPanorama builds a 2:1 panorama whose red channel encodes the
// column and green channel the row, so samples identify their source.
func gradientPanorama(width, height int) *panorama {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(x * 255 / (width - 1)),
				G: uint8(y * 255 / (height - 1)),
				A: 255,
			})
		}
	}
	return &panorama{
		url:  "gradient.png",
		meta: defaultPanoramaMeta(),
		img:  &rgbaImage{img: img},
	}
}

func TestSamplingProjector_SourcePoint(t *testing.T) {
	cfg := defaultConfig()
	cfg.SampleBlock = 1
	p := newSamplingProjector(cfg)
	if err := p.SetPanorama(gradientPanorama(1024, 512)); err != nil {
		t.Fatal(err)
	}

	testCases := map[string]struct {
		x, y          int
		width, height int
		view          viewSnapshot
		expectedU     int
		expectedV     int
		expectedOK    bool
	}{
		"CenterMapsToImageCenter": {
			x: 400, y: 300, width: 800, height: 600,
			view:      viewSnapshot{Yaw: 0, Pitch: 0, FOV: 90},
			expectedU: 512, expectedV: 256, expectedOK: true,
		},
		"YawRotatesAzimuth": {
			x: 400, y: 300, width: 800, height: 600,
			view:      viewSnapshot{Yaw: 90, Pitch: 0, FOV: 90},
			expectedU: 768, expectedV: 256, expectedOK: true,
		},
		"YawWrapsAtSeam": {
			x: 400, y: 300, width: 800, height: 600,
			view:      viewSnapshot{Yaw: 180, Pitch: 0, FOV: 90},
			expectedU: 0, expectedV: 256, expectedOK: true,
		},
		"NegativeYawWraps": {
			x: 400, y: 300, width: 800, height: 600,
			view:      viewSnapshot{Yaw: -90, Pitch: 0, FOV: 90},
			expectedU: 256, expectedV: 256, expectedOK: true,
		},
		"BeyondPoleIsDiscarded": {
			x: 400, y: 0, width: 800, height: 600,
			view:       viewSnapshot{Yaw: 0, Pitch: 90, FOV: 90},
			expectedOK: false,
		},
	}

	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			u, v, ok := p.sourcePoint(tt.x, tt.y, tt.width, tt.height, tt.view)
			if ok != tt.expectedOK {
				t.Fatalf("Expected ok=%v, got: %v", tt.expectedOK, ok)
			}
			if !ok {
				return
			}
			if u != tt.expectedU || v != tt.expectedV {
				t.Errorf("Expected (%d, %d), got: (%d, %d)", tt.expectedU, tt.expectedV, u, v)
			}
		})
	}
}

func TestSamplingProjector_FullResolutionCenter(t *testing.T) {
	// The mapping depends only on the source dimensions, so the full 4K
	// case needs no pixels.
	p := newSamplingProjector(defaultConfig())
	p.srcW, p.srcH = 4096, 2048

	u, v, ok := p.sourcePoint(512, 384, 1024, 768, viewSnapshot{Yaw: 0, Pitch: 0, FOV: 90})
	if !ok {
		t.Fatal("Expected the center to map inside the source")
	}
	if u != 2048 || v != 1024 {
		t.Errorf("Expected the image center (2048, 1024), got: (%d, %d)", u, v)
	}
}

func TestSamplingProjector_SeamContinuity(t *testing.T) {
	cfg := defaultConfig()
	cfg.SampleBlock = 1
	p := newSamplingProjector(cfg)
	if err := p.SetPanorama(gradientPanorama(1024, 512)); err != nil {
		t.Fatal(err)
	}

	// Looking at the 359°->0° seam, every pixel across the view must still
	// resolve to a valid source column.
	for x := 0; x < 800; x += 10 {
		_, _, ok := p.sourcePoint(x, 300, 800, 600, viewSnapshot{Yaw: 180, Pitch: 0, FOV: 90})
		if !ok {
			t.Fatalf("Expected azimuth to wrap at x=%d", x)
		}
	}
}

func TestSamplingProjector_RenderBlocks(t *testing.T) {
	cfg := defaultConfig()
	cfg.SampleBlock = 2
	p := newSamplingProjector(cfg)
	if err := p.SetPanorama(gradientPanorama(64, 32)); err != nil {
		t.Fatal(err)
	}
	p.Resize(16, 12)
	if err := p.Render(viewSnapshot{Yaw: 0, Pitch: 0, FOV: 90}); err != nil {
		t.Fatal(err)
	}

	out := p.Image()
	for y := 0; y < 12; y += 2 {
		for x := 0; x < 16; x += 2 {
			base := out.RGBAAt(x, y)
			for by := y; by < y+2; by++ {
				for bx := x; bx < x+2; bx++ {
					if out.RGBAAt(bx, by) != base {
						t.Fatalf("Expected uniform 2x2 block at (%d, %d)", x, y)
					}
				}
			}
		}
	}
}

func TestSamplingProjector_PixelsBeyondPoleUntouched(t *testing.T) {
	cfg := defaultConfig()
	cfg.SampleBlock = 1
	p := newSamplingProjector(cfg)
	if err := p.SetPanorama(gradientPanorama(64, 32)); err != nil {
		t.Fatal(err)
	}
	p.Resize(16, 12)
	if err := p.Render(viewSnapshot{Yaw: 0, Pitch: 90, FOV: 90}); err != nil {
		t.Fatal(err)
	}

	// Looking straight up, the rows above the pole have no source and stay
	// at the zero value.
	if got := p.Image().RGBAAt(8, 0); got != (color.RGBA{}) {
		t.Errorf("Expected untouched pixel above the pole, got: %v", got)
	}
	// The bottom of the view still shows the panorama.
	if got := p.Image().RGBAAt(8, 11); got.A != 255 {
		t.Errorf("Expected sampled pixel below the pole, got: %v", got)
	}
}

func TestSamplingProjector_RejectsOtherProjections(t *testing.T) {
	p := newSamplingProjector(defaultConfig())
	pano := gradientPanorama(64, 32)
	pano.meta.Projection = projectionCylindrical
	err := p.SetPanorama(pano)
	if !errors.Is(err, errProjectionUnsupported) {
		t.Errorf("Expected errProjectionUnsupported, got: %v", err)
	}
}

func TestSamplingProjector_DownscalesWideSources(t *testing.T) {
	cfg := defaultConfig()
	cfg.MaxSourceWidth = 512
	p := newSamplingProjector(cfg)
	if err := p.SetPanorama(gradientPanorama(1024, 512)); err != nil {
		t.Fatal(err)
	}
	if p.srcW != 512 || p.srcH != 256 {
		t.Errorf("Expected 512x256 source, got: %dx%d", p.srcW, p.srcH)
	}
}
