package main

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	"github.com/nfnt/resize"
)

// samplingProjector is the CPU fallback strategy: every destination pixel
// is inverse-mapped to a source panorama coordinate and copied. It renders
// the same view as the rasterized sphere without a GPU, at reference
// quality rather than interactive frame rates.
type samplingProjector struct {
	cfg viewerConfig

	src        *image.RGBA
	srcW, srcH int
	out        *image.RGBA
}

func newSamplingProjector(cfg viewerConfig) *samplingProjector {
	if cfg.SampleBlock < 1 {
		cfg.SampleBlock = 1
	}
	return &samplingProjector{cfg: cfg}
}

func (p *samplingProjector) SetPanorama(pano *panorama) error {
	if pano.meta.Projection != projectionEquirectangular {
		return fmt.Errorf("%w: %q", errProjectionUnsupported, pano.meta.Projection)
	}
	src, ok := pano.img.Interface().(image.Image)
	if !ok {
		return fmt.Errorf("panorama %s has no pixel backing", pano.url)
	}
	if p.cfg.MaxSourceWidth > 0 && src.Bounds().Dx() > p.cfg.MaxSourceWidth {
		src = resize.Resize(uint(p.cfg.MaxSourceWidth), 0, src, resize.Lanczos3)
	}
	p.src = toRGBA(src)
	p.srcW = p.src.Bounds().Dx()
	p.srcH = p.src.Bounds().Dy()
	return nil
}

func (p *samplingProjector) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		p.out = nil
		return
	}
	p.out = image.NewRGBA(image.Rect(0, 0, width, height))
}

func (p *samplingProjector) Close() {
	p.src = nil
	p.out = nil
}

// Image returns the last rendered frame.
func (p *samplingProjector) Image() *image.RGBA {
	return p.out
}

// sourcePoint maps the destination pixel (x, y) to a source panorama pixel
// for the given orientation. Azimuth is periodic and wraps; elevation does
// not, and a coordinate beyond the poles reports ok=false so the
// destination pixel is left untouched.
func (p *samplingProjector) sourcePoint(x, y, width, height int, s viewSnapshot) (int, int, bool) {
	aspect := float64(width) / float64(height)
	tanHalf := math.Tan(s.fovRad() / 2)

	sx := 2*float64(x)/float64(width) - 1
	sy := 2*float64(y)/float64(height) - 1

	phi := wrapAngle(math.Atan(sx*tanHalf) + s.yawRad())
	theta := math.Atan(sy*tanHalf/aspect) - s.pitchRad()

	u := int((phi + math.Pi) / (2 * math.Pi) * float64(p.srcW))
	v := int((theta + math.Pi/2) / math.Pi * float64(p.srcH))
	if u < 0 || u >= p.srcW || v < 0 || v >= p.srcH {
		return 0, 0, false
	}
	return u, v, true
}

func (p *samplingProjector) Render(s viewSnapshot) error {
	if p.src == nil || p.out == nil {
		return nil
	}
	width := p.out.Bounds().Dx()
	height := p.out.Bounds().Dy()
	block := p.cfg.SampleBlock

	for y := 0; y < height; y += block {
		for x := 0; x < width; x += block {
			u, v, ok := p.sourcePoint(x, y, width, height, s)
			if !ok {
				continue
			}
			si := p.src.PixOffset(u, v)
			px := p.src.Pix[si : si+4 : si+4]
			for by := y; by < y+block && by < height; by++ {
				for bx := x; bx < x+block && bx < width; bx++ {
					di := p.out.PixOffset(bx, by)
					copy(p.out.Pix[di:di+4], px)
				}
			}
		}
	}
	return nil
}

// wrapAngle wraps a to [-π, π).
func wrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}

func toRGBA(src image.Image) *image.RGBA {
	if rgba, ok := src.(*image.RGBA); ok {
		return rgba
	}
	b := src.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), src, b.Min, draw.Src)
	return rgba
}
