//go:build !js

package main

import (
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
)

// rendererEnv carries environment overrides for the offline renderer.
type rendererEnv struct {
	SampleBlock    int `env:"PANOVIEW_SAMPLE_BLOCK"`
	MaxSourceWidth int `env:"PANOVIEW_MAX_SOURCE_WIDTH"`
}

// The native binary renders a single perspective frame from an
// equirectangular panorama and writes it as PNG. It exercises the same
// sampling projector the browser viewer falls back to.
func main() {
	in := flag.String("in", "", "panorama image or metadata sidecar (.yaml)")
	out := flag.String("out", "view.png", "output PNG path")
	yaw := flag.Float64("yaw", 0, "view azimuth in degrees")
	pitch := flag.Float64("pitch", 0, "view elevation in degrees")
	fov := flag.Float64("fov", defaultFOV, "horizontal field of view in degrees")
	width := flag.Int("width", 1280, "output width")
	height := flag.Int("height", 720, "output height")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if *in == "" {
		logger.Error("missing -in")
		flag.Usage()
		os.Exit(2)
	}

	cfg := defaultConfig()
	cfg.Strategy = strategySampling
	cfg.SampleBlock = 1 // offline output is reference quality

	var envCfg rendererEnv
	if err := env.Parse(&envCfg); err != nil {
		logger.Error("parse environment", "error", err)
		os.Exit(1)
	}
	if envCfg.SampleBlock > 0 {
		cfg.SampleBlock = envCfg.SampleBlock
	}
	if envCfg.MaxSourceWidth > 0 {
		cfg.MaxSourceWidth = envCfg.MaxSourceWidth
	}

	if err := render(logger, cfg, *in, *out, viewSnapshot{Yaw: *yaw, Pitch: *pitch, FOV: *fov}, *width, *height); err != nil {
		logger.Error("render", "error", err)
		os.Exit(1)
	}
}

func render(logger *slog.Logger, cfg viewerConfig, in, out string, s viewSnapshot, width, height int) error {
	pano, err := (&fileFetcher{}).fetch(in)
	if err != nil {
		return err
	}
	if !pano.aspectOK() {
		logger.Warn("panorama is not 2:1, rendering without correctness guarantee",
			"width", pano.img.Width(), "height", pano.img.Height())
	}
	logger.Info("panorama loaded",
		"source", in,
		"width", pano.img.Width(), "height", pano.img.Height(),
		"projection", string(pano.meta.Projection),
	)

	p := newSamplingProjector(cfg)
	if err := p.SetPanorama(pano); err != nil {
		return err
	}
	p.Resize(width, height)
	if err := p.Render(s); err != nil {
		return err
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, p.Image()); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	logger.Info("frame written", "path", out, "yaw", s.Yaw, "pitch", s.Pitch, "fov", s.FOV)
	return nil
}

// fileFetcher loads panoramas from the filesystem. A .yaml path is read as
// a metadata sidecar naming the image next to it.
type fileFetcher struct{}

func (*fileFetcher) fetch(path string) (*panorama, error) {
	meta := defaultPanoramaMeta()
	imgPath := path
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read panorama metadata: %w", err)
		}
		meta, err = parsePanoramaMeta(b)
		if err != nil {
			return nil, err
		}
		imgPath = filepath.Join(filepath.Dir(path), meta.Image)
	}

	b, err := os.ReadFile(imgPath)
	if err != nil {
		return nil, fmt.Errorf("read panorama image: %w", err)
	}
	img, err := decodeImage(b)
	if err != nil {
		return nil, err
	}
	if meta.Width == 0 {
		meta.Width = img.Width()
		meta.Height = img.Height()
	}
	return &panorama{url: path, meta: meta, img: img}, nil
}
