package main

import (
	"bytes"
	"fmt"
	"image"

	_ "image/jpeg"
	_ "image/png"
)

// rgbaImage backs a panorama with decoded pixels for the sampling
// strategy and the offline renderer.
type rgbaImage struct {
	img image.Image
}

func decodeImage(b []byte) (*rgbaImage, error) {
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode panorama image: %w", err)
	}
	return &rgbaImage{img: img}, nil
}

func (i *rgbaImage) Width() int {
	return i.img.Bounds().Dx()
}

func (i *rgbaImage) Height() int {
	return i.img.Bounds().Dy()
}

func (i *rgbaImage) Interface() interface{} {
	return i.img
}
