package main

import (
	"fmt"
	"path"
	"strings"
	"syscall/js"
)

// domImage backs a panorama with a decoded DOM Image element, consumed
// directly by the WebGL texture upload.
type domImage js.Value

func (m domImage) Width() int {
	return js.Value(m).Get("naturalWidth").Int()
}

func (m domImage) Height() int {
	return js.Value(m).Get("naturalHeight").Int()
}

func (m domImage) Interface() interface{} {
	return js.Value(m)
}

// domFetcher loads panoramas in the browser. A .yaml URL is read as a
// metadata sidecar naming the image next to it; any other URL is loaded
// as the image itself with default metadata.
type domFetcher struct{}

func (*domFetcher) fetch(url string) (*panorama, error) {
	meta := defaultPanoramaMeta()
	imgURL := url
	if strings.HasSuffix(url, ".yaml") || strings.HasSuffix(url, ".yml") {
		b, err := fetchGet(url)
		if err != nil {
			return nil, err
		}
		meta, err = parsePanoramaMeta(b)
		if err != nil {
			return nil, err
		}
		imgURL = path.Dir(url) + "/" + meta.Image
	}

	img := js.Global().Get("Image").New()
	chOK := make(chan bool, 1)
	img.Call("addEventListener", "load",
		js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			chOK <- true
			return nil
		}),
	)
	img.Call("addEventListener", "error",
		js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			chOK <- false
			return nil
		}),
	)
	img.Set("src", imgURL)

	if !<-chOK {
		return nil, fmt.Errorf("failed to load panorama image: %s", imgURL)
	}

	di := domImage(img)
	if meta.Width == 0 {
		meta.Width = di.Width()
		meta.Height = di.Height()
	}
	return &panorama{url: url, meta: meta, img: di}, nil
}
