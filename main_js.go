package main

import (
	"encoding/json"
	"time"

	"syscall/js"

	"github.com/omnidome/panoview/dome"
	"github.com/omnidome/panoview/webgl"
)

const renderHz = 60

func main() {
	doc := js.Global().Get("document")
	canvas := doc.Call("getElementById", "panoramaCanvas")
	overlay := doc.Call("getElementById", "panoramaError")

	showError := func(msg string) {
		if overlay.IsNull() {
			println(msg)
			return
		}
		overlay.Set("innerText", msg)
		overlay.Get("style").Set("display", "block")
	}
	hideError := func() {
		if !overlay.IsNull() {
			overlay.Get("style").Set("display", "none")
		}
	}

	cfg := defaultConfig()
	proj, err := newRasterizedProjector(canvas, cfg)
	if err != nil {
		// No GPU context: distinct, non-retriable condition.
		showError("Panorama display is not supported by this browser: " + err.Error())
		return
	}
	defer func() { proj.Close() }()
	showDebugInfo(proj.gl)

	vi := newView(cfg)
	adapter := dome.NewAdapter(detectDomeBridge())

	loader := newPanoramaLoader(&domFetcher{})
	var lastURL string
	var loadFailed bool

	chLoad := make(chan string)
	js.Global().Set("loadPanorama",
		js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			chLoad <- args[0].String()
			return nil
		}),
	)
	js.Global().Set("retryPanorama",
		js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			if lastURL != "" {
				chLoad <- lastURL
			}
			return nil
		}),
	)

	chImmersive := make(chan string)
	js.Global().Set("enterImmersive",
		js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			chImmersive <- args[0].String()
			return nil
		}),
	)

	// Inbound controller events arrive as JSON from the host page.
	chEvent := make(chan dome.Event, 8)
	js.Global().Set("domeEvent",
		js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			var e dome.Event
			if err := json.Unmarshal([]byte(args[0].String()), &e); err != nil {
				println("malformed dome event:", err.Error())
				return nil
			}
			chEvent <- e
			return nil
		}),
	)

	chExtView := make(chan dome.Coordinates, 1)
	adapter.Events().Subscribe(dome.EventGaze, func(e dome.Event) {
		select {
		case chExtView <- e.Position:
		default:
		}
	})

	chContextLost := make(chan webgl.WebGLContextEvent)
	proj.gl.Canvas.OnWebGLContextLost(func(e webgl.WebGLContextEvent) {
		// preventDefault tells the browser a restore will be handled.
		e.PreventDefault()
		chContextLost <- e
	})
	chContextRestored := make(chan webgl.WebGLContextEvent)
	proj.gl.Canvas.OnWebGLContextRestored(func(e webgl.WebGLContextEvent) {
		chContextRestored <- e
	})

	chWheel := make(chan webgl.WheelEvent)
	proj.gl.Canvas.OnWheel(func(e webgl.WheelEvent) {
		e.PreventDefault()
		e.StopPropagation()
		chWheel <- e
	})
	chMouseDown := make(chan webgl.MouseEvent)
	proj.gl.Canvas.OnMouseDown(func(e webgl.MouseEvent) {
		e.PreventDefault()
		e.StopPropagation()
		chMouseDown <- e
	})
	chMouseMove := make(chan webgl.MouseEvent)
	proj.gl.Canvas.OnMouseMove(func(e webgl.MouseEvent) {
		e.PreventDefault()
		e.StopPropagation()
		chMouseMove <- e
	})
	chMouseUp := make(chan webgl.MouseEvent)
	proj.gl.Canvas.OnMouseUp(func(e webgl.MouseEvent) {
		e.PreventDefault()
		e.StopPropagation()
		chMouseUp <- e
	})
	proj.gl.Canvas.OnContextMenu(func(e webgl.MouseEvent) {
		e.PreventDefault()
		e.StopPropagation()
	})
	chKey := make(chan webgl.KeyboardEvent)
	proj.gl.Canvas.OnKeyDown(func(e webgl.KeyboardEvent) {
		e.PreventDefault()
		e.StopPropagation()
		chKey <- e
	})

	chPointerDown := make(chan webgl.PointerEvent)
	proj.gl.Canvas.OnPointerDown(func(e webgl.PointerEvent) {
		e.PreventDefault()
		chPointerDown <- e
	})
	chPointerMove := make(chan webgl.PointerEvent)
	proj.gl.Canvas.OnPointerMove(func(e webgl.PointerEvent) {
		e.PreventDefault()
		chPointerMove <- e
	})
	chPointerUp := make(chan webgl.PointerEvent)
	proj.gl.Canvas.OnPointerUp(func(e webgl.PointerEvent) {
		e.PreventDefault()
		chPointerUp <- e
	})
	proj.gl.Canvas.OnPointerOut(func(e webgl.PointerEvent) {
		e.PreventDefault()
		chPointerUp <- e
	})

	ges := newGesture()
	ges.onDragStart = vi.dragStart
	ges.onDragMove = vi.drag
	ges.onDragEnd = vi.dragEnd
	ges.onZoom = vi.wheel

	wn := &wheelNormalizer{}

	var width, height int
	var lastSent dome.Coordinates
	var contextLost bool

	tick := time.NewTicker(time.Second / renderHz)
	defer tick.Stop()

	for {
		select {
		case <-tick.C:
			newWidth := proj.gl.Canvas.ClientWidth()
			newHeight := proj.gl.Canvas.ClientHeight()
			if newWidth != width || newHeight != height {
				width, height = newWidth, newHeight
				proj.Resize(width, height)
			}
			if !loadFailed && !contextLost {
				proj.Render(vi.snapshot())
			}
			if c := vi.coordinates(); c != lastSent {
				lastSent = c
				adapter.UpdateView(c)
			}
		case url := <-chLoad:
			lastURL = url
			hideError()
			loadFailed = false
			loader.load(url)
		case r := <-loader.Results():
			p, err, ok := loader.take(r)
			if !ok {
				// Stale decode of a previously requested URL.
				break
			}
			if err == nil {
				err = proj.SetPanorama(p)
			}
			if err != nil {
				loadFailed = true
				showError("Failed to load panorama: " + err.Error())
				break
			}
			if !p.aspectOK() {
				println("panorama is not 2:1; rendering without correctness guarantee:", p.url)
			}
			hideError()
			loadFailed = false
			vi.setFOV(defaultFOV)
			adapter.RenderEquirectangular(p.url, dome.Metadata{
				Width:            p.img.Width(),
				Height:           p.img.Height(),
				FieldOfView:      p.meta.FieldOfView,
				Projection:       string(p.meta.Projection),
				OptimizedForDome: p.meta.OptimizedForDome,
			})
		case e := <-chContextLost:
			contextLost = true
			showError("Rendering context lost: " + e.StatusMessage)
		case <-chContextRestored:
			// The GL state died with the old context; rebuild the projector
			// and reload the active panorama to restore its texture.
			np, err := newRasterizedProjector(canvas, cfg)
			if err != nil {
				showError("Failed to restore rendering context: " + err.Error())
				break
			}
			proj = np
			width, height = 0, 0
			contextLost = false
			hideError()
			if lastURL != "" {
				loader.load(lastURL)
			}
		case e := <-chWheel:
			// Line and page deltas are converted to pixel-scale units before
			// normalization.
			d := e.DeltaY
			switch e.DeltaMode {
			case webgl.DOM_DELTA_LINE:
				d *= 40
			case webgl.DOM_DELTA_PAGE:
				d *= 800
			}
			if d, ok := wn.Normalize(d); ok {
				vi.wheel(d)
			}
		case e := <-chMouseDown:
			if e.Button == 0 {
				vi.dragStart(e.OffsetX, e.OffsetY)
			}
		case e := <-chMouseMove:
			vi.drag(e.OffsetX, e.OffsetY)
		case e := <-chMouseUp:
			if e.Button == 0 {
				vi.dragEnd(e.OffsetX, e.OffsetY)
			}
			proj.gl.Canvas.Focus()
		case e := <-chPointerDown:
			ges.pointerDown(gesturePointer{id: e.PointerId, primary: e.IsPrimary, x: e.OffsetX, y: e.OffsetY})
		case e := <-chPointerMove:
			ges.pointerMove(gesturePointer{id: e.PointerId, primary: e.IsPrimary, x: e.OffsetX, y: e.OffsetY})
		case e := <-chPointerUp:
			ges.pointerUp(gesturePointer{id: e.PointerId, primary: e.IsPrimary, x: e.OffsetX, y: e.OffsetY})
		case e := <-chKey:
			switch e.Code {
			case "Escape":
				if adapter.Navigation().Immersive() {
					if err := adapter.ExitImmersiveMode(); err == nil {
						notifyHost("onExitImmersive", "")
					}
				}
			}
		case id := <-chImmersive:
			if err := adapter.NavigateToProject(id); err != nil {
				println("navigate:", err.Error())
				break
			}
			if err := adapter.EnterImmersiveMode(id); err != nil {
				println("immersive:", err.Error())
			}
		case e := <-chEvent:
			adapter.HandleEvent(e)
		case c := <-chExtView:
			vi.setCoordinates(c)
		}
	}
}

// notifyHost invokes an optional callback on the host page.
func notifyHost(name, arg string) {
	fn := js.Global().Get(name)
	if fn.IsUndefined() || fn.IsNull() {
		return
	}
	fn.Invoke(arg)
}
