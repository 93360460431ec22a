package main

import (
	"fmt"
	"math"
	"syscall/js"

	"github.com/seqsense/pcgol/mat"

	"github.com/omnidome/panoview/webgl"
)

const (
	aVertexPosition = 0
	aTextureCoord   = 1
)

// rasterizedProjector renders the panorama as a texture mapped inverted
// sphere viewed from its center by a perspective camera.
type rasterizedProjector struct {
	cfg viewerConfig

	gl      *webgl.WebGL
	program webgl.Program

	posBuf, uvBuf, indexBuf webgl.Buffer
	nIndices                int

	projectionLoc, modelViewLoc webgl.Location

	tex webgl.Texture

	width, height int
	fov           float64
}

// newRasterizedProjector acquires a GPU context and uploads the sphere
// mesh. Context unavailability is reported before any resource is
// allocated, as webgl.ErrNotSupported.
func newRasterizedProjector(canvas js.Value, cfg viewerConfig) (*rasterizedProjector, error) {
	gl, err := webgl.New(canvas)
	if err != nil {
		return nil, err
	}

	vs, err := initVertexShader(gl, vsPanoramaSource)
	if err != nil {
		return nil, err
	}
	fs, err := initFragmentShader(gl, fsPanoramaSource)
	if err != nil {
		return nil, err
	}
	program, err := linkShaders(gl, vs, fs)
	if err != nil {
		return nil, err
	}

	r := &rasterizedProjector{
		cfg:     cfg,
		gl:      gl,
		program: program,
	}

	mesh := buildSphereMesh(cfg.SphereRadius, cfg.SphereLonSegments, cfg.SphereLatSegments)
	r.nIndices = mesh.indexCount()

	r.posBuf = gl.CreateBuffer()
	gl.BindBuffer(gl.ARRAY_BUFFER, r.posBuf)
	gl.BufferData(gl.ARRAY_BUFFER, webgl.Float32ArrayBuffer(mesh.positions), gl.STATIC_DRAW)

	r.uvBuf = gl.CreateBuffer()
	gl.BindBuffer(gl.ARRAY_BUFFER, r.uvBuf)
	gl.BufferData(gl.ARRAY_BUFFER, webgl.Float32ArrayBuffer(mesh.texCoords), gl.STATIC_DRAW)

	r.indexBuf = gl.CreateBuffer()
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.indexBuf)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, webgl.Uint16ArrayBuffer(mesh.indices), gl.STATIC_DRAW)

	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	gl.ClearDepth(1.0)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	// The camera is inside the sphere; the mirrored mesh flips the
	// winding, so draw both faces.
	gl.Disable(gl.CULL_FACE)

	gl.UseProgram(program)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.posBuf)
	gl.VertexAttribPointer(aVertexPosition, 3, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(aVertexPosition)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.uvBuf)
	gl.VertexAttribPointer(aTextureCoord, 2, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(aTextureCoord)

	r.projectionLoc = gl.GetUniformLocation(program, "uProjectionMatrix")
	r.modelViewLoc = gl.GetUniformLocation(program, "uModelViewMatrix")
	gl.Uniform1i(gl.GetUniformLocation(program, "uSampler"), 0)

	return r, nil
}

func (r *rasterizedProjector) SetPanorama(p *panorama) error {
	if p.meta.Projection != projectionEquirectangular {
		return fmt.Errorf("%w: %q", errProjectionUnsupported, p.meta.Projection)
	}
	img, ok := p.img.Interface().(js.Value)
	if !ok {
		return fmt.Errorf("panorama %s has no DOM image backing", p.url)
	}

	gl := r.gl
	tex := gl.CreateTexture()
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, gl.RGBA, gl.UNSIGNED_BYTE, img)
	// Longitude wraps so the 359°→0° seam stays continuous; latitude is
	// clamped because the poles are singular.
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	if err := gl.GetError(); err != nil {
		gl.DeleteTexture(tex)
		return fmt.Errorf("upload panorama texture: %w", err)
	}

	if r.tex != nil {
		gl.DeleteTexture(r.tex)
	}
	r.tex = tex
	return nil
}

func (r *rasterizedProjector) Resize(width, height int) {
	if width == r.width && height == r.height {
		return
	}
	r.width, r.height = width, height
	// Writing the size attributes clears the canvas, so skip the ones that
	// already match.
	if r.gl.Canvas.Width() != width {
		r.gl.Canvas.SetWidth(width)
	}
	if r.gl.Canvas.Height() != height {
		r.gl.Canvas.SetHeight(height)
	}
	r.gl.Viewport(0, 0, width, height)
	r.updateProjection(r.fov)
}

// updateProjection rebuilds the projection matrix. The view's field of
// view is horizontal; mat.Perspective takes the vertical angle.
func (r *rasterizedProjector) updateProjection(fovDeg float64) {
	r.fov = fovDeg
	if r.width == 0 || r.height == 0 || fovDeg == 0 {
		return
	}
	aspect := float64(r.width) / float64(r.height)
	fovH := fovDeg * math.Pi / 180
	fovV := 2 * math.Atan(math.Tan(fovH/2)/aspect)
	projection := mat.Perspective(
		float32(fovV),
		float32(aspect),
		1.0, float32(r.cfg.SphereRadius)*2,
	)
	r.gl.UniformMatrix4fv(r.projectionLoc, false, projection)
}

func (r *rasterizedProjector) Render(s viewSnapshot) error {
	gl := r.gl
	if s.FOV != r.fov {
		r.updateProjection(s.FOV)
	}

	// Yaw about the vertical axis first, then pitch in the camera local
	// frame, so azimuth near ±90° introduces no roll drift.
	modelView := mat.Rotate(1, 0, 0, float32(-s.pitchRad())).
		MulAffine(mat.Rotate(0, 1, 0, float32(-s.yawRad())))
	gl.UniformMatrix4fv(r.modelViewLoc, false, modelView)

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	if r.tex == nil {
		return nil
	}
	gl.DrawElements(gl.TRIANGLES, r.nIndices, gl.UNSIGNED_SHORT, 0)
	return nil
}

func (r *rasterizedProjector) Close() {
	gl := r.gl
	if r.tex != nil {
		gl.DeleteTexture(r.tex)
		r.tex = nil
	}
	gl.DeleteBuffer(r.posBuf)
	gl.DeleteBuffer(r.uvBuf)
	gl.DeleteBuffer(r.indexBuf)
}
