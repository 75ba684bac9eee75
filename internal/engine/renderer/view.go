package renderer

import (
	"github.com/chewxy/math32"
	"go.uber.org/zap"

	"github.com/Faultbox/meshease/internal/animation"
	"github.com/Faultbox/meshease/internal/config"
	"github.com/Faultbox/meshease/internal/engine/camera"
	"github.com/Faultbox/meshease/internal/resource"
	"github.com/Faultbox/meshease/internal/scene"
	"github.com/Faultbox/meshease/pkg/math"
)

// Source supplies what a frame draws.
type Source interface {
	Scene() *scene.Scene
	Uniforms() *animation.Uniforms
	ShaderPair() (resource.ShaderPair, bool)
}

// View ties the renderer to a camera and an optional offscreen target.
type View struct {
	r      *Renderer
	src    Source
	cam    *camera.TrackballCamera
	cfg    config.CameraConfig
	target *Target
}

// NewView creates a view of src seen through a trackball camera built from
// cfg.
func NewView(r *Renderer, src Source, cfg config.CameraConfig) *View {
	return &View{
		r:   r,
		src: src,
		cam: camera.NewTrackballCamera(cfg.Distance, cfg.RotateSpeed, cfg.Damping),
		cfg: cfg,
	}
}

// Camera returns the view's camera.
func (v *View) Camera() *camera.TrackballCamera {
	return v.cam
}

// Render draws one frame into the currently bound framebuffer.
func (v *View) Render(width, height int32) {
	v.r.SetShaderPair(v.src.ShaderPair())
	v.cam.Update()

	v.r.Begin(0, 0, 0)
	proj := Projection(v.cfg, width, height)
	v.r.Draw(v.src.Scene(), v.src.Uniforms(), v.cam.ViewMatrix(), proj)
}

// Texture renders into the offscreen target, sized width by height, and
// returns its color texture.
func (v *View) Texture(width, height int32) uint32 {
	if v.target == nil {
		t, err := NewTarget(width, height)
		if err != nil {
			v.r.log.Error("offscreen target unavailable", zap.Error(err))
			return 0
		}
		v.target = t
	} else if w, h := v.target.Size(); w != width || h != height {
		v.target.Resize(width, height)
	}

	restore := v.target.Bind()
	v.Render(width, height)
	restore()
	return v.target.ColorTexture()
}

// Snapshot returns the last offscreen frame as bottom-up RGBA rows.
func (v *View) Snapshot() (pixels []byte, width, height int) {
	if v.target == nil {
		return nil, 0, 0
	}
	w, h := v.target.Size()
	return v.target.Pixels(), int(w), int(h)
}

// BeginDrag starts a camera drag.
func (v *View) BeginDrag() { v.cam.BeginDrag() }

// Drag rotates the camera by a pointer delta.
func (v *View) Drag(dx, dy, viewportHeight float32) { v.cam.Drag(dx, dy, viewportHeight) }

// EndDrag releases the camera.
func (v *View) EndDrag() { v.cam.EndDrag() }

// Close releases the offscreen target.
func (v *View) Close() {
	if v.target != nil {
		v.target.Destroy()
		v.target = nil
	}
}

// Projection returns the perspective matrix for a viewport. cfg.FOV is in
// degrees.
func Projection(cfg config.CameraConfig, width, height int32) math.Mat4 {
	aspect := float32(1)
	if width > 0 && height > 0 {
		aspect = float32(width) / float32(height)
	}
	return math.Perspective(cfg.FOV*math32.Pi/180, aspect, cfg.Near, cfg.Far)
}
