package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/meshease/internal/animation"
	"github.com/Faultbox/meshease/internal/app"
	"github.com/Faultbox/meshease/internal/easing"
)

const controlsWidth = 300

// Viewer is the 3D view the panel shows and steers.
type Viewer interface {
	// Texture renders the scene at the given size and returns the color
	// attachment to display.
	Texture(width, height int32) uint32
	BeginDrag()
	Drag(dx, dy, viewportHeight float32)
	EndDrag()
}

// keyBindings mirrors the keyboard front-end so both surfaces behave alike.
var keyBindings = []struct {
	key    imgui.Key
	action app.Action
}{
	{imgui.KeyG, app.ActionGo},
	{imgui.KeySpace, app.ActionGo},
	{imgui.KeyM, app.ActionToggleMesh},
	{imgui.Key1, app.ActionElastic},
	{imgui.Key2, app.ActionCircular},
	{imgui.Key3, app.ActionExponential},
	{imgui.Key4, app.ActionBack},
	{imgui.KeyC, app.ActionToggleCrazy},
	{imgui.KeyUpArrow, app.ActionMagnitudeUp},
	{imgui.KeyDownArrow, app.ActionMagnitudeDown},
	{imgui.KeyRightArrow, app.ActionOffsetUp},
	{imgui.KeyLeftArrow, app.ActionOffsetDown},
	{imgui.KeyRightBracket, app.ActionDurationUp},
	{imgui.KeyLeftBracket, app.ActionDurationDown},
	{imgui.KeyF12, app.ActionCapture},
}

// Panel draws the control surface and the scene view.
type Panel struct {
	app    *app.App
	viewer Viewer

	dragging  bool
	lastMouse imgui.Vec2

	// OnCapture runs when a capture is requested. The panel shows the
	// message it returns.
	OnCapture func() string
	message   string
}

// NewPanel creates a panel bound to a and viewer.
func NewPanel(a *app.App, viewer Viewer) *Panel {
	return &Panel{app: a, viewer: viewer}
}

// Draw lays out one frame.
func (p *Panel) Draw() {
	x, y, w, h := Viewport()
	flags := imgui.WindowFlagsNoMove | imgui.WindowFlagsNoResize | imgui.WindowFlagsNoCollapse

	imgui.SetNextWindowPos(imgui.NewVec2(x, y))
	imgui.SetNextWindowSize(imgui.NewVec2(controlsWidth, h))
	if imgui.BeginV("Controls", nil, flags) {
		p.drawControls()
	}
	imgui.End()

	imgui.SetNextWindowPos(imgui.NewVec2(x+controlsWidth, y))
	imgui.SetNextWindowSize(imgui.NewVec2(w-controlsWidth, h))
	if imgui.BeginV("Scene", nil, flags) {
		if p.app.Phase() == app.PhaseReady {
			p.drawScene()
		} else {
			p.drawLoading()
		}
	}
	imgui.End()

	if !imgui.CurrentIO().WantTextInput() {
		p.handleKeys()
	}
}

func (p *Panel) drawControls() {
	c := p.app.Controls()
	changed := false

	imgui.Text("Easing")
	for _, f := range easing.Families {
		if imgui.SelectableBoolV(f.String(), c.Easing == f, 0, imgui.NewVec2(0, 0)) {
			c.Easing = f
			changed = true
		}
	}

	imgui.Separator()
	if imgui.SliderFloatV("Magnitude", &c.Magnitude, animation.MagnitudeMin, animation.MagnitudeMax, "%.0f", imgui.SliderFlagsNone) {
		changed = true
	}
	if imgui.SliderFloatV("Offset", &c.Offset, animation.OffsetMin, animation.OffsetMax, "%.1f", imgui.SliderFlagsNone) {
		changed = true
	}
	if imgui.SliderFloatV("Duration", &c.Duration, animation.DurationMin, animation.DurationMax, "%.1fs", imgui.SliderFlagsNone) {
		changed = true
	}

	imgui.Separator()
	imgui.Text("Mesh")
	for _, kind := range []animation.MeshKind{animation.Monkey, animation.Helix} {
		if imgui.SelectableBoolV(kind.String(), c.Mesh == kind, 0, imgui.NewVec2(0, 0)) {
			c.Mesh = kind
			changed = true
		}
	}

	imgui.Separator()
	if imgui.Checkbox("Extra Crazy", &c.Crazy) {
		changed = true
	}

	if changed {
		p.app.SetControls(c.Clamp())
	}

	if imgui.ButtonV("Go!", imgui.NewVec2(-1, 0)) {
		p.app.Go()
	}
	if p.OnCapture != nil && imgui.ButtonV("Capture", imgui.NewVec2(-1, 0)) {
		p.capture()
	}
	if p.message != "" {
		imgui.TextDisabled(p.message)
	}

	imgui.Separator()
	u := p.app.Uniforms()
	imgui.TextDisabled(fmt.Sprintf("t %.0f / %.0f", u.T, u.D))
	imgui.TextDisabled(fmt.Sprintf("c %.0f  e %.0f", u.C, u.E))
	if err := p.app.Err(); err != nil {
		imgui.TextColored(imgui.NewVec4(1, 0.6, 0.2, 1), err.Error())
	}
	imgui.TextDisabled("(G go, M mesh, 1-4 easing, C crazy, F12 capture)")
}

func (p *Panel) drawLoading() {
	imgui.Text(p.app.Status())
	if err := p.app.Err(); err != nil {
		imgui.TextColored(imgui.NewVec4(1, 0.4, 0.4, 1), err.Error())
	}
}

func (p *Panel) drawScene() {
	avail := imgui.ContentRegionAvail()
	width, height := viewSize(avail.X, avail.Y)
	if width == 0 || height == 0 {
		return
	}

	tex := p.viewer.Texture(width, height)
	texRef := imgui.NewTextureRefTextureID(imgui.TextureID(tex))
	imgui.ImageWithBgV(
		*texRef,
		imgui.NewVec2(float32(width), float32(height)),
		imgui.NewVec2(0, 1), // flip V for OpenGL
		imgui.NewVec2(1, 0),
		imgui.NewVec4(0, 0, 0, 1),
		imgui.NewVec4(1, 1, 1, 1),
	)

	mouse := imgui.MousePos()
	held := imgui.IsMouseDragging(imgui.MouseButtonLeft)
	switch {
	case held && !p.dragging && imgui.IsItemHovered():
		p.dragging = true
		p.viewer.BeginDrag()
	case held && p.dragging:
		p.viewer.Drag(mouse.X-p.lastMouse.X, mouse.Y-p.lastMouse.Y, float32(height))
	case !held && p.dragging:
		p.dragging = false
		p.viewer.EndDrag()
	}
	p.lastMouse = mouse
}

func (p *Panel) handleKeys() {
	for _, b := range keyBindings {
		if !imgui.IsKeyChordPressed(imgui.KeyChord(b.key)) {
			continue
		}
		if b.action == app.ActionCapture {
			p.capture()
			continue
		}
		p.app.Do(b.action)
	}
}

func (p *Panel) capture() {
	if p.OnCapture != nil {
		p.message = p.OnCapture()
	}
}

// viewSize converts the available region into a render target size.
func viewSize(w, h float32) (int32, int32) {
	if w < 1 || h < 1 {
		return 0, 0
	}
	return int32(w), int32(h)
}
