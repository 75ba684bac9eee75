// Package camera provides the trackball camera used to inspect the scene.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/meshease/pkg/math"
)

// minAngle stops the damped drift.
const minAngle = 1e-5

// TrackballCamera rotates freely around a target point. Rotation keeps
// drifting after the mouse is released and decays by Damping each update.
// Zoom and pan are not supported.
type TrackballCamera struct {
	Target math.Vec3

	RotateSpeed float32
	Damping     float32 // fraction of drift lost per update, 0 disables drift

	eye math.Vec3 // offset from Target
	up  math.Vec3

	dragging  bool
	axis      math.Vec3
	angle     float32 // pending rotation from the last drag
	lastAxis  math.Vec3
	lastAngle float32
}

// NewTrackballCamera places the camera at (d, d, d) looking at the origin.
func NewTrackballCamera(d, rotateSpeed, damping float32) *TrackballCamera {
	return &TrackballCamera{
		RotateSpeed: rotateSpeed,
		Damping:     damping,
		eye:         math.Vec3{X: d, Y: d, Z: d},
		up:          math.Vec3{Y: 1},
	}
}

// Position returns the camera position in world space.
func (c *TrackballCamera) Position() math.Vec3 {
	return c.Target.Add(c.eye)
}

// Up returns the camera's up vector.
func (c *TrackballCamera) Up() math.Vec3 {
	return c.up
}

// ViewMatrix returns the view matrix for this camera.
func (c *TrackballCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Target, c.up)
}

// BeginDrag marks the mouse as held.
func (c *TrackballCamera) BeginDrag() {
	c.dragging = true
	c.lastAngle = 0
}

// EndDrag releases the mouse; the last rotation keeps drifting.
func (c *TrackballCamera) EndDrag() {
	c.dragging = false
}

// Dragging reports whether the mouse is held.
func (c *TrackballCamera) Dragging() bool {
	return c.dragging
}

// Drag records a mouse movement of (dx, dy) pixels on a viewport of the
// given height. The rotation is applied by the next Update.
func (c *TrackballCamera) Drag(dx, dy, viewportHeight float32) {
	if viewportHeight <= 0 || (dx == 0 && dy == 0) {
		return
	}
	eyeDir := c.eye.Normalize()
	upDir := c.up.Normalize()
	sideDir := upDir.Cross(eyeDir).Normalize()

	// Screen movement expressed in world space; y grows downwards on screen.
	move := sideDir.Scale(-dx).Add(upDir.Scale(dy))
	if move.Length() == 0 {
		return
	}
	c.axis = move.Cross(c.eye).Normalize()
	c.angle = math32.Hypot(dx, dy) / viewportHeight * math32.Pi * c.RotateSpeed
}

// Update applies the pending rotation, or the damped drift when released.
func (c *TrackballCamera) Update() {
	switch {
	case c.angle != 0:
		c.rotate(c.axis, c.angle)
		c.lastAxis, c.lastAngle = c.axis, c.angle
		c.angle = 0
	case !c.dragging && c.lastAngle > minAngle && c.Damping > 0:
		c.lastAngle *= math32.Sqrt(1 - c.Damping)
		c.rotate(c.lastAxis, c.lastAngle)
	default:
		if c.dragging {
			c.lastAngle = 0
		}
	}
}

// Drift returns the current drift angle per update.
func (c *TrackballCamera) Drift() float32 {
	if c.dragging || c.lastAngle <= minAngle {
		return 0
	}
	return c.lastAngle
}

func (c *TrackballCamera) rotate(axis math.Vec3, angle float32) {
	c.eye = rotateAround(c.eye, axis, angle)
	c.up = rotateAround(c.up, axis, angle)
}

// rotateAround applies Rodrigues' rotation of v around the unit axis k.
func rotateAround(v, k math.Vec3, angle float32) math.Vec3 {
	sin, cos := math32.Sincos(angle)
	return v.Scale(cos).
		Add(k.Cross(v).Scale(sin)).
		Add(k.Scale(k.Dot(v) * (1 - cos)))
}
