package animation

import "go.uber.org/zap"

// Driver advances the frame counter and applies "Go" triggers.
type Driver struct {
	uniforms *Uniforms
	log      *zap.Logger

	expanded bool
	frame    uint64 // monotonic, counts animated frames
	origin   uint64 // frame of the last trigger
	triggers int
}

// NewDriver creates a driver writing into u.
func NewDriver(u *Uniforms, log *zap.Logger) *Driver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Driver{uniforms: u, log: log}
}

// Go flips the direction and copies the control values into the uniforms.
// The frame counter keeps running; T restarts from the current frame so each
// vertex's window is measured from this trigger.
func (d *Driver) Go(c Controls) {
	d.origin = d.frame
	d.expanded = !d.expanded
	d.triggers++

	u := d.uniforms
	u.T = 0
	u.B = 0
	if d.expanded {
		u.C = -1
	} else {
		u.C = 1
	}
	u.D = c.DurationFrames()
	u.E = c.Easing.Selector()
	u.O = c.Offset
	u.M = c.Magnitude
	if c.Crazy {
		u.CrazyScale = 1
	} else {
		u.CrazyScale = 0
	}

	d.log.Debug("go",
		zap.Bool("expanded", d.expanded),
		zap.Stringer("easing", c.Easing),
		zap.Float32("frames", u.D),
		zap.Float32("offset", u.O),
		zap.Float32("magnitude", u.M),
		zap.Bool("crazy", c.Crazy),
		zap.Uint64("frame", d.frame))
}

// Tick advances one rendered frame. Nothing moves until a mesh is loaded.
func (d *Driver) Tick(animatable bool) {
	if !animatable {
		return
	}
	d.frame++
	d.uniforms.T = float32(d.frame - d.origin)
}

// Expanded reports the current direction.
func (d *Driver) Expanded() bool {
	return d.expanded
}

// Frame returns the monotonic frame counter.
func (d *Driver) Frame() uint64 {
	return d.frame
}

// Triggers returns how many times Go has been invoked.
func (d *Driver) Triggers() int {
	return d.triggers
}
