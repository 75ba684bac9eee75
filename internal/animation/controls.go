package animation

import (
	"fmt"
	"strings"

	"github.com/Faultbox/meshease/internal/easing"
)

// MeshKind identifies one of the two animated targets.
type MeshKind int

const (
	Monkey MeshKind = iota
	Helix
)

// MeshKinds lists the targets in menu order.
var MeshKinds = []MeshKind{Monkey, Helix}

func (k MeshKind) String() string {
	switch k {
	case Monkey:
		return "Monkey"
	case Helix:
		return "Helix"
	}
	return fmt.Sprintf("MeshKind(%d)", int(k))
}

// ParseMeshKind decodes a target name (case-insensitive).
func ParseMeshKind(s string) (MeshKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "monkey", "0":
		return Monkey, nil
	case "helix", "1":
		return Helix, nil
	}
	return Monkey, fmt.Errorf("unknown mesh %q", s)
}

// Control ranges enforced by the control surfaces.
const (
	MagnitudeMin = 10
	MagnitudeMax = 150
	OffsetMin    = 0
	OffsetMax    = 10
	DurationMin  = 0.1
	DurationMax  = 10
)

// FramesPerSecond converts the duration control into frames.
const FramesPerSecond = 60

// Controls holds the values exposed on the control surface. The core does
// not validate them; the surfaces keep them inside the ranges above.
type Controls struct {
	Easing    easing.Family
	Magnitude float32
	Offset    float32
	Duration  float32 // seconds
	Mesh      MeshKind
	Crazy     bool
}

// DefaultControls returns the values the experiment starts with.
func DefaultControls() Controls {
	return Controls{
		Easing:    easing.Elastic,
		Magnitude: 40,
		Offset:    4,
		Duration:  1.8,
		Mesh:      Monkey,
		Crazy:     false,
	}
}

// Clamp returns the controls forced into their ranges. Control surfaces call
// it after applying user input.
func (c Controls) Clamp() Controls {
	c.Magnitude = clamp(c.Magnitude, MagnitudeMin, MagnitudeMax)
	c.Offset = clamp(c.Offset, OffsetMin, OffsetMax)
	c.Duration = clamp(c.Duration, DurationMin, DurationMax)
	if c.Easing < easing.Elastic || c.Easing > easing.Back {
		c.Easing = easing.Elastic
	}
	return c
}

// DurationFrames returns the duration in frames.
func (c Controls) DurationFrames() float32 {
	return c.Duration * FramesPerSecond
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
