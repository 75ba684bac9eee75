package easing

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/meshease/pkg/math"
)

// Params is the per-frame uniform set shared by every vertex.
type Params struct {
	T          float32 // frames since the last trigger
	B          float32 // base value
	C          float32 // change towards the target
	D          float32 // duration in frames
	Family     Family
	O          float32 // offset scale applied to each vertex's easeOffset
	M          float32 // displacement magnitude
	CrazyScale float32 // 0 or 1, gates the per-vertex jitter
	MaxY       float32
	Period     float32
	YScale     float32
}

// Vertex holds the per-vertex animation attributes.
type Vertex struct {
	EaseOffset    float32
	EaseMagnitude float32
	Crazy         float32
}

// Phase is the state of one vertex's easing window.
type Phase int

const (
	// Before means the vertex has not started moving.
	Before Phase = iota
	// Within means the vertex is following the curve.
	Within
	// After means the vertex has settled on the target.
	After
)

// LocalTime returns the vertex's time within its own window, shifted by its
// offset and, when enabled, its jitter.
func (p Params) LocalTime(easeOffset, crazy float32) float32 {
	return p.T - (easeOffset*p.O + crazy*p.CrazyScale)
}

// PhaseAt classifies a local time against the window (0, D).
func (p Params) PhaseAt(tVal float32) Phase {
	switch {
	case tVal <= 0:
		return Before
	case tVal < p.D:
		return Within
	default:
		return After
	}
}

// Value returns the eased value for a vertex.
func (p Params) Value(easeOffset, crazy float32) float32 {
	tVal := p.LocalTime(easeOffset, crazy)
	switch p.PhaseAt(tVal) {
	case Before:
		return p.B
	case Within:
		return p.Family.Ease(tVal, p.B, p.C, p.D)
	default:
		return p.B + p.C
	}
}

// Displace moves pos along the helical path and returns the new position
// together with the colour weighting (the eased value).
func (p Params) Displace(pos math.Vec3, v Vertex) (math.Vec3, float32) {
	ease := p.Value(v.EaseOffset, v.Crazy)
	w := ease * p.M * v.EaseMagnitude
	angle := pos.Y * p.Period

	out := pos
	out.Z += math32.Sin(angle) * w
	out.X += math32.Cos(angle) * w
	out.Y *= 1 + ease*p.YScale
	return out, ease
}

// YRelative maps a world-space height into [0,1] using MaxY.
func (p Params) YRelative(y float32) float32 {
	return (y*p.MaxY + 1) * 0.5
}
