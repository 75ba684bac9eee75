// Package animation owns the shared uniform set and the driver that
// advances it: the frame counter, the expand/contract direction and the
// values copied from the control surface on each trigger.
package animation

import "github.com/Faultbox/meshease/internal/easing"

// Uniforms is the single uniform set read by every vertex each frame.
// It is created once by the application and passed to the components that
// read or write it; only the main loop touches it.
type Uniforms struct {
	T          float32 // frames since the last trigger
	B          float32 // base easing value
	C          float32 // target delta, ±1
	D          float32 // duration in frames
	E          float32 // easing family selector, 1..4
	O          float32 // time-offset scale
	M          float32 // displacement magnitude
	MaxY       float32 // normalization of the active mesh
	Period     float32 // helix wind period of the active mesh
	YScale     float32 // Y stretch of the active mesh
	CrazyScale float32 // 0 or 1
}

// NewUniforms returns the uniform set in its initial state.
func NewUniforms() *Uniforms {
	return &Uniforms{
		MaxY:   1,
		Period: 0.01,
		YScale: 1,
	}
}

// Params converts the uniforms into evaluator parameters.
func (u *Uniforms) Params() easing.Params {
	return easing.Params{
		T:          u.T,
		B:          u.B,
		C:          u.C,
		D:          u.D,
		Family:     easing.FamilyFor(u.E),
		O:          u.O,
		M:          u.M,
		CrazyScale: u.CrazyScale,
		MaxY:       u.MaxY,
		Period:     u.Period,
		YScale:     u.YScale,
	}
}

// Named returns the uniforms keyed by their shader names.
func (u *Uniforms) Named() map[string]float32 {
	return map[string]float32{
		"t":          u.T,
		"b":          u.B,
		"c":          u.C,
		"d":          u.D,
		"e":          u.E,
		"o":          u.O,
		"m":          u.M,
		"maxY":       u.MaxY,
		"period":     u.Period,
		"yScale":     u.YScale,
		"crazyScale": u.CrazyScale,
	}
}
