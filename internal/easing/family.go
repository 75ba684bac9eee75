// Package easing evaluates the per-vertex displacement of the mesh easing
// experiment: four Penner in/out easing families and the windowed state
// machine that decides, per vertex, whether the curve has started, is in
// flight, or has settled.
package easing

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"
)

// Family selects an easing curve. The numeric values match the selector
// uniform consumed by the vertex shader.
type Family int

const (
	// None leaves every vertex at the base value.
	None Family = iota
	Elastic
	Circular
	Exponential
	Back
)

// Families lists the selectable curves in menu order.
var Families = []Family{Elastic, Circular, Exponential, Back}

// backOvershoot is Penner's default overshoot, scaled for the in/out joins.
const backOvershoot = 1.70158 * 1.525

// FamilyFor decodes the numeric selector uniform. Integer selectors map
// 1..4 to Elastic..Back; anything at or below zero selects None. The
// thresholds exist only at the float uniform boundary, which the shader
// mirrors; Go code switches on Family.
func FamilyFor(e float32) Family {
	switch {
	case e > 3:
		return Back
	case e > 2:
		return Exponential
	case e > 1:
		return Circular
	case e > 0:
		return Elastic
	default:
		return None
	}
}

// ParseFamily decodes a family name (case-insensitive) or its selector digit.
func ParseFamily(s string) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "elastic", "1":
		return Elastic, nil
	case "circular", "circ", "2":
		return Circular, nil
	case "exponential", "expo", "3":
		return Exponential, nil
	case "back", "4":
		return Back, nil
	}
	return None, fmt.Errorf("unknown easing family %q", s)
}

// String returns the display name shown in the control panel.
func (f Family) String() string {
	switch f {
	case Elastic:
		return "Elastic"
	case Circular:
		return "Circular"
	case Exponential:
		return "Exponential"
	case Back:
		return "Back"
	case None:
		return "None"
	}
	return fmt.Sprintf("Family(%d)", int(f))
}

// Selector returns the value written to the shader's selector uniform.
func (f Family) Selector() float32 {
	return float32(f)
}

// half evaluates one half of an in/out curve at normalized time u, where
// u = t / (d/2). It returns the offset from the base value.
type half func(u, c, d float32) float32

// halves returns the ease-in half (u in [0,1)) and the ease-out half
// (u in [1,2]) of the family. Both are nil for None.
func (f Family) halves() (in, out half) {
	switch f {
	case Elastic:
		return elasticIn, elasticOut
	case Circular:
		return circularIn, circularOut
	case Exponential:
		return exponentialIn, exponentialOut
	case Back:
		return backIn, backOut
	case None:
		return nil, nil
	}
	return nil, nil
}

// Ease evaluates the in/out curve from b to b+c over d at time t.
func (f Family) Ease(t, b, c, d float32) float32 {
	in, out := f.halves()
	if in == nil {
		return b
	}

	switch f {
	case Elastic:
		if t <= 0 {
			return b
		}
		if t/(d/2) == 2 {
			return b + c
		}
	case Exponential:
		if t <= 0 {
			return b
		}
		if t == d {
			return b + c
		}
	}

	u := t / (d / 2)
	if u < 1 {
		return b + in(u, c, d)
	}
	return b + out(u, c, d)
}

// elastic uses amplitude c, period d*0.45 and quarter-period phase shift.
func elasticIn(u, c, d float32) float32 {
	p := d * 0.45
	s := p / 4
	u -= 1
	return -0.5 * (c * math32.Pow(2, 10*u) * math32.Sin((u*d-s)*(2*math32.Pi)/p))
}

func elasticOut(u, c, d float32) float32 {
	p := d * 0.45
	s := p / 4
	u -= 1
	return c*math32.Pow(2, -10*u)*math32.Sin((u*d-s)*(2*math32.Pi)/p)*0.5 + c
}

func circularIn(u, c, _ float32) float32 {
	return -c / 2 * (math32.Sqrt(1-u*u) - 1)
}

func circularOut(u, c, _ float32) float32 {
	u -= 2
	return c / 2 * (math32.Sqrt(1-u*u) + 1)
}

func exponentialIn(u, c, _ float32) float32 {
	return c / 2 * math32.Pow(2, 10*(u-1))
}

func exponentialOut(u, c, _ float32) float32 {
	u -= 1
	return c / 2 * (-math32.Pow(2, -10*u) + 2)
}

func backIn(u, c, _ float32) float32 {
	return c / 2 * (u * u * ((backOvershoot+1)*u - backOvershoot))
}

func backOut(u, c, _ float32) float32 {
	u -= 2
	return c / 2 * (u*u*((backOvershoot+1)*u+backOvershoot) + 2)
}
