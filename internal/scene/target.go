package scene

import (
	"github.com/Faultbox/meshease/internal/animation"
	"github.com/Faultbox/meshease/internal/mesh"
	"github.com/Faultbox/meshease/pkg/math"
)

// Per-target animation constants.
const (
	MonkeyPeriod = 0.07
	MonkeyYScale = 1
	HelixPeriod  = 0.035
	HelixYScale  = 0
)

// Part is one drawable piece of a target.
type Part struct {
	Name       string
	Geometry   mesh.Geometry
	Attributes mesh.Attributes
	Visible    bool
}

// Target is an animated mesh made of one or more parts.
type Target struct {
	Kind   animation.MeshKind
	Parts  []*Part
	Period float32
	YScale float32
	MaxY   float32
}

// NewMonkey wraps a prepared monkey mesh.
func NewMonkey(p mesh.Prepared) *Target {
	return &Target{
		Kind:   animation.Monkey,
		Parts:  []*Part{{Name: "monkey", Geometry: p.Geometry, Attributes: p.Attributes}},
		Period: MonkeyPeriod,
		YScale: MonkeyYScale,
		MaxY:   p.MaxY,
	}
}

// NewHelix splits a prepared cylinder into its mirrored left and right
// halves.
func NewHelix(p mesh.Prepared) *Target {
	left, right := mesh.SplitMirrored(p)
	return &Target{
		Kind: animation.Helix,
		Parts: []*Part{
			{Name: "helix-left", Geometry: left.Geometry, Attributes: left.Attributes},
			{Name: "helix-right", Geometry: right.Geometry, Attributes: right.Attributes},
		},
		Period: HelixPeriod,
		YScale: HelixYScale,
		MaxY:   p.MaxY,
	}
}

// Scene is the set of loaded targets.
type Scene struct {
	Monkey *Target
	Helix  *Target

	// Particles is the static background field, drawn whatever the load
	// state.
	Particles []math.Vec3
}

// Target returns the target for kind, or nil if not loaded.
func (s *Scene) Target(kind animation.MeshKind) *Target {
	switch kind {
	case animation.Monkey:
		return s.Monkey
	case animation.Helix:
		return s.Helix
	}
	return nil
}

// Parts returns every part of every loaded target.
func (s *Scene) Parts() []*Part {
	var parts []*Part
	for _, t := range []*Target{s.Monkey, s.Helix} {
		if t != nil {
			parts = append(parts, t.Parts...)
		}
	}
	return parts
}

// VisibleParts returns the parts currently drawn.
func (s *Scene) VisibleParts() []*Part {
	var parts []*Part
	for _, p := range s.Parts() {
		if p.Visible {
			parts = append(parts, p)
		}
	}
	return parts
}
