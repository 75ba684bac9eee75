// Package mesh loads raw geometry and derives the per-vertex animation
// attributes the easing shader consumes.
package mesh

import (
	"errors"
	"fmt"

	"github.com/Faultbox/meshease/pkg/math"
)

var (
	// ErrNoPositions is returned for geometry without vertices.
	ErrNoPositions = errors.New("mesh has no positions")
	// ErrAttributeLength is returned when attribute sequences do not match
	// the vertex count.
	ErrAttributeLength = errors.New("attribute length mismatch")
)

// Geometry is an indexed triangle mesh. Normals and Indices may be empty.
type Geometry struct {
	Positions []math.Vec3
	Normals   []math.Vec3
	Indices   []uint32
}

// VertexCount returns the number of vertices.
func (g *Geometry) VertexCount() int {
	return len(g.Positions)
}

// BoundingBox returns the axis-aligned bounds of the positions.
func (g *Geometry) BoundingBox() math.Box3 {
	return math.BoxOf(g.Positions)
}

// Validate checks that the geometry is drawable.
func (g *Geometry) Validate() error {
	if len(g.Positions) == 0 {
		return ErrNoPositions
	}
	if len(g.Normals) != 0 && len(g.Normals) != len(g.Positions) {
		return fmt.Errorf("%d normals for %d positions", len(g.Normals), len(g.Positions))
	}
	for _, idx := range g.Indices {
		if int(idx) >= len(g.Positions) {
			return fmt.Errorf("index %d out of range for %d vertices", idx, len(g.Positions))
		}
	}
	return nil
}

// Clone returns a deep copy.
func (g *Geometry) Clone() Geometry {
	return Geometry{
		Positions: append([]math.Vec3(nil), g.Positions...),
		Normals:   append([]math.Vec3(nil), g.Normals...),
		Indices:   append([]uint32(nil), g.Indices...),
	}
}

// Attributes are the per-vertex animation inputs, index-aligned with the
// geometry's positions.
type Attributes struct {
	EaseOffset    []float32 // original Y of each vertex
	EaseMagnitude []float32 // +1, or -1 for a mirrored variant
	Crazy         []float32 // jitter in [0, 20)
}

// Len returns the vertex count the attributes describe.
func (a *Attributes) Len() int {
	return len(a.EaseOffset)
}

// Validate checks that all three sequences have vertexCount entries.
func (a *Attributes) Validate(vertexCount int) error {
	if len(a.EaseOffset) != vertexCount || len(a.EaseMagnitude) != vertexCount || len(a.Crazy) != vertexCount {
		return fmt.Errorf("%w: offset %d, magnitude %d, crazy %d, vertices %d",
			ErrAttributeLength, len(a.EaseOffset), len(a.EaseMagnitude), len(a.Crazy), vertexCount)
	}
	return nil
}

// Mirrored returns an independent copy whose magnitudes are all set to m.
// Offsets and jitter are shared values, copied.
func (a *Attributes) Mirrored(m float32) Attributes {
	mag := make([]float32, len(a.EaseMagnitude))
	for i := range mag {
		mag[i] = m
	}
	return Attributes{
		EaseOffset:    append([]float32(nil), a.EaseOffset...),
		EaseMagnitude: mag,
		Crazy:         append([]float32(nil), a.Crazy...),
	}
}
