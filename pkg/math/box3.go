package math

import "github.com/chewxy/math32"

// Box3 is an axis-aligned bounding box.
type Box3 struct {
	Min, Max Vec3
}

// EmptyBox returns a box that contains nothing; expanding it by a point
// yields a zero-size box at that point.
func EmptyBox() Box3 {
	inf := math32.Inf(1)
	return Box3{
		Min: Vec3{inf, inf, inf},
		Max: Vec3{-inf, -inf, -inf},
	}
}

// BoxOf returns the minimal box containing every point. An empty input
// yields the zero box.
func BoxOf(points []Vec3) Box3 {
	if len(points) == 0 {
		return Box3{}
	}
	b := EmptyBox()
	for _, p := range points {
		b = b.Expand(p)
	}
	return b
}

// Expand returns the box grown to contain p.
func (b Box3) Expand(p Vec3) Box3 {
	return Box3{
		Min: Vec3{math32.Min(b.Min.X, p.X), math32.Min(b.Min.Y, p.Y), math32.Min(b.Min.Z, p.Z)},
		Max: Vec3{math32.Max(b.Max.X, p.X), math32.Max(b.Max.Y, p.Y), math32.Max(b.Max.Z, p.Z)},
	}
}

// Center returns the midpoint of the box.
func (b Box3) Center() Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the extent along each axis.
func (b Box3) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

// MaxAbsY returns the larger of |Min.Y| and |Max.Y|.
func (b Box3) MaxAbsY() float32 {
	return math32.Max(math32.Abs(b.Max.Y), math32.Abs(b.Min.Y))
}
