package scene

import (
	"math/rand/v2"
	"testing"
)

func TestNewParticles(t *testing.T) {
	points := NewParticles(rand.New(rand.NewPCG(7, 7)), ParticleCount, ParticleExtent)
	if len(points) != ParticleCount {
		t.Fatalf("expected %d points, got %d", ParticleCount, len(points))
	}

	inside := func(v float32) bool { return v >= -ParticleExtent && v < ParticleExtent }
	var spread [3]bool
	for i, p := range points {
		if !inside(p.X) || !inside(p.Y) || !inside(p.Z) {
			t.Fatalf("point %d out of bounds: %+v", i, p)
		}
		// Some points must land in the outer half on each axis.
		spread[0] = spread[0] || p.X > ParticleExtent/2 || p.X < -ParticleExtent/2
		spread[1] = spread[1] || p.Y > ParticleExtent/2 || p.Y < -ParticleExtent/2
		spread[2] = spread[2] || p.Z > ParticleExtent/2 || p.Z < -ParticleExtent/2
	}
	if spread != [3]bool{true, true, true} {
		t.Errorf("expected points across the whole cube, got spread %v", spread)
	}
}

func TestNewParticlesDeterministic(t *testing.T) {
	a := NewParticles(rand.New(rand.NewPCG(1, 2)), 10, 500)
	b := NewParticles(rand.New(rand.NewPCG(1, 2)), 10, 500)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("expected equal points at %d, got %+v and %+v", i, a[i], b[i])
		}
	}
}
