package scene

import (
	"math/rand/v2"

	"github.com/Faultbox/meshease/pkg/math"
)

// Background particle field.
const (
	ParticleCount  = 800
	ParticleExtent = 500 // half the side of the cube the points fill
	ParticleSize   = 1
)

// ParticleColor is the additive tint of every point (0xFF66FF).
var ParticleColor = [3]float32{1, 0.4, 1}

// NewParticles scatters n points uniformly in [-extent, extent) on each
// axis.
func NewParticles(rng *rand.Rand, n int, extent float32) []math.Vec3 {
	points := make([]math.Vec3, n)
	for i := range points {
		points[i] = math.Vec3{
			X: rng.Float32()*2*extent - extent,
			Y: rng.Float32()*2*extent - extent,
			Z: rng.Float32()*2*extent - extent,
		}
	}
	return points
}
