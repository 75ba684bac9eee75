package mesh

import (
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/meshease/pkg/math"
)

// MaxJitter is the exclusive upper bound of the per-vertex jitter.
const MaxJitter = 20

// Profile describes how one mesh is scaled before animation.
type Profile struct {
	Name      string
	Scale     float32 // uniform scale
	YStretch  float32 // extra Y scale after Scale
	Magnitude float32 // easeMagnitude written for every vertex
}

var (
	// MonkeyProfile scales the monkey uniformly.
	MonkeyProfile = Profile{Name: "monkey", Scale: 125, YStretch: 1, Magnitude: 1}
	// HelixProfile scales the cylinder and stretches it along Y.
	HelixProfile = Profile{Name: "helix", Scale: 25, YStretch: 1.5, Magnitude: 1}
)

// Prepared is a mesh ready for the renderer.
type Prepared struct {
	Geometry   Geometry
	Attributes Attributes
	MaxY       float32
}

// Preprocessor derives animation attributes from raw geometry.
type Preprocessor struct {
	rng *rand.Rand
	log *zap.Logger
}

// NewPreprocessor creates a preprocessor drawing jitter from rng. A nil rng
// is seeded from the clock.
func NewPreprocessor(rng *rand.Rand, log *zap.Logger) *Preprocessor {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Preprocessor{rng: rng, log: log}
}

// NewSeededRand returns a deterministic source for the given seed; zero
// selects a clock seed.
func NewSeededRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Process builds the attributes for g and scales its positions in place
// following profile. The returned geometry shares g's backing arrays.
func (p *Preprocessor) Process(g Geometry, profile Profile) (Prepared, error) {
	if err := g.Validate(); err != nil {
		return Prepared{}, err
	}

	n := g.VertexCount()
	attrs := Attributes{
		EaseOffset:    make([]float32, 0, n),
		EaseMagnitude: make([]float32, 0, n),
		Crazy:         make([]float32, 0, n),
	}
	for i := range g.Positions {
		pos := &g.Positions[i]
		attrs.Crazy = append(attrs.Crazy, p.rng.Float32()*MaxJitter)
		attrs.EaseOffset = append(attrs.EaseOffset, pos.Y)
		attrs.EaseMagnitude = append(attrs.EaseMagnitude, profile.Magnitude)

		*pos = pos.Scale(profile.Scale)
		pos.Y *= profile.YStretch
	}

	box := g.BoundingBox()
	maxY := Normalization(box)
	p.log.Debug("mesh preprocessed",
		zap.String("mesh", profile.Name),
		zap.Int("vertices", n),
		zap.Float32("maxY", maxY))

	return Prepared{Geometry: g, Attributes: attrs, MaxY: maxY}, nil
}

// Normalization returns 1/max(|box.Max.Y|, |box.Min.Y|), or 1 when the box
// has no vertical extent.
func Normalization(box math.Box3) float32 {
	extent := box.MaxAbsY()
	if extent == 0 {
		return 1
	}
	return 1 / extent
}

// SplitMirrored duplicates a prepared mesh into two independent halves with
// easeMagnitude +1 (left) and -1 (right). Both share offsets and jitter.
func SplitMirrored(p Prepared) (left, right Prepared) {
	left = Prepared{
		Geometry:   p.Geometry.Clone(),
		Attributes: p.Attributes.Mirrored(1),
		MaxY:       p.MaxY,
	}
	right = Prepared{
		Geometry:   p.Geometry.Clone(),
		Attributes: p.Attributes.Mirrored(-1),
		MaxY:       p.MaxY,
	}
	return left, right
}
