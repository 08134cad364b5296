package world

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/rollhigh/internal/core"
)

// ErrInvalidParams is returned when generator parameters are out of range.
var ErrInvalidParams = errors.New("world: invalid generator parameters")

// Rand is the random source used by the generator.
// *math/rand.Rand satisfies it.
type Rand interface {
	// Intn returns a uniform int in [0, n).
	Intn(n int) int
}

// Ramp maps a platform index to a difficulty scalar.
type Ramp interface {
	Level(index int) float64
}

// LinearRamp is difficulty = index / Divisor with no cap.
type LinearRamp struct {
	Divisor float64
}

// Level implements Ramp.
func (r LinearRamp) Level(index int) float64 {
	return float64(index) / r.Divisor
}

// Size is a box extent.
type Size struct {
	Width, Height, Length float64
}

// Bounds is a closed interval.
type Bounds struct {
	Min, Max float64
}

// GenParams configures level generation.
type GenParams struct {
	Spawn    Size    // spawn platform, never difficulty-scaled
	Platform Size    // every other platform
	Y        float64 // center height of non-spawn platforms

	// Forward spacing: gapMin = GapMinBase + d*GapMinSlope and
	// gapMax = GapMaxBase + d*GapMaxSlope, where d = Ramp.Level(i).
	GapMinBase  float64
	GapMinSlope float64
	GapMaxBase  float64
	GapMaxSlope float64

	Lateral    Bounds  // absolute X offset of each platform
	Resolution float64 // quantum of random draws (0.01)

	Ramp    Ramp
	NewRand func(seed int64) Rand // nil uses math/rand
}

// DefaultGenParams returns the classic layout.
func DefaultGenParams() GenParams {
	return GenParams{
		Spawn:       Size{Width: 2.5, Height: 1, Length: 2.5},
		Platform:    Size{Width: 3, Height: 1, Length: 3},
		Y:           1,
		GapMinBase:  6,
		GapMinSlope: 2,
		GapMaxBase:  12,
		GapMaxSlope: 3,
		Lateral:     Bounds{Min: -4, Max: 4},
		Resolution:  0.01,
		Ramp:        LinearRamp{Divisor: 40},
	}
}

// Validate checks that every parameter is finite and consistently ordered.
func (p GenParams) Validate() error {
	finite := map[string]float64{
		"y":             p.Y,
		"gap min base":  p.GapMinBase,
		"gap min slope": p.GapMinSlope,
		"gap max base":  p.GapMaxBase,
		"gap max slope": p.GapMaxSlope,
		"lateral min":   p.Lateral.Min,
		"lateral max":   p.Lateral.Max,
		"resolution":    p.Resolution,
	}
	for name, v := range finite {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidParams, name)
		}
	}
	if err := p.Spawn.validate("spawn"); err != nil {
		return err
	}
	if err := p.Platform.validate("platform"); err != nil {
		return err
	}
	if p.GapMinBase <= 0 {
		return fmt.Errorf("%w: gap min base %v must be positive", ErrInvalidParams, p.GapMinBase)
	}
	if p.GapMinSlope < 0 || p.GapMaxSlope < 0 {
		return fmt.Errorf("%w: gap slopes must not be negative", ErrInvalidParams)
	}
	// Holding both orderings keeps gapMin(i) <= gapMax(i) for any d >= 0.
	if p.GapMinBase > p.GapMaxBase {
		return fmt.Errorf("%w: gap min base %v > max base %v", ErrInvalidParams, p.GapMinBase, p.GapMaxBase)
	}
	if p.GapMinSlope > p.GapMaxSlope {
		return fmt.Errorf("%w: gap min slope %v > max slope %v", ErrInvalidParams, p.GapMinSlope, p.GapMaxSlope)
	}
	if p.Lateral.Min > p.Lateral.Max {
		return fmt.Errorf("%w: lateral min %v > max %v", ErrInvalidParams, p.Lateral.Min, p.Lateral.Max)
	}
	if p.Resolution <= 0 {
		return fmt.Errorf("%w: resolution %v must be positive", ErrInvalidParams, p.Resolution)
	}
	if p.Ramp == nil {
		return fmt.Errorf("%w: difficulty ramp is required", ErrInvalidParams)
	}
	return nil
}

func (s Size) validate(name string) error {
	for _, v := range []float64{s.Width, s.Height, s.Length} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return fmt.Errorf("%w: %s dimensions must be positive and finite, got %+v", ErrInvalidParams, name, s)
		}
	}
	return nil
}

// Generator lays out levels. It is safe to reuse for many seeds.
type Generator struct {
	params GenParams
}

// NewGenerator validates params and returns a generator.
func NewGenerator(params GenParams) (*Generator, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if params.NewRand == nil {
		params.NewRand = func(seed int64) Rand {
			return rand.New(rand.NewSource(seed))
		}
	}
	return &Generator{params: params}, nil
}

// Params returns the generator's parameters.
func (g *Generator) Params() GenParams {
	return g.params
}

// GapBounds returns the forward spacing interval for platform index i.
func (g *Generator) GapBounds(i int) Bounds {
	d := g.params.Ramp.Level(i)
	return Bounds{
		Min: g.params.GapMinBase + d*g.params.GapMinSlope,
		Max: g.params.GapMaxBase + d*g.params.GapMaxSlope,
	}
}

// Generate lays out count platforms. The same seed and count always yield
// the same level.
func (g *Generator) Generate(count int, seed int64) (*Level, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: platform count %d must be at least 1", ErrInvalidParams, count)
	}

	rng := g.params.NewRand(seed)
	platforms := make([]Platform, count)
	platforms[0] = Platform{
		Width:  g.params.Spawn.Width,
		Height: g.params.Spawn.Height,
		Length: g.params.Spawn.Length,
		Center: mgl64.Vec3{0, 0, 0},
	}

	for i := 1; i < count; i++ {
		gap := g.draw(rng, g.GapBounds(i))
		offset := g.draw(rng, g.params.Lateral)

		platforms[i] = Platform{
			Width:  g.params.Platform.Width,
			Height: g.params.Platform.Height,
			Length: g.params.Platform.Length,
			Center: mgl64.Vec3{offset, g.params.Y, platforms[i-1].Center.Z() + gap},
		}
	}

	return &Level{Seed: seed, platforms: platforms}, nil
}

// draw picks a uniform multiple of the resolution inside b, both ends
// inclusive. The steps are rounded inward so the value never leaves b.
func (g *Generator) draw(rng Rand, b Bounds) float64 {
	const eps = 1e-9
	res := g.params.Resolution
	lo := int(math.Ceil(b.Min/res - eps))
	hi := int(math.Floor(b.Max/res + eps))
	if hi < lo {
		return b.Min
	}
	v := float64(lo+rng.Intn(hi-lo+1)) * res
	return core.ClampF(v, b.Min, b.Max)
}
