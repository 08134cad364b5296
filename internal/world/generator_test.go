package world

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const tolerance = 1e-9

// scriptedRand returns pick(n) for every draw.
type scriptedRand struct {
	pick  func(n int) int
	calls int
}

func (r *scriptedRand) Intn(n int) int {
	r.calls++
	return r.pick(n)
}

func newTestGenerator(t *testing.T, mutate func(*GenParams)) *Generator {
	t.Helper()
	params := DefaultGenParams()
	if mutate != nil {
		mutate(&params)
	}
	g, err := NewGenerator(params)
	if err != nil {
		t.Fatalf("NewGenerator() failed: %v", err)
	}
	return g
}

func TestGenerateDeterminism(t *testing.T) {
	g := newTestGenerator(t, nil)

	a, err := g.Generate(200, 12345)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	b, err := g.Generate(200, 12345)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}

	for i := range a.Platforms() {
		if a.At(i) != b.At(i) {
			t.Fatalf("platform %d differs between runs: %+v vs %+v", i, a.At(i), b.At(i))
		}
	}

	c, err := g.Generate(200, 54321)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	same := true
	for i := 1; i < c.Len(); i++ {
		if a.At(i) != c.At(i) {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds should produce different levels")
	}
}

func TestGenerateSpawnAtOrigin(t *testing.T) {
	g := newTestGenerator(t, nil)

	for _, count := range []int{1, 2, 50, 400} {
		for _, seed := range []int64{0, 1, 99, -7} {
			l, err := g.Generate(count, seed)
			if err != nil {
				t.Fatalf("Generate(%d, %d) failed: %v", count, seed, err)
			}
			if l.Len() != count {
				t.Fatalf("Generate(%d, %d) produced %d platforms", count, seed, l.Len())
			}
			p0 := l.SpawnPlatform()
			if p0.Center != (mgl64.Vec3{0, 0, 0}) {
				t.Errorf("spawn center = %v, expected origin (count=%d seed=%d)", p0.Center, count, seed)
			}
			if p0.Width != 2.5 || p0.Height != 1 || p0.Length != 2.5 {
				t.Errorf("spawn dimensions = %+v, expected 2.5x1x2.5", p0)
			}
		}
	}
}

func TestGenerateGapAndLateralBounds(t *testing.T) {
	g := newTestGenerator(t, nil)

	for _, seed := range []int64{1, 2, 3, 42, 1337} {
		l, err := g.Generate(400, seed)
		if err != nil {
			t.Fatalf("Generate() failed: %v", err)
		}
		for i := 1; i < l.Len(); i++ {
			prev, cur := l.At(i-1), l.At(i)
			gap := cur.Center.Z() - prev.Center.Z()
			b := g.GapBounds(i)
			if gap < b.Min-tolerance || gap > b.Max+tolerance {
				t.Fatalf("seed %d platform %d: gap %v outside [%v, %v]", seed, i, gap, b.Min, b.Max)
			}
			if x := cur.Center.X(); x < -4-tolerance || x > 4+tolerance {
				t.Fatalf("seed %d platform %d: lateral offset %v outside [-4, 4]", seed, i, x)
			}
			if cur.Center.Y() != 1 || cur.Width != 3 || cur.Height != 1 || cur.Length != 3 {
				t.Fatalf("seed %d platform %d: unexpected shape %+v", seed, i, cur)
			}
		}
	}
}

func TestGenerateDrawsAtResolution(t *testing.T) {
	g := newTestGenerator(t, nil)
	l, err := g.Generate(100, 5)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}

	for i := 1; i < l.Len(); i++ {
		hundredths := l.At(i).Center.X() * 100
		if math.Abs(hundredths-math.Round(hundredths)) > 1e-6 {
			t.Errorf("platform %d offset %v is not a multiple of 0.01", i, l.At(i).Center.X())
		}
	}
}

func TestGenerateInjectedRandExtremes(t *testing.T) {
	low := &scriptedRand{pick: func(int) int { return 0 }}
	high := &scriptedRand{pick: func(n int) int { return n - 1 }}

	lowGen := newTestGenerator(t, func(p *GenParams) {
		p.NewRand = func(int64) Rand { return low }
	})
	highGen := newTestGenerator(t, func(p *GenParams) {
		p.NewRand = func(int64) Rand { return high }
	})

	lowLevel, err := lowGen.Generate(3, 0)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	highLevel, err := highGen.Generate(3, 0)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}

	// Two draws per platform after the spawn: gap then offset.
	if low.calls != 4 {
		t.Errorf("expected 4 draws for 3 platforms, got %d", low.calls)
	}

	// Platform 1: d = 1/40, gap in [6.05, 12.075].
	if gap := lowLevel.At(1).Center.Z(); math.Abs(gap-6.05) > tolerance {
		t.Errorf("lowest gap = %v, expected 6.05", gap)
	}
	if x := lowLevel.At(1).Center.X(); x != -4 {
		t.Errorf("lowest offset = %v, expected -4", x)
	}
	// 12.075 is not a multiple of 0.01, the draw rounds inward to 12.07.
	if gap := highLevel.At(1).Center.Z(); math.Abs(gap-12.07) > tolerance {
		t.Errorf("highest gap = %v, expected 12.07", gap)
	}
	if x := highLevel.At(1).Center.X(); x != 4 {
		t.Errorf("highest offset = %v, expected 4", x)
	}
}

func TestGenerateOffsetIsAbsolute(t *testing.T) {
	// Always pick the maximum: if offsets were relative they would grow.
	high := &scriptedRand{pick: func(n int) int { return n - 1 }}
	g := newTestGenerator(t, func(p *GenParams) {
		p.NewRand = func(int64) Rand { return high }
	})

	l, err := g.Generate(10, 0)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	for i := 1; i < l.Len(); i++ {
		if x := l.At(i).Center.X(); x != 4 {
			t.Errorf("platform %d offset = %v, expected 4", i, x)
		}
	}
}

func TestGapBoundsUncapped(t *testing.T) {
	g := newTestGenerator(t, nil)

	b := g.GapBounds(400)
	if math.Abs(b.Min-26) > tolerance || math.Abs(b.Max-42) > tolerance {
		t.Errorf("GapBounds(400) = %+v, expected [26, 42]", b)
	}
}

func TestGenerateRejectsBadCount(t *testing.T) {
	g := newTestGenerator(t, nil)

	for _, count := range []int{0, -1} {
		if _, err := g.Generate(count, 1); !errors.Is(err, ErrInvalidParams) {
			t.Errorf("Generate(%d) error = %v, expected ErrInvalidParams", count, err)
		}
	}
}

func TestNewGeneratorValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GenParams)
	}{
		{"gap min above max", func(p *GenParams) { p.GapMinBase = 20 }},
		{"slope min above max", func(p *GenParams) { p.GapMinSlope = 5 }},
		{"negative slope", func(p *GenParams) { p.GapMinSlope = -1 }},
		{"zero gap", func(p *GenParams) { p.GapMinBase = 0 }},
		{"lateral inverted", func(p *GenParams) { p.Lateral = Bounds{Min: 4, Max: -4} }},
		{"nan lateral", func(p *GenParams) { p.Lateral.Max = math.NaN() }},
		{"infinite gap", func(p *GenParams) { p.GapMaxBase = math.Inf(1) }},
		{"zero resolution", func(p *GenParams) { p.Resolution = 0 }},
		{"zero width", func(p *GenParams) { p.Platform.Width = 0 }},
		{"negative spawn height", func(p *GenParams) { p.Spawn.Height = -1 }},
		{"missing ramp", func(p *GenParams) { p.Ramp = nil }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			params := DefaultGenParams()
			tc.mutate(&params)
			if _, err := NewGenerator(params); !errors.Is(err, ErrInvalidParams) {
				t.Errorf("NewGenerator() error = %v, expected ErrInvalidParams", err)
			}
		})
	}
}
