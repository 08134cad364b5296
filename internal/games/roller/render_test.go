package roller

import (
	"math"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/rollhigh/internal/core"
	"github.com/vovakirdan/rollhigh/internal/world"
)

func screenContains(s *core.Screen, text string) bool {
	return strings.Contains(s.String(), text)
}

func TestRenderHUD(t *testing.T) {
	g := newTestGame(t, 1)
	scr := core.NewScreen(80, 24)

	g.Render(scr)

	if !strings.Contains(scr.Row(0), "DISTANCE: 0.0") {
		t.Errorf("Row 0 = %q, expected the distance", scr.Row(0))
	}
	if !strings.Contains(scr.Row(1), "LAST RUN: 0.0") {
		t.Errorf("Row 1 = %q, expected the last run", scr.Row(1))
	}
	if !strings.Contains(scr.Row(22), TitleText) {
		t.Errorf("Row 22 = %q, expected the title", scr.Row(22))
	}
	if screenContains(scr, DeathText) {
		t.Error("Death text should be hidden while alive")
	}
}

func TestRenderDeathText(t *testing.T) {
	g := newTestGame(t, 1)
	stepUntilDied(t, g, core.ActionLeft)

	scr := core.NewScreen(80, 24)
	g.Render(scr)

	if !strings.Contains(scr.Row(20), DeathText) {
		t.Errorf("Row 20 = %q, expected the death text", scr.Row(20))
	}
}

func TestRenderPaused(t *testing.T) {
	g := newTestGame(t, 1)
	g.Step(core.NewInputFrame(core.ActionPause), frame)

	scr := core.NewScreen(80, 24)
	g.Render(scr)

	if !screenContains(scr, PauseText) {
		t.Error("Expected the pause banner")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, 1)
	scr := core.NewScreen(20, 6)

	g.Render(scr)

	if !screenContains(scr, "terminal too small") {
		t.Errorf("Expected a size warning, got %q", scr.String())
	}
}

func TestRenderDrawsSphereAndSpawn(t *testing.T) {
	g := newTestGame(t, 1)
	scr := core.NewScreen(80, 24)
	g.Render(scr)

	cam := NewChaseCamera(g.Sphere().Position, 80, 24)
	cx, cy, ok := cam.Project(g.Sphere().Position)
	if !ok {
		t.Fatal("Sphere should be on screen")
	}
	r := scr.Get(cx, cy)
	if r != MarkerChar && !strings.ContainsRune(string(sphereRamp), r) {
		t.Errorf("Cell under the sphere center = %q, expected a sphere glyph", r)
	}

	// The spawn platform's top lies just below the sphere.
	green := PlatformColor(0, 0, FaceTop)
	found := false
	for y := 0; y < scr.Height() && !found; y++ {
		for x := 0; x < scr.Width(); x++ {
			if scr.GetCell(x, y).Color == green {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("Expected the green spawn platform to be visible")
	}
}

func TestCameraLooksAtTarget(t *testing.T) {
	target := mgl64.Vec3{2, 1.5, 10}
	cam := NewChaseCamera(target, 80, 24)

	if want := (mgl64.Vec3{2, CameraHeight, 10 - CameraDistance}); !cam.Eye.ApproxEqual(want) {
		t.Errorf("Eye = %v, expected %v", cam.Eye, want)
	}

	cx, cy, ok := cam.Project(target)
	if !ok || abs(cx-40) > 1 || abs(cy-12) > 1 {
		t.Errorf("Project(target) = (%d, %d, %v), expected the screen center", cx, cy, ok)
	}

	want := target.Sub(cam.Eye).Normalize()
	got := cam.Ray(40, 12)
	if got.Dot(want) < 0.99 {
		t.Errorf("Center ray %v should point at the target (%v)", got, want)
	}

	if _, _, ok := cam.Project(cam.Eye.Sub(mgl64.Vec3{0, 0, 5})); ok {
		t.Error("Points behind the camera should not project")
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestRayBoxFaces(t *testing.T) {
	p := world.Platform{Width: 2, Height: 2, Length: 2, Center: mgl64.Vec3{0, 0, 0}}

	tests := []struct {
		name   string
		origin mgl64.Vec3
		dir    mgl64.Vec3
		t      float64
		face   Face
		hit    bool
	}{
		{"from above", mgl64.Vec3{0, 5, 0}, mgl64.Vec3{0, -1, 0}, 4, FaceTop, true},
		{"from below", mgl64.Vec3{0, -5, 0}, mgl64.Vec3{0, 1, 0}, 4, FaceBottom, true},
		{"from behind", mgl64.Vec3{0, 0, -5}, mgl64.Vec3{0, 0, 1}, 4, FaceFront, true},
		{"from the side", mgl64.Vec3{5, 0, 0}, mgl64.Vec3{-1, 0, 0}, 4, FaceSide, true},
		{"miss", mgl64.Vec3{5, 5, 0}, mgl64.Vec3{0, -1, 0}, 0, 0, false},
		{"pointing away", mgl64.Vec3{0, 5, 0}, mgl64.Vec3{0, 1, 0}, 0, 0, false},
		{"inside", mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 1, 0}, 0, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, face, hit := rayBox(tc.origin, tc.dir, p)
			if hit != tc.hit {
				t.Fatalf("hit = %v, expected %v", hit, tc.hit)
			}
			if hit && (math.Abs(got-tc.t) > 1e-9 || face != tc.face) {
				t.Errorf("rayBox() = %v, %v; expected %v, %v", got, face, tc.t, tc.face)
			}
		})
	}
}

func TestRaySphere(t *testing.T) {
	c := mgl64.Vec3{0, 0, 10}

	if d, ok := raySphere(mgl64.Vec3{}, mgl64.Vec3{0, 0, 1}, c, 1); !ok || math.Abs(d-9) > 1e-9 {
		t.Errorf("raySphere() = %v, %v; expected 9", d, ok)
	}
	if _, ok := raySphere(mgl64.Vec3{}, mgl64.Vec3{0, 1, 0}, c, 1); ok {
		t.Error("Ray pointing away should miss")
	}
}

func TestRayGround(t *testing.T) {
	if d, ok := rayGround(mgl64.Vec3{0, 7, 0}, mgl64.Vec3{0, -1, 0}); !ok || math.Abs(d-7) > 1e-9 {
		t.Errorf("rayGround() = %v, %v; expected 7", d, ok)
	}
	if _, ok := rayGround(mgl64.Vec3{0, 7, 0}, mgl64.Vec3{0, 1, 0}); ok {
		t.Error("Upward ray should miss the ground")
	}
	if _, ok := rayGround(mgl64.Vec3{GroundHalfSize + 1, 7, 0}, mgl64.Vec3{0, -1, 0}); ok {
		t.Error("Ground should end at its edge")
	}
}

func TestPlatformHue(t *testing.T) {
	tests := []struct {
		z, want float64
	}{
		{0, 210},
		{250, 300},
		{500, 30},
		{1000, 210},
	}

	for _, tc := range tests {
		if got := PlatformHue(tc.z); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("PlatformHue(%v) = %v, expected %v", tc.z, got, tc.want)
		}
	}
}

func TestPlatformColor(t *testing.T) {
	if PlatformColor(0, 0, FaceTop) == PlatformColor(1, 0, FaceTop) {
		t.Error("Spawn platform should have its own color")
	}
	if PlatformColor(3, 40, FaceTop) != PlatformColor(3, 40, FaceTop) {
		t.Error("Color should be a pure function of index, z and face")
	}
	if PlatformColor(3, 40, FaceTop) == PlatformColor(3, 40, FaceSide) {
		t.Error("Side faces should be shaded differently")
	}
	if c := PlatformColor(5, 100, FaceTop); !strings.HasPrefix(string(c), "#") {
		t.Errorf("Expected a hex color, got %q", c)
	}
}
