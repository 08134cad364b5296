package roller

import (
	"fmt"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/rollhigh/internal/core"
)

// HUD text.
const (
	TitleText = "ROLL HIGH OR DIE!"
	DeathText = "OH NO, YOU DIED!"
	PauseText = "PAUSED"
)

// Drawing limits.
const (
	MinScreenW = 32
	MinScreenH = 10

	GroundHalfSize = 5000.0 // the orange plane is 10000 x 10000 around the origin
	drawAhead      = 160.0
	drawBehind     = 24.0
	poleCosine     = 0.86 // how wide the rolling markers are
)

// Glyphs.
const (
	GroundChar = '░'
	MarkerChar = '◆'
	ShadowChar = '×'
)

var (
	faceGlyph   = [...]rune{FaceTop: '█', FaceFront: '▓', FaceSide: '▒', FaceBottom: '░'}
	sphereRamp  = []rune{'░', '▒', '▓', '█'}
	lightDir    = mgl64.Vec3{-0.35, 1, -0.6}.Normalize()
	skyColor    = core.ColorDefault
	groundColor = core.ColorDarkOrange
)

// Render draws the current frame into dst.
func (g *Game) Render(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	if w < MinScreenW || h < MinScreenH {
		dst.DrawTextCentered(h/2, "terminal too small", core.ColorYellow)
		return
	}

	snap := g.Snapshot()
	cam := NewChaseCamera(snap.Position, w, h)
	drawScene(dst, cam, snap)
	drawShadow(dst, cam, snap)
	drawHUD(dst, snap)
}

// visibleRange returns the half-open index range of platforms whose centers
// lie near enough along Z to be drawn. Platforms are ordered by Z.
func visibleRange(snap Snapshot) (int, int) {
	ps := snap.Platforms
	z := snap.Position.Z()
	lo := sort.Search(len(ps), func(i int) bool { return ps[i].Center.Z() >= z-drawBehind })
	hi := sort.Search(len(ps), func(i int) bool { return ps[i].Center.Z() > z+drawAhead })
	return lo, hi
}

// drawScene ray casts every cell and keeps the nearest surface.
func drawScene(dst *core.Screen, cam Camera, snap Snapshot) {
	lo, hi := visibleRange(snap)
	poles := rollingPoles(snap.RotationX, snap.RotationZ)

	for cy := 0; cy < dst.Height(); cy++ {
		for cx := 0; cx < dst.Width(); cx++ {
			d := cam.Ray(cx, cy)
			best := math.Inf(1)
			cell := core.Cell{Rune: ' ', Color: skyColor}

			if t, ok := rayGround(cam.Eye, d); ok {
				best = t
				cell = core.Cell{Rune: GroundChar, Color: groundColor}
			}

			for i := lo; i < hi; i++ {
				p := snap.Platforms[i]
				if t, face, ok := rayBox(cam.Eye, d, p); ok && t < best {
					best = t
					cell = core.Cell{Rune: faceGlyph[face], Color: PlatformColor(i, p.Center.Z(), face)}
				}
			}

			if t, ok := raySphere(cam.Eye, d, snap.Position, snap.Radius); ok && t < best {
				n := cam.Eye.Add(d.Mul(t)).Sub(snap.Position).Normalize()
				cell = sphereCell(n, poles)
			}

			dst.SetColored(cx, cy, cell.Rune, cell.Color)
		}
	}
}

// rollingPoles returns two opposite points on the unit sphere that turn
// with the accumulated rolling angles, so motion is visible on screen.
func rollingPoles(rx, rz float64) [2]mgl64.Vec3 {
	rot := mgl64.Rotate3DX(rx).Mul3(mgl64.Rotate3DZ(-rz))
	up := rot.Mul3x1(mgl64.Vec3{0, 1, 0})
	return [2]mgl64.Vec3{up, up.Mul(-1)}
}

func sphereCell(n mgl64.Vec3, poles [2]mgl64.Vec3) core.Cell {
	for _, p := range poles {
		if n.Dot(p) > poleCosine {
			return core.Cell{Rune: MarkerChar, Color: core.ColorBrightWhite}
		}
	}
	light := math.Max(0, n.Dot(lightDir))
	idx := int(light * float64(len(sphereRamp)))
	idx = core.Clamp(idx, 0, len(sphereRamp)-1)
	return core.Cell{Rune: sphereRamp[idx], Color: shade(light)}
}

// drawShadow marks the point on the platform straight below the sphere,
// where it would land if it stopped moving.
func drawShadow(dst *core.Screen, cam Camera, snap Snapshot) {
	if !snap.Alive {
		return
	}
	bottom := snap.Position.Y() - snap.Radius
	lo, hi := visibleRange(snap)
	for i := lo; i < hi; i++ {
		p := snap.Platforms[i]
		if !p.ContainsXZ(snap.Position) || p.Top() > bottom+1e-9 {
			continue
		}
		at := mgl64.Vec3{snap.Position.X(), p.Top(), snap.Position.Z()}
		cx, cy, ok := cam.Project(at)
		if !ok {
			return
		}
		// Only where the top face is visible; the sphere may cover it.
		top := PlatformColor(i, p.Center.Z(), FaceTop)
		if dst.GetCell(cx, cy).Color == top {
			dst.SetColored(cx, cy, ShadowChar, PlatformColor(i, p.Center.Z(), FaceBottom))
		}
		return
	}
}

func drawHUD(dst *core.Screen, snap Snapshot) {
	w, h := dst.Width(), dst.Height()

	dst.DrawTextColored(1, 0, fmt.Sprintf("DISTANCE: %.1f", snap.Score), core.ColorBrightWhite)
	dst.DrawTextColored(1, 1, fmt.Sprintf("LAST RUN: %.1f", snap.LastScore), core.ColorGray)

	deaths := fmt.Sprintf("DEATHS: %d", snap.Deaths)
	dst.DrawTextColored(w-len(deaths)-1, 0, deaths, core.ColorGray)

	dst.DrawTextCentered(h-2, TitleText, core.ColorBrightWhite)
	if !snap.Alive {
		dst.DrawTextCentered(h-4, DeathText, core.ColorBrightRed)
	}
	if snap.Paused {
		dst.DrawTextCentered(h/2, PauseText, core.ColorYellow)
	}
}
