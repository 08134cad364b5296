package roller

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/rollhigh/internal/core"
)

// Palette constants. Hue starts at blue and turns a half circle every
// HueSpan units of forward distance.
const (
	HueStart      = 210.0
	HueSweep      = 180.0
	HueSpan       = 500.0
	HueSaturation = 0.85
	HueValue      = 1.0
)

// Face identifies which side of a platform a cell shows. Side faces are
// drawn darker so edges stay readable in a terminal.
type Face int

const (
	FaceTop Face = iota
	FaceFront
	FaceSide
	FaceBottom
)

var faceValue = [...]float64{
	FaceTop:    1.0,
	FaceFront:  0.72,
	FaceSide:   0.55,
	FaceBottom: 0.35,
}

// PlatformHue returns the hue in [0, 360) of a platform centered at z.
func PlatformHue(z float64) float64 {
	h := math.Mod(HueStart+(z/HueSpan)*HueSweep, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// PlatformColor returns the color of a platform face. The spawn platform
// (index 0) is always green.
func PlatformColor(index int, z float64, face Face) core.Color {
	v := HueValue * faceValue[face]
	if index == 0 {
		return core.Color(colorful.Hsv(120, 1, v*0.8).Hex())
	}
	return core.Color(colorful.Hsv(PlatformHue(z), HueSaturation, v).Hex())
}

// shade returns a gray for the sphere, lit by brightness in [0, 1].
func shade(brightness float64) core.Color {
	b := 0.25 + 0.75*core.ClampF(brightness, 0, 1)
	return core.Color(colorful.Hsv(0, 0, b*0.8).Hex())
}
