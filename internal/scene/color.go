package scene

import (
	"image/color"
	"math"

	"sphere-tracer/internal/mathutil"
)

// Color is an 8-bit-per-channel RGB triple.
type Color struct {
	R, G, B uint8
}

// Vec3 widens the channels to floats.
func (c Color) Vec3() mathutil.Vec3 {
	return mathutil.Vec3{float64(c.R), float64(c.G), float64(c.B)}
}

// NRGBA returns the opaque image/color equivalent.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// ColorFromVec3 clamps each channel to [0, 255] and truncates.
// NaN saturates to 0.
func ColorFromVec3(v mathutil.Vec3) Color {
	return Color{clampChannel(v[0]), clampChannel(v[1]), clampChannel(v[2])}
}

func clampChannel(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
