package tracer

import (
	"sphere-tracer/internal/mathutil"
	"sphere-tracer/internal/scene"
)

// PixelToDirection maps a centered, y-up canvas coordinate onto the
// viewport plane. The camera always looks down +Z.
func PixelToDirection(sc *scene.Scene, x, y int) mathutil.Vec3 {
	return mathutil.Vec3{
		float64(x) * sc.ViewportSize[0] / float64(sc.CanvasWidth),
		float64(y) * sc.ViewportSize[1] / float64(sc.CanvasHeight),
		sc.ProjectionPlaneDistance,
	}
}
