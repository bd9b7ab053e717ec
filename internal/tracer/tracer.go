package tracer

import (
	"math"

	"sphere-tracer/internal/mathutil"
	"sphere-tracer/internal/scene"
)

const (
	// ReflectionBias is the min_t of reflected rays; it keeps them from
	// re-hitting the surface they leave because of rounding.
	ReflectionBias = 0.001

	// DefaultMaxDepth is the reflection budget of a camera ray.
	DefaultMaxDepth = 4
)

// Tracer traces rays through a read-only scene. It is safe for
// concurrent use.
type Tracer struct {
	scene *scene.Scene
	stats counters
}

// New creates a Tracer for sc. The scene must not be modified afterwards.
func New(sc *scene.Scene) *Tracer {
	return &Tracer{scene: sc}
}

// Scene returns the scene being traced.
func (t *Tracer) Scene() *scene.Scene {
	return t.scene
}

// Stats returns the ray counters so far.
func (t *Tracer) Stats() Stats {
	return t.stats.snapshot()
}

// PixelColor traces the camera ray through canvas coordinate (x, y).
func (t *Tracer) PixelColor(x, y, depth int) scene.Color {
	t.stats.cameraRays.Add(1)
	dir := PixelToDirection(t.scene, x, y)
	return t.trace(t.scene.CameraPosition, dir, t.scene.ProjectionPlaneDistance, math.Inf(1), depth)
}

// Trace returns the colour seen along origin + t*dir for t in [tMin, tMax],
// following mirror reflections for at most depth bounces.
func (t *Tracer) Trace(origin, dir mathutil.Vec3, tMin, tMax float64, depth int) scene.Color {
	return t.trace(origin, dir, tMin, tMax, depth)
}

func (t *Tracer) trace(origin, dir mathutil.Vec3, tMin, tMax float64, depth int) scene.Color {
	s, dist, ok := ClosestIntersection(t.scene.Spheres, origin, dir, tMin, tMax)
	if !ok {
		return t.scene.Background
	}

	point := origin.Add(dir.Scale(dist))
	normal := point.Sub(s.Center).Normalize()
	view := dir.Neg()

	light := t.ComputeLighting(point, normal, view, s.Material.Shininess)
	local := scene.ColorFromVec3(s.Material.Color.Vec3().Scale(light))

	// Without a reflectivity the mirror result would be discarded, so the
	// reflected ray is not cast at all.
	r := s.Material.Reflectivity
	if depth <= 0 || r == nil {
		return local
	}

	t.stats.reflectedRays.Add(1)
	reflected := t.trace(point, view.Reflect(normal), ReflectionBias, tMax, depth-1)

	return scene.ColorFromVec3(local.Vec3().Scale(1 - *r).Add(reflected.Vec3().Scale(*r)))
}
