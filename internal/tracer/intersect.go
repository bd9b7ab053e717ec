package tracer

import (
	"math"

	"sphere-tracer/internal/mathutil"
	"sphere-tracer/internal/scene"
)

// IntersectSphere solves |origin + t*dir - center|² = r² for t.
// Both roots are +Inf when the ray misses.
func IntersectSphere(origin, dir mathutil.Vec3, s *scene.Sphere) (t1, t2 float64) {
	co := origin.Sub(s.Center)

	a := dir.Dot(dir)
	b := 2 * co.Dot(dir)
	c := co.Dot(co) - s.Radius*s.Radius

	disc := b*b - 4*a*c
	if disc < 0 {
		return math.Inf(1), math.Inf(1)
	}

	sq := math.Sqrt(disc)
	return (-b + sq) / (2 * a), (-b - sq) / (2 * a)
}

// ClosestIntersection returns the sphere with the smallest root inside
// [tMin, tMax] and that root. On equal distances the earlier sphere wins.
func ClosestIntersection(spheres []scene.Sphere, origin, dir mathutil.Vec3, tMin, tMax float64) (*scene.Sphere, float64, bool) {
	closest := math.Inf(1)
	var hit *scene.Sphere

	for i := range spheres {
		s := &spheres[i]
		t1, t2 := IntersectSphere(origin, dir, s)
		if t1 < closest && t1 >= tMin && t1 <= tMax {
			closest = t1
			hit = s
		}
		if t2 < closest && t2 >= tMin && t2 <= tMax {
			closest = t2
			hit = s
		}
	}

	if hit == nil {
		return nil, 0, false
	}
	return hit, closest, true
}
