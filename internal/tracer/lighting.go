package tracer

import (
	"math"

	"sphere-tracer/internal/mathutil"
	"sphere-tracer/internal/scene"
)

// ShadowEpsilon keeps shadow rays from hitting the surface they start on.
const ShadowEpsilon = 1e-6

// ComputeLighting returns the scalar light factor at point: ambient plus
// unoccluded diffuse and specular contributions. The result is not
// clamped. A nil shininess disables the specular term.
func (t *Tracer) ComputeLighting(point, normal, view mathutil.Vec3, shininess *float64) float64 {
	var factor float64

	for _, light := range t.scene.Lights {
		var (
			toLight mathutil.Vec3
			tMax    float64
		)

		switch l := light.(type) {
		case scene.AmbientLight:
			factor += l.Intensity
			continue
		case scene.PointLight:
			// [ε, 1] stops the shadow ray at the light itself.
			toLight = l.Position.Sub(point)
			tMax = 1
		case scene.DirectionalLight:
			toLight = l.Direction
			tMax = math.Inf(1)
		default:
			continue
		}

		if t.inShadow(point, toLight, tMax) {
			continue
		}

		intensity := light.LightIntensity()
		factor += diffuse(intensity, toLight, normal)
		if shininess != nil {
			factor += specular(intensity, toLight, normal, view, *shininess)
		}
	}

	return factor
}

func (t *Tracer) inShadow(point, toLight mathutil.Vec3, tMax float64) bool {
	t.stats.shadowRays.Add(1)
	_, _, hit := ClosestIntersection(t.scene.Spheres, point, toLight, ShadowEpsilon, tMax)
	return hit
}

// diffuse is the Lambert term; zero when the surface faces away.
func diffuse(intensity float64, toLight, normal mathutil.Vec3) float64 {
	nDotL := normal.Dot(toLight)
	if nDotL <= 0 {
		return 0
	}
	return intensity * nDotL / (normal.Len() * toLight.Len())
}

// specular is the Phong term around the mirror direction of toLight.
func specular(intensity float64, toLight, normal, view mathutil.Vec3, shininess float64) float64 {
	r := toLight.Reflect(normal)
	rDotV := r.Dot(view)
	if rDotV <= 0 {
		return 0
	}
	return intensity * math.Pow(rDotV/(view.Len()*r.Len()), shininess)
}
