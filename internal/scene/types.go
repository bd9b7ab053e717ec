package scene

import "sphere-tracer/internal/mathutil"

// Material describes how a sphere surface responds to light.
// A nil Shininess disables the specular term; a nil Reflectivity makes
// the surface purely local (no mirror blend).
type Material struct {
	Color        Color
	Shininess    *float64
	Reflectivity *float64
}

// Sphere is the only geometric primitive.
type Sphere struct {
	Center   mathutil.Vec3
	Radius   float64
	Material Material
}

// Scene holds everything a render reads. It is built once and never
// mutated while pixels are being traced.
type Scene struct {
	CanvasWidth             int
	CanvasHeight            int
	ProjectionPlaneDistance float64
	ViewportSize            mathutil.Vec2
	CameraPosition          mathutil.Vec3
	Background              Color
	Spheres                 []Sphere
	Lights                  []Light
}

// Float returns a pointer to v, for the optional material fields.
func Float(v float64) *float64 {
	return &v
}
