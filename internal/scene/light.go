package scene

import "sphere-tracer/internal/mathutil"

// Light is one of AmbientLight, PointLight or DirectionalLight.
type Light interface {
	LightIntensity() float64
	isLight()
}

// AmbientLight lights every surface uniformly.
type AmbientLight struct {
	Intensity float64
}

// PointLight emits from a position in world space.
type PointLight struct {
	Intensity float64
	Position  mathutil.Vec3
}

// DirectionalLight shines from infinitely far away. Direction points
// toward the light and need not be normalized.
type DirectionalLight struct {
	Intensity float64
	Direction mathutil.Vec3
}

func (l AmbientLight) LightIntensity() float64 { return l.Intensity }
func (l PointLight) LightIntensity() float64 { return l.Intensity }
func (l DirectionalLight) LightIntensity() float64 { return l.Intensity }

func (AmbientLight) isLight() {}
func (PointLight) isLight() {}
func (DirectionalLight) isLight() {}
