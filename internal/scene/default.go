package scene

import "sphere-tracer/internal/mathutil"

// Default returns the built-in demo scene: four coloured spheres over a
// huge red floor sphere, lit by ambient, point and directional lights.
func Default() *Scene {
	return &Scene{
		CanvasWidth:             1920,
		CanvasHeight:            1920,
		ProjectionPlaneDistance: 1,
		ViewportSize:            mathutil.Vec2{1, 1},
		CameraPosition:          mathutil.Vec3{0, 1, -5},
		Background:              Color{60, 56, 54},
		Spheres: []Sphere{
			{
				Center:   mathutil.Vec3{0, -1, 3},
				Radius:   1,
				Material: Material{Color: Color{255, 255, 0}},
			},
			{
				Center:   mathutil.Vec3{2, 0, 4},
				Radius:   1,
				Material: Material{Color: Color{0, 255, 255}, Shininess: Float(500), Reflectivity: Float(0.3)},
			},
			{
				Center:   mathutil.Vec3{-2, 0, 4},
				Radius:   1,
				Material: Material{Color: Color{255, 0, 255}, Shininess: Float(10), Reflectivity: Float(0.4)},
			},
			{
				Center:   mathutil.Vec3{0, -5001, 0},
				Radius:   5000,
				Material: Material{Color: Color{255, 0, 0}, Reflectivity: Float(0.5)},
			},
			{
				Center:   mathutil.Vec3{0, 2, 3},
				Radius:   1.5,
				Material: Material{Color: Color{230, 230, 230}, Reflectivity: Float(0.8)},
			},
		},
		Lights: []Light{
			AmbientLight{Intensity: 0.2},
			PointLight{Intensity: 0.6, Position: mathutil.Vec3{2, 1, 0}},
			DirectionalLight{Intensity: 0.2, Direction: mathutil.Vec3{1, 4, 4}},
		},
	}
}
