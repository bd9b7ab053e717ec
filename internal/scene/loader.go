package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"sphere-tracer/internal/mathutil"
)

// ErrInvalid is wrapped by every validation failure from Parse.
var ErrInvalid = errors.New("invalid scene")

// jsonScene matches the scene file schema.
type jsonScene struct {
	Canvas struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	} `json:"canvas"`
	ProjectionPlaneDistance float64      `json:"projection_plane_distance"`
	Viewport                *[2]float64  `json:"viewport"`
	Camera                  [3]float64   `json:"camera"`
	Background              [3]int       `json:"background"`
	Spheres                 []jsonSphere `json:"spheres"`
	Lights                  []jsonLight  `json:"lights"`
}

type jsonSphere struct {
	Center       [3]float64 `json:"center"`
	Radius       float64    `json:"radius"`
	Color        [3]int     `json:"color"`
	Shininess    *float64   `json:"shininess,omitempty"`
	Reflectivity *float64   `json:"reflectivity,omitempty"`
}

type jsonLight struct {
	Type      string      `json:"type"`
	Intensity float64     `json:"intensity"`
	Position  *[3]float64 `json:"position,omitempty"`
	Direction *[3]float64 `json:"direction,omitempty"`
}

// Load reads and validates a JSON scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}

	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene: %s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes a JSON scene description.
// A missing projection distance defaults to 1 and a missing viewport to 1x1.
func Parse(data []byte) (*Scene, error) {
	var raw jsonScene
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	if raw.Canvas.Width <= 0 || raw.Canvas.Height <= 0 {
		return nil, fmt.Errorf("%w: canvas %dx%d", ErrInvalid, raw.Canvas.Width, raw.Canvas.Height)
	}

	sc := &Scene{
		CanvasWidth:             raw.Canvas.Width,
		CanvasHeight:            raw.Canvas.Height,
		ProjectionPlaneDistance: raw.ProjectionPlaneDistance,
		ViewportSize:            mathutil.Vec2{1, 1},
		CameraPosition:          mathutil.Vec3(raw.Camera),
	}
	if sc.ProjectionPlaneDistance == 0 {
		sc.ProjectionPlaneDistance = 1
	}
	if sc.ProjectionPlaneDistance < 0 {
		return nil, fmt.Errorf("%w: projection plane distance %g", ErrInvalid, sc.ProjectionPlaneDistance)
	}
	if raw.Viewport != nil {
		sc.ViewportSize = mathutil.Vec2(*raw.Viewport)
		if sc.ViewportSize[0] <= 0 || sc.ViewportSize[1] <= 0 {
			return nil, fmt.Errorf("%w: viewport %v", ErrInvalid, sc.ViewportSize)
		}
	}

	bg, err := parseColor(raw.Background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	sc.Background = bg

	for i, s := range raw.Spheres {
		sphere, err := s.toSphere()
		if err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i, err)
		}
		sc.Spheres = append(sc.Spheres, sphere)
	}

	for i, l := range raw.Lights {
		light, err := l.toLight()
		if err != nil {
			return nil, fmt.Errorf("light %d: %w", i, err)
		}
		sc.Lights = append(sc.Lights, light)
	}

	return sc, nil
}

func (s jsonSphere) toSphere() (Sphere, error) {
	if s.Radius <= 0 {
		return Sphere{}, fmt.Errorf("%w: radius %g", ErrInvalid, s.Radius)
	}
	c, err := parseColor(s.Color)
	if err != nil {
		return Sphere{}, err
	}
	if s.Shininess != nil && *s.Shininess < 0 {
		return Sphere{}, fmt.Errorf("%w: shininess %g", ErrInvalid, *s.Shininess)
	}
	if s.Reflectivity != nil && (*s.Reflectivity < 0 || *s.Reflectivity > 1) {
		return Sphere{}, fmt.Errorf("%w: reflectivity %g outside [0,1]", ErrInvalid, *s.Reflectivity)
	}
	return Sphere{
		Center: mathutil.Vec3(s.Center),
		Radius: s.Radius,
		Material: Material{
			Color:        c,
			Shininess:    s.Shininess,
			Reflectivity: s.Reflectivity,
		},
	}, nil
}

func (l jsonLight) toLight() (Light, error) {
	if l.Intensity < 0 {
		return nil, fmt.Errorf("%w: intensity %g", ErrInvalid, l.Intensity)
	}

	switch l.Type {
	case "ambient":
		return AmbientLight{Intensity: l.Intensity}, nil
	case "point":
		if l.Position == nil {
			return nil, fmt.Errorf("%w: point light without position", ErrInvalid)
		}
		return PointLight{Intensity: l.Intensity, Position: mathutil.Vec3(*l.Position)}, nil
	case "directional":
		if l.Direction == nil {
			return nil, fmt.Errorf("%w: directional light without direction", ErrInvalid)
		}
		return DirectionalLight{Intensity: l.Intensity, Direction: mathutil.Vec3(*l.Direction)}, nil
	default:
		return nil, fmt.Errorf("%w: unknown light type %q", ErrInvalid, l.Type)
	}
}

func parseColor(c [3]int) (Color, error) {
	for _, ch := range c {
		if ch < 0 || ch > 255 {
			return Color{}, fmt.Errorf("%w: color %v", ErrInvalid, c)
		}
	}
	return Color{uint8(c[0]), uint8(c[1]), uint8(c[2])}, nil
}
