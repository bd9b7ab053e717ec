package scene

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const sampleScene = `{
  "canvas": {"width": 64, "height": 48},
  "projection_plane_distance": 1,
  "viewport": [1, 0.75],
  "camera": [0, 1, -5],
  "background": [60, 56, 54],
  "spheres": [
    {"center": [0, -1, 3], "radius": 1, "color": [255, 255, 0]},
    {"center": [2, 0, 4], "radius": 1, "color": [0, 255, 255], "shininess": 500, "reflectivity": 0.3}
  ],
  "lights": [
    {"type": "ambient", "intensity": 0.2},
    {"type": "point", "intensity": 0.6, "position": [2, 1, 0]},
    {"type": "directional", "intensity": 0.2, "direction": [1, 4, 4]}
  ]
}`

func TestParse(t *testing.T) {
	sc, err := Parse([]byte(sampleScene))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if sc.CanvasWidth != 64 || sc.CanvasHeight != 48 {
		t.Errorf("canvas = %dx%d", sc.CanvasWidth, sc.CanvasHeight)
	}
	if sc.ViewportSize[1] != 0.75 {
		t.Errorf("viewport = %v", sc.ViewportSize)
	}
	if sc.Background != (Color{60, 56, 54}) {
		t.Errorf("background = %v", sc.Background)
	}
	if len(sc.Spheres) != 2 {
		t.Fatalf("spheres = %d, want 2", len(sc.Spheres))
	}

	matte := sc.Spheres[0].Material
	if matte.Shininess != nil || matte.Reflectivity != nil {
		t.Errorf("matte sphere should have no optional params, got %+v", matte)
	}
	shiny := sc.Spheres[1].Material
	if shiny.Shininess == nil || *shiny.Shininess != 500 {
		t.Errorf("shininess = %v", shiny.Shininess)
	}
	if shiny.Reflectivity == nil || *shiny.Reflectivity != 0.3 {
		t.Errorf("reflectivity = %v", shiny.Reflectivity)
	}

	if len(sc.Lights) != 3 {
		t.Fatalf("lights = %d, want 3", len(sc.Lights))
	}
	if _, ok := sc.Lights[0].(AmbientLight); !ok {
		t.Errorf("light 0 is %T", sc.Lights[0])
	}
	if p, ok := sc.Lights[1].(PointLight); !ok || p.Position[0] != 2 {
		t.Errorf("light 1 = %#v", sc.Lights[1])
	}
	if d, ok := sc.Lights[2].(DirectionalLight); !ok || d.Direction[2] != 4 {
		t.Errorf("light 2 = %#v", sc.Lights[2])
	}
}

func TestParse_Defaults(t *testing.T) {
	sc, err := Parse([]byte(`{"canvas": {"width": 10, "height": 10}}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if sc.ProjectionPlaneDistance != 1 {
		t.Errorf("projection distance = %v, want 1", sc.ProjectionPlaneDistance)
	}
	if sc.ViewportSize[0] != 1 || sc.ViewportSize[1] != 1 {
		t.Errorf("viewport = %v, want 1x1", sc.ViewportSize)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"zero canvas", `{"canvas": {"width": 0, "height": 10}}`},
		{"negative radius", `{"canvas": {"width": 1, "height": 1}, "spheres": [{"radius": -1}]}`},
		{"reflectivity above one", `{"canvas": {"width": 1, "height": 1}, "spheres": [{"radius": 1, "reflectivity": 1.5}]}`},
		{"color out of range", `{"canvas": {"width": 1, "height": 1}, "spheres": [{"radius": 1, "color": [256, 0, 0]}]}`},
		{"negative intensity", `{"canvas": {"width": 1, "height": 1}, "lights": [{"type": "ambient", "intensity": -0.1}]}`},
		{"unknown light", `{"canvas": {"width": 1, "height": 1}, "lights": [{"type": "spot", "intensity": 1}]}`},
		{"point without position", `{"canvas": {"width": 1, "height": 1}, "lights": [{"type": "point", "intensity": 1}]}`},
		{"bad viewport", `{"canvas": {"width": 1, "height": 1}, "viewport": [0, 1]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.json))
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("err = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte(`{"canvas":`))
	if err == nil || errors.Is(err, ErrInvalid) {
		t.Errorf("err = %v, want a decode error", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.json")
	if err := os.WriteFile(path, []byte(sampleScene), 0644); err != nil {
		t.Fatal(err)
	}

	sc, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(sc.Spheres) != 2 {
		t.Errorf("spheres = %d", len(sc.Spheres))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDefault(t *testing.T) {
	sc := Default()
	if len(sc.Spheres) != 5 || len(sc.Lights) != 3 {
		t.Fatalf("default scene has %d spheres, %d lights", len(sc.Spheres), len(sc.Lights))
	}
	if sc.Spheres[0].Material.Reflectivity != nil {
		t.Error("yellow sphere should not be reflective")
	}
	for i, s := range sc.Spheres {
		if s.Radius <= 0 {
			t.Errorf("sphere %d radius %v", i, s.Radius)
		}
	}
}
