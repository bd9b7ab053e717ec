package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"sphere-tracer/internal/scene"
	"sphere-tracer/internal/tracer"
)

func main() {
	scenePath := flag.String("scene", "", "Scene JSON file (default: built-in scene)")
	x := flag.Int("x", 0, "Canvas x, centered")
	y := flag.Int("y", 0, "Canvas y, centered, up is positive")
	depth := flag.Int("depth", tracer.DefaultMaxDepth, "Reflection depth")
	flag.Parse()

	sc := scene.Default()
	if *scenePath != "" {
		var err error
		sc, err = scene.Load(*scenePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Printf("Scene: %dx%d canvas, %d spheres, %d lights\n", sc.CanvasWidth, sc.CanvasHeight, len(sc.Spheres), len(sc.Lights))
	for i, l := range sc.Lights {
		fmt.Printf("  Light[%d]: %T intensity=%.2f\n", i, l, l.LightIntensity())
	}

	tr := tracer.New(sc)
	dir := tracer.PixelToDirection(sc, *x, *y)
	fmt.Printf("Pixel (%d, %d) → direction (%.4f, %.4f, %.4f)\n", *x, *y, dir[0], dir[1], dir[2])

	s, dist, ok := tracer.ClosestIntersection(sc.Spheres, sc.CameraPosition, dir, sc.ProjectionPlaneDistance, math.Inf(1))
	if !ok {
		fmt.Printf("  Miss → background %v\n", sc.Background)
	} else {
		point := sc.CameraPosition.Add(dir.Scale(dist))
		normal := point.Sub(s.Center).Normalize()
		light := tr.ComputeLighting(point, normal, dir.Neg(), s.Material.Shininess)

		fmt.Printf("  Hit sphere center=%v radius=%.2f at t=%.4f\n", s.Center, s.Radius, dist)
		fmt.Printf("    Point:  (%.4f, %.4f, %.4f)\n", point[0], point[1], point[2])
		fmt.Printf("    Normal: (%.4f, %.4f, %.4f)\n", normal[0], normal[1], normal[2])
		fmt.Printf("    Lighting factor: %.4f\n", light)
		if m := s.Material; m.Shininess != nil {
			fmt.Printf("    Shininess: %.1f\n", *m.Shininess)
		}
		if m := s.Material; m.Reflectivity != nil {
			fmt.Printf("    Reflectivity: %.2f\n", *m.Reflectivity)
		}
	}

	c := tr.PixelColor(*x, *y, *depth)
	stats := tr.Stats()
	fmt.Printf("Color: (%d, %d, %d)\n", c.R, c.G, c.B)
	fmt.Printf("Rays: %d camera, %d reflected, %d shadow\n", stats.CameraRays, stats.ReflectedRays, stats.ShadowRays)
}
