package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"sphere-tracer/internal/batch"
	"sphere-tracer/internal/config"
	"sphere-tracer/internal/raster"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	scenes := flag.String("scene", "", "Comma-separated scene JSON files (default: built-in scene)")
	outputDir := flag.String("output", "", "Output directory (default: .)")
	format := flag.String("format", "", "Image format: png, webp or tga (default: png)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	depth := flag.Int("depth", -1, "Reflection depth (default: 4)")
	thumb := flag.Int("thumb", 0, "Also write a thumbnail with this longest side")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	var sceneFiles []string
	if *scenes != "" {
		sceneFiles = strings.Split(*scenes, ",")
	}

	// CLI flags override config file
	err := cfg.Resolve(config.Flags{
		Scenes:    sceneFiles,
		OutputDir: *outputDir,
		Title:     flag.Arg(0),
		Format:    *format,
		Workers:   *workers,
		MaxDepth:  *depth,
		Thumbnail: *thumb,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	jobs := batch.JobsFor(cfg.Scenes, cfg.Title)

	fmt.Printf("Sphere ray tracer → %s\n", strings.ToUpper(cfg.Format))
	fmt.Printf("Scenes: %d, Workers: %d, Depth: %d\n", len(jobs), cfg.Workers, *cfg.MaxDepth)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	batchCfg := batch.Config{
		OutputDir: cfg.OutputDir,
		Format:    raster.Format(cfg.Format),
		Workers:   cfg.Workers,
		MaxDepth:  *cfg.MaxDepth,
		Thumbnail: cfg.Thumbnail,
		Progress:  os.Stdout,
	}

	results := batch.Run(batchCfg, jobs)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
		}
	}
	fmt.Printf("Rendered: %d/%d\n", success, len(jobs))

	// Write manifest only for batches
	if len(jobs) > 1 {
		manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
		os.MkdirAll(cfg.OutputDir, 0755)
		if err := batch.WriteManifest(manifestPath, results); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
		} else {
			fmt.Printf("Manifest: %s\n", manifestPath)
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}
