package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"sphere-tracer/internal/raster"
	"sphere-tracer/internal/tracer"
)

// DefaultTitle names the output when no title argument is given.
const DefaultTitle = "untitled_render"

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	Scenes    []string `json:"scenes"`
	OutputDir string   `json:"output_dir"`
	Title     string   `json:"title"`

	// Render settings
	Format    string `json:"format"`
	Workers   int    `json:"workers"`
	MaxDepth  *int   `json:"max_depth"` // nil = tracer.DefaultMaxDepth
	Thumbnail int    `json:"thumbnail"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Scenes    []string
	OutputDir string
	Title     string
	Format    string
	Workers   int
	MaxDepth  int // negative = not set; 0 is a valid depth
	Thumbnail int
}

// Resolve applies flag overrides and fills in defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) error {
	// CLI flags override config file
	if len(flags.Scenes) > 0 {
		c.Scenes = flags.Scenes
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Title != "" {
		c.Title = flags.Title
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.MaxDepth >= 0 {
		depth := flags.MaxDepth
		c.MaxDepth = &depth
	}
	if flags.Thumbnail > 0 {
		c.Thumbnail = flags.Thumbnail
	}

	// Defaults
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	if c.Title == "" {
		c.Title = DefaultTitle
	}
	if c.Format == "" {
		c.Format = string(raster.FormatPNG)
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.MaxDepth == nil {
		depth := tracer.DefaultMaxDepth
		c.MaxDepth = &depth
	}
	if *c.MaxDepth < 0 {
		return fmt.Errorf("config: negative max_depth %d", *c.MaxDepth)
	}

	f, err := raster.ParseFormat(c.Format)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	c.Format = string(f)

	return nil
}
