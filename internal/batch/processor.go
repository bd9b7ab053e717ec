package batch

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"sphere-tracer/internal/postprocess"
	"sphere-tracer/internal/raster"
	"sphere-tracer/internal/scene"
	"sphere-tracer/internal/tracer"
)

// Config holds all shared settings for a batch run.
type Config struct {
	OutputDir string
	Format    raster.Format
	Workers   int
	MaxDepth  int
	Thumbnail int       // longest side of the preview; 0 = none
	Progress  io.Writer // nil = silent
}

// Job is one scene to render. An empty ScenePath renders scene.Default().
type Job struct {
	ScenePath string
	Title     string
}

// Result holds the outcome of rendering one job.
type Result struct {
	Title     string
	ScenePath string
	Image     string
	Thumbnail string
	Width     int
	Height    int
	Rays      tracer.Stats
	Elapsed   time.Duration
	Success   bool
	Error     string
}

// JobsFor builds one job per scene file. A single scene (or none) is
// written under title; several scenes are named after their files.
func JobsFor(scenes []string, title string) []Job {
	if len(scenes) == 0 {
		return []Job{{Title: title}}
	}
	if len(scenes) == 1 {
		return []Job{{ScenePath: scenes[0], Title: title}}
	}

	jobs := make([]Job, len(scenes))
	for i, s := range scenes {
		base := filepath.Base(s)
		jobs[i] = Job{ScenePath: s, Title: strings.TrimSuffix(base, filepath.Ext(base))}
	}
	return jobs
}

// Run renders every job in order. Each render spreads its rows across
// cfg.Workers goroutines.
func Run(cfg Config, jobs []Job) []Result {
	results := make([]Result, len(jobs))
	for i, job := range jobs {
		results[i] = processJob(cfg, job)
		if cfg.Progress != nil {
			r := results[i]
			if r.Success {
				fmt.Fprintf(cfg.Progress, "  %s: %dx%d in %.1fs, %d rays\n", r.Image, r.Width, r.Height, r.Elapsed.Seconds(), r.Rays.Total())
			} else {
				fmt.Fprintf(cfg.Progress, "  %s: FAILED: %s\n", r.Title, r.Error)
			}
		}
	}
	return results
}

func processJob(cfg Config, job Job) Result {
	res := Result{Title: job.Title, ScenePath: job.ScenePath}

	sc := scene.Default()
	if job.ScenePath != "" {
		var err error
		sc, err = scene.Load(job.ScenePath)
		if err != nil {
			res.Error = err.Error()
			return res
		}
	}
	res.Width, res.Height = sc.CanvasWidth, sc.CanvasHeight

	start := time.Now()
	canvas, stats := Render(sc, cfg.Workers, cfg.MaxDepth, cfg.Progress)
	res.Elapsed = time.Since(start)
	res.Rays = stats

	image := job.Title + cfg.Format.Ext()
	if err := raster.Save(filepath.Join(cfg.OutputDir, image), canvas.Image(), cfg.Format); err != nil {
		res.Error = err.Error()
		return res
	}
	res.Image = image

	if cfg.Thumbnail > 0 {
		thumb := postprocess.Thumbnail(canvas.Image(), cfg.Thumbnail)
		name := job.Title + "_thumb" + cfg.Format.Ext()
		if err := raster.Save(filepath.Join(cfg.OutputDir, name), thumb, cfg.Format); err != nil {
			res.Error = fmt.Sprintf("thumbnail: %v", err)
			return res
		}
		res.Thumbnail = name
	}

	res.Success = true
	return res
}

// Render traces every pixel of sc into a new canvas.
func Render(sc *scene.Scene, workers, maxDepth int, progress io.Writer) (*raster.Canvas, tracer.Stats) {
	tr := tracer.New(sc)
	canvas := raster.NewCanvas(sc.CanvasWidth, sc.CanvasHeight)

	total := sc.CanvasHeight
	var rows atomic.Int64
	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	if progress != nil {
		go func() {
			ticker := time.NewTicker(2 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := rows.Load()
					if p > 0 {
						elapsed := time.Since(start).Seconds()
						rate := float64(p) / elapsed
						fmt.Fprintf(progress, "  [%d/%d] %.1f rows/sec\n", p, total, rate)
					}
				}
			}
		}()
	}

	canvas.SetAll(workers, func(x, y int) scene.Color {
		return tr.PixelColor(x, y, maxDepth)
	}, func() { rows.Add(1) })

	close(done)

	return canvas, tr.Stats()
}
