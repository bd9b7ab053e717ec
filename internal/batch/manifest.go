package batch

import (
	"encoding/json"
	"os"
)

// ManifestEntry represents one render in the output manifest.
type ManifestEntry struct {
	Title     string  `json:"title"`
	Scene     string  `json:"scene,omitempty"`
	Image     string  `json:"image,omitempty"`
	Thumbnail string  `json:"thumbnail,omitempty"`
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	Rays      int64   `json:"rays"`
	Seconds   float64 `json:"seconds"`
	Error     string  `json:"error,omitempty"`
}

// WriteManifest writes manifest.json describing every result.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		entries[i] = ManifestEntry{
			Title:     r.Title,
			Scene:     r.ScenePath,
			Image:     r.Image,
			Thumbnail: r.Thumbnail,
			Width:     r.Width,
			Height:    r.Height,
			Rays:      r.Rays.Total(),
			Seconds:   r.Elapsed.Seconds(),
			Error:     r.Error,
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
