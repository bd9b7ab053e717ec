package raster

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// Format is a lossless output encoding.
type Format string

const (
	FormatPNG  Format = "png"
	FormatWebP Format = "webp"
	FormatTGA  Format = "tga"
)

// ErrUnknownFormat is returned for formats other than png, webp and tga.
var ErrUnknownFormat = errors.New("unknown image format")

// ParseFormat accepts a format name or extension, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.TrimPrefix(strings.ToLower(s), ".")); f {
	case FormatPNG, FormatWebP, FormatTGA:
		return f, nil
	default:
		return "", fmt.Errorf("raster: %w: %q", ErrUnknownFormat, s)
	}
}

// Ext returns the file extension including the dot.
func (f Format) Ext() string {
	return "." + string(f)
}

// Encode writes img to w. Every format keeps 8 bits per channel.
func Encode(w io.Writer, img image.Image, f Format) error {
	var err error
	switch f {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatWebP:
		err = nativewebp.Encode(w, img, nil)
	case FormatTGA:
		err = tga.Encode(w, img)
	default:
		return fmt.Errorf("raster: %w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return fmt.Errorf("raster: encode %s: %w", f, err)
	}
	return nil
}

// Save encodes img to path, creating parent directories.
func Save(path string, img image.Image, f Format) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("raster: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: %w", err)
	}

	if err := Encode(file, img, f); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
