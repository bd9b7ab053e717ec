package raster

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/webp"

	"sphere-tracer/internal/scene"
)

func testCanvas() *Canvas {
	c := NewCanvas(6, 4)
	c.SetAll(2, func(x, y int) scene.Color {
		return scene.Color{R: uint8(40 * (x + 3)), G: uint8(60 * (y + 1)), B: 99}
	}, nil)
	return c
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"png", FormatPNG},
		{".PNG", FormatPNG},
		{"WebP", FormatWebP},
		{"tga", FormatTGA},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, %v", tt.in, got, err)
		}
	}

	if _, err := ParseFormat("jpeg"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("jpeg err = %v, want ErrUnknownFormat", err)
	}
}

func TestEncode_Lossless(t *testing.T) {
	decoders := map[Format]func(*bytes.Reader) (image.Image, error){
		FormatPNG:  func(r *bytes.Reader) (image.Image, error) { return png.Decode(r) },
		FormatWebP: func(r *bytes.Reader) (image.Image, error) { return webp.Decode(r) },
		FormatTGA:  func(r *bytes.Reader) (image.Image, error) { return tga.Decode(r) },
	}

	src := testCanvas()

	for f, decode := range decoders {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, src.Image(), f); err != nil {
				t.Fatalf("Encode: %v", err)
			}

			img, err := decode(bytes.NewReader(buf.Bytes()))
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if img.Bounds().Dx() != src.Width || img.Bounds().Dy() != src.Height {
				t.Fatalf("decoded size %v", img.Bounds())
			}

			for y := 0; y < src.Height; y++ {
				for x := 0; x < src.Width; x++ {
					r, g, b, _ := img.At(x, y).RGBA()
					i := (y*src.Width + x) * 4
					if uint8(r>>8) != src.Pix[i] || uint8(g>>8) != src.Pix[i+1] || uint8(b>>8) != src.Pix[i+2] {
						t.Fatalf("pixel (%d,%d) = %d,%d,%d, want %v", x, y, r>>8, g>>8, b>>8, src.Pix[i:i+3])
					}
				}
			}
		})
	}
}

func TestEncode_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, testCanvas().Image(), Format("bmp")); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("err = %v, want ErrUnknownFormat", err)
	}
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.png")
	if err := Save(path, testCanvas().Image(), FormatPNG); err != nil {
		t.Fatalf("Save: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("DecodeConfig: %v", err)
	}
	if cfg.Width != 6 || cfg.Height != 4 {
		t.Errorf("saved size %dx%d", cfg.Width, cfg.Height)
	}
}
