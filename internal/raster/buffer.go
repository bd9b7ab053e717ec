package raster

import (
	"fmt"
	"image"
	"sync"

	"sphere-tracer/internal/scene"
)

// DefaultFill is the colour of pixels nothing has written yet.
var DefaultFill = scene.Color{R: 30, G: 30, B: 30}

// Canvas is a raster addressed in a centered, y-up coordinate system:
// (0, 0) is the middle of the image and y grows toward the top row.
type Canvas struct {
	Width  int
	Height int
	Pix    []uint8 // RGBA interleaved, len = W*H*4
}

// PixelFunc computes the colour at a centered canvas coordinate.
type PixelFunc func(x, y int) scene.Color

// NewCanvas allocates a canvas filled with DefaultFill.
func NewCanvas(w, h int) *Canvas {
	pix := make([]uint8, w*h*4)
	for i := 0; i < len(pix); i += 4 {
		pix[i] = DefaultFill.R
		pix[i+1] = DefaultFill.G
		pix[i+2] = DefaultFill.B
		pix[i+3] = 255
	}
	return &Canvas{Width: w, Height: h, Pix: pix}
}

// Bounds returns the inclusive coordinate range accepted by SetPixel.
func (c *Canvas) Bounds() (minX, maxX, minY, maxY int) {
	halfW, halfH := c.Width/2, c.Height/2
	return -halfW, c.Width - 1 - halfW, halfH - (c.Height - 1), halfH
}

func (c *Canvas) offset(x, y int) int {
	minX, maxX, minY, maxY := c.Bounds()
	if x < minX || x > maxX || y < minY || y > maxY {
		panic(fmt.Sprintf("raster: pixel (%d, %d) outside canvas [%d..%d]x[%d..%d]", x, y, minX, maxX, minY, maxY))
	}
	col := x + c.Width/2
	row := c.Height/2 - y
	return (row*c.Width + col) * 4
}

// SetPixel writes one pixel. Coordinates outside Bounds panic: they mean
// the caller's camera mapping disagrees with the canvas size.
func (c *Canvas) SetPixel(x, y int, col scene.Color) {
	i := c.offset(x, y)
	c.Pix[i] = col.R
	c.Pix[i+1] = col.G
	c.Pix[i+2] = col.B
	c.Pix[i+3] = 255
}

// At reads one pixel.
func (c *Canvas) At(x, y int) scene.Color {
	i := c.offset(x, y)
	return scene.Color{R: c.Pix[i], G: c.Pix[i+1], B: c.Pix[i+2]}
}

// SetAll evaluates fn for every pixel, splitting rows across workers.
// Rows never overlap, so workers write to Pix without locking.
// onRow, if non-nil, is called after each finished row.
func (c *Canvas) SetAll(workers int, fn PixelFunc, onRow func()) {
	if workers < 1 {
		workers = 1
	}
	minX, maxX, minY, maxY := c.Bounds()

	rowChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rowChan {
				for x := minX; x <= maxX; x++ {
					c.SetPixel(x, y, fn(x, y))
				}
				if onRow != nil {
					onRow()
				}
			}
		}()
	}

	for y := maxY; y >= minY; y-- {
		rowChan <- y
	}
	close(rowChan)

	wg.Wait()
}

// Image wraps the pixel buffer as an NRGBA image without copying.
func (c *Canvas) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    c.Pix,
		Stride: c.Width * 4,
		Rect:   image.Rect(0, 0, c.Width, c.Height),
	}
}
