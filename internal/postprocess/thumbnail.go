package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// Thumbnail scales img so its longer side is size pixels, keeping the
// aspect ratio. Images already that small are returned unchanged.
func Thumbnail(img image.Image, size int) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if size <= 0 || (w <= size && h <= size) {
		dst := image.NewNRGBA(image.Rect(0, 0, w, h))
		draw.Copy(dst, image.Point{}, img, b, draw.Src, nil)
		return dst
	}

	tw, th := size, size
	if w > h {
		th = max(1, h*size/w)
	} else if h > w {
		tw = max(1, w*size/h)
	}

	// Render output is opaque, so no premultiply pass is needed.
	dst := image.NewNRGBA(image.Rect(0, 0, tw, th))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
