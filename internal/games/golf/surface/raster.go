package surface

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/vovakirdan/tui-golf/internal/core"
	"github.com/vovakirdan/tui-golf/internal/games/golf/course"
)

// Raster is the collision surface of one painted hole.
// It is immutable once built.
type Raster struct {
	img     *image.RGBA
	palette Palette
	open    [5]color.RGBA
}

// NewRaster wraps an image. Non-RGBA images are converted once.
func NewRaster(img image.Image, pal Palette) *Raster {
	rgba, ok := img.(*image.RGBA)
	if !ok {
		b := img.Bounds()
		rgba = image.NewRGBA(b)
		draw.Draw(rgba, b, img, b.Min, draw.Src)
	}
	return &Raster{img: rgba, palette: pal, open: pal.open()}
}

// Bounds returns the playable area in pixels.
func (r *Raster) Bounds() core.Rect {
	b := r.img.Bounds()
	return core.NewRect(b.Min.X, b.Min.Y, b.Dx(), b.Dy())
}

// Blocked reports whether the ball may not occupy the pixel.
// Pixels outside the image are always blocked.
func (r *Raster) Blocked(x, y int) bool {
	if !(image.Point{X: x, Y: y}).In(r.img.Rect) {
		return true
	}
	c := r.img.RGBAAt(x, y)
	for _, o := range r.open {
		if c == o {
			return false
		}
	}
	return true
}

// SurfaceType returns the ground type at the pixel, normal if unmatched.
func (r *Raster) SurfaceType(x, y int) course.SurfaceType {
	if !(image.Point{X: x, Y: y}).In(r.img.Rect) {
		return course.SurfaceNormal
	}
	c := r.img.RGBAAt(x, y)
	for i := 0; i < 3; i++ {
		if c == r.open[i] {
			return course.SurfaceType(i)
		}
	}
	return course.SurfaceNormal
}

// ClassAt returns the palette class of the pixel for rendering.
func (r *Raster) ClassAt(x, y int) Class {
	if !(image.Point{X: x, Y: y}).In(r.img.Rect) {
		return ClassUnknown
	}
	return r.palette.Classify(r.img.RGBAAt(x, y))
}

// Image returns the underlying image. Callers must not modify it.
func (r *Raster) Image() image.Image {
	return r.img
}
