package surface

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"sync"

	"github.com/vovakirdan/tui-golf/internal/games/golf/course"
)

// ImageSource provides template graphics by file name.
type ImageSource interface {
	Image(file string) (image.Image, error)
}

// Painter rasterizes holes. The lawn is filled first and every element is
// drawn on top in placement order, so later elements win.
type Painter struct {
	palette Palette
	width   int
	height  int
	images  ImageSource
}

// PainterOption configures a Painter.
type PainterOption func(*Painter)

// WithImages draws elements from their template graphics instead of
// flat palette colors.
func WithImages(src ImageSource) PainterOption {
	return func(p *Painter) {
		p.images = src
	}
}

// NewPainter creates a painter for a playfield of the given size.
func NewPainter(pal Palette, width, height int, opts ...PainterOption) *Painter {
	p := &Painter{palette: pal, width: width, height: height}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Paint renders the hole and returns its collision surface.
func (p *Painter) Paint(h *course.Hole) (*Raster, error) {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	fillRect(img, img.Rect, p.palette.Lawn)

	for _, e := range h.Elements {
		if p.images != nil {
			src, err := p.images.Image(e.Template.File)
			if err != nil {
				return nil, fmt.Errorf("surface: element %d: %w", e.ID, err)
			}
			drawRegion(img, src, e)
			continue
		}
		r := e.Rect()
		fillRect(img, image.Rect(r.X, r.Y, r.Right(), r.Bottom()), p.palette.Color(ClassOf(e.Template)))
	}
	return NewRaster(img, p.palette), nil
}

func fillRect(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	r = r.Intersect(img.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

// drawRegion copies the element's mode from its template image, mirrored
// per the placement flags. Fully transparent pixels are skipped.
func drawRegion(dst *image.RGBA, src image.Image, e course.Element) {
	t := e.Template
	sb := src.Bounds()
	for dy := 0; dy < t.Height; dy++ {
		for dx := 0; dx < t.Width; dx++ {
			sx, sy := dx, dy
			if e.Flip&course.FlipH != 0 {
				sx = t.Width - 1 - dx
			}
			if e.Flip&course.FlipV != 0 {
				sy = t.Height - 1 - dy
			}
			c := color.RGBAModel.Convert(src.At(sb.Min.X+t.Offset+sx, sb.Min.Y+sy)).(color.RGBA)
			if c.A == 0 {
				continue
			}
			x, y := e.X+dx, e.Y+dy
			if (image.Point{X: x, Y: y}).In(dst.Rect) {
				dst.SetRGBA(x, y, c)
			}
		}
	}
}

// FSImages loads PNG template graphics from a file system and caches them.
type FSImages struct {
	fsys  fs.FS
	mu    sync.Mutex
	cache map[string]image.Image
}

// NewFSImages creates an image source over fsys.
func NewFSImages(fsys fs.FS) *FSImages {
	return &FSImages{fsys: fsys, cache: make(map[string]image.Image)}
}

// Image returns the decoded graphics file.
func (s *FSImages) Image(file string) (image.Image, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if img, ok := s.cache[file]; ok {
		return img, nil
	}
	f, err := s.fsys.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", file, err)
	}
	s.cache[file] = img
	return img, nil
}
