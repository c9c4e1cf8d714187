// Package surface classifies the pixels of a painted hole. Obstacles are
// encoded purely as color: any pixel that is not one of the palette's
// open colors blocks the ball.
package surface

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-golf/internal/config"
	"github.com/vovakirdan/tui-golf/internal/games/golf/course"
)

// Class is the role of a palette color.
type Class int

const (
	ClassUnknown Class = iota
	ClassLawn
	ClassFairway
	ClassDown
	ClassUp
	ClassCup
	ClassTee
	ClassWall
)

// Palette holds the colors a hole is painted with.
type Palette struct {
	Lawn    color.RGBA
	Fairway color.RGBA
	Down    color.RGBA
	Up      color.RGBA
	Cup     color.RGBA
	Tee     color.RGBA
	Wall    color.RGBA
}

// ParsePalette converts the configured hex colors.
// The open colors must be distinct or surface types would be ambiguous.
func ParsePalette(cfg config.PaletteConfig) (Palette, error) {
	var p Palette
	fields := []struct {
		name string
		hex  string
		dst  *color.RGBA
	}{
		{"lawn", cfg.Lawn, &p.Lawn},
		{"fairway", cfg.Fairway, &p.Fairway},
		{"down", cfg.Down, &p.Down},
		{"up", cfg.Up, &p.Up},
		{"cup", cfg.Cup, &p.Cup},
		{"tee", cfg.Tee, &p.Tee},
		{"wall", cfg.Wall, &p.Wall},
	}
	for _, f := range fields {
		c, err := colorful.Hex(f.hex)
		if err != nil {
			return Palette{}, fmt.Errorf("surface: palette %s: %w", f.name, err)
		}
		r, g, b := c.RGB255()
		*f.dst = color.RGBA{R: r, G: g, B: b, A: 0xff}
	}

	open := p.open()
	for i := range open {
		for j := i + 1; j < len(open); j++ {
			if open[i] == open[j] {
				return Palette{}, fmt.Errorf("surface: palette colors %d and %d are identical", i, j)
			}
		}
	}
	for _, c := range open {
		if c == p.Lawn || c == p.Wall {
			return Palette{}, fmt.Errorf("surface: blocking color %v is also an open color", c)
		}
	}
	return p, nil
}

// DefaultPalette returns the palette of the default configuration.
func DefaultPalette() Palette {
	p, err := ParsePalette(config.DefaultGolfConfig().Palette)
	if err != nil {
		panic(err)
	}
	return p
}

// open returns the non-colliding colors. The first three are the
// normal, down and up surfaces in that order.
func (p Palette) open() [5]color.RGBA {
	return [5]color.RGBA{p.Fairway, p.Down, p.Up, p.Cup, p.Tee}
}

// Classify returns the role of a color.
func (p Palette) Classify(c color.RGBA) Class {
	switch c {
	case p.Fairway:
		return ClassFairway
	case p.Down:
		return ClassDown
	case p.Up:
		return ClassUp
	case p.Cup:
		return ClassCup
	case p.Tee:
		return ClassTee
	case p.Lawn:
		return ClassLawn
	case p.Wall:
		return ClassWall
	}
	return ClassUnknown
}

// Color returns the palette color for a class.
func (p Palette) Color(c Class) color.RGBA {
	switch c {
	case ClassFairway:
		return p.Fairway
	case ClassDown:
		return p.Down
	case ClassUp:
		return p.Up
	case ClassCup:
		return p.Cup
	case ClassTee:
		return p.Tee
	case ClassWall:
		return p.Wall
	}
	return p.Lawn
}

// ClassOf returns the color class an element is painted in when no
// template image is available.
func ClassOf(t course.Template) Class {
	switch {
	case t.Name == "hole":
		return ClassCup
	case strings.HasSuffix(t.Name, "start"):
		return ClassTee
	case strings.HasPrefix(t.Name, "wall") || strings.HasPrefix(t.Name, "block"):
		return ClassWall
	}
	switch t.ForceKind() {
	case course.SurfaceUp:
		return ClassUp
	case course.SurfaceDown:
		return ClassDown
	}
	return ClassFairway
}

