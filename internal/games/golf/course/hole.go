package course

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/tui-golf/internal/core"
)

// HoleCount is the number of holes on every course.
const HoleCount = 18

// Flip holds the 2-bit flip field of a placed element.
type Flip uint8

const (
	FlipH Flip = 1 << iota // Mirror horizontally
	FlipV                  // Mirror vertically
)

// Apply mirrors a force vector: FlipH negates X, FlipV negates Y.
func (f Flip) Apply(v r2.Vec) r2.Vec {
	if f&FlipH != 0 {
		v.X = -v.X
	}
	if f&FlipV != 0 {
		v.Y = -v.Y
	}
	return v
}

// Placement is one template instance on a hole.
// Flip applies to the graphics, VectorFlip independently to the force vector.
type Placement struct {
	ID         int
	X, Y       int
	Flip       Flip
	VectorFlip Flip
}

// ZoneKind distinguishes plain zones from force zones.
type ZoneKind int

const (
	ZonePlain ZoneKind = iota
	ZoneForce
)

// Zone is a rectangular area of a hole. Force zones also carry the
// constant vector added to the ball's velocity while it is inside.
type Zone struct {
	Kind  ZoneKind
	Rect  core.Rect
	Force r2.Vec
}

// Center returns the zone center in integer pixels.
func (z Zone) Center() (int, int) {
	return z.Rect.Center()
}

// Contains reports whether the pixel lies inside the zone.
func (z Zone) Contains(x, y int) bool {
	return z.Rect.Contains(x, y)
}

// Element is a placement resolved against its template.
type Element struct {
	Placement
	Template Template
}

// Rect returns the area the element covers.
func (e Element) Rect() core.Rect {
	return core.NewRect(e.X, e.Y, e.Template.Width, e.Template.Height)
}

// Hole is the read-only geometry of one hole, derived once from its placements.
type Hole struct {
	Par      int
	Elements []Element

	StartZones []Zone
	Cups       []Zone
	Ups        []Zone
	Downs      []Zone
}

// NewHole resolves placements against the catalog and derives the zones:
// start zones are elements whose name ends in "start", cups are elements
// named "hole", and elements with a force vector join the up or down set.
// Zones are listed from the last placed element to the first, so the
// topmost element wins where zones overlap.
func NewHole(cat *Catalog, par int, placements []Placement) (*Hole, error) {
	h := &Hole{Par: par, Elements: make([]Element, 0, len(placements))}
	for _, p := range placements {
		t, ok := cat.Lookup(p.ID)
		if !ok {
			return nil, fmt.Errorf("%w: id %d", ErrUnknownTemplate, p.ID)
		}
		h.Elements = append(h.Elements, Element{Placement: p, Template: t})
	}

	for i := len(h.Elements) - 1; i >= 0; i-- {
		e := h.Elements[i]
		rect := e.Rect()
		switch {
		case strings.HasSuffix(e.Template.Name, "start"):
			h.StartZones = append(h.StartZones, Zone{Kind: ZonePlain, Rect: rect})
		case e.Template.Name == "hole":
			h.Cups = append(h.Cups, Zone{Kind: ZonePlain, Rect: rect})
		}

		force := Zone{Kind: ZoneForce, Rect: rect, Force: e.VectorFlip.Apply(e.Template.Force)}
		switch e.Template.ForceKind() {
		case SurfaceUp:
			h.Ups = append(h.Ups, force)
		case SurfaceDown:
			h.Downs = append(h.Downs, force)
		}
	}
	return h, nil
}

// Placements returns the placements in their original order.
func (h *Hole) Placements() []Placement {
	out := make([]Placement, len(h.Elements))
	for i, e := range h.Elements {
		out[i] = e.Placement
	}
	return out
}

// Validate reports whether the hole can be played.
func (h *Hole) Validate() error {
	switch {
	case h.Par < 1:
		return fmt.Errorf("%w: par %d", ErrIncompleteHole, h.Par)
	case len(h.StartZones) == 0:
		return fmt.Errorf("%w: no start zone", ErrIncompleteHole)
	case len(h.Cups) == 0:
		return fmt.Errorf("%w: no cup", ErrIncompleteHole)
	}
	return nil
}

// ForceAt returns the first force zone of the given type containing the pixel.
func (h *Hole) ForceAt(x, y int, t SurfaceType) (Zone, bool) {
	var zones []Zone
	switch t {
	case SurfaceUp:
		zones = h.Ups
	case SurfaceDown:
		zones = h.Downs
	default:
		return Zone{}, false
	}
	for _, z := range zones {
		if z.Contains(x, y) {
			return z, true
		}
	}
	return Zone{}, false
}

// StartZoneAt returns the start zone containing the pixel.
func (h *Hole) StartZoneAt(x, y int) (Zone, bool) {
	for _, z := range h.StartZones {
		if z.Contains(x, y) {
			return z, true
		}
	}
	return Zone{}, false
}
