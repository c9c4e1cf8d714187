// Package course models golf courses: the shared element templates, the
// elements placed on each hole and the zones derived from them.
package course

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"
)

// SurfaceType classifies the ground a template mode represents.
type SurfaceType int

const (
	SurfaceNormal SurfaceType = iota
	SurfaceDown
	SurfaceUp
)

// String returns the surface name.
func (s SurfaceType) String() string {
	switch s {
	case SurfaceNormal:
		return "normal"
	case SurfaceDown:
		return "down"
	case SurfaceUp:
		return "up"
	default:
		return "unknown"
	}
}

// templateFields is the number of comma separated values per template line.
const templateFields = 15

// Template is one mode of a reusable course element.
// Templates sharing a name are the normal/down/up modes of the same piece,
// laid out side by side in the graphics file at Offset.
type Template struct {
	ID     int
	Name   string
	File   string
	Type   SurfaceType
	Offset int
	Width  int
	Height int
	HFlip  bool // Can be flipped horizontally
	VFlip  bool // Can be flipped vertically
	Force  r2.Vec
}

// HasForce reports whether the template pushes the ball.
func (t Template) HasForce() bool {
	return t.Force.X != 0 || t.Force.Y != 0
}

// ForceKind returns which force-zone set the template belongs to, or
// SurfaceNormal if it exerts no force. A non-zero vector joins the up set
// when its mode is up or its name contains "up" after the first character,
// and the down set likewise.
func (t Template) ForceKind() SurfaceType {
	if !t.HasForce() {
		return SurfaceNormal
	}
	switch {
	case t.Type == SurfaceUp || strings.Index(t.Name, "up") > 0:
		return SurfaceUp
	case t.Type == SurfaceDown || strings.Index(t.Name, "down") > 0:
		return SurfaceDown
	}
	return SurfaceNormal
}

// Catalog is the set of element templates for a session, indexed by id.
// It is built once at startup and passed to everything that resolves
// placed elements.
type Catalog struct {
	byID  map[int]Template
	order []int
}

// NewCatalog creates a catalog from templates. Duplicate ids are rejected.
func NewCatalog(templates ...Template) (*Catalog, error) {
	c := &Catalog{byID: make(map[int]Template, len(templates))}
	for _, t := range templates {
		if _, dup := c.byID[t.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %d", ErrMalformedTemplate, t.ID)
		}
		c.byID[t.ID] = t
		c.order = append(c.order, t.ID)
	}
	return c, nil
}

// ReadTemplates parses the element template format:
//
//	file,name,width,height,hflip,vflip,id,vx,vy,id,vx,vy,id,vx,vy
//
// The three id/vx/vy groups are the normal, down and up modes. An empty id
// means the mode does not exist. Lines starting with '#' are ignored.
func ReadTemplates(r io.Reader) (*Catalog, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = templateFields
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	var templates []Template
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			line := 0
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				line = pe.Line
			}
			return nil, &ParseError{Line: line, Err: fmt.Errorf("%w: %v", ErrMalformedTemplate, err)}
		}
		line, _ := cr.FieldPos(0)
		modes, err := parseTemplateRecord(rec, line)
		if err != nil {
			return nil, err
		}
		templates = append(templates, modes...)
	}

	cat, err := NewCatalog(templates...)
	if err != nil {
		return nil, err
	}
	return cat, nil
}

func parseTemplateRecord(rec []string, line int) ([]Template, error) {
	base := Template{File: rec[0], Name: rec[1]}
	if base.File == "" || base.Name == "" {
		return nil, parseErr(line, ErrMalformedTemplate, "missing file or name")
	}

	ints := make([]int, 4)
	for i := range ints {
		v, err := strconv.Atoi(strings.TrimSpace(rec[2+i]))
		if err != nil {
			return nil, parseErr(line, ErrMalformedTemplate, "field %d: %v", 3+i, err)
		}
		ints[i] = v
	}
	base.Width, base.Height = ints[0], ints[1]
	base.HFlip, base.VFlip = ints[2] > 0, ints[3] > 0
	if base.Width <= 0 || base.Height <= 0 {
		return nil, parseErr(line, ErrMalformedTemplate, "size %dx%d", base.Width, base.Height)
	}

	var modes []Template
	for mode := 0; mode < 3; mode++ {
		f := rec[6+mode*3 : 9+mode*3]
		idText := strings.TrimSpace(f[0])
		if idText == "" {
			continue
		}
		id, err := strconv.Atoi(idText)
		if err != nil {
			return nil, parseErr(line, ErrMalformedTemplate, "mode %d id: %v", mode, err)
		}
		vx, err := parseFloat(f[1])
		if err != nil {
			return nil, parseErr(line, ErrMalformedTemplate, "mode %d vx: %v", mode, err)
		}
		vy, err := parseFloat(f[2])
		if err != nil {
			return nil, parseErr(line, ErrMalformedTemplate, "mode %d vy: %v", mode, err)
		}
		t := base
		t.ID = id
		t.Type = SurfaceType(mode)
		t.Offset = mode * base.Width
		t.Force = r2.Vec{X: vx, Y: vy}
		modes = append(modes, t)
	}
	if len(modes) == 0 {
		return nil, parseErr(line, ErrMalformedTemplate, "%s has no modes", base.Name)
	}
	return modes, nil
}

// parseFloat treats an empty field as zero.
func parseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

// Lookup returns the template with the given id.
func (c *Catalog) Lookup(id int) (Template, bool) {
	t, ok := c.byID[id]
	return t, ok
}

// Modes returns the templates sharing a name, indexed by surface type.
// Missing modes are nil.
func (c *Catalog) Modes(name string) [3]*Template {
	var modes [3]*Template
	for _, id := range c.order {
		t := c.byID[id]
		if t.Name == name && t.Type >= SurfaceNormal && t.Type <= SurfaceUp {
			modes[t.Type] = &t
		}
	}
	return modes
}

// Templates returns all templates sorted by id.
func (c *Catalog) Templates() []Template {
	out := make([]Template, 0, len(c.byID))
	for _, t := range c.byID {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of templates.
func (c *Catalog) Len() int {
	return len(c.byID)
}
