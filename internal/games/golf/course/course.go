package course

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Course is a named sequence of HoleCount holes.
type Course struct {
	Name  string
	Holes []*Hole
}

// Par returns the sum of all hole pars.
func (c *Course) Par() int {
	total := 0
	for _, h := range c.Holes {
		total += h.Par
	}
	return total
}

// Validate checks that the course can be played from start to finish.
func (c *Course) Validate() error {
	if len(c.Holes) != HoleCount {
		return fmt.Errorf("%w: have %d, want %d", ErrHoleCount, len(c.Holes), HoleCount)
	}
	for i, h := range c.Holes {
		if err := h.Validate(); err != nil {
			return fmt.Errorf("hole %d: %w", i+1, err)
		}
	}
	return nil
}

// Parse reads a course in the course file format:
//
//	<name>
//	<par>
//	id,x,y,flip,vectorFlip;id,x,y,flip,vectorFlip;...
//	<par>
//	...
//
// Each hole is a par line followed by one line of placements, which is
// empty for a hole without elements. Blank lines at the end are ignored.
// The result is validated.
func Parse(r io.Reader, cat *Catalog) (*Course, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		lineNo++
		return strings.TrimRight(sc.Text(), "\r"), true
	}

	name, ok := next()
	if !ok {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("course: read: %w", err)
		}
		return nil, parseErr(1, ErrMalformedCourse, "empty file")
	}
	c := &Course{Name: strings.TrimSpace(name)}

	for {
		parLine, ok := next()
		if !ok {
			break
		}
		if strings.TrimSpace(parLine) == "" {
			// Only trailing blank lines are allowed between holes.
			if rest := drain(sc, &lineNo); rest != 0 {
				return nil, parseErr(rest, ErrMalformedCourse, "unexpected content after blank line")
			}
			break
		}
		par, err := strconv.Atoi(strings.TrimSpace(parLine))
		if err != nil {
			return nil, parseErr(lineNo, ErrMalformedCourse, "par %q", parLine)
		}
		elemLine, _ := next()
		placements, err := parsePlacements(elemLine, lineNo)
		if err != nil {
			return nil, err
		}
		h, err := NewHole(cat, par, placements)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Err: err}
		}
		c.Holes = append(c.Holes, h)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("course: read: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// drain consumes the remaining lines and returns the number of the first
// non-blank one, or 0 if there is none.
func drain(sc *bufio.Scanner, lineNo *int) int {
	first := 0
	for sc.Scan() {
		*lineNo++
		if first == 0 && strings.TrimSpace(sc.Text()) != "" {
			first = *lineNo
		}
	}
	return first
}

func parsePlacements(line string, lineNo int) ([]Placement, error) {
	var out []Placement
	for _, rec := range strings.Split(line, ";") {
		rec = strings.TrimSpace(rec)
		if rec == "" {
			continue
		}
		fields := strings.Split(rec, ",")
		if len(fields) != 5 {
			return nil, parseErr(lineNo, ErrMalformedCourse, "record %q has %d fields", rec, len(fields))
		}
		var v [5]int
		for i, f := range fields {
			n, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return nil, parseErr(lineNo, ErrMalformedCourse, "record %q: %v", rec, err)
			}
			v[i] = n
		}
		if v[3] < 0 || v[3] > 3 || v[4] < 0 || v[4] > 3 {
			return nil, parseErr(lineNo, ErrMalformedCourse, "record %q: flip flags out of range", rec)
		}
		out = append(out, Placement{ID: v[0], X: v[1], Y: v[2], Flip: Flip(v[3]), VectorFlip: Flip(v[4])})
	}
	return out, nil
}

// Write serializes the course in the format read by Parse.
func Write(w io.Writer, c *Course) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n", c.Name)
	for _, h := range c.Holes {
		fmt.Fprintf(bw, "%d\n", h.Par)
		for _, p := range h.Placements() {
			fmt.Fprintf(bw, "%d,%d,%d,%d,%d;", p.ID, p.X, p.Y, p.Flip, p.VectorFlip)
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("course: write: %w", err)
	}
	return nil
}

// IsParseError reports whether err came from malformed course or template data.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe) ||
		errors.Is(err, ErrMalformedCourse) ||
		errors.Is(err, ErrMalformedTemplate)
}
