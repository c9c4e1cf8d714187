package course

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedCourse is returned when a course file does not follow the course format.
	ErrMalformedCourse = errors.New("course: malformed course file")
	// ErrMalformedTemplate is returned when an element template line cannot be parsed.
	ErrMalformedTemplate = errors.New("course: malformed template")
	// ErrUnknownTemplate is returned when a placed element references an unknown template id.
	ErrUnknownTemplate = errors.New("course: unknown template")
	// ErrIncompleteHole is returned when a hole lacks a start zone, a cup or a valid par.
	ErrIncompleteHole = errors.New("course: incomplete hole")
	// ErrHoleCount is returned when a course does not have exactly HoleCount holes.
	ErrHoleCount = errors.New("course: wrong number of holes")
)

// ParseError reports the 1-based line of a file where parsing failed.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func parseErr(line int, sentinel error, format string, args ...any) error {
	return &ParseError{Line: line, Err: fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))}
}
