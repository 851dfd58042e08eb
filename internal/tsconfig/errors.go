package tsconfig

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/cockroachdb/errors"
)

var (
	// ErrNotFound is returned when a tsconfig or an extended base does not exist.
	ErrNotFound = errors.New("tsconfig not found")

	// ErrExtendsCycle is returned when the extends chain loops back on itself.
	ErrExtendsCycle = errors.New("extends cycle")

	// ErrInvalidExtends is returned when extends is neither a string nor an array of strings.
	ErrInvalidExtends = errors.New("invalid extends")
)

// ParseError reports a syntax error in a tsconfig file.
type ParseError struct {
	Path   string
	Line   int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %v", e.Path, e.Line, e.Column, e.Err)
	}

	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var positionPattern = regexp.MustCompile(`line (\d+), column (\d+)`)

// newParseError extracts the position hujson embeds in its error text.
func newParseError(path string, err error) *ParseError {
	pe := &ParseError{Path: path, Err: err}

	if m := positionPattern.FindStringSubmatch(err.Error()); m != nil {
		pe.Line, _ = strconv.Atoi(m[1])
		pe.Column, _ = strconv.Atoi(m[2])
	}

	return pe
}

// IsParseError reports whether err is or wraps a *ParseError.
func IsParseError(err error) bool {
	var pe *ParseError

	return errors.As(err, &pe)
}
