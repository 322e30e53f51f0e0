package catalog

import (
	"errors"
	"fmt"
)

// ErrGameNotFound is returned when a game ID is not in the catalog.
var ErrGameNotFound = errors.New("game not found")

// ContentError describes one defect in authored content.
type ContentError struct {
	File    string // source file, empty for games built in code
	Game    string // game ID, empty if the file could not be parsed
	Message string
}

func (e *ContentError) Error() string {
	switch {
	case e.File != "" && e.Game != "":
		return fmt.Sprintf("%s (%s): %s", e.File, e.Game, e.Message)
	case e.File != "":
		return fmt.Sprintf("%s: %s", e.File, e.Message)
	case e.Game != "":
		return fmt.Sprintf("game %q: %s", e.Game, e.Message)
	default:
		return e.Message
	}
}

// ContentErrors extracts every ContentError from err, including those
// combined with errors.Join.
func ContentErrors(err error) []*ContentError {
	if err == nil {
		return nil
	}
	var out []*ContentError
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			out = append(out, ContentErrors(e)...)
		}
		return out
	}
	var ce *ContentError
	if errors.As(err, &ce) {
		out = append(out, ce)
	}
	return out
}
