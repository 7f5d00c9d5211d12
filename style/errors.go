package style

import "fmt"

// ResolutionError is returned when color or font name is not defined in the
// registry. There is no fallback to a default value.
type ResolutionError struct {
	Kind  string // "color" or "font"
	Name  string
	Where string
}

func (e *ResolutionError) Error() string {
	if e.Where != "" {
		return fmt.Sprintf("style resolution error: unknown %s %q in %s", e.Kind, e.Name, e.Where)
	}
	return fmt.Sprintf("style resolution error: unknown %s %q", e.Kind, e.Name)
}

// At returns copy of the error with location set.
func (e *ResolutionError) At(where string) *ResolutionError {
	ne := *e
	ne.Where = where
	return &ne
}
