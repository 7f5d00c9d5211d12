package deck

import "fmt"

// ValidationError is returned when a slide or deck violates content model
// rules. Slide is 1-based position the slide would have taken, 0 for deck
// level problems.
type ValidationError struct {
	Slide  int
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Slide == 0 {
		return fmt.Sprintf("model validation error: %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("model validation error: slide %d: %s: %s", e.Slide, e.Field, e.Reason)
}
