package pptx

import (
	"errors"
	"fmt"

	"pptgen/style"
)

// SerializationError is returned when package could not be assembled into a
// structurally valid set of parts or when package being read back is not one.
type SerializationError struct {
	Part   string
	Reason string
	Err    error
}

func (e *SerializationError) Error() string {
	msg := "serialization error"
	if e.Part != "" {
		msg += fmt.Sprintf(": part %q", e.Part)
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}

func withWhere(err error, where string) error {
	var rerr *style.ResolutionError
	if errors.As(err, &rerr) {
		return rerr.At(where)
	}
	return err
}
