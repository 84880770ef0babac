// internal/generator/errors.go
package generator

import (
	"errors"
	"fmt"
)

// ErrUnsupportedModel is returned for models without a stage chain.
var ErrUnsupportedModel = errors.New("generator: unsupported player model")

// MissingFieldError reports a required ConfigData key that is absent.
// It is fatal for the generation request.
type MissingFieldError struct {
	Stage string
	Key   string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("generator: stage %s: missing required field %q", e.Stage, e.Key)
}
