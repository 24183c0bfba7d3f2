package actuator

import (
	"errors"
	"fmt"
)

// ErrUnknownProfile indicates the profile name is not recognized.
var ErrUnknownProfile = errors.New("unknown profile")

// InitError wraps a failed platform initialization step.
type InitError struct {
	Step string
	Err  error
}

// Error implements error.
func (e *InitError) Error() string {
	return fmt.Sprintf("init %s: %v", e.Step, e.Err)
}

// Unwrap returns the underlying error.
func (e *InitError) Unwrap() error {
	return e.Err
}
