package controlspec

import (
	"errors"
	"fmt"
)

// ErrConfiguration matches every *ConfigurationError with errors.Is.
var ErrConfiguration = errors.New("configuration error")

// ConfigurationError reports a malformed control spec or a setup call that
// violates its preconditions. It is fatal at scene setup.
type ConfigurationError struct {
	Scope  string // category or object the error belongs to
	Index  int    // descriptor index, -1 when not about a single descriptor
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("configuration error: %s: descriptor %d: %s", e.Scope, e.Index, e.Reason)
	}
	return fmt.Sprintf("configuration error: %s: %s", e.Scope, e.Reason)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// Errorf builds a *ConfigurationError. Pass index -1 for errors that are not
// about a single descriptor.
func Errorf(scope string, index int, format string, args ...any) error {
	return &ConfigurationError{Scope: scope, Index: index, Reason: fmt.Sprintf(format, args...)}
}
