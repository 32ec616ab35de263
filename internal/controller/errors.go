package controller

import (
	"errors"
	"fmt"
)

// ErrStaleBinding matches every *StaleBindingError with errors.Is.
var ErrStaleBinding = errors.New("stale binding")

// StaleBindingError means a parameter was applied to an object that was
// destroyed behind the controller's back. The panel would be editing a dead
// object, so this is never swallowed.
type StaleBindingError struct {
	ID  string
	UID uint64
}

func (e *StaleBindingError) Error() string {
	return fmt.Sprintf("stale binding: %s (uid %d) was destroyed outside the controller", e.ID, e.UID)
}

func (e *StaleBindingError) Is(target error) bool {
	return target == ErrStaleBinding
}
