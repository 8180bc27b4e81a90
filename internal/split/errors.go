package split

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration matches every *ConfigurationError.
	ErrConfiguration = errors.New("invalid layout configuration")
	// ErrInvalidHandleIndex matches every *InvalidHandleError.
	ErrInvalidHandleIndex = errors.New("invalid handle index")
	// ErrClosed is returned when a signal reaches a torn down layout.
	ErrClosed = errors.New("layout closed")
)

// ConfigurationError reports a malformed Config. Index is the offending
// panel, or -1 when the problem is not tied to one panel.
type ConfigurationError struct {
	Index  int
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Index < 0 {
		return "layout: " + e.Reason
	}
	return fmt.Sprintf("layout: panel %d: %s", e.Index, e.Reason)
}

// Is makes errors.Is(err, ErrConfiguration) hold.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// InvalidHandleError reports a handle index outside [0, Panels-1).
type InvalidHandleError struct {
	Handle int
	Panels int
}

func (e *InvalidHandleError) Error() string {
	if e.Panels < 2 {
		return fmt.Sprintf("handle %d: layout with %d panel has no handles", e.Handle, e.Panels)
	}
	return fmt.Sprintf("handle %d out of range [0, %d)", e.Handle, e.Panels-1)
}

// Is makes errors.Is(err, ErrInvalidHandleIndex) hold.
func (e *InvalidHandleError) Is(target error) bool {
	return target == ErrInvalidHandleIndex
}

func checkHandle(handle, panels int) error {
	if handle < 0 || handle >= panels-1 {
		return &InvalidHandleError{Handle: handle, Panels: panels}
	}
	return nil
}
