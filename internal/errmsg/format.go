// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import (
	"errors"
	"fmt"

	"github.com/llehouerou/panes/internal/split"
)

// Op represents an operation that can fail.
type Op string

// Operation constants.
const (
	OpLoadConfig     Op = "load config"
	OpInitLayout     Op = "initialize layout"
	OpResize         Op = "resize panels"
	OpActivateHandle Op = "activate handle"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}

// IsRecoverable reports whether err can be shown and then ignored. Invalid
// handle indexes are; configuration errors are fatal to initialization.
func IsRecoverable(err error) bool {
	return err == nil || errors.Is(err, split.ErrInvalidHandleIndex)
}
