//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"fmt"
	"testing"

	"github.com/llehouerou/panes/internal/split"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpLoadConfig,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpLoadConfig,
			err:      errors.New("permission denied"),
			expected: "Failed to load config: permission denied",
		},
		{
			name:     "configuration error",
			op:       OpInitLayout,
			err:      &split.ConfigurationError{Index: 1, Reason: "min size 60 greater than max size 40"},
			expected: "Failed to initialize layout: layout: panel 1: min size 60 greater than max size 40",
		},
		{
			name:     "handle error",
			op:       OpActivateHandle,
			err:      &split.InvalidHandleError{Handle: 3, Panels: 3},
			expected: "Failed to activate handle: handle 3 out of range [0, 2)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(tt.op, tt.err)
			if got != tt.expected {
				t.Errorf("Format() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			context:  "config.toml",
			err:      nil,
			expected: "",
		},
		{
			name:     "with context",
			context:  "config.toml",
			err:      errors.New("bad toml"),
			expected: "Failed to load config 'config.toml': bad toml",
		},
		{
			name:     "empty context falls back to Format",
			context:  "",
			err:      errors.New("bad toml"),
			expected: "Failed to load config: bad toml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatWith(OpLoadConfig, tt.context, tt.err)
			if got != tt.expected {
				t.Errorf("FormatWith() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestIsRecoverable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, true},
		{"invalid handle", &split.InvalidHandleError{Handle: 0, Panels: 1}, true},
		{"wrapped invalid handle", fmt.Errorf("drag: %w", &split.InvalidHandleError{Handle: 5, Panels: 2}), true},
		{"configuration", &split.ConfigurationError{Index: -1, Reason: "no panels"}, false},
		{"other", errors.New("boom"), false},
	}

	for _, tt := range tests {
		if got := IsRecoverable(tt.err); got != tt.want {
			t.Errorf("IsRecoverable(%s) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
