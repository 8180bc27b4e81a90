// Package split resolves panel sizes for a row or column of resizable panels.
//
// Sizes are percentages of the container extent along the layout axis. They
// always sum to 100 and each panel stays within its own [min, max] range.
// Dragging the handle between panels i and i+1 only ever moves size between
// those two panels.
package split

import (
	"fmt"
	"strings"
)

// Default panel bounds, in percent.
const (
	DefaultMinSize = 10.0
	DefaultMaxSize = 90.0
)

// Direction is the axis panels are laid out along.
type Direction int

const (
	Horizontal Direction = iota // panels side by side, handles are columns
	Vertical                    // panels stacked, handles are rows
)

// String returns the config name of the direction.
func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection parses "horizontal" or "vertical" (case-insensitive).
// An empty string means Horizontal.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "horizontal":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	default:
		return Horizontal, &ConfigurationError{Index: -1, Reason: fmt.Sprintf("unknown direction %q", s)}
	}
}

// Constraint holds the size range of one panel. Nil fields fall back to the
// defaults: an equal share of what explicit panels leave, DefaultMinSize and
// DefaultMaxSize.
type Constraint struct {
	InitialSize *float64
	MinSize     *float64
	MaxSize     *float64
}

// Percent returns a pointer to v, for filling Constraint fields.
func Percent(v float64) *float64 {
	return &v
}

// Min returns the resolved minimum size.
func (c Constraint) Min() float64 {
	if c.MinSize != nil {
		return *c.MinSize
	}
	return DefaultMinSize
}

// Max returns the resolved maximum size.
func (c Constraint) Max() float64 {
	if c.MaxSize != nil {
		return *c.MaxSize
	}
	return DefaultMaxSize
}

// Clamp restricts v to the panel's [Min, Max] range.
func (c Constraint) Clamp(v float64) float64 {
	return min(max(v, c.Min()), c.Max())
}

// Config describes a layout: its axis and the ordered panels along it.
// Panel i is adjacent to panels i-1 and i+1.
type Config struct {
	Direction Direction
	Panels    []Constraint
}

// Handles returns the number of handles between the configured panels.
func (c Config) Handles() int {
	return max(len(c.Panels)-1, 0)
}
