package split

import (
	"fmt"
	"math"
)

// DriftTolerance is the largest net change of a handle's two panels, after
// clamping, that still lets a resize commit.
const DriftTolerance = 0.1

// Policy decides what happens when clamping the two panels next to a handle
// leaves them with a net size change.
type Policy int

const (
	// PolicyFreeze rejects the update and keeps the current sizes, even when
	// a smaller move would have fit both panels.
	PolicyFreeze Policy = iota
	// PolicySaturate moves the handle as far toward the pointer as both
	// panels allow.
	PolicySaturate
)

// String returns the config name of the policy.
func (p Policy) String() string {
	switch p {
	case PolicyFreeze:
		return "freeze"
	case PolicySaturate:
		return "saturate"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy parses "freeze" or "saturate". An empty string means PolicyFreeze.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "freeze":
		return PolicyFreeze, nil
	case "saturate":
		return PolicySaturate, nil
	default:
		return PolicyFreeze, &ConfigurationError{Index: -1, Reason: fmt.Sprintf("unknown limit policy %q", s)}
	}
}

// Boundary returns the position, in percent, of the given handle: the
// combined size of every panel up to and including panel handle.
func Boundary(sizes []float64, handle int) float64 {
	if handle < 0 {
		return 0
	}
	return sum(sizes[:min(handle+1, len(sizes))])
}

// Resize moves handle to position (percent of the container, clamped to
// [0, 100]) under PolicyFreeze.
func Resize(sizes []float64, panels []Constraint, handle int, position float64) ([]float64, error) {
	return PolicyFreeze.Resize(sizes, panels, handle, position)
}

// ResizeBy moves handle by delta percent from where it currently is.
func ResizeBy(sizes []float64, panels []Constraint, handle int, delta float64) ([]float64, error) {
	return PolicyFreeze.ResizeBy(sizes, panels, handle, delta)
}

// ResizeBy moves handle by delta percent from where it currently is.
func (p Policy) ResizeBy(sizes []float64, panels []Constraint, handle int, delta float64) ([]float64, error) {
	if err := checkHandle(handle, len(sizes)); err != nil {
		return nil, err
	}
	return p.Resize(sizes, panels, handle, Boundary(sizes, handle)+delta)
}

// Resize moves handle to position and returns the new sizes. Only panels
// handle and handle+1 can change. The input slice is never modified; the
// result is always a fresh slice, equal to sizes when the move is rejected.
func (p Policy) Resize(sizes []float64, panels []Constraint, handle int, position float64) ([]float64, error) {
	if len(panels) != len(sizes) {
		return nil, &ConfigurationError{
			Index:  -1,
			Reason: fmt.Sprintf("%d constraints for %d sizes", len(panels), len(sizes)),
		}
	}
	if err := checkHandle(handle, len(sizes)); err != nil {
		return nil, err
	}

	next := make([]float64, len(sizes))
	copy(next, sizes)

	if math.IsNaN(position) {
		return next, nil
	}
	position = min(max(position, 0), Total)

	left, right := sizes[handle], sizes[handle+1]
	lc, rc := panels[handle], panels[handle+1]
	delta := position - Boundary(sizes, handle)

	newLeft := lc.Clamp(left + delta)
	newRight := rc.Clamp(right - delta)
	drift := (newLeft - left) + (newRight - right)

	if math.Abs(drift) >= DriftTolerance {
		if p != PolicySaturate {
			return next, nil
		}
		d, ok := saturate(left, right, lc, rc, delta)
		if !ok {
			return next, nil
		}
		next[handle], next[handle+1] = lc.Clamp(left+d), rc.Clamp(right-d)
		return next, nil
	}

	// Within tolerance the clamped panel keeps its bound and the other one
	// absorbs the residual, so the pair total is unchanged. When both clamp,
	// the left bound is kept unless that pushes the right panel out of its
	// bounds.
	pair := left + right
	leftClamped := newLeft != left+delta
	rightClamped := newRight != right-delta
	switch {
	case leftClamped && rightClamped:
		if within(rc, pair-newLeft) {
			newRight = pair - newLeft
		} else {
			newLeft = pair - newRight
		}
	case leftClamped:
		newRight = pair - newLeft
	case rightClamped:
		newLeft = pair - newRight
	}
	if !within(lc, newLeft) || !within(rc, newRight) {
		return next, nil
	}

	next[handle], next[handle+1] = newLeft, newRight
	return next, nil
}

func within(c Constraint, v float64) bool {
	return v >= c.Min() && v <= c.Max()
}

// saturate returns the delta closest to want that keeps both panels inside
// their bounds. ok is false when no delta does.
func saturate(left, right float64, lc, rc Constraint, want float64) (float64, bool) {
	lo := max(lc.Min()-left, right-rc.Max())
	hi := min(lc.Max()-left, right-rc.Min())
	if lo > hi {
		return 0, false
	}
	return min(max(want, lo), hi), true
}
