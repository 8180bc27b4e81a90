package split

import (
	"fmt"
	"math"
)

// Total is the size every layout sums to.
const Total = 100.0

// sumTolerance bounds how far a size vector may stray from Total and still
// count as summing to it.
const sumTolerance = 1e-6

// Normalize validates cfg and returns its initial size vector.
//
// Panels with an explicit InitialSize keep it; the others share what remains
// equally. Any rounding residual is added to the last panel so the result
// sums to exactly Total. With more than one panel every resulting size must
// lie within its panel's bounds; a single panel is always 100 even when
// that exceeds its max, since it has no handle to move.
func Normalize(cfg Config) ([]float64, error) {
	if err := Validate(cfg); err != nil {
		return nil, err
	}

	sizes := make([]float64, len(cfg.Panels))
	explicit := 0.0
	shared := 0
	for i, p := range cfg.Panels {
		if p.InitialSize == nil {
			shared++
			continue
		}
		sizes[i] = *p.InitialSize
		explicit += sizes[i]
	}

	if shared > 0 {
		share := (Total - explicit) / float64(shared)
		for i, p := range cfg.Panels {
			if p.InitialSize == nil {
				sizes[i] = share
			}
		}
	}

	sizes[len(sizes)-1] += Total - sum(sizes)

	if len(sizes) > 1 {
		for i, p := range cfg.Panels {
			if !within(p, sizes[i]) {
				return nil, &ConfigurationError{
					Index:  i,
					Reason: fmt.Sprintf("size %v outside [%v, %v]", sizes[i], p.Min(), p.Max()),
				}
			}
		}
	}
	return sizes, nil
}

// Validate checks cfg without computing sizes.
func Validate(cfg Config) error {
	if len(cfg.Panels) == 0 {
		return &ConfigurationError{Index: -1, Reason: "no panels"}
	}

	running := 0.0
	for i, p := range cfg.Panels {
		lo, hi := p.Min(), p.Max()
		if !inRange(lo) {
			return &ConfigurationError{Index: i, Reason: fmt.Sprintf("min size %v outside [0, 100]", lo)}
		}
		if !inRange(hi) {
			return &ConfigurationError{Index: i, Reason: fmt.Sprintf("max size %v outside [0, 100]", hi)}
		}
		if lo > hi {
			return &ConfigurationError{Index: i, Reason: fmt.Sprintf("min size %v greater than max size %v", lo, hi)}
		}
		if p.InitialSize == nil {
			continue
		}
		v := *p.InitialSize
		if !inRange(v) {
			return &ConfigurationError{Index: i, Reason: fmt.Sprintf("initial size %v outside [0, 100]", v)}
		}
		if v < lo || v > hi {
			return &ConfigurationError{Index: i, Reason: fmt.Sprintf("initial size %v outside [%v, %v]", v, lo, hi)}
		}
		running += v
		if running > Total+sumTolerance {
			return &ConfigurationError{Index: i, Reason: fmt.Sprintf("initial sizes add up to %v, more than 100", running)}
		}
	}
	return nil
}

func inRange(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= Total
}

func sum(sizes []float64) float64 {
	total := 0.0
	for _, s := range sizes {
		total += s
	}
	return total
}
