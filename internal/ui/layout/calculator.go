// Package layout provides pure functions for UI dimension calculations.
package layout

import "math"

// HandleThickness is the number of cells a handle occupies along the axis.
const HandleThickness = 1

// ErrorLineHeight is the height of the error line when an error is shown.
const ErrorLineHeight = 1

// ContentOpts contains the parameters needed to calculate content height.
type ContentOpts struct {
	HeaderHeight int
	StatusHeight int
	HelpHeight   int
	ShowError    bool
}

// ContentHeight calculates the available height for the split view. This is
// the terminal height minus header, status line, help line and error line.
func ContentHeight(windowHeight int, opts ContentOpts) int {
	height := windowHeight
	height -= opts.HeaderHeight
	height -= opts.StatusHeight
	height -= opts.HelpHeight
	if opts.ShowError {
		height -= ErrorLineHeight
	}
	return max(height, 0)
}

// PanelSpace returns the cells left for panels once handles between them
// are taken out of the axis extent.
func PanelSpace(extent, panels int) int {
	if panels <= 0 {
		return 0
	}
	return max(extent-(panels-1)*HandleThickness, 0)
}

// Extents converts percentage sizes into whole cells. The result always sums
// to cells: each panel gets the floor of its share and the leftover cells go
// to the largest fractional parts, lowest index first on ties.
func Extents(sizes []float64, cells int) []int {
	out := make([]int, len(sizes))
	if len(sizes) == 0 || cells <= 0 {
		return out
	}

	fracs := make([]float64, len(sizes))
	used := 0
	for i, s := range sizes {
		raw := max(s, 0) * float64(cells) / 100
		whole := math.Floor(raw)
		out[i] = int(whole)
		fracs[i] = raw - whole
		used += out[i]
	}

	for used < cells {
		best := 0
		for i := range fracs {
			if fracs[i] > fracs[best] {
				best = i
			}
		}
		out[best]++
		fracs[best] = -1
		used++
		if allTaken(fracs) {
			resetFracs(fracs)
		}
	}
	for i := len(out) - 1; used > cells && i >= 0; i-- {
		take := min(out[i], used-cells)
		out[i] -= take
		used -= take
	}
	return out
}

func allTaken(fracs []float64) bool {
	for _, f := range fracs {
		if f >= 0 {
			return false
		}
	}
	return true
}

func resetFracs(fracs []float64) {
	for i := range fracs {
		fracs[i] = 0
	}
}

// HandleOffsets returns the axis offset of each handle cell, given the cell
// extents of the panels it separates.
func HandleOffsets(extents []int) []int {
	if len(extents) < 2 {
		return nil
	}
	offsets := make([]int, len(extents)-1)
	pos := 0
	for i := range offsets {
		pos += extents[i]
		offsets[i] = pos
		pos += HandleThickness
	}
	return offsets
}

// HandleAt returns the handle under the given axis offset.
func HandleAt(extents []int, offset int) (int, bool) {
	for i, pos := range HandleOffsets(extents) {
		if offset >= pos && offset < pos+HandleThickness {
			return i, true
		}
	}
	return 0, false
}

// PointerPercent converts a pointer offset along the axis into a position
// in percent of the panel space, for dragging the given handle. The handle
// cells before the dragged one are not panel space and are skipped.
func PointerPercent(offset, handle, space int) float64 {
	if space <= 0 {
		return 0
	}
	cells := offset - handle*HandleThickness
	pct := float64(cells) * 100 / float64(space)
	return min(max(pct, 0), 100)
}

// IsCompact reports whether the axis is too short to draw bordered panels,
// leaving fewer than three cells per panel on average.
func IsCompact(extent, panels int) bool {
	if panels <= 0 {
		return true
	}
	return PanelSpace(extent, panels) < panels*3
}
