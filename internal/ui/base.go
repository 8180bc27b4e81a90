package ui

// Base provides common UI component functionality for focus, size and
// screen position. Embed this in component models to get standard methods.
//
// Example:
//
//	type Model struct {
//	    ui.Base
//	    state *split.State
//	}
type Base struct {
	x, y          int
	width, height int
	focused       bool
}

// SetFocused sets whether the component is focused.
func (b *Base) SetFocused(focused bool) {
	b.focused = focused
}

// IsFocused returns whether the component is focused.
func (b Base) IsFocused() bool {
	return b.focused
}

// SetSize sets the component dimensions.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// SetOrigin sets the screen cell of the component's top-left corner, used
// to translate mouse coordinates.
func (b *Base) SetOrigin(x, y int) {
	b.x = x
	b.y = y
}

// Size returns the component dimensions.
func (b Base) Size() (width, height int) {
	return b.width, b.height
}

// Width returns the component width.
func (b Base) Width() int {
	return b.width
}

// Height returns the component height.
func (b Base) Height() int {
	return b.height
}

// Contains reports whether screen cell (x, y) is inside the component.
func (b Base) Contains(x, y int) bool {
	return x >= b.x && x < b.x+b.width && y >= b.y && y < b.y+b.height
}

// Local converts a screen cell into component coordinates.
func (b Base) Local(x, y int) (int, int) {
	return x - b.x, y - b.y
}
