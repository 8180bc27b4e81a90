package styles

import "github.com/charmbracelet/lipgloss"

// HandleState is how a handle is drawn.
type HandleState int

const (
	HandleIdle     HandleState = iota
	HandleFocused              // keyboard focus
	HandleDragging             // active drag session
)

// Handle glyphs per axis.
const (
	VerticalHandleGlyph   = "│" // between side-by-side panels
	HorizontalHandleGlyph = "─" // between stacked panels
)

// PanelStyle returns the bordered panel style. Panels next to the dragged
// handle get the focus border.
func PanelStyle(highlighted bool) lipgloss.Style {
	t := T()
	border := t.Border
	if highlighted {
		border = t.BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border)
}

// HandleStyle returns the style for a handle glyph.
func HandleStyle(state HandleState) lipgloss.Style {
	t := T()
	switch state {
	case HandleDragging:
		return lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	case HandleFocused:
		return lipgloss.NewStyle().Foreground(t.Secondary)
	default:
		return lipgloss.NewStyle().Foreground(t.FgSubtle)
	}
}
