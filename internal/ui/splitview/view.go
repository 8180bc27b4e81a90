package splitview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/panes/internal/split"
	"github.com/llehouerou/panes/internal/ui"
	"github.com/llehouerou/panes/internal/ui/layout"
	"github.com/llehouerou/panes/internal/ui/render"
	"github.com/llehouerou/panes/internal/ui/styles"
)

// View renders the panels and the handles between them.
func (m Model) View() string {
	if m.state == nil || m.Width() <= 0 || m.Height() <= 0 {
		return ""
	}

	vertical := m.state.Direction() == split.Vertical
	extent := m.Width()
	if vertical {
		extent = m.Height()
	}
	n := m.state.Len()
	compact := layout.IsCompact(extent, n)
	extents := m.extents()
	dragged, dragging := m.state.ActiveHandle()

	parts := make([]string, 0, 2*n-1)
	for i, cells := range extents {
		if i > 0 {
			parts = append(parts, m.renderHandle(i-1, vertical))
		}
		w, h := cells, m.Height()
		if vertical {
			w, h = m.Width(), cells
		}
		highlighted := dragging && (i == dragged || i == dragged+1)
		parts = append(parts, m.renderPanel(i, w, h, highlighted, compact))
	}

	if vertical {
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) handleState(i int) styles.HandleState {
	if h, ok := m.state.ActiveHandle(); ok && h == i {
		return styles.HandleDragging
	}
	if m.IsFocused() && i == m.handle {
		return styles.HandleFocused
	}
	return styles.HandleIdle
}

func (m Model) renderHandle(i int, vertical bool) string {
	style := styles.HandleStyle(m.handleState(i))
	if vertical {
		return style.Render(strings.Repeat(styles.HorizontalHandleGlyph, m.Width()))
	}
	cells := make([]string, m.Height())
	for j := range cells {
		cells[j] = styles.VerticalHandleGlyph
	}
	return style.Render(strings.Join(cells, "\n"))
}

func (m Model) panelLines(i int, compact bool) []string {
	title := fmt.Sprintf("Panel %d", i+1)
	var body []string
	if i < len(m.panels) {
		if m.panels[i].Title != "" {
			title = m.panels[i].Title
		}
		body = m.panels[i].Body
	}
	lines := []string{fmt.Sprintf("%s %.1f%%", title, m.state.Size(i))}
	if !compact {
		lines = append(lines, body...)
	}
	return lines
}

func (m Model) renderPanel(i, width, height int, highlighted, compact bool) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	s := styles.T().S()
	bordered := !compact && width > ui.BorderWidth && height > ui.BorderHeight

	innerW, innerH := width, height
	if bordered {
		innerW -= ui.BorderWidth
		innerH -= ui.BorderHeight
	}

	lines := render.Fit(m.panelLines(i, compact), innerW, innerH)
	for j := range lines {
		if j < ui.TitleHeight {
			lines[j] = s.Title.Render(lines[j])
			continue
		}
		lines[j] = s.Base.Render(lines[j])
	}
	content := strings.Join(lines, "\n")

	if !bordered {
		return content
	}
	return styles.PanelStyle(highlighted).
		Width(innerW).
		Height(innerH).
		Render(content)
}
