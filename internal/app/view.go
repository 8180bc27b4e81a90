// internal/app/view.go
package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/panes/internal/ui/headerbar"
	"github.com/llehouerou/panes/internal/ui/layout"
	"github.com/llehouerou/panes/internal/ui/render"
	"github.com/llehouerou/panes/internal/ui/styles"
)

// StatusHeight is the height of the status line under the split view.
const StatusHeight = 1

// resizeComponents gives the split view whatever the bars leave over.
func (m *Model) resizeComponents() {
	height := layout.ContentHeight(m.Height, layout.ContentOpts{
		HeaderHeight: headerbar.Height,
		StatusHeight: StatusHeight,
		HelpHeight:   lipgloss.Height(m.renderHelp()),
		ShowError:    m.ErrorMsg != "",
	})
	m.Split.SetSize(m.Width, height)
	m.Split.SetOrigin(0, headerbar.Height)
}

// View renders the application UI.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	state := m.Split.State()
	sess := state.Session()
	header := headerbar.Render(headerbar.Info{
		Title:     appTitle,
		Direction: state.Direction().String(),
		Policy:    state.Policy().String(),
		Dragging:  sess.Active,
		Handle:    sess.Handle,
	}, m.Width)

	parts := []string{header}
	if v := m.Split.View(); v != "" {
		parts = append(parts, v)
	}
	parts = append(parts, m.renderStatus())
	if m.ErrorMsg != "" {
		parts = append(parts, m.renderError())
	}
	parts = append(parts, m.renderHelp())

	return enforceHeight(strings.Join(parts, "\n"), m.Height)
}

func (m Model) renderStatus() string {
	s := styles.T().S()
	sizes := m.Split.State().Sizes()

	cells := make([]string, len(sizes))
	for i, size := range sizes {
		cells[i] = fmt.Sprintf("%.1f%%", size)
	}
	line := s.Muted.Render(render.Truncate(strings.Join(cells, " │ "), m.Width))

	if m.AtLimit {
		warn := s.Warning.Render("  limit reached")
		if lipgloss.Width(line)+lipgloss.Width(warn) <= m.Width {
			line += warn
		}
	}
	return line
}

func (m Model) renderError() string {
	return styles.T().S().Error.Render(render.Truncate(m.ErrorMsg, m.Width))
}

func (m Model) renderHelp() string {
	return m.Help.View(m.Keys)
}

// enforceHeight pads or truncates view to exactly targetHeight lines.
func enforceHeight(view string, targetHeight int) string {
	lines := strings.Split(view, "\n")
	currentHeight := len(lines)

	if currentHeight == targetHeight {
		return view
	}

	if currentHeight < targetHeight {
		// Pad with empty lines
		for i := currentHeight; i < targetHeight; i++ {
			lines = append(lines, "")
		}
	} else {
		lines = lines[:targetHeight]
	}

	return strings.Join(lines, "\n")
}
