// internal/ui/headerbar/headerbar.go
package headerbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/panes/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

// Info is what the header bar shows about the layout.
type Info struct {
	Title     string
	Direction string // "horizontal" or "vertical"
	Policy    string // "freeze" or "saturate"
	Dragging  bool
	Handle    int
}

// Styles
var (
	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	dragStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// Render returns the header bar string for the given width. The title is
// drawn with the theme gradient and the layout settings are centered.
func Render(info Info, width int) string {
	if width < 20 {
		return ""
	}

	t := styles.T()
	title := styles.ApplyGradient(info.Title, t.Primary, t.Secondary)

	parts := []string{
		keyStyle.Render("axis") + " " + valueStyle.Render(info.Direction),
		keyStyle.Render("limit") + " " + valueStyle.Render(info.Policy),
	}
	if info.Dragging {
		parts = append(parts, dragStyle.Render(fmt.Sprintf("dragging handle %d", info.Handle+1)))
	}
	content := strings.Join(parts, separatorStyle.Render(" │ "))

	titleWidth := lipgloss.Width(title)
	contentWidth := lipgloss.Width(content)
	if titleWidth+1+contentWidth > width {
		return title
	}

	// Center the content in the space after the title
	gap := width - titleWidth - contentWidth
	padLeft := max(gap/2, 1)
	return title + strings.Repeat(" ", padLeft) + content
}
