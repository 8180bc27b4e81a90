package headerbar

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/panes/internal/ui/testutil"
)

func TestRender_TooNarrow(t *testing.T) {
	if got := Render(Info{Title: "panes"}, 10); got != "" {
		t.Errorf("Render() at width 10 = %q, want empty", got)
	}
}

func TestRender_Content(t *testing.T) {
	got := testutil.StripANSI(Render(Info{
		Title:     "panes",
		Direction: "horizontal",
		Policy:    "freeze",
	}, 80))

	if !strings.HasPrefix(got, "panes") {
		t.Errorf("header should start with the title, got %q", got)
	}
	for _, want := range []string{"axis horizontal", "limit freeze"} {
		if !strings.Contains(got, want) {
			t.Errorf("header missing %q: %q", want, got)
		}
	}
	if strings.Contains(got, "dragging") {
		t.Errorf("header shows a drag while idle: %q", got)
	}
}

func TestRender_Dragging(t *testing.T) {
	got := testutil.StripANSI(Render(Info{
		Title:     "panes",
		Direction: "vertical",
		Policy:    "saturate",
		Dragging:  true,
		Handle:    1,
	}, 80))

	if !strings.Contains(got, "dragging handle 2") {
		t.Errorf("header missing drag status: %q", got)
	}
}

func TestRender_FitsWidth(t *testing.T) {
	got := Render(Info{Title: "panes", Direction: "horizontal", Policy: "freeze", Dragging: true}, 30)
	if w := lipgloss.Width(got); w > 30 {
		t.Errorf("header width = %d, want <= 30", w)
	}
}
