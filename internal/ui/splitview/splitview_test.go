package splitview

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/panes/internal/split"
	"github.com/llehouerou/panes/internal/ui/pointer"
	"github.com/llehouerou/panes/internal/ui/testutil"
)

func mouse(action tea.MouseAction, x, y int) tea.MouseMsg {
	button := tea.MouseButtonLeft
	if action == tea.MouseActionRelease {
		button = tea.MouseButtonNone
	}
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: button}
}

func newView(t *testing.T, cfg split.Config, width, height int) (Model, *pointer.Router) {
	t.Helper()
	router := pointer.NewRouter()
	state, err := split.New(cfg, split.WithListeners(split.ListenersFunc(router.Listeners(ID))))
	require.NoError(t, err)

	m := New(state, []Panel{{Title: "Files"}, {Title: "Preview"}, {Title: "Log"}}, 5)
	m.SetSize(width, height)
	return m, router
}

func halves(dir split.Direction) split.Config {
	return split.Config{Direction: dir, Panels: []split.Constraint{{}, {}}}
}

func sizesOf(t *testing.T, cmd tea.Cmd) []float64 {
	t.Helper()
	msg, ok := testutil.ExecuteCmd(cmd).(ResizedMsg)
	require.True(t, ok, "expected ResizedMsg")
	return msg.Sizes
}

func TestDrag_Horizontal(t *testing.T) {
	// 41 cells: two 20-cell panels around the handle at x=20.
	m, router := newView(t, halves(split.Horizontal), 41, 6)

	m, cmd := m.Update(mouse(tea.MouseActionPress, 20, 2))
	require.NotNil(t, cmd)
	assert.Equal(t, DragStartedMsg{Handle: 0}, cmd())
	assert.True(t, m.State().Dragging())
	assert.Equal(t, 1, router.Active())

	m, cmd = m.Update(mouse(tea.MouseActionMotion, 30, 2))
	assert.InDeltaSlice(t, []float64{75, 25}, sizesOf(t, cmd), 1e-9)

	m, cmd = m.Update(mouse(tea.MouseActionRelease, 30, 2))
	require.NotNil(t, cmd)
	assert.Equal(t, DragEndedMsg{Handle: 0}, cmd())
	assert.False(t, m.State().Dragging())
	assert.Equal(t, 0, router.Active())
}

func TestDrag_Vertical(t *testing.T) {
	// 13 rows: two 6-row panels around the handle at y=6.
	m, _ := newView(t, halves(split.Vertical), 20, 13)

	m, cmd := m.Update(mouse(tea.MouseActionPress, 5, 6))
	require.NotNil(t, cmd)
	require.True(t, m.State().Dragging())

	_, cmd = m.Update(mouse(tea.MouseActionMotion, 5, 9))
	assert.InDeltaSlice(t, []float64{75, 25}, sizesOf(t, cmd), 1e-9)
}

func TestDrag_FollowsOrigin(t *testing.T) {
	m, _ := newView(t, halves(split.Horizontal), 41, 6)
	m.SetOrigin(0, 1)

	m, _ = m.Update(mouse(tea.MouseActionPress, 20, 7))
	assert.False(t, m.State().Dragging(), "row 7 is below the view")

	m, _ = m.Update(mouse(tea.MouseActionPress, 20, 1))
	assert.True(t, m.State().Dragging())
}

func TestPress_OffHandle(t *testing.T) {
	m, router := newView(t, halves(split.Horizontal), 41, 6)

	m, cmd := m.Update(mouse(tea.MouseActionPress, 4, 2))
	assert.Nil(t, cmd)
	assert.False(t, m.State().Dragging())
	assert.Equal(t, 0, router.Active())
}

func TestPress_RightButtonIgnored(t *testing.T) {
	m, _ := newView(t, halves(split.Horizontal), 41, 6)

	m, _ = m.Update(tea.MouseMsg{X: 20, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	assert.False(t, m.State().Dragging())
}

func TestMotion_WithoutDrag(t *testing.T) {
	m, _ := newView(t, halves(split.Horizontal), 41, 6)

	m, cmd := m.Update(mouse(tea.MouseActionMotion, 30, 2))
	assert.Nil(t, cmd)
	assert.Equal(t, []float64{50, 50}, m.State().Sizes())

	_, cmd = m.Update(mouse(tea.MouseActionRelease, 30, 2))
	assert.Nil(t, cmd)
}

func TestMotion_OutsideViewIsClamped(t *testing.T) {
	m, _ := newView(t, halves(split.Horizontal), 41, 6)

	m, _ = m.Update(mouse(tea.MouseActionPress, 20, 2))
	_, cmd := m.Update(mouse(tea.MouseActionMotion, -30, 40))
	assert.InDeltaSlice(t, []float64{10, 90}, sizesOf(t, cmd), 1e-9)
}

func TestClose_ReleasesCapture(t *testing.T) {
	m, router := newView(t, halves(split.Horizontal), 41, 6)

	m, _ = m.Update(mouse(tea.MouseActionPress, 20, 2))
	require.Equal(t, 1, router.Active())

	m.Close()
	assert.Equal(t, 0, router.Active())
	assert.True(t, m.State().Closed())
}

func TestUpdate_IgnoredAfterClose(t *testing.T) {
	m, router := newView(t, halves(split.Horizontal), 41, 6)
	m.Close()
	m.Close()

	m, cmd := m.Update(mouse(tea.MouseActionPress, 20, 2))
	assert.Nil(t, cmd, "closed state produces no error message")
	assert.False(t, m.State().Dragging())
	assert.Equal(t, 0, router.Active())
}

func TestKeys_IgnoredWhenUnfocused(t *testing.T) {
	m, _ := newView(t, halves(split.Horizontal), 41, 6)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Nil(t, cmd)
}

func TestKeys_NudgeAndReset(t *testing.T) {
	m, _ := newView(t, halves(split.Horizontal), 41, 6)
	m.SetFocused(true)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.InDeltaSlice(t, []float64{55, 45}, sizesOf(t, cmd), 1e-9)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("h")})
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("h")})
	assert.InDeltaSlice(t, []float64{45, 55}, sizesOf(t, cmd), 1e-9)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	assert.Equal(t, []float64{50, 50}, sizesOf(t, cmd))
}

func TestKeys_LimitReached(t *testing.T) {
	m, _ := newView(t, halves(split.Horizontal), 41, 6)
	m.SetFocused(true)
	m.SetStep(40)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.InDeltaSlice(t, []float64{90, 10}, sizesOf(t, cmd), 1e-9)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	require.NotNil(t, cmd)
	assert.Equal(t, LimitReachedMsg{Handle: 0}, cmd())
}

func TestKeys_SelectHandle(t *testing.T) {
	cfg := split.Config{Panels: []split.Constraint{{}, {}, {}}}
	m, _ := newView(t, cfg, 32, 6)
	m.SetFocused(true)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, m.SelectedHandle())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, m.SelectedHandle(), "wraps around")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 1, m.SelectedHandle())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	sizes := sizesOf(t, cmd)
	assert.InDelta(t, 100.0/3, sizes[0], 1e-9, "panel before the other handle is untouched")
}

func TestKeys_SinglePanel(t *testing.T) {
	m, _ := newView(t, split.Config{Panels: []split.Constraint{{}}}, 20, 6)
	m.SetFocused(true)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Nil(t, cmd)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, m.SelectedHandle())
}

func TestKeys_NudgeIgnoredWhileDragging(t *testing.T) {
	m, _ := newView(t, halves(split.Horizontal), 41, 6)
	m.SetFocused(true)

	m, _ = m.Update(mouse(tea.MouseActionPress, 20, 2))
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Nil(t, cmd)
	assert.Equal(t, []float64{50, 50}, m.State().Sizes())
}

func TestSetState_ClosesPrevious(t *testing.T) {
	m, router := newView(t, halves(split.Horizontal), 41, 6)
	m, _ = m.Update(mouse(tea.MouseActionPress, 20, 2))
	old := m.State()

	next, err := split.New(split.Config{Panels: []split.Constraint{{}, {}, {}}})
	require.NoError(t, err)
	m.SetState(next, nil)

	assert.True(t, old.Closed())
	assert.Equal(t, 0, router.Active())
	assert.Same(t, next, m.State())
}

func TestView_Horizontal(t *testing.T) {
	m, _ := newView(t, halves(split.Horizontal), 41, 6)

	view := m.View()
	lines := testutil.SplitLines(view)
	require.Len(t, lines, 6)
	for i, line := range lines {
		assert.Equal(t, 41, testutil.MeasureWidth(line), "line %d width", i)
	}
	assert.Equal(t, []rune("││││││"), testutil.Column(view, 20))
	assert.True(t, testutil.ContainsLine(testutil.StripANSI(view), "Files"))
	assert.True(t, testutil.ContainsLine(testutil.StripANSI(view), "50.0%"))
}

func TestView_Vertical(t *testing.T) {
	m, _ := newView(t, halves(split.Vertical), 20, 13)

	lines := testutil.SplitLines(m.View())
	require.Len(t, lines, 13)
	assert.Equal(t, strings.Repeat("─", 20), lines[6])
}

func TestView_FollowsSizes(t *testing.T) {
	m, _ := newView(t, halves(split.Horizontal), 41, 6)
	m, _ = m.Update(mouse(tea.MouseActionPress, 20, 2))
	m, _ = m.Update(mouse(tea.MouseActionMotion, 30, 2))

	view := m.View()
	assert.Equal(t, []rune("││││││"), testutil.Column(view, 30))
	assert.True(t, testutil.ContainsLine(testutil.StripANSI(view), "75.0%"))
}

func TestView_Compact(t *testing.T) {
	m, _ := newView(t, halves(split.Horizontal), 5, 3)

	view := testutil.StripANSI(m.View())
	assert.NotEmpty(t, view)
	assert.NotContains(t, view, "╭")
}

func TestView_ZeroSize(t *testing.T) {
	m, _ := newView(t, halves(split.Horizontal), 0, 0)
	assert.Empty(t, m.View())
}
