// Package splitview renders a resizable split layout and turns mouse and
// keyboard input into layout signals.
package splitview

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/panes/internal/errmsg"
	"github.com/llehouerou/panes/internal/keymap"
	"github.com/llehouerou/panes/internal/split"
	"github.com/llehouerou/panes/internal/ui"
	"github.com/llehouerou/panes/internal/ui/layout"
)

// ID is the pointer capture owner used by the split view.
const ID = "splitview"

// ResizedMsg is sent when the panel sizes change.
type ResizedMsg struct {
	Sizes []float64
}

// DragStartedMsg is sent when a handle is grabbed.
type DragStartedMsg struct {
	Handle int
}

// DragEndedMsg is sent when the dragged handle is let go.
type DragEndedMsg struct {
	Handle int
}

// LimitReachedMsg is sent when a keyboard nudge could not move the handle.
type LimitReachedMsg struct {
	Handle int
}

// ErrorMsg reports a failed layout operation.
type ErrorMsg struct {
	Op      errmsg.Op
	Context string
	Err     error
}

// Panel is the content shown in one panel.
type Panel struct {
	Title string
	Body  []string
}

// Model is the split view state. The layout state is shared by pointer and
// lives as long as the view.
type Model struct {
	ui.Base
	state    *split.State
	panels   []Panel
	resolver *keymap.Resolver
	handle   int // keyboard-selected handle
	step     float64
}

// New creates a split view over state. step is the keyboard nudge in
// percent.
func New(state *split.State, panels []Panel, step float64) Model {
	return Model{
		state:    state,
		panels:   panels,
		resolver: keymap.NewResolver(keymap.ByContext("split")),
		step:     step,
	}
}

// SetState replaces the layout state and panel contents, after a config
// reload. The previous state is closed.
func (m *Model) SetState(state *split.State, panels []Panel) {
	if m.state != nil && m.state != state && !m.state.Closed() {
		m.state.Close()
	}
	m.state = state
	m.panels = panels
	if m.handle >= m.handles() {
		m.handle = 0
	}
}

// SetStep sets the keyboard nudge in percent.
func (m *Model) SetStep(step float64) {
	m.step = step
}

// State returns the layout state.
func (m Model) State() *split.State {
	return m.state
}

// SelectedHandle returns the keyboard-selected handle.
func (m Model) SelectedHandle() int {
	return m.handle
}

// Close tears down the layout state, releasing any pointer capture.
func (m Model) Close() {
	if m.state != nil && !m.state.Closed() {
		m.state.Close()
	}
}

func (m Model) handles() int {
	if m.state == nil {
		return 0
	}
	return max(m.state.Len()-1, 0)
}

// Update handles messages for the split view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.state == nil || m.state.Closed() {
		return m, nil
	}
	switch msg := msg.(type) {
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		if !m.IsFocused() {
			return m, nil
		}
		return m.handleAction(m.resolver.Resolve(msg))
	}
	return m, nil
}

// axis returns the pointer offset along the layout axis and the extent of
// that axis, in component coordinates.
func (m Model) axis(x, y int) (along, extent int) {
	lx, ly := m.Local(x, y)
	if m.state.Direction() == split.Vertical {
		return ly, m.Height()
	}
	return lx, m.Width()
}

func (m Model) extents() []int {
	extent := m.Width()
	if m.state.Direction() == split.Vertical {
		extent = m.Height()
	}
	return layout.Extents(m.state.Sizes(), layout.PanelSpace(extent, m.state.Len()))
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || m.state.Dragging() {
			return m, nil
		}
		if !m.Contains(msg.X, msg.Y) {
			return m, nil
		}
		along, _ := m.axis(msg.X, msg.Y)
		h, ok := layout.HandleAt(m.extents(), along)
		if !ok {
			return m, nil
		}
		if _, err := m.state.Apply(split.HandleActivated{Handle: h}); err != nil {
			return m, func() tea.Msg {
				return ErrorMsg{Op: errmsg.OpActivateHandle, Context: fmt.Sprintf("handle %d", h+1), Err: err}
			}
		}
		m.handle = h
		log.Printf("split: drag started on handle %d", h)
		return m, func() tea.Msg { return DragStartedMsg{Handle: h} }

	case tea.MouseActionMotion:
		h, active := m.state.ActiveHandle()
		if !active {
			return m, nil
		}
		along, extent := m.axis(msg.X, msg.Y)
		space := layout.PanelSpace(extent, m.state.Len())
		pos := layout.PointerPercent(along, h, space)
		changed, err := m.state.Apply(split.PointerMoved{Position: pos})
		if err != nil {
			return m, errorCmd(errmsg.OpResize, err)
		}
		if !changed {
			return m, nil
		}
		return m, m.resized()

	case tea.MouseActionRelease:
		h, active := m.state.ActiveHandle()
		if !active {
			return m, nil
		}
		if _, err := m.state.Apply(split.PointerReleased{}); err != nil {
			return m, errorCmd(errmsg.OpResize, err)
		}
		log.Printf("split: drag ended on handle %d, sizes %v", h, m.state.Sizes())
		return m, func() tea.Msg { return DragEndedMsg{Handle: h} }
	}
	return m, nil
}

func (m Model) handleAction(action keymap.Action) (Model, tea.Cmd) {
	n := m.handles()
	switch action {
	case keymap.ActionNextHandle:
		if n > 0 {
			m.handle = (m.handle + 1) % n
		}
	case keymap.ActionPrevHandle:
		if n > 0 {
			m.handle = (m.handle - 1 + n) % n
		}
	case keymap.ActionShrink:
		return m.nudge(-m.step)
	case keymap.ActionGrow:
		return m.nudge(m.step)
	case keymap.ActionReset:
		if err := m.state.Reset(); err != nil {
			return m, errorCmd(errmsg.OpResize, err)
		}
		return m, m.resized()
	}
	return m, nil
}

func (m Model) nudge(delta float64) (Model, tea.Cmd) {
	if m.handles() == 0 || m.state.Dragging() {
		return m, nil
	}
	h := m.handle
	changed, err := m.state.Apply(split.HandleNudged{Handle: h, Delta: delta})
	if err != nil {
		return m, errorCmd(errmsg.OpResize, err)
	}
	if !changed {
		log.Printf("split: handle %d held at limit", h)
		return m, func() tea.Msg { return LimitReachedMsg{Handle: h} }
	}
	return m, m.resized()
}

func (m Model) resized() tea.Cmd {
	sizes := m.state.Sizes()
	return func() tea.Msg { return ResizedMsg{Sizes: sizes} }
}

func errorCmd(op errmsg.Op, err error) tea.Cmd {
	return func() tea.Msg { return ErrorMsg{Op: op, Err: err} }
}
