// internal/app/update.go
package app

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/panes/internal/config"
	"github.com/llehouerou/panes/internal/errmsg"
	"github.com/llehouerou/panes/internal/keymap"
	"github.com/llehouerou/panes/internal/ui/splitview"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		m.resizeComponents()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case splitview.ResizedMsg:
		m.AtLimit = false
		return m, nil

	case splitview.LimitReachedMsg:
		m.AtLimit = true
		return m, nil

	case splitview.DragStartedMsg:
		m.AtLimit = false
		m.clearError()
		return m, nil

	case splitview.DragEndedMsg:
		return m, nil

	case splitview.ErrorMsg:
		m.setError(errmsg.FormatWith(msg.Op, msg.Context, msg.Err))
		if !errmsg.IsRecoverable(msg.Err) {
			log.Printf("layout failed: %v", msg.Err)
			m.Fatal = true
			m.Split.Close()
			return m, tea.Quit
		}
		return m, nil

	case ConfigReloadedMsg:
		return m.handleConfigReloaded(msg)

	case ConfigChangedMsg:
		log.Printf("config changed on disk")
		return m, tea.Batch(m.reloadCmd(), m.waitForChange())
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Keys.Resolve(msg) {
	case keymap.ActionQuit:
		m.Split.Close()
		return m, tea.Quit

	case keymap.ActionHelp:
		m.Help.ShowAll = !m.Help.ShowAll
		m.resizeComponents()
		return m, nil

	case keymap.ActionReload:
		return m, m.reloadCmd()
	}

	var cmd tea.Cmd
	m.Split, cmd = m.Split.Update(msg)
	return m, cmd
}

// handleMouseMsg routes motion and release events to the component holding
// the pointer capture, wherever the pointer is. Presses go to the split view
// which hit-tests its handles.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if owner, ok := m.Router.Route(msg); ok && owner != splitview.ID {
		return m, nil
	}

	var cmd tea.Cmd
	m.Split, cmd = m.Split.Update(msg)
	return m, cmd
}

func (m Model) reloadCmd() tea.Cmd {
	load := m.loader
	return func() tea.Msg {
		cfg, err := load()
		return ConfigReloadedMsg{Config: cfg, Err: err}
	}
}

func (m Model) handleConfigReloaded(msg ConfigReloadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		log.Printf("config reload failed: %v", msg.Err)
		m.setError(errmsg.Format(errmsg.OpLoadConfig, msg.Err))
		return m, nil
	}
	if err := m.applyConfig(msg.Config); err != nil {
		log.Printf("config reload rejected: %v", err)
		m.setError(errmsg.Format(errmsg.OpInitLayout, err))
		return m, nil
	}
	log.Printf("config reloaded: %d panels", m.Split.State().Len())
	m.clearError()
	return m, nil
}

// applyConfig switches the layout to cfg. The current state is reconfigured
// in place when the limit policy is unchanged and replaced otherwise. On
// error nothing changes.
func (m *Model) applyConfig(cfg *config.Config) error {
	sc, err := cfg.Split()
	if err != nil {
		return err
	}
	policy, err := cfg.Policy()
	if err != nil {
		return err
	}

	state := m.Split.State()
	if policy == state.Policy() {
		if err := state.Reconfigure(sc); err != nil {
			return err
		}
	} else {
		state, err = newState(cfg, m.Router)
		if err != nil {
			return err
		}
	}

	m.Config = cfg
	m.Split.SetState(state, panelsOf(cfg))
	m.Split.SetStep(cfg.GetKeysConfig().Step)
	m.AtLimit = false
	return nil
}

func (m *Model) setError(msg string) {
	m.ErrorMsg = msg
	m.resizeComponents()
}

func (m *Model) clearError() {
	if m.ErrorMsg == "" {
		return
	}
	m.ErrorMsg = ""
	m.resizeComponents()
}
