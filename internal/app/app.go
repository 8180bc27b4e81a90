// internal/app/app.go
package app

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/panes/internal/config"
	"github.com/llehouerou/panes/internal/keymap"
	"github.com/llehouerou/panes/internal/split"
	"github.com/llehouerou/panes/internal/ui/pointer"
	"github.com/llehouerou/panes/internal/ui/splitview"
)

const appTitle = "panes"

// Model is the root application model containing all state.
type Model struct {
	Config   *config.Config
	Router   *pointer.Router
	Split    splitview.Model
	Keys     *keymap.Resolver
	Help     help.Model
	ErrorMsg string
	Fatal    bool // ErrorMsg ended the program
	AtLimit  bool
	Width    int
	Height   int

	loader  func() (*config.Config, error)
	changes <-chan struct{}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.waitForChange()
}

// New creates a new application model from configuration. It fails when the
// layout section does not describe a valid layout.
func New(cfg *config.Config) (Model, error) {
	router := pointer.NewRouter()

	state, err := newState(cfg, router)
	if err != nil {
		return Model{}, err
	}

	sv := splitview.New(state, panelsOf(cfg), cfg.GetKeysConfig().Step)
	sv.SetFocused(true)

	return Model{
		Config: cfg,
		Router: router,
		Split:  sv,
		Keys:   keymap.NewResolver(keymap.All),
		Help:   help.New(),
		loader: config.Load,
	}, nil
}

// SetLoader replaces the function used to reload the configuration.
func (m *Model) SetLoader(load func() (*config.Config, error)) {
	m.loader = load
}

// WatchConfig makes the app reload its config whenever changes delivers a
// value, typically from config.Watcher.Changes.
func (m *Model) WatchConfig(changes <-chan struct{}) {
	m.changes = changes
}

// waitForChange blocks until the next config change. It returns nil once
// the channel is closed so the program stops listening.
func (m Model) waitForChange() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	changes := m.changes
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return ConfigChangedMsg{}
	}
}

// newState builds the layout state for cfg, capturing the pointer through
// router while a handle is dragged.
func newState(cfg *config.Config, router *pointer.Router) (*split.State, error) {
	sc, err := cfg.Split()
	if err != nil {
		return nil, err
	}
	policy, err := cfg.Policy()
	if err != nil {
		return nil, err
	}
	return split.New(sc,
		split.WithPolicy(policy),
		split.WithListeners(split.ListenersFunc(router.Listeners(splitview.ID))),
	)
}

func panelsOf(cfg *config.Config) []splitview.Panel {
	src := cfg.GetPanels()
	panels := make([]splitview.Panel, len(src))
	for i, p := range src {
		panels[i] = splitview.Panel{Title: p.Title, Body: p.Body}
	}
	return panels
}
