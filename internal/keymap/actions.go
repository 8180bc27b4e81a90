// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit   Action = "quit"
	ActionHelp   Action = "help"
	ActionReload Action = "reload_config"

	// Split actions
	ActionNextHandle Action = "next_handle"
	ActionPrevHandle Action = "prev_handle"
	ActionShrink     Action = "shrink"
	ActionGrow       Action = "grow"
	ActionReset      Action = "reset"
)

// Binding maps keys to an action, with help text.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global" or "split"
}

// All contains every key binding.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "quit", "global"},
	{ActionHelp, []string{"?"}, "help", "global"},
	{ActionReload, []string{"ctrl+r"}, "reload config", "global"},

	// Split
	{ActionNextHandle, []string{"tab"}, "next handle", "split"},
	{ActionPrevHandle, []string{"shift+tab"}, "prev handle", "split"},
	{ActionShrink, []string{"left", "h", "up", "k"}, "move handle back", "split"},
	{ActionGrow, []string{"right", "l", "down", "j"}, "move handle forward", "split"},
	{ActionReset, []string{"r"}, "reset sizes", "split"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, b := range All {
		if b.Context == context {
			result = append(result, b)
		}
	}
	return result
}
