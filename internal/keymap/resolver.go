package keymap

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type entry struct {
	binding key.Binding
	action  Action
	context string
}

// Resolver maps key messages to actions. Earlier bindings win when two
// bindings share a key.
type Resolver struct {
	entries []entry
}

// NewResolver creates a resolver from bindings.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{entries: make([]entry, 0, len(bindings))}
	for _, b := range bindings {
		r.entries = append(r.entries, entry{
			binding: key.NewBinding(
				key.WithKeys(b.Keys...),
				key.WithHelp(b.Keys[0], b.Description),
			),
			action:  b.Action,
			context: b.Context,
		})
	}
	return r
}

// Resolve returns the action for a key message, or empty string if not bound.
func (r *Resolver) Resolve(msg tea.KeyMsg) Action {
	for _, e := range r.entries {
		if key.Matches(msg, e.binding) {
			return e.action
		}
	}
	return ""
}

// ShortHelp returns the bindings for the one-line help view.
func (r *Resolver) ShortHelp() []key.Binding {
	out := make([]key.Binding, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.binding)
	}
	return out
}

// FullHelp groups the bindings by context, in order of first appearance,
// for the expanded help view.
func (r *Resolver) FullHelp() [][]key.Binding {
	var groups [][]key.Binding
	index := make(map[string]int)
	for _, e := range r.entries {
		i, ok := index[e.context]
		if !ok {
			i = len(groups)
			index[e.context] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], e.binding)
	}
	return groups
}
