// Package pointer routes mouse events to components that captured the
// pointer, the way a browser routes document-level listeners during a drag.
package pointer

import (
	tea "github.com/charmbracelet/bubbletea"
)

// capture is one live registration.
type capture struct {
	id    int
	owner string
}

// Router tracks pointer captures. The most recent live capture receives
// motion and release events until it is released. Router is used from the
// bubbletea update loop only and is not safe for concurrent use.
type Router struct {
	captures []capture
	nextID   int
}

// NewRouter returns an empty router.
func NewRouter() *Router {
	return &Router{}
}

// Acquire captures the pointer for owner. The returned release function
// drops the capture; calling it more than once is a no-op.
func (r *Router) Acquire(owner string) (release func()) {
	r.nextID++
	id := r.nextID
	r.captures = append(r.captures, capture{id: id, owner: owner})

	released := false
	return func() {
		if released {
			return
		}
		released = true
		r.drop(id)
	}
}

func (r *Router) drop(id int) {
	for i, c := range r.captures {
		if c.id == id {
			r.captures = append(r.captures[:i], r.captures[i+1:]...)
			return
		}
	}
}

// Active returns the number of live captures.
func (r *Router) Active() int {
	return len(r.captures)
}

// Owner returns the owner of the current capture.
func (r *Router) Owner() (string, bool) {
	if len(r.captures) == 0 {
		return "", false
	}
	return r.captures[len(r.captures)-1].owner, true
}

// Route returns the owner that should receive msg. Only motion and release
// events are routed by capture; presses and wheel events go through normal
// focus routing, so ok is false for them.
func (r *Router) Route(msg tea.MouseMsg) (owner string, ok bool) {
	if !Captures(msg) {
		return "", false
	}
	return r.Owner()
}

// Captures reports whether msg is the kind of event a capture receives.
func Captures(msg tea.MouseMsg) bool {
	switch msg.Action {
	case tea.MouseActionMotion, tea.MouseActionRelease:
		return true
	default:
		return false
	}
}

// Listeners returns an Acquire function bound to owner, suitable for
// split.ListenersFunc.
func (r *Router) Listeners(owner string) func() func() {
	return func() func() {
		return r.Acquire(owner)
	}
}
