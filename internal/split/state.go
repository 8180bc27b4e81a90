package split

import "slices"

// Listeners is acquired while a drag is in progress. The host uses it to
// start receiving pointer motion and release events; the returned function
// stops them. State calls release exactly once per acquisition.
type Listeners interface {
	Acquire() (release func())
}

// ListenersFunc adapts a function to Listeners.
type ListenersFunc func() (release func())

// Acquire calls f.
func (f ListenersFunc) Acquire() func() {
	return f()
}

type noListeners struct{}

func (noListeners) Acquire() func() { return func() {} }

// Session is the drag state of a layout.
type Session struct {
	Active bool
	Handle int
}

// Signal is an input to State.Apply.
type Signal interface {
	signal()
}

// HandleActivated starts dragging a handle (pointer down on it).
type HandleActivated struct {
	Handle int
}

// PointerMoved reports the pointer position along the layout axis, in
// percent of the container extent.
type PointerMoved struct {
	Position float64
}

// PointerReleased ends the current drag.
type PointerReleased struct{}

// HandleNudged moves a handle by Delta percent without a drag session.
type HandleNudged struct {
	Handle int
	Delta  float64
}

func (HandleActivated) signal() {}
func (PointerMoved) signal()    {}
func (PointerReleased) signal() {}
func (HandleNudged) signal()    {}

// Option configures a State.
type Option func(*State)

// WithPolicy sets what happens when a handle runs into a panel bound.
func WithPolicy(p Policy) Option {
	return func(s *State) {
		s.policy = p
	}
}

// WithListeners sets the pointer listeners acquired while dragging.
func WithListeners(l Listeners) Option {
	return func(s *State) {
		if l != nil {
			s.listeners = l
		}
	}
}

// State owns the sizes of one layout and its drag session. All mutation goes
// through Apply; readers get copies. State is not safe for concurrent use:
// signals must arrive serialized, in order.
type State struct {
	cfg       Config
	sizes     []float64
	policy    Policy
	session   Session
	listeners Listeners
	release   func()
	closed    bool
}

// New validates cfg and returns a State holding its normalized sizes.
func New(cfg Config, opts ...Option) (*State, error) {
	sizes, err := Normalize(cfg)
	if err != nil {
		return nil, err
	}
	s := &State{
		cfg:       Config{Direction: cfg.Direction, Panels: slices.Clone(cfg.Panels)},
		sizes:     sizes,
		listeners: noListeners{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Direction returns the layout axis.
func (s *State) Direction() Direction {
	return s.cfg.Direction
}

// Policy returns the limit policy used for resizes.
func (s *State) Policy() Policy {
	return s.policy
}

// Len returns the number of panels.
func (s *State) Len() int {
	return len(s.sizes)
}

// Size returns the size of panel i in percent.
func (s *State) Size(i int) float64 {
	return s.sizes[i]
}

// Sizes returns a copy of all panel sizes.
func (s *State) Sizes() []float64 {
	return slices.Clone(s.sizes)
}

// Session returns the current drag session.
func (s *State) Session() Session {
	return s.session
}

// Dragging reports whether a drag session is active.
func (s *State) Dragging() bool {
	return s.session.Active
}

// ActiveHandle returns the dragged handle, if any.
func (s *State) ActiveHandle() (int, bool) {
	return s.session.Handle, s.session.Active
}

// Closed reports whether Close has been called.
func (s *State) Closed() bool {
	return s.closed
}

// RequestActivate starts a drag on handle. It is ignored while another drag
// is active.
func (s *State) RequestActivate(handle int) error {
	_, err := s.Apply(HandleActivated{Handle: handle})
	return err
}

// Apply runs one signal through the state machine and reports whether the
// sizes changed.
//
// Idle accepts HandleActivated and HandleNudged. Dragging accepts
// PointerMoved and PointerReleased; a second HandleActivated is ignored so
// only one handle moves at a time. Signals that do not apply to the current
// state are ignored without error.
func (s *State) Apply(sig Signal) (bool, error) {
	if s.closed {
		return false, ErrClosed
	}

	switch sig := sig.(type) {
	case HandleActivated:
		return false, s.activate(sig.Handle)

	case PointerMoved:
		if !s.session.Active {
			return false, nil
		}
		next, err := s.policy.Resize(s.sizes, s.cfg.Panels, s.session.Handle, sig.Position)
		if err != nil {
			return false, err
		}
		return s.commit(next), nil

	case PointerReleased:
		s.end()
		return false, nil

	case HandleNudged:
		if s.session.Active {
			return false, nil
		}
		next, err := s.policy.ResizeBy(s.sizes, s.cfg.Panels, sig.Handle, sig.Delta)
		if err != nil {
			return false, err
		}
		return s.commit(next), nil
	}
	return false, nil
}

// Reset ends any drag and restores the normalized initial sizes.
func (s *State) Reset() error {
	return s.Reconfigure(s.cfg)
}

// Reconfigure ends any drag and reinitializes the state from cfg, as if it
// had been created with New. On error the state is left unchanged.
func (s *State) Reconfigure(cfg Config) error {
	if s.closed {
		return ErrClosed
	}
	sizes, err := Normalize(cfg)
	if err != nil {
		return err
	}
	s.end()
	s.cfg = Config{Direction: cfg.Direction, Panels: slices.Clone(cfg.Panels)}
	s.sizes = sizes
	return nil
}

// Close ends any drag, releasing its listeners, and marks the state as torn
// down. Close is idempotent.
func (s *State) Close() {
	s.end()
	s.closed = true
}

func (s *State) activate(handle int) error {
	if s.session.Active {
		return nil
	}
	if err := checkHandle(handle, len(s.sizes)); err != nil {
		return err
	}
	s.release = s.listeners.Acquire()
	s.session = Session{Active: true, Handle: handle}
	return nil
}

func (s *State) end() {
	if !s.session.Active {
		return
	}
	release := s.release
	s.release = nil
	s.session = Session{}
	if release != nil {
		release()
	}
}

func (s *State) commit(next []float64) bool {
	if slices.Equal(next, s.sizes) {
		return false
	}
	s.sizes = next
	return true
}
