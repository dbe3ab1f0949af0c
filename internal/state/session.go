package state

import (
	"errors"
	"fmt"
	"log"
)

// Contract violations by the input source. These are bugs, not runtime
// conditions, and callers are expected to stop on them.
var (
	ErrNoContacts       = errors.New("contact event carries no contacts")
	ErrAlreadyCapturing = errors.New("contact start while already capturing")
	ErrUnknownPhase     = errors.New("unknown contact phase")
)

// StatusKind classifies a status message.
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusError
)

func (k StatusKind) String() string {
	if k == StatusError {
		return "error"
	}
	return "info"
}

// Reporter receives status and position updates for display.
type Reporter interface {
	Status(kind StatusKind, msg string)
	Position(x, y, force float64)
}

type nopReporter struct{}

func (nopReporter) Status(StatusKind, string)          {}
func (nopReporter) Position(float64, float64, float64) {}

// Option configures a Session.
type Option func(*Session)

// WithClock sets the timestamp source for captured points.
func WithClock(c Clock) Option {
	return func(s *Session) { s.clock = c }
}

// WithReporter sets the status and position display.
func WithReporter(r Reporter) Option {
	return func(s *Session) { s.reporter = r }
}

// WithStrokeEnd registers a hook run after every stroke is finalized.
func WithStrokeEnd(fn func(*Store)) Option {
	return func(s *Session) { s.onStrokeEnd = append(s.onStrokeEnd, fn) }
}

// Session owns the stroke store and sequences contact events into it.
// All methods must be called from a single goroutine.
type Session struct {
	ID string

	store       *Store
	surface     Surface
	clock       Clock
	reporter    Reporter
	onStrokeEnd []func(*Store)

	capturing bool
}

// NewSession creates an idle session with an empty store.
func NewSession(surface Surface, opts ...Option) *Session {
	s := &Session{
		ID:       newSessionID(),
		store:    NewStore(),
		surface:  surface,
		clock:    WallClock,
		reporter: nopReporter{},
	}
	for _, opt := range opts {
		opt(s)
	}
	log.Printf("[SESSION] Started session %s", s.ID)
	return s
}

// Store returns the session's stroke store. Callers outside the session
// must treat it as read-only.
func (s *Session) Store() *Store { return s.store }

// Capturing reports whether a stroke is in progress.
func (s *Session) Capturing() bool { return s.capturing }

// Handle dispatches ev on its phase. The returned bool reports whether the
// event was consumed, i.e. whether the host's default handling should be
// suppressed.
func (s *Session) Handle(ev ContactEvent) (bool, error) {
	switch ev.Phase {
	case PhaseStart:
		return s.Start(ev)
	case PhaseMove:
		return s.Move(ev)
	case PhaseEnd:
		return s.End(ev), nil
	}
	return false, fmt.Errorf("phase %d: %w", ev.Phase, ErrUnknownPhase)
}

// Start begins a stroke if ev is a single stylus contact.
func (s *Session) Start(ev ContactEvent) (bool, error) {
	if s.capturing {
		return false, ErrAlreadyCapturing
	}
	if len(ev.Contacts) == 0 {
		return false, fmt.Errorf("start: %w", ErrNoContacts)
	}
	if n := len(ev.Contacts); n != 1 {
		s.reporter.Status(StatusInfo, fmt.Sprintf("ignored: %d contacts", n))
		return false, nil
	}
	c := ev.Contacts[0]
	if c.Type != TouchStylus {
		s.reporter.Status(StatusInfo, fmt.Sprintf("ignored: %s input", c.Type))
		return false, nil
	}

	s.capturing = true
	s.store.Begin()
	s.Append(c)
	s.reporter.Status(StatusInfo, "capturing")
	return true, nil
}

// Move extends the stroke in progress. A contact outside the surface ends
// the stroke.
func (s *Session) Move(ev ContactEvent) (bool, error) {
	if !s.capturing {
		return false, nil
	}
	if len(ev.Contacts) == 0 {
		return false, fmt.Errorf("move: %w", ErrNoContacts)
	}
	if !s.Append(ev.Contacts[0]) {
		s.reporter.Status(StatusError, "stroke left the sheet")
		s.finish()
	}
	return true, nil
}

// End finalizes the stroke in progress. It is a no-op while idle.
func (s *Session) End(ContactEvent) bool {
	if !s.capturing {
		return false
	}
	s.finish()
	return true
}

// Append adds c to the stroke in progress if it lands on the surface.
func (s *Session) Append(c Contact) bool {
	r := s.surface.Bounds()
	x, y := r.Local(c.ClientX, c.ClientY)
	if !r.Contains(x, y) {
		return false
	}

	p := Point{X: x, Y: y, Force: c.Force, Timestamp: s.clock()}
	if err := s.store.Append(p); err != nil {
		log.Printf("[SESSION] Dropped point (%.2f, %.2f): %v", x, y, err)
		return false
	}
	s.reporter.Position(x, y, c.Force)
	return true
}

func (s *Session) finish() {
	s.capturing = false

	stroke, err := s.store.Seal()
	if err != nil {
		log.Printf("[SESSION] Could not seal stroke: %v", err)
	} else {
		s.reporter.Status(StatusInfo, fmt.Sprintf("stroke %d: %d points", s.store.Len(), stroke.Len()))
	}

	for _, fn := range s.onStrokeEnd {
		fn(s.store)
	}
}
