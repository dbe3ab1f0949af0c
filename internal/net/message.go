package net

import (
	"errors"
	"fmt"

	"PenSheet/internal/state"
)

var (
	ErrUnknownMessage = errors.New("unknown message type")
	ErrNoTouches      = errors.New("message carries no touches")
)

// Touch is one contact as sent by a pen client, in sheet-local units.
type Touch struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Force     float64 `json:"force"`
	TouchType string  `json:"touchType"`
}

// Message is a single contact notification from a pen client.
type Message struct {
	Type    string  `json:"type"`
	Touches []Touch `json:"touches"`
}

// Event converts m into a contact event for the session.
func (m Message) Event() (state.ContactEvent, error) {
	var phase state.Phase
	switch m.Type {
	case "touchstart":
		phase = state.PhaseStart
	case "touchmove":
		phase = state.PhaseMove
	case "touchend", "touchcancel":
		phase = state.PhaseEnd
	default:
		return state.ContactEvent{}, fmt.Errorf("%q: %w", m.Type, ErrUnknownMessage)
	}
	if phase != state.PhaseEnd && len(m.Touches) == 0 {
		return state.ContactEvent{}, fmt.Errorf("%q: %w", m.Type, ErrNoTouches)
	}

	ev := state.ContactEvent{Phase: phase, Contacts: make([]state.Contact, 0, len(m.Touches))}
	for _, t := range m.Touches {
		typ := t.TouchType
		if typ == "" {
			typ = "unknown"
		}
		ev.Contacts = append(ev.Contacts, state.Contact{
			ClientX: t.X,
			ClientY: t.Y,
			Force:   t.Force,
			Type:    state.TouchType(typ),
		})
	}
	return ev, nil
}
