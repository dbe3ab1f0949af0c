package ui

import (
	"fmt"
	"log"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"PenSheet/internal/state"
)

// StatusBar shows session messages and the last captured position.
type StatusBar struct {
	status   *widget.Label
	position *widget.Label
}

var _ state.Reporter = (*StatusBar)(nil)

func NewStatusBar() *StatusBar {
	return &StatusBar{
		status:   widget.NewLabel("Ready"),
		position: widget.NewLabel(FormatPosition(0, 0, 0)),
	}
}

// FormatPosition renders a point the way the position line shows it.
// Halves round away from zero.
func FormatPosition(x, y, force float64) string {
	return fmt.Sprintf("(%06.2f, %06.2f): force = %.8f",
		roundTo(x, 1e2), roundTo(y, 1e2), roundTo(force, 1e8))
}

func roundTo(v, scale float64) float64 {
	return math.Round(v*scale) / scale
}

func (s *StatusBar) Status(kind state.StatusKind, msg string) {
	log.Printf("[UI] Status %s: %s", kind, msg)
	if kind == state.StatusError {
		s.status.Importance = widget.DangerImportance
	} else {
		s.status.Importance = widget.MediumImportance
	}
	s.status.SetText(msg)
}

func (s *StatusBar) Position(x, y, force float64) {
	s.position.SetText(FormatPosition(x, y, force))
}

// Text returns the current status and position lines.
func (s *StatusBar) Text() (status, position string) {
	return s.status.Text, s.position.Text
}

func (s *StatusBar) Object() fyne.CanvasObject {
	return container.NewHBox(s.status, widget.NewSeparator(), s.position)
}
