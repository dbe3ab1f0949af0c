package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"

	"PenSheet/internal/state"
)

func TestFormatPosition(t *testing.T) {
	assert.Equal(t, "(012.50, 003.00): force = 0.25000000", FormatPosition(12.5, 3, 0.25))
	assert.Equal(t, "(640.13, 100.99): force = 1.00000000", FormatPosition(640.125, 100.99, 1))
	assert.Equal(t, "(000.38, 002.63): force = 0.00000000", FormatPosition(0.375, 2.625, 0))
}

func TestStatusBarReports(t *testing.T) {
	test.NewTempApp(t)
	s := NewStatusBar()

	s.Status(state.StatusError, "stroke left the sheet")
	status, _ := s.Text()
	assert.Equal(t, "stroke left the sheet", status)
	assert.Equal(t, widget.DangerImportance, s.status.Importance)

	s.Status(state.StatusInfo, "capturing")
	assert.Equal(t, widget.MediumImportance, s.status.Importance)

	s.Position(1, 2, 0.5)
	_, position := s.Text()
	assert.Equal(t, "(001.00, 002.00): force = 0.50000000", position)
}
