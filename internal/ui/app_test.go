package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PenSheet/internal/config"
)

func TestNewAppWiresSession(t *testing.T) {
	cfg := config.Default()
	cfg.Sheet.Mode = "bezier"

	pa, err := NewApp(test.NewTempApp(t), cfg)
	require.NoError(t, err)

	assert.Equal(t, "bezier", pa.Modes.Selected)
	assert.Equal(t, []string{"point", "line", "bezier"}, pa.Modes.Options)
	assert.NotEmpty(t, pa.Session.ID)
	assert.False(t, pa.Session.Capturing())
	assert.Same(t, pa.Session, pa.Sheet.session)
	assert.Equal(t, "bezier", pa.Sheet.mode())

	pa.Modes.SetSelected("point")
	assert.Equal(t, "point", pa.Sheet.mode())
}

func TestNewAppRejectsBadConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Sheet.FPS = 0

	_, err := NewApp(test.NewTempApp(t), cfg)
	assert.Error(t, err)
}
