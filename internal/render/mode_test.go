package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	for _, m := range Modes {
		got, err := ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	for _, bad := range []string{"", "Point", "spline"} {
		_, err := ParseMode(bad)
		assert.ErrorIs(t, err, ErrUnknownMode, bad)
	}
}

func TestModeNames(t *testing.T) {
	assert.Equal(t, []string{"point", "line", "bezier"}, ModeNames())
	assert.Equal(t, "Mode(9)", Mode(9).String())
}
