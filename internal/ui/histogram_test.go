package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistogramChartData(t *testing.T) {
	test.NewTempApp(t)
	h := NewHistogramChart("Interval [ms]")

	labels, counts := []int64{10, 20}, []int{2, 1}
	h.SetData(labels, counts)
	labels[0] = 99

	gotLabels, gotCounts := h.Data()
	assert.Equal(t, []int64{10, 20}, gotLabels)
	assert.Equal(t, []int{2, 1}, gotCounts)
}

func TestHistogramChartBars(t *testing.T) {
	test.NewTempApp(t)
	h := NewHistogramChart("Interval [ms]")
	h.Resize(fyne.NewSize(300, 200))

	r := test.WidgetRenderer(h)
	assert.Len(t, r.Objects(), 2, "background and title only")

	h.SetData([]int64{8, 16, 17}, []int{4, 2, 1})
	h.Refresh()

	var bars []*canvas.Rectangle
	var captions []string
	for _, o := range r.Objects()[2:] {
		switch o := o.(type) {
		case *canvas.Rectangle:
			bars = append(bars, o)
		case *canvas.Text:
			captions = append(captions, o.Text)
		}
	}
	require.Len(t, bars, 3)
	assert.Equal(t, []string{"8", "16", "17"}, captions)

	// bars scale to the tallest count
	assert.InDelta(t, bars[0].Size().Height, 2*bars[1].Size().Height, 0.01)
	assert.InDelta(t, bars[0].Size().Height, 4*bars[2].Size().Height, 0.01)
	assert.Less(t, bars[0].Position().X, bars[1].Position().X)
}
