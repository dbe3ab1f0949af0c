package ui

import (
	"image/color"
	"strconv"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"PenSheet/internal/state"
)

var barColor = color.NRGBA{R: 54, G: 162, B: 235, A: 180}

// HistogramChart is a bar chart of counts per numeric label.
type HistogramChart struct {
	widget.BaseWidget
	Title string

	labels []int64
	counts []int
	mu     sync.RWMutex
}

var _ state.Chart = (*HistogramChart)(nil)

func NewHistogramChart(title string) *HistogramChart {
	h := &HistogramChart{Title: title}
	h.ExtendBaseWidget(h)
	return h
}

// SetData replaces the series. Call Refresh to redraw.
func (h *HistogramChart) SetData(labels []int64, counts []int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.labels = append([]int64(nil), labels...)
	h.counts = append([]int(nil), counts...)
}

// Data returns a copy of the current series.
func (h *HistogramChart) Data() ([]int64, []int) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return append([]int64(nil), h.labels...), append([]int(nil), h.counts...)
}

func (h *HistogramChart) CreateRenderer() fyne.WidgetRenderer {
	r := &histogramRenderer{
		chart:      h,
		background: canvas.NewRectangle(theme.Color(theme.ColorNameBackground)),
		title:      canvas.NewText(h.Title, theme.Color(theme.ColorNameForeground)),
	}
	r.title.TextSize = theme.TextSize()
	r.rebuild()
	return r
}

type histogramRenderer struct {
	chart      *HistogramChart
	background *canvas.Rectangle
	title      *canvas.Text
	bars       []*canvas.Rectangle
	captions   []*canvas.Text
	counts     []int
}

func (r *histogramRenderer) rebuild() {
	labels, counts := r.chart.Data()
	r.counts = counts
	r.bars = make([]*canvas.Rectangle, len(counts))
	r.captions = make([]*canvas.Text, len(labels))
	for i := range counts {
		r.bars[i] = canvas.NewRectangle(barColor)
		caption := canvas.NewText(strconv.FormatInt(labels[i], 10), theme.Color(theme.ColorNameForeground))
		caption.TextSize = theme.CaptionTextSize()
		caption.Alignment = fyne.TextAlignCenter
		r.captions[i] = caption
	}
}

func (r *histogramRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.title.Move(fyne.NewPos(theme.Padding(), 0))

	titleH := r.title.MinSize().Height
	captionH := float32(0)
	if len(r.captions) > 0 {
		captionH = r.captions[0].MinSize().Height
	}
	plotTop := titleH + theme.Padding()
	plotH := size.Height - plotTop - captionH
	if plotH <= 0 || len(r.bars) == 0 {
		return
	}

	peak := 0
	for _, c := range r.counts {
		peak = max(peak, c)
	}
	slot := size.Width / float32(len(r.bars))
	gap := slot * 0.1
	for i, bar := range r.bars {
		barH := float32(0)
		if peak > 0 {
			barH = plotH * float32(r.counts[i]) / float32(peak)
		}
		x := slot * float32(i)
		bar.Resize(fyne.NewSize(slot-2*gap, barH))
		bar.Move(fyne.NewPos(x+gap, plotTop+plotH-barH))

		r.captions[i].Resize(fyne.NewSize(slot, captionH))
		r.captions[i].Move(fyne.NewPos(x, plotTop+plotH))
	}
}

func (r *histogramRenderer) MinSize() fyne.Size {
	return fyne.NewSize(240, 160)
}

func (r *histogramRenderer) Objects() []fyne.CanvasObject {
	objects := []fyne.CanvasObject{r.background, r.title}
	for _, b := range r.bars {
		objects = append(objects, b)
	}
	for _, c := range r.captions {
		objects = append(objects, c)
	}
	return objects
}

func (r *histogramRenderer) Refresh() {
	r.title.Text = r.chart.Title
	r.rebuild()
	r.Layout(r.chart.Size())
	canvas.Refresh(r.chart)
}

func (r *histogramRenderer) Destroy() {}
