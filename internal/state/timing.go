package state

import (
	"log"
	"slices"
)

// Histogram counts how often each inter-point gap occurs.
// Labels are distinct gaps in milliseconds, ascending.
type Histogram struct {
	Labels []int64
	Counts []int
}

// Total returns the number of gaps counted.
func (h Histogram) Total() int {
	n := 0
	for _, c := range h.Counts {
		n += c
	}
	return n
}

// Deltas returns the timestamp gaps between consecutive points of every
// stroke, in stroke order.
func Deltas(strokes []Stroke) []int64 {
	var out []int64
	for _, s := range strokes {
		for i := 1; i < len(s.Points); i++ {
			out = append(out, s.Points[i].Timestamp-s.Points[i-1].Timestamp)
		}
	}
	return out
}

// BuildHistogram buckets the inter-point gaps of all strokes.
func BuildHistogram(strokes []Stroke) Histogram {
	deltas := Deltas(strokes)

	counts := make(map[int64]int)
	for _, d := range deltas {
		counts[d]++
	}

	h := Histogram{
		Labels: make([]int64, 0, len(counts)),
		Counts: make([]int, 0, len(counts)),
	}
	for d := range counts {
		h.Labels = append(h.Labels, d)
	}
	slices.Sort(h.Labels)
	for _, d := range h.Labels {
		h.Counts = append(h.Counts, counts[d])
	}
	return h
}

// Chart displays a labeled series of counts.
type Chart interface {
	SetData(labels []int64, counts []int)
	Refresh()
}

// TimingReporter recomputes the gap histogram and pushes it to a chart.
type TimingReporter struct {
	chart Chart
}

// NewTimingReporter creates a reporter feeding chart.
func NewTimingReporter(chart Chart) *TimingReporter {
	return &TimingReporter{chart: chart}
}

// Report rebuilds the histogram from every stroke in st. It is meant to be
// registered as a stroke-end hook.
func (tr *TimingReporter) Report(st *Store) {
	h := BuildHistogram(st.Strokes())
	tr.chart.SetData(h.Labels, h.Counts)
	tr.chart.Refresh()
	log.Printf("[TIMING] %d gaps from %d points in %d buckets", h.Total(), st.PointCount(), len(h.Labels))
}
