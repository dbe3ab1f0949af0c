package render

import (
	"context"
	"errors"
	"fmt"
	"image"
	"math"
	"time"

	"github.com/gogpu/gg"
)

// ErrNoSurface is returned when a frame cannot be allocated.
var ErrNoSurface = errors.New("drawing surface unavailable")

// Frame is the pixel buffer behind the sheet. It is allocated at the
// device resolution and scaled so callers draw in logical units.
type Frame struct {
	dc     *gg.Context
	width  float64
	height float64
	scale  float64
}

// NewFrame allocates a frame for a width×height logical surface.
func NewFrame(width, height, scale float64) (*Frame, error) {
	pw := int(math.Round(width * scale))
	ph := int(math.Round(height * scale))
	if pw <= 0 || ph <= 0 {
		return nil, fmt.Errorf("%gx%g at scale %g: %w", width, height, scale, ErrNoSurface)
	}

	dc := gg.NewContext(pw, ph)
	dc.Scale(scale, scale)
	return &Frame{dc: dc, width: width, height: height, scale: scale}, nil
}

// Canvas returns the frame's drawing context.
func (f *Frame) Canvas() Canvas { return f.dc }

// Image returns the rendered pixels.
func (f *Frame) Image() image.Image { return f.dc.Image() }

// Size returns the logical size the frame was allocated for.
func (f *Frame) Size() (width, height float64) { return f.width, f.height }

// Fits reports whether the frame already matches the given geometry.
func (f *Frame) Fits(width, height, scale float64) bool {
	return f.width == width && f.height == height && f.scale == scale
}

// Close releases the drawing context.
func (f *Frame) Close() error { return f.dc.Close() }

// Loop hands frame to schedule once per tick until ctx is done. schedule
// is the host's way of running work on its UI goroutine.
func Loop(ctx context.Context, fps int, schedule func(func()), frame func()) {
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			schedule(frame)
		}
	}
}
