// Package render draws captured strokes onto a 2D canvas.
package render

import (
	"fmt"

	"github.com/gogpu/gg"

	"PenSheet/internal/state"
)

const (
	PointRadius = 4
	LineWidth   = 2
)

// Canvas is the part of an immediate-mode 2D context the renderer uses.
type Canvas interface {
	Clear()
	SetRGB(r, g, b float64)
	SetLineWidth(width float64)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticTo(cx, cy, x, y float64)
	DrawCircle(x, y, r float64)
	Fill() error
	Stroke() error
}

var _ Canvas = (*gg.Context)(nil)

// Renderer redraws every stroke each frame. It never mutates strokes.
type Renderer struct{}

// Draw clears c and draws strokes in the given mode.
func (Renderer) Draw(c Canvas, strokes []state.Stroke, mode Mode) error {
	c.Clear()

	var draw func(Canvas, state.Stroke) error
	switch mode {
	case ModePoint:
		draw = drawPoints
	case ModeLine:
		draw = drawLines
	case ModeBezier:
		draw = drawBezier
	default:
		return fmt.Errorf("draw: %v: %w", mode, ErrUnknownMode)
	}

	for _, s := range strokes {
		if err := draw(c, s); err != nil {
			return fmt.Errorf("draw %s %s: %w", mode, s.ID, err)
		}
	}
	return nil
}

func setGray(c Canvas, force float64) {
	v := float64(state.Intensity(force)) / 255
	c.SetRGB(v, v, v)
}

func drawPoints(c Canvas, s state.Stroke) error {
	for _, p := range s.Points {
		setGray(c, p.Force)
		c.DrawCircle(p.X, p.Y, PointRadius)
		if err := c.Fill(); err != nil {
			return err
		}
	}
	return nil
}

func drawLines(c Canvas, s state.Stroke) error {
	for i := 0; i+1 < len(s.Points); i++ {
		p0, p1 := s.Points[i], s.Points[i+1]

		setGray(c, (p0.Force+p1.Force)/2)
		c.SetLineWidth(LineWidth)
		c.MoveTo(p0.X, p0.Y)
		c.LineTo(p1.X, p1.Y)
		if err := c.Stroke(); err != nil {
			return err
		}
	}
	return nil
}

// drawBezier smooths the polyline by using each point as the control of a
// quadratic curve ending at the midpoint to the next one. Only the first
// and last points lie on the curve.
func drawBezier(c Canvas, s state.Stroke) error {
	if len(s.Points) < 2 {
		return nil
	}

	c.SetRGB(0, 0, 0)
	c.SetLineWidth(LineWidth)

	first := s.Points[0]
	c.MoveTo(first.X, first.Y)
	for i := 0; i+1 < len(s.Points); i++ {
		p0, p1 := s.Points[i], s.Points[i+1]
		c.QuadraticTo(p0.X, p0.Y, (p0.X+p1.X)/2, (p0.Y+p1.Y)/2)
	}
	last, _ := s.Last()
	c.LineTo(last.X, last.Y)
	return c.Stroke()
}
