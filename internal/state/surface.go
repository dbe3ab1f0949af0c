package state

// Rect is the drawing surface's position on screen and its logical size.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Surface reports where the drawing surface currently is.
type Surface interface {
	Bounds() Rect
}

// SurfaceFunc adapts a function to the Surface interface.
type SurfaceFunc func() Rect

func (f SurfaceFunc) Bounds() Rect { return f() }

// Local converts screen coordinates into surface-local ones.
func (r Rect) Local(clientX, clientY float64) (x, y float64) {
	return clientX - r.X, clientY - r.Y
}

// Contains reports whether a surface-local point lies in [0,w)×[0,h).
func (r Rect) Contains(x, y float64) bool {
	return 0 <= x && x < r.Width && 0 <= y && y < r.Height
}
