package state

import "math"

// Intensity maps a normalized pressure to the gray level used to draw it.
// Heavier pressure gives a lower (darker) value. The result is not
// clamped above 255, so a negative force yields values past the byte range.
func Intensity(force float64) int {
	v := math.Floor(math.Pow(1-force, 2)*255 - 8)
	return int(math.Max(0, v))
}
