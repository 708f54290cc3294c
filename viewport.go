package offaxis

import "fmt"

// Viewport is a window-space rectangle in pixels. X and Y locate the
// top-left corner.
type Viewport struct {
	X, Y          float64
	Width, Height float64
}

// Rect is a convenience function to create a Viewport.
func Rect(x, y, width, height float64) Viewport {
	return Viewport{X: x, Y: y, Width: width, Height: height}
}

// Empty reports whether the viewport covers no area.
func (v Viewport) Empty() bool {
	return v.Width <= 0 || v.Height <= 0
}

// Aspect returns Width/Height, or 1 for an empty viewport.
func (v Viewport) Aspect() float64 {
	if v.Empty() {
		return 1
	}
	return v.Width / v.Height
}

// String implements fmt.Stringer.
func (v Viewport) String() string {
	return fmt.Sprintf("%gx%g+%g+%g", v.Width, v.Height, v.X, v.Y)
}
