package offaxis

import (
	"fmt"
	"math"
)

// geometryEpsilon bounds edge lengths, eye-to-plane distances and
// projection denominators below which the geometry is considered degenerate.
const geometryEpsilon = 1e-9

// shapeTolerance is the relative tolerance used when checking that the
// corners form a planar rectangle. Violations are logged, not rejected.
const shapeTolerance = 1e-6

// ScreenWindow is the physical, planar, rectangular display surface ("view
// portal window") through which the scene is seen, given by its four
// world-space corners. It is expressed in the same frame as the eye position.
//
// The zero value is not usable; construct with NewScreenWindow.
type ScreenWindow struct {
	topLeft, topRight, bottomLeft, bottomRight Vec3

	xs, ys, zs    Vec3
	width, height float64
}

// NewScreenWindow derives the screen basis from the four corners:
//
//	Xs = normalize(bottomLeft - bottomRight)
//	Ys = normalize(bottomLeft - topLeft)
//	Zs = Xs × Ys
//
// Zs is the screen normal and points towards the viewer for corners given
// counter-clockwise (bottom-left, bottom-right, top-right, top-left) when
// seen from the front. Returns ErrDegenerateGeometry if a corner is not
// finite or the bottom or left edge has zero length.
func NewScreenWindow(topLeft, topRight, bottomLeft, bottomRight Vec3) (ScreenWindow, error) {
	for _, c := range [...]Vec3{topLeft, topRight, bottomLeft, bottomRight} {
		if !c.IsFinite() {
			return ScreenWindow{}, fmt.Errorf("%w: non-finite corner %v", ErrDegenerateGeometry, c)
		}
	}

	bottomEdge := bottomLeft.Sub(bottomRight)
	leftEdge := bottomLeft.Sub(topLeft)
	width := bottomEdge.Length()
	height := leftEdge.Length()
	if width < geometryEpsilon {
		return ScreenWindow{}, fmt.Errorf("%w: zero-width window (bottom edge %v to %v)",
			ErrDegenerateGeometry, bottomLeft, bottomRight)
	}
	if height < geometryEpsilon {
		return ScreenWindow{}, fmt.Errorf("%w: zero-height window (left edge %v to %v)",
			ErrDegenerateGeometry, bottomLeft, topLeft)
	}

	xs := bottomEdge.Div(width)
	ys := leftEdge.Div(height)
	zs := xs.Cross(ys)
	if zs.Length() < geometryEpsilon {
		return ScreenWindow{}, fmt.Errorf("%w: collinear window edges", ErrDegenerateGeometry)
	}

	w := ScreenWindow{
		topLeft:     topLeft,
		topRight:    topRight,
		bottomLeft:  bottomLeft,
		bottomRight: bottomRight,
		xs:          xs,
		ys:          ys,
		zs:          zs,
		width:       width,
		height:      height,
	}
	w.checkShape()
	return w, nil
}

// checkShape warns when the corners are not a planar rectangle. The solver
// only uses the bottom-left corner and the two edges adjacent to it, so a
// skewed window still yields finite bounds, just not the intended ones.
func (w ScreenWindow) checkShape() {
	scale := math.Max(w.width, w.height)
	expected := w.topLeft.Add(w.bottomRight.Sub(w.bottomLeft))
	if dev := w.topRight.Sub(expected).Length(); dev > shapeTolerance*scale {
		Logger().Warn("offaxis: window corners are not a parallelogram",
			"topRight", w.topRight, "expected", expected, "deviation", dev)
	}
	if skew := math.Abs(w.xs.Dot(w.ys)); skew > shapeTolerance {
		Logger().Warn("offaxis: window edges are not perpendicular", "cos", skew)
	}
}

// TopLeft returns the top-left corner.
func (w ScreenWindow) TopLeft() Vec3 { return w.topLeft }

// TopRight returns the top-right corner.
func (w ScreenWindow) TopRight() Vec3 { return w.topRight }

// BottomLeft returns the bottom-left corner, the reference corner of the solver.
func (w ScreenWindow) BottomLeft() Vec3 { return w.bottomLeft }

// BottomRight returns the bottom-right corner.
func (w ScreenWindow) BottomRight() Vec3 { return w.bottomRight }

// Basis returns the derived axes Xs, Ys and Zs.
func (w ScreenWindow) Basis() (xs, ys, zs Vec3) {
	return w.xs, w.ys, w.zs
}

// Normal returns Zs, the screen normal.
func (w ScreenWindow) Normal() Vec3 { return w.zs }

// Right returns the unit vector pointing from the left edge to the right edge.
func (w ScreenWindow) Right() Vec3 { return w.xs.Neg() }

// Up returns the unit vector pointing from the bottom edge to the top edge.
func (w ScreenWindow) Up() Vec3 { return w.ys.Neg() }

// Width returns the physical width |bottomRight - bottomLeft|.
func (w ScreenWindow) Width() float64 { return w.width }

// Height returns the physical height |topLeft - bottomLeft|.
func (w ScreenWindow) Height() float64 { return w.height }

// Center returns the midpoint of the window.
func (w ScreenWindow) Center() Vec3 {
	return w.bottomLeft.Add(w.Right().Mul(w.width / 2)).Add(w.Up().Mul(w.height / 2))
}

// Corners returns the corners in top-left, top-right, bottom-left,
// bottom-right order.
func (w ScreenWindow) Corners() [4]Vec3 {
	return [4]Vec3{w.topLeft, w.topRight, w.bottomLeft, w.bottomRight}
}

// defaultWindow is a 1x1 window centered on (0, 0, -1) facing +Z, seen
// head-on from the default eye at the origin.
func defaultWindow() ScreenWindow {
	w, err := NewScreenWindow(
		V3(-0.5, 0.5, -1), V3(0.5, 0.5, -1),
		V3(-0.5, -0.5, -1), V3(0.5, -0.5, -1),
	)
	if err != nil {
		panic(err)
	}
	return w
}
