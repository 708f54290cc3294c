package main

import (
	"image/color"

	"github.com/gogpu/offaxis"
	"github.com/gogpu/offaxis/render"
	"golang.org/x/text/message"
)

type demo struct {
	canvas   *render.Canvas
	stack    *render.MatrixStack
	viewport offaxis.Viewport
	printer  *message.Printer
	last     offaxis.Diagnostics
}

// observe receives the diagnostics of each finished session.
func (d *demo) observe(diag offaxis.Diagnostics) {
	d.last = diag
}

// renderFrame moves the eye, draws the room through the portal and writes
// the overlay and PNG.
func (d *demo) renderFrame(cam *offaxis.Camera, eye offaxis.Vec3, path string) error {
	if err := cam.SetUserPosition(eye); err != nil {
		return err
	}
	d.canvas.Clear(background)

	room := roomEdges(cam.Window())
	err := offaxis.Render(cam, d.stack, d.viewport, func() error {
		offaxis.Logger().Debug("portaldemo: view-projection", "rows", d.stack.ViewProjection().RowMajor())
		for _, e := range room {
			if p, q, ok := d.stack.ProjectSegment(e.a, e.b); ok {
				d.canvas.Line(p.X, p.Y, q.X, q.Y, e.width, e.color)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	d.drawOverlay()
	return d.canvas.SavePNG(path)
}

// drawOverlay writes the last session's diagnostics in the top-left corner.
func (d *demo) drawOverlay() {
	f := d.last.Frustum
	p := d.printer
	lines := []string{
		p.Sprintf("Head : %.2f, %.2f, %.2f", d.last.Eye.X, d.last.Eye.Y, d.last.Eye.Z),
		p.Sprintf("WCS TL: %v", d.last.Corners[0]),
		p.Sprintf("WCS BR: %v", d.last.Corners[3]),
		p.Sprintf("WCS MID: %v", d.last.Center),
		p.Sprintf("Cam TL Near: %.4f, %.4f", f.TopLeftNear.X, f.TopLeftNear.Y),
		p.Sprintf("Cam BR Near: %.4f, %.4f", f.BottomRightNear.X, f.BottomRightNear.Y),
		p.Sprintf("d: %.2f  near: %.2f  far: %.2f", f.D, d.last.Near, d.last.Far),
	}
	y := 20
	for _, l := range lines {
		d.canvas.Text(12, y, l, textColor)
		y += d.canvas.LineHeight()
	}
}

type edge struct {
	a, b  offaxis.Vec3
	width float64
	color color.Color
}

var (
	frameColor = color.RGBA{R: 250, G: 200, B: 60, A: 255}
	gridColor  = color.RGBA{R: 70, G: 120, B: 200, A: 255}
	boxColor   = color.RGBA{R: 220, G: 80, B: 90, A: 255}
)

// roomEdges builds a box extending behind the window as deep as it is wide,
// with a grid on its walls and two cubes inside. All geometry is expressed in
// the window's own basis so the room follows the rig.
func roomEdges(w offaxis.ScreenWindow) []edge {
	right, up, back := w.Right(), w.Up(), w.Normal().Neg()
	origin := w.BottomLeft()
	depth := w.Width()
	at := func(x, y, z float64) offaxis.Vec3 {
		return origin.Add(right.Mul(x * w.Width())).Add(up.Mul(y * w.Height())).Add(back.Mul(z * depth))
	}

	var edges []edge
	add := func(a, b offaxis.Vec3, width float64, c color.Color) {
		edges = append(edges, edge{a: a, b: b, width: width, color: c})
	}

	const steps = 8
	for i := 0; i <= steps; i++ {
		t := float64(i) / steps
		// Depth rings.
		add(at(0, 0, t), at(1, 0, t), 1, gridColor)
		add(at(1, 0, t), at(1, 1, t), 1, gridColor)
		add(at(1, 1, t), at(0, 1, t), 1, gridColor)
		add(at(0, 1, t), at(0, 0, t), 1, gridColor)
		// Lines running into the room.
		add(at(t, 0, 0), at(t, 0, 1), 1, gridColor)
		add(at(t, 1, 0), at(t, 1, 1), 1, gridColor)
		add(at(0, t, 0), at(0, t, 1), 1, gridColor)
		add(at(1, t, 0), at(1, t, 1), 1, gridColor)
	}

	// The physical window frame.
	add(at(0, 0, 0), at(1, 0, 0), 3, frameColor)
	add(at(1, 0, 0), at(1, 1, 0), 3, frameColor)
	add(at(1, 1, 0), at(0, 1, 0), 3, frameColor)
	add(at(0, 1, 0), at(0, 0, 0), 3, frameColor)

	cube := func(cx, cy, cz, s float64) {
		var c [8]offaxis.Vec3
		for i := range c {
			dx := float64(i&1)*2 - 1
			dy := float64(i>>1&1)*2 - 1
			dz := float64(i>>2&1)*2 - 1
			c[i] = at(cx+dx*s, cy+dy*s, cz+dz*s)
		}
		for i := range c {
			for _, bit := range []int{1, 2, 4} {
				if j := i ^ bit; j > i {
					add(c[i], c[j], 2, boxColor)
				}
			}
		}
	}
	cube(0.3, 0.3, 0.35, 0.1)
	cube(0.7, 0.45, 0.7, 0.12)

	return edges
}
