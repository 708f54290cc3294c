// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"github.com/gogpu/offaxis"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Canvas is a CPU-backed drawing target using *image.RGBA.
//
// Example:
//
//	canvas := render.NewCanvas(800, 600)
//	canvas.Clear(color.Black)
//	canvas.Line(10, 10, 200, 120, 2, color.White)
//	err := canvas.SavePNG("frame.png")
type Canvas struct {
	img    *image.RGBA
	raster *vector.Rasterizer
}

// NewCanvas creates a new canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		raster: vector.NewRasterizer(width, height),
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.img.Bounds().Dx()
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.img.Bounds().Dy()
}

// Viewport returns a viewport covering the whole canvas.
func (c *Canvas) Viewport() offaxis.Viewport {
	return offaxis.Rect(0, 0, float64(c.Width()), float64(c.Height()))
}

// Image returns the underlying *image.RGBA.
// The returned image shares memory with the canvas.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Clear fills the entire canvas with the given color.
func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// Line strokes the segment (x0, y0)-(x1, y1) with the given width.
// Zero-length segments draw nothing.
func (c *Canvas) Line(x0, y0, x1, y1, width float64, col color.Color) {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 || width <= 0 {
		return
	}
	nx := -dy / length * width / 2
	ny := dx / length * width / 2

	z := c.raster
	z.Reset(c.Width(), c.Height())
	z.DrawOp = draw.Over
	z.MoveTo(float32(x0+nx), float32(y0+ny))
	z.LineTo(float32(x1+nx), float32(y1+ny))
	z.LineTo(float32(x1-nx), float32(y1-ny))
	z.LineTo(float32(x0-nx), float32(y0-ny))
	z.ClosePath()
	z.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

// Text draws s with its baseline starting at (x, y) using a 7x13 bitmap face.
func (c *Canvas) Text(x, y int, s string, col color.Color) {
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// LineHeight returns the advance between two lines of Text.
func (c *Canvas) LineHeight() int {
	return basicfont.Face7x13.Metrics().Height.Ceil()
}

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", path, err)
	}
	if err := png.Encode(f, c.img); err != nil {
		_ = f.Close()
		return fmt.Errorf("render: encode %s: %w", path, err)
	}
	return f.Close()
}
