// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render provides a software implementation of the projection/view
// state that offaxis cameras install, and a CPU canvas for drawing what that
// state projects.
//
// # MatrixStack
//
// MatrixStack implements offaxis.RenderState with the push/pop semantics of
// a fixed-function matrix stack: SaveProjectionAndView pushes the current
// projection and view, RestoreProjectionAndView pops them. Project maps world
// points to window coordinates through the installed transforms.
//
// # Canvas
//
// Canvas is a CPU-backed *image.RGBA target that strokes projected segments
// with golang.org/x/image/vector and writes text with a fixed bitmap face.
//
// # Usage
//
//	stack := render.NewMatrixStack(offaxis.Rect(0, 0, 800, 600))
//	canvas := render.NewCanvas(800, 600)
//
//	err := offaxis.Render(cam, stack, canvas.Viewport(), func() error {
//	    for _, e := range edges {
//	        if p, q, ok := stack.ProjectSegment(e[0], e[1]); ok {
//	            canvas.Line(p.X, p.Y, q.X, q.Y, 1.5, color.White)
//	        }
//	    }
//	    return nil
//	})
package render
