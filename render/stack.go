// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/offaxis"
)

// savedTransforms is one entry of the MatrixStack.
type savedTransforms struct {
	projection offaxis.Matrix4
	view       offaxis.Matrix4
}

// MatrixStack is a software projection/view matrix stack with a viewport.
// It implements offaxis.RenderState.
//
// The zero value is not usable; construct with NewMatrixStack.
type MatrixStack struct {
	projection offaxis.Matrix4
	view       offaxis.Matrix4
	viewport   offaxis.Viewport
	stack      []savedTransforms
}

// Ensure MatrixStack implements offaxis.RenderState.
var _ offaxis.RenderState = (*MatrixStack)(nil)

// NewMatrixStack creates a stack with identity projection and view and the
// given window viewport.
func NewMatrixStack(window offaxis.Viewport) *MatrixStack {
	return &MatrixStack{
		projection: offaxis.Identity4(),
		view:       offaxis.Identity4(),
		viewport:   window,
		stack:      make([]savedTransforms, 0, 4),
	}
}

// SaveProjectionAndView pushes the current projection and view.
func (s *MatrixStack) SaveProjectionAndView() {
	s.stack = append(s.stack, savedTransforms{projection: s.projection, view: s.view})
}

// RestoreProjectionAndView pops the last saved projection and view.
// Popping an empty stack leaves the transforms unchanged and logs a warning.
func (s *MatrixStack) RestoreProjectionAndView() {
	if len(s.stack) == 0 {
		offaxis.Logger().Warn("render: restore on empty matrix stack")
		return
	}
	top := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	s.projection = top.projection
	s.view = top.view
}

// SetFrustum replaces the projection with an asymmetric perspective frustum.
func (s *MatrixStack) SetFrustum(left, right, bottom, top, near, far float64) {
	s.projection = offaxis.FrustumMatrix(left, right, bottom, top, near, far)
}

// LookAt replaces the view with a look-at transform.
func (s *MatrixStack) LookAt(eye, target, up offaxis.Vec3) {
	s.view = offaxis.LookAtMatrix(eye, target, up)
}

// SetViewport sets the window-space viewport.
func (s *MatrixStack) SetViewport(vp offaxis.Viewport) {
	s.viewport = vp
}

// SetProjection replaces the projection matrix.
func (s *MatrixStack) SetProjection(m offaxis.Matrix4) {
	s.projection = m
}

// SetView replaces the view matrix.
func (s *MatrixStack) SetView(m offaxis.Matrix4) {
	s.view = m
}

// Depth returns the number of saved entries.
func (s *MatrixStack) Depth() int {
	return len(s.stack)
}

// Projection returns the current projection matrix.
func (s *MatrixStack) Projection() offaxis.Matrix4 {
	return s.projection
}

// View returns the current view matrix.
func (s *MatrixStack) View() offaxis.Matrix4 {
	return s.view
}

// ViewProjection returns projection * view.
func (s *MatrixStack) ViewProjection() offaxis.Matrix4 {
	return s.projection.Multiply(s.view)
}

// Viewport returns the current viewport.
func (s *MatrixStack) Viewport() offaxis.Viewport {
	return s.viewport
}

// Project maps a world point to window coordinates: x and y in pixels with
// the origin at the viewport's top-left corner and y growing downward, z the
// depth in [0, 1] for points between the clip planes. ok is false for points
// on or behind the eye plane, which have no projection.
func (s *MatrixStack) Project(p offaxis.Vec3) (win offaxis.Vec3, ok bool) {
	clip, w := s.ViewProjection().TransformPoint(p)
	if w <= 0 {
		return offaxis.Vec3{}, false
	}
	return s.toWindow(clip, w), true
}

// ProjectSegment projects the segment a-b after clipping it against the near
// plane. ok is false when the whole segment lies in front of the near plane.
func (s *MatrixStack) ProjectSegment(a, b offaxis.Vec3) (p, q offaxis.Vec3, ok bool) {
	vp := s.ViewProjection()
	ca, wa := vp.TransformPoint(a)
	cb, wb := vp.TransformPoint(b)

	// Inside the near plane when z >= -w.
	da := ca.Z + wa
	db := cb.Z + wb
	if da < 0 && db < 0 {
		return offaxis.Vec3{}, offaxis.Vec3{}, false
	}
	if da < 0 || db < 0 {
		t := da / (da - db)
		cc := ca.Add(cb.Sub(ca).Mul(t))
		wc := wa + (wb-wa)*t
		if da < 0 {
			ca, wa = cc, wc
		} else {
			cb, wb = cc, wc
		}
	}
	if wa <= 0 || wb <= 0 {
		return offaxis.Vec3{}, offaxis.Vec3{}, false
	}
	return s.toWindow(ca, wa), s.toWindow(cb, wb), true
}

// toWindow performs the perspective divide and the viewport transform.
func (s *MatrixStack) toWindow(clip offaxis.Vec3, w float64) offaxis.Vec3 {
	ndc := clip.Div(w)
	vp := s.viewport
	return offaxis.Vec3{
		X: vp.X + (ndc.X+1)/2*vp.Width,
		Y: vp.Y + (1-ndc.Y)/2*vp.Height,
		Z: (ndc.Z + 1) / 2,
	}
}
