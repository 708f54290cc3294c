// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"github.com/gogpu/offaxis"
	"github.com/gogpu/offaxis/render"
)

// BufferWriter uploads bytes into the camera uniform buffer.
type BufferWriter interface {
	WriteBuffer(offset uint64, data []byte)
}

// UniformState is an offaxis.RenderState that mirrors every change of the
// installed projection or view into the camera uniform buffer.
//
// The viewport is not part of the uniform block; hosts read it with Viewport
// when recording the render pass.
type UniformState struct {
	stack  *render.MatrixStack
	writer BufferWriter
	offset uint64
	eye    offaxis.Vec3
	buf    [UniformsSize]byte
}

// Ensure UniformState implements offaxis.RenderState.
var _ offaxis.RenderState = (*UniformState)(nil)

// NewUniformState creates a state that writes the uniform block at offset
// and uploads the initial identity transforms.
func NewUniformState(w BufferWriter, offset uint64, window offaxis.Viewport) *UniformState {
	s := &UniformState{
		stack:  render.NewMatrixStack(window),
		writer: w,
		offset: offset,
	}
	s.upload()
	return s
}

// SaveProjectionAndView pushes the current transforms. Nothing is uploaded.
func (s *UniformState) SaveProjectionAndView() {
	s.stack.SaveProjectionAndView()
}

// RestoreProjectionAndView pops the saved transforms and uploads them.
func (s *UniformState) RestoreProjectionAndView() {
	s.stack.RestoreProjectionAndView()
	s.upload()
}

// SetFrustum installs the projection and uploads it.
func (s *UniformState) SetFrustum(left, right, bottom, top, near, far float64) {
	s.stack.SetFrustum(left, right, bottom, top, near, far)
	s.upload()
}

// LookAt installs the view and uploads it together with the eye position.
func (s *UniformState) LookAt(eye, target, up offaxis.Vec3) {
	s.stack.LookAt(eye, target, up)
	s.eye = eye
	s.upload()
}

// SetViewport records the viewport for the host's render pass.
func (s *UniformState) SetViewport(vp offaxis.Viewport) {
	s.stack.SetViewport(vp)
}

// Viewport returns the viewport to set on the render pass.
func (s *UniformState) Viewport() offaxis.Viewport {
	return s.stack.Viewport()
}

// Depth returns the number of saved entries.
func (s *UniformState) Depth() int {
	return s.stack.Depth()
}

// Uniforms returns the block that was last uploaded.
func (s *UniformState) Uniforms() CameraUniforms {
	return NewCameraUniforms(s.stack.Projection(), s.stack.View(), s.eye)
}

func (s *UniformState) upload() {
	u := s.Uniforms()
	u.put(s.buf[:])
	s.writer.WriteBuffer(s.offset, s.buf[:])
	offaxis.Logger().Debug("gpu: camera uniforms uploaded", "offset", s.offset, "depth", s.stack.Depth())
}
