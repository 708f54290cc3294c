// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gpu feeds offaxis cameras to a GPU pipeline.
//
// UniformState implements offaxis.RenderState by keeping a software matrix
// stack and uploading the camera uniform block (projection, view, eye)
// through a BufferWriter every time the installed transforms change. The
// WGSL shader in shaders/camera.wgsl declares the matching block at
// @group(0) @binding(0).
//
// Usage with a HAL device shared by the host:
//
//	buf, err := gpu.NewCameraBuffer(device)
//	writer, err := gpu.NewHALBufferWriter(provider, buf)
//	state := gpu.NewUniformState(writer, 0, offaxis.Rect(0, 0, w, h))
//	err = offaxis.Render(cam, state, offaxis.Viewport{}, encodeScene)
package gpu

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/offaxis"
)

// UniformBufferUsage is the usage of the camera uniform buffer.
const UniformBufferUsage = gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst

// CameraBindGroupLayoutEntry returns the layout entry for the camera uniform
// block, visible to the vertex stage.
func CameraBindGroupLayoutEntry(binding uint32) gputypes.BindGroupLayoutEntry {
	return gputypes.BindGroupLayoutEntry{
		Binding:    binding,
		Visibility: gputypes.ShaderStageVertex,
		Buffer: &gputypes.BufferBindingLayout{
			Type:           gputypes.BufferBindingTypeUniform,
			MinBindingSize: UniformsSize,
		},
	}
}

// DepthZeroToOne remaps OpenGL clip depth [-w, w] to the [0, w] range used
// by WebGPU, Vulkan, Metal and D3D.
var DepthZeroToOne = offaxis.Matrix4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 0.5, 0,
	0, 0, 0.5, 1,
}
