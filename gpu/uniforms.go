// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/offaxis"
)

// UniformsSize is the size in bytes of the packed camera uniform block:
// two mat4x4<f32> and one vec4<f32>.
const UniformsSize = 16*4 + 16*4 + 4*4

// CameraUniforms mirrors the WGSL Camera struct.
type CameraUniforms struct {
	Projection [16]float32
	View       [16]float32
	Eye        [4]float32
}

// NewCameraUniforms builds the uniform block from a GL-convention projection,
// a view matrix and the eye position. The projection is remapped to the
// [0, 1] clip depth range.
func NewCameraUniforms(projection, view offaxis.Matrix4, eye offaxis.Vec3) CameraUniforms {
	return CameraUniforms{
		Projection: DepthZeroToOne.Multiply(projection).Float32(),
		View:       view.Float32(),
		Eye:        [4]float32{float32(eye.X), float32(eye.Y), float32(eye.Z), 1},
	}
}

// Bytes packs the uniforms as little-endian float32 in WGSL layout order.
func (u *CameraUniforms) Bytes() []byte {
	b := make([]byte, UniformsSize)
	u.put(b)
	return b
}

func (u *CameraUniforms) put(b []byte) {
	off := 0
	for _, v := range u.Projection {
		binary.LittleEndian.PutUint32(b[off:], math.Float32bits(v))
		off += 4
	}
	for _, v := range u.View {
		binary.LittleEndian.PutUint32(b[off:], math.Float32bits(v))
		off += 4
	}
	for _, v := range u.Eye {
		binary.LittleEndian.PutUint32(b[off:], math.Float32bits(v))
		off += 4
	}
}
