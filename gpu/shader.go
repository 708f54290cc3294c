// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"
)

//go:embed shaders/camera.wgsl
var cameraShaderWGSL string

// CameraShaderSource returns the WGSL source of the camera shader.
func CameraShaderSource() string {
	return cameraShaderWGSL
}

// CompileCameraShader compiles the camera shader to SPIR-V words.
func CompileCameraShader() ([]uint32, error) {
	spirvBytes, err := naga.Compile(cameraShaderWGSL)
	if err != nil {
		return nil, fmt.Errorf("gpu: failed to compile camera shader: %w", err)
	}
	if len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("gpu: SPIR-V length %d is not a multiple of 4", len(spirvBytes))
	}

	// Convert bytes to uint32 slice for SPIR-V
	code := make([]uint32, len(spirvBytes)/4)
	for i := range code {
		code[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return code, nil
}
