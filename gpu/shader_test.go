// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"strings"
	"testing"
)

func TestCameraShaderSource(t *testing.T) {
	src := CameraShaderSource()
	for _, want := range []string{"struct Camera", "@group(0) @binding(0)", "fn vs_main", "fn fs_main"} {
		if !strings.Contains(src, want) {
			t.Errorf("shader source missing %q", want)
		}
	}
}

func TestCompileCameraShader(t *testing.T) {
	code, err := CompileCameraShader()
	if err != nil {
		errStr := err.Error()
		if strings.Contains(errStr, "not yet implemented") || strings.Contains(errStr, "not supported") {
			t.Skipf("Skipping: naga feature not yet implemented: %v", err)
		}
		t.Fatalf("CompileCameraShader() = %v", err)
	}
	if len(code) == 0 {
		t.Fatal("empty SPIR-V")
	}
	if code[0] != 0x07230203 {
		t.Errorf("SPIR-V magic = %#x, want 0x07230203", code[0])
	}
}
