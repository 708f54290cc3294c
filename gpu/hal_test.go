//go:build !nogpu

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/offaxis"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"
)

// createNoopDevice creates a noop device and queue for testing.
// Returns the device, queue, and a cleanup function.
func createNoopDevice(t *testing.T) (hal.Device, hal.Queue, func()) {
	t.Helper()
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		t.Fatalf("CreateInstance failed: %v", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		t.Fatalf("Open failed: %v", err)
	}
	cleanup := func() {
		openDev.Device.Destroy()
		instance.Destroy()
	}
	return openDev.Device, openDev.Queue, cleanup
}

type mockDevice struct{}

func (m *mockDevice) Poll(wait bool) {}
func (m *mockDevice) Destroy()       {}

type mockQueue struct{}

type mockAdapter struct{}

// mockProvider implements gpucontext.DeviceProvider, optionally exposing HAL
// objects the way gogpu contexts do.
type mockProvider struct {
	halDevice hal.Device
	halQueue  hal.Queue
}

func (m *mockProvider) Device() gpucontext.Device             { return &mockDevice{} }
func (m *mockProvider) Queue() gpucontext.Queue               { return &mockQueue{} }
func (m *mockProvider) Adapter() gpucontext.Adapter           { return &mockAdapter{} }
func (m *mockProvider) SurfaceFormat() gputypes.TextureFormat { return gputypes.TextureFormatBGRA8Unorm }

type mockHALProvider struct {
	mockProvider
}

func (m *mockHALProvider) HalDevice() any { return m.halDevice }
func (m *mockHALProvider) HalQueue() any  { return m.halQueue }

func TestNewCameraBuffer(t *testing.T) {
	device, _, cleanup := createNoopDevice(t)
	defer cleanup()

	buf, err := NewCameraBuffer(device)
	if err != nil {
		t.Fatalf("NewCameraBuffer() = %v", err)
	}
	if buf == nil {
		t.Fatal("NewCameraBuffer() returned nil buffer")
	}
	device.DestroyBuffer(buf)
}

func TestNewHALBufferWriter(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	buf, err := NewCameraBuffer(device)
	if err != nil {
		t.Fatal(err)
	}
	defer device.DestroyBuffer(buf)

	t.Run("provider without HAL access", func(t *testing.T) {
		if _, err := NewHALBufferWriter(&mockProvider{}, buf); err == nil {
			t.Error("expected error for provider without HalQueue")
		}
	})

	t.Run("nil arguments", func(t *testing.T) {
		if _, err := NewHALBufferWriter(nil, buf); err == nil {
			t.Error("expected error for nil provider")
		}
		p := &mockHALProvider{mockProvider{halDevice: device, halQueue: queue}}
		if _, err := NewHALBufferWriter(p, nil); err == nil {
			t.Error("expected error for nil buffer")
		}
	})

	t.Run("HAL provider", func(t *testing.T) {
		p := &mockHALProvider{mockProvider{halDevice: device, halQueue: queue}}
		w, err := NewHALBufferWriter(p, buf)
		if err != nil {
			t.Fatalf("NewHALBufferWriter() = %v", err)
		}
		cam, err := offaxis.NewCamera(offaxis.WithUserPosition(offaxis.V3(0.1, 0.2, 0.5)))
		if err != nil {
			t.Fatal(err)
		}
		s := NewUniformState(w, 0, offaxis.Rect(0, 0, 64, 64))
		if err := offaxis.Render(cam, s, offaxis.Viewport{}, func() error { return nil }); err != nil {
			t.Errorf("Render() = %v", err)
		}
	})
}
