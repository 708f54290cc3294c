//go:build !nogpu

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/wgpu/hal"
)

// HALBufferWriter writes the camera uniforms through a HAL queue.
type HALBufferWriter struct {
	queue  hal.Queue
	buffer hal.Buffer
}

// Ensure HALBufferWriter implements BufferWriter.
var _ BufferWriter = (*HALBufferWriter)(nil)

// NewHALBufferWriter takes the queue from a host device provider. The
// provider must also expose its HAL objects (HalDevice/HalQueue), as gogpu
// contexts do.
func NewHALBufferWriter(provider gpucontext.DeviceProvider, buffer hal.Buffer) (*HALBufferWriter, error) {
	if provider == nil {
		return nil, errors.New("gpu: nil device provider")
	}
	if buffer == nil {
		return nil, errors.New("gpu: nil camera buffer")
	}
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, fmt.Errorf("gpu: provider does not expose HAL types")
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("gpu: provider HalQueue is not hal.Queue")
	}
	return NewHALQueueWriter(queue, buffer), nil
}

// NewHALQueueWriter wraps a queue and buffer the caller already owns.
func NewHALQueueWriter(queue hal.Queue, buffer hal.Buffer) *HALBufferWriter {
	return &HALBufferWriter{queue: queue, buffer: buffer}
}

// WriteBuffer implements BufferWriter.
func (w *HALBufferWriter) WriteBuffer(offset uint64, data []byte) {
	if len(data) > 0 {
		w.queue.WriteBuffer(w.buffer, offset, data)
	}
}

// NewCameraBuffer creates a uniform buffer sized for one camera block.
// The caller destroys it with device.DestroyBuffer.
func NewCameraBuffer(device hal.Device) (hal.Buffer, error) {
	buf, err := device.CreateBuffer(&hal.BufferDescriptor{
		Label: "offaxis_camera",
		Size:  UniformsSize,
		Usage: UniformBufferUsage,
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: create camera buffer: %w", err)
	}
	return buf, nil
}
