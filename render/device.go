// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DeviceHandle provides GPU device access from the host application.
//
// This interface is the integration point between stage and GPU
// frameworks like gogpu. The host application implements DeviceHandle
// and passes it to the GPU state context, allowing stage to use the
// shared GPU device.
//
// Key principle: stage RECEIVES the device from the host, it does NOT
// create one. This enables:
//   - Shared GPU resources between stage and the host application
//   - Zero device creation overhead in stage
//   - Consistent resource management across the stack
//
// DeviceHandle is an alias for gpucontext.DeviceProvider, providing a
// stage-specific name for the interface while maintaining full
// compatibility with the gpucontext ecosystem.
type DeviceHandle = gpucontext.DeviceProvider

// TextureView represents a view into a GPU texture. Views are what a
// pass binds as its color attachment.
type TextureView interface {
	// Destroy releases resources associated with this view.
	Destroy()
}

// NullDeviceHandle is a DeviceHandle that provides nil implementations.
// Used for CPU-only rendering where no GPU is available.
type NullDeviceHandle struct{}

// Device returns nil for the null device.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// AdapterInfo returns an empty descriptor for the null device.
func (NullDeviceHandle) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{}
}

// SurfaceFormat returns undefined format for the null device.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// Ensure NullDeviceHandle implements DeviceHandle.
var _ DeviceHandle = NullDeviceHandle{}
