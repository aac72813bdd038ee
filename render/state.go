// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "image/color"

// StateContext is the scoped-mutation surface over the process-wide
// GPU state a render pass touches: the bound framebuffer, the viewport
// rectangle, the scissor rectangle, and clears.
//
// State-changing operations that outlive a scope (BindFramebuffer,
// Scissor) return a restore function instead of mutating blindly; the
// caller defers it so the prior global state is reinstated when the
// scope exits, even if the enclosed code panics. SetViewport and Clear
// are plain mutations: the orchestrator re-applies the viewport for
// every sub-viewport, so nothing depends on its prior value.
//
// StateContext is NOT safe for concurrent use. The rendering model is
// single-threaded and synchronous; no two passes may run against the
// same context at once.
type StateContext interface {
	// DrawingBufferSize returns the default surface's size in device
	// pixels.
	DrawingBufferSize() (width, height int)

	// DevicePixelRatio returns the device-to-CSS pixel ratio of the
	// rendering surface.
	DevicePixelRatio() float64

	// BindFramebuffer makes the target the drawing destination. A nil
	// target binds the default surface. The returned function
	// restores the previously bound destination.
	BindFramebuffer(target RenderTarget) (restore func())

	// SetViewport applies the rectangle as the current drawing
	// viewport, in bottom-up device pixels.
	SetViewport(rect Rect)

	// Scissor enables scissoring to the rectangle. The returned
	// function restores the prior scissor state.
	Scissor(rect Rect) (restore func())

	// Clear clears the current drawing destination, honoring the
	// active scissor rectangle. A nil color skips the color clear;
	// depth controls the depth clear.
	Clear(c color.Color, depth bool)
}
