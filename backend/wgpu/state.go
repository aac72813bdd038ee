// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"errors"
	"image/color"

	types "github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/core"

	"github.com/gogpu/stage"
	"github.com/gogpu/stage/render"
)

// State context errors.
var (
	// ErrPassActive is returned when AttachPass is called while
	// another pass encoder is still attached.
	ErrPassActive = errors.New("wgpu: a render pass is already attached")

	// ErrNilPass is returned when AttachPass is called with nil.
	ErrNilPass = errors.New("wgpu: pass encoder is nil")
)

// StateContext implements render.StateContext over a gogpu/wgpu render
// pass encoder supplied by the host.
//
// The context records framebuffer binding, viewport, scissor, and
// pending clear operations on the CPU side. While a pass encoder is
// attached, viewport and scissor changes are forwarded to it
// immediately; on attach, the current state is replayed so the encoder
// starts consistent. Clears are folded into load operations: the host
// reads ColorLoadOp, ClearValue, and DepthLoadOp when building its
// next pass descriptor, after which TakeLoadOps resets them to Load.
//
// StateContext is NOT safe for concurrent use.
type StateContext struct {
	handle render.DeviceHandle
	width  int
	height int
	ratio  float64

	corePass *core.CoreRenderPassEncoder

	bound    render.RenderTarget
	viewport render.Rect
	scissor  *render.Rect

	colorLoad  types.LoadOp
	clearValue types.Color
	depthLoad  types.LoadOp
}

// Option configures a StateContext during creation.
type Option func(*StateContext)

// WithDevicePixelRatio overrides the device-to-CSS pixel ratio
// (default 1).
func WithDevicePixelRatio(ratio float64) Option {
	return func(s *StateContext) {
		if ratio > 0 {
			s.ratio = ratio
		}
	}
}

// NewStateContext creates a GPU state context for a drawing buffer of
// width x height device pixels. The device handle comes from the host
// application; see render.DeviceHandle.
func NewStateContext(handle render.DeviceHandle, width, height int, options ...Option) *StateContext {
	s := &StateContext{
		handle:    handle,
		width:     width,
		height:    height,
		ratio:     1,
		colorLoad: types.LoadOpLoad,
		depthLoad: types.LoadOpLoad,
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// Resize updates the drawing-buffer size after a surface
// reconfiguration.
func (s *StateContext) Resize(width, height int) {
	s.width = width
	s.height = height
}

// AttachPass hands the context the host's active pass encoder and
// replays the current viewport and scissor state onto it.
func (s *StateContext) AttachPass(p *core.CoreRenderPassEncoder) error {
	if p == nil {
		return ErrNilPass
	}
	if s.corePass != nil {
		return ErrPassActive
	}
	s.corePass = p
	s.applyViewport()
	s.applyScissor()
	return nil
}

// DetachPass releases the attached pass encoder. Safe to call when no
// pass is attached.
func (s *StateContext) DetachPass() {
	s.corePass = nil
}

// ColorLoadOp returns the load operation for the next pass's color
// attachment.
func (s *StateContext) ColorLoadOp() types.LoadOp { return s.colorLoad }

// ClearValue returns the clear color for the next pass, meaningful
// when ColorLoadOp is Clear.
func (s *StateContext) ClearValue() types.Color { return s.clearValue }

// DepthLoadOp returns the load operation for the next pass's depth
// attachment.
func (s *StateContext) DepthLoadOp() types.LoadOp { return s.depthLoad }

// TakeLoadOps returns the pending color/depth load operations and
// resets both to Load. Hosts call this once per pass begin.
func (s *StateContext) TakeLoadOps() (colorLoad types.LoadOp, clearValue types.Color, depthLoad types.LoadOp) {
	colorLoad, clearValue, depthLoad = s.colorLoad, s.clearValue, s.depthLoad
	s.colorLoad = types.LoadOpLoad
	s.depthLoad = types.LoadOpLoad
	return colorLoad, clearValue, depthLoad
}

// DrawingBufferSize returns the default surface size in device pixels.
func (s *StateContext) DrawingBufferSize() (int, int) {
	return s.width, s.height
}

// DevicePixelRatio returns the device-to-CSS pixel ratio.
func (s *StateContext) DevicePixelRatio() float64 {
	return s.ratio
}

// BindFramebuffer records the drawing destination. Nil binds the
// default surface. The host consults BoundTarget when choosing the
// color attachment for its next pass.
func (s *StateContext) BindFramebuffer(target render.RenderTarget) func() {
	prev := s.bound
	s.bound = target
	return func() { s.bound = prev }
}

// BoundTarget returns the currently bound destination, or nil for the
// default surface.
func (s *StateContext) BoundTarget() render.RenderTarget {
	return s.bound
}

// SetViewport applies the rectangle as the current drawing viewport.
func (s *StateContext) SetViewport(rect render.Rect) {
	s.viewport = rect
	s.applyViewport()
}

// Scissor enables scissoring to rect. The returned function restores
// the prior scissor state, re-applying it to an attached pass.
func (s *StateContext) Scissor(rect render.Rect) func() {
	prev := s.scissor
	s.scissor = &rect
	s.applyScissor()
	return func() {
		s.scissor = prev
		s.applyScissor()
	}
}

// Clear records a clear of the current destination. With a pass
// already recording the clear cannot take effect mid-pass; it becomes
// the load operation of the next pass the host begins.
func (s *StateContext) Clear(c color.Color, depth bool) {
	if c != nil {
		s.colorLoad = types.LoadOpClear
		s.clearValue = wgpuColor(c)
	}
	if depth {
		s.depthLoad = types.LoadOpClear
	}
	if s.corePass != nil {
		stage.Logger().Debug("clear requested mid-pass; deferred to next pass load op")
	}
}

// applyViewport forwards the recorded viewport to an attached pass.
func (s *StateContext) applyViewport() {
	if s.corePass == nil || s.viewport.Empty() {
		return
	}
	v := s.viewport
	// Pass encoders take top-down coordinates; the recorded rect is
	// bottom-up device pixels.
	top := s.targetHeight() - (v.Y + v.Height)
	s.corePass.SetViewport(float32(v.X), float32(top), float32(v.Width), float32(v.Height), 0, 1)
}

// applyScissor forwards the recorded scissor state to an attached
// pass. A disabled scissor resets to the full target.
func (s *StateContext) applyScissor() {
	if s.corePass == nil {
		return
	}
	if s.scissor == nil {
		//nolint:gosec // G115: sizes are non-negative
		s.corePass.SetScissorRect(0, 0, uint32(s.targetWidth()), uint32(s.targetHeight()))
		return
	}
	r := *s.scissor
	top := s.targetHeight() - (r.Y + r.Height)
	if top < 0 {
		top = 0
	}
	//nolint:gosec // G115: rects are clamped non-negative
	s.corePass.SetScissorRect(uint32(max(r.X, 0)), uint32(top), uint32(max(r.Width, 0)), uint32(max(r.Height, 0)))
}

func (s *StateContext) targetWidth() int {
	if s.bound != nil {
		return s.bound.Width()
	}
	return s.width
}

func (s *StateContext) targetHeight() int {
	if s.bound != nil {
		return s.bound.Height()
	}
	return s.height
}

// wgpuColor converts an image/color value to the 0..1 float color the
// pass descriptor expects.
func wgpuColor(c color.Color) types.Color {
	r, g, b, a := c.RGBA()
	return types.Color{
		R: float64(r) / 0xffff,
		G: float64(g) / 0xffff,
		B: float64(b) / 0xffff,
		A: float64(a) / 0xffff,
	}
}

// Ensure StateContext implements render.StateContext.
var _ render.StateContext = (*StateContext)(nil)
