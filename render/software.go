// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"image/color"

	"github.com/gogpu/stage"
)

// SoftwareState is a CPU-backed StateContext.
//
// It keeps the default drawing buffer as an RGBA image in device
// pixels plus a float32 depth plane per destination, and applies
// scissored clears directly to pixel data. It exists so the full
// orchestrator can run (and be tested) without a GPU, and doubles as
// the reference semantics for backend implementations.
type SoftwareState struct {
	surface *PixmapTarget
	depth   map[RenderTarget][]float32
	ratio   float64

	bound    RenderTarget // nil = default surface
	viewport Rect
	scissor  *Rect
}

// NewSoftwareState creates a software state context whose default
// surface covers width x height CSS pixels at the given device pixel
// ratio.
func NewSoftwareState(width, height int, ratio float64) *SoftwareState {
	if ratio <= 0 {
		ratio = 1
	}
	dw := round(float64(width) * ratio)
	dh := round(float64(height) * ratio)
	return &SoftwareState{
		surface: NewPixmapTarget(dw, dh),
		depth:   make(map[RenderTarget][]float32),
		ratio:   ratio,
	}
}

// DrawingBufferSize returns the default surface size in device pixels.
func (s *SoftwareState) DrawingBufferSize() (int, int) {
	return s.surface.Width(), s.surface.Height()
}

// DevicePixelRatio returns the device-to-CSS pixel ratio.
func (s *SoftwareState) DevicePixelRatio() float64 {
	return s.ratio
}

// BindFramebuffer makes the target current. Nil binds the default
// surface. The returned function restores the previous binding.
func (s *SoftwareState) BindFramebuffer(target RenderTarget) func() {
	prev := s.bound
	s.bound = target
	return func() { s.bound = prev }
}

// SetViewport records the current drawing viewport.
func (s *SoftwareState) SetViewport(rect Rect) {
	s.viewport = rect
}

// Viewport returns the most recently applied drawing viewport.
func (s *SoftwareState) Viewport() Rect {
	return s.viewport
}

// Scissor enables scissoring to rect. The returned function restores
// the prior scissor state.
func (s *SoftwareState) Scissor(rect Rect) func() {
	prev := s.scissor
	s.scissor = &rect
	return func() { s.scissor = prev }
}

// ScissorRect returns the active scissor rectangle, or nil when
// scissoring is disabled.
func (s *SoftwareState) ScissorRect() *Rect {
	return s.scissor
}

// Clear clears the bound destination, restricted to the active scissor
// rectangle. A nil color skips the color clear; depth refills the
// destination's depth plane with the far value.
func (s *SoftwareState) Clear(c color.Color, depth bool) {
	img := s.boundImage()
	if img == nil {
		stage.Logger().Debug("software clear skipped: target has no CPU pixels")
		return
	}
	clip := img.Bounds()
	if s.scissor != nil {
		clip = clip.Intersect(s.imageRect(*s.scissor, img))
	}
	if c != nil {
		fillRect(img, clip, c)
	}
	if depth {
		s.clearDepth(clip, img.Bounds())
	}
}

// Surface returns the default drawing buffer.
func (s *SoftwareState) Surface() *PixmapTarget {
	return s.surface
}

// DepthAt returns the depth value at device-pixel (x, y) of the bound
// destination, in top-down image coordinates. Unwritten depth reads as
// the far value 1.
func (s *SoftwareState) DepthAt(x, y int) float32 {
	img := s.boundImage()
	if img == nil {
		return 1
	}
	plane := s.depth[s.bound]
	if plane == nil {
		return 1
	}
	w := img.Bounds().Dx()
	return plane[y*w+x]
}

// boundImage resolves the currently bound destination to its CPU
// pixels, or nil when the target is GPU-only.
func (s *SoftwareState) boundImage() *image.RGBA {
	if s.bound == nil {
		return s.surface.Image()
	}
	if pt, ok := s.bound.(*PixmapTarget); ok {
		return pt.Image()
	}
	return nil
}

// imageRect converts a bottom-up device rectangle into the image's
// top-down coordinate space.
func (s *SoftwareState) imageRect(r Rect, img *image.RGBA) image.Rectangle {
	h := img.Bounds().Dy()
	top := h - (r.Y + r.Height)
	return image.Rect(r.X, top, r.X+r.Width, top+r.Height)
}

// clearDepth refills the clipped region of the bound destination's
// depth plane with the far value.
func (s *SoftwareState) clearDepth(clip, bounds image.Rectangle) {
	w, h := bounds.Dx(), bounds.Dy()
	plane := s.depth[s.bound]
	if plane == nil {
		plane = make([]float32, w*h)
		for i := range plane {
			plane[i] = 1
		}
		s.depth[s.bound] = plane
		return
	}
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		row := plane[y*w : y*w+w]
		for x := clip.Min.X; x < clip.Max.X; x++ {
			row[x] = 1
		}
	}
}

// Ensure SoftwareState implements StateContext.
var _ StateContext = (*SoftwareState)(nil)
