// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"image"

	xdraw "golang.org/x/image/draw"
)

// ErrNoCPUPixels is returned when presenting a target that has no CPU
// pixel access.
var ErrNoCPUPixels = errors.New("render: target has no CPU pixels")

// Present copies a device-pixel render target into dst. When the
// dimensions differ (the usual case with a device pixel ratio above 1,
// where the drawing buffer is larger than the CSS-sized window image)
// the content is resampled with a bilinear filter; otherwise it is a
// straight blit.
func Present(dst *image.RGBA, src RenderTarget) error {
	pix := src.Pixels()
	if pix == nil {
		return ErrNoCPUPixels
	}
	img := &image.RGBA{
		Pix:    pix,
		Stride: src.Stride(),
		Rect:   image.Rect(0, 0, src.Width(), src.Height()),
	}
	if dst.Bounds().Dx() == img.Rect.Dx() && dst.Bounds().Dy() == img.Rect.Dy() {
		xdraw.Copy(dst, dst.Bounds().Min, img, img.Rect, xdraw.Src, nil)
		return nil
	}
	xdraw.BiLinear.Scale(dst, dst.Bounds(), img, img.Rect, xdraw.Src, nil)
	return nil
}

// Present resolves the default surface into dst, scaling from device
// pixels back to the destination's size.
func (s *SoftwareState) Present(dst *image.RGBA) error {
	return Present(dst, s.surface)
}
