// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"math"

	"github.com/gogpu/stage"
)

// Rect is a rectangle in device pixels with a bottom-up origin, the
// convention GPU viewport and scissor state use.
type Rect struct {
	X, Y, Width, Height int
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// DeviceRect converts a top-left, CSS-pixel viewport rectangle into the
// bottom-up, device-pixel rectangle used for GPU viewport and scissor
// state.
//
// targetHeight is the device-pixel height of the destination: the
// drawing-buffer height when rendering to the default surface, or the
// explicit target's height for offscreen rendering. ratio is the
// device-to-CSS pixel ratio.
func DeviceRect(vr stage.Rect, targetHeight int, ratio float64) Rect {
	return Rect{
		X:      round(vr.X * ratio),
		Y:      round(float64(targetHeight) - (vr.Y+vr.Height)*ratio),
		Width:  round(vr.Width * ratio),
		Height: round(vr.Height * ratio),
	}
}

func round(v float64) int {
	return int(math.Round(v))
}
