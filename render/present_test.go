// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/gputypes"
)

// gpuOnlyTarget has no CPU pixel access.
type gpuOnlyTarget struct{}

func (gpuOnlyTarget) Width() int                     { return 4 }
func (gpuOnlyTarget) Height() int                    { return 4 }
func (gpuOnlyTarget) Format() gputypes.TextureFormat { return gputypes.TextureFormatRGBA8Unorm }
func (gpuOnlyTarget) TextureView() TextureView       { return nil }
func (gpuOnlyTarget) Pixels() []byte                 { return nil }
func (gpuOnlyTarget) Stride() int                    { return 16 }

func TestPresentSameSize(t *testing.T) {
	src := NewPixmapTarget(4, 4)
	src.Clear(color.RGBA{R: 255, A: 255})

	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if err := Present(dst, src); err != nil {
		t.Fatalf("Present() = %v", err)
	}
	if got := dst.RGBAAt(2, 2); got.R != 255 || got.A != 255 {
		t.Errorf("pixel = %+v, want red", got)
	}
}

func TestPresentDownscale(t *testing.T) {
	src := NewPixmapTarget(8, 8)
	src.Clear(color.RGBA{R: 255, G: 255, B: 255, A: 255})

	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if err := Present(dst, src); err != nil {
		t.Fatalf("Present() = %v", err)
	}
	// A uniform source stays uniform through resampling.
	if got := dst.RGBAAt(1, 1); got.R != 255 || got.A != 255 {
		t.Errorf("pixel = %+v, want white", got)
	}
}

func TestPresentNoCPUPixels(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if err := Present(dst, gpuOnlyTarget{}); !errors.Is(err, ErrNoCPUPixels) {
		t.Errorf("Present() = %v, want ErrNoCPUPixels", err)
	}
}

func TestSoftwareStatePresent(t *testing.T) {
	s := NewSoftwareState(4, 4, 2)
	s.Clear(color.RGBA{B: 255, A: 255}, false)

	// The drawing buffer is 8x8 device pixels; presenting into a 4x4
	// window image scales back down.
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if err := s.Present(dst); err != nil {
		t.Fatalf("Present() = %v", err)
	}
	if got := dst.RGBAAt(2, 2); got.B != 255 {
		t.Errorf("pixel = %+v, want blue", got)
	}
}
