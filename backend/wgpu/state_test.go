// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"image/color"
	"testing"

	types "github.com/gogpu/gputypes"

	"github.com/gogpu/stage/render"
)

func TestNewStateContextDefaults(t *testing.T) {
	sc := NewStateContext(render.NullDeviceHandle{}, 800, 600)

	w, h := sc.DrawingBufferSize()
	if w != 800 || h != 600 {
		t.Errorf("DrawingBufferSize() = %d, %d, want 800, 600", w, h)
	}
	if got := sc.DevicePixelRatio(); got != 1 {
		t.Errorf("DevicePixelRatio() = %v, want 1", got)
	}
	if got := sc.ColorLoadOp(); got != types.LoadOpLoad {
		t.Errorf("ColorLoadOp() = %v, want LoadOpLoad", got)
	}
	if got := sc.DepthLoadOp(); got != types.LoadOpLoad {
		t.Errorf("DepthLoadOp() = %v, want LoadOpLoad", got)
	}
}

func TestWithDevicePixelRatio(t *testing.T) {
	sc := NewStateContext(render.NullDeviceHandle{}, 100, 100, WithDevicePixelRatio(2))
	if got := sc.DevicePixelRatio(); got != 2 {
		t.Errorf("DevicePixelRatio() = %v, want 2", got)
	}

	// Non-positive ratios are ignored.
	sc = NewStateContext(render.NullDeviceHandle{}, 100, 100, WithDevicePixelRatio(0))
	if got := sc.DevicePixelRatio(); got != 1 {
		t.Errorf("DevicePixelRatio() = %v, want 1", got)
	}
}

func TestResize(t *testing.T) {
	sc := NewStateContext(render.NullDeviceHandle{}, 100, 100)
	sc.Resize(640, 480)
	w, h := sc.DrawingBufferSize()
	if w != 640 || h != 480 {
		t.Errorf("DrawingBufferSize() after Resize = %d, %d, want 640, 480", w, h)
	}
}

func TestClearFoldsIntoLoadOps(t *testing.T) {
	sc := NewStateContext(render.NullDeviceHandle{}, 100, 100)

	sc.Clear(color.RGBA{R: 255, A: 255}, true)
	if got := sc.ColorLoadOp(); got != types.LoadOpClear {
		t.Errorf("ColorLoadOp() = %v, want LoadOpClear", got)
	}
	if got := sc.DepthLoadOp(); got != types.LoadOpClear {
		t.Errorf("DepthLoadOp() = %v, want LoadOpClear", got)
	}
	cv := sc.ClearValue()
	if cv.R != 1 || cv.G != 0 || cv.B != 0 || cv.A != 1 {
		t.Errorf("ClearValue() = %+v, want {1 0 0 1}", cv)
	}
}

func TestClearColorOnly(t *testing.T) {
	sc := NewStateContext(render.NullDeviceHandle{}, 100, 100)
	sc.Clear(color.Transparent, false)
	if got := sc.ColorLoadOp(); got != types.LoadOpClear {
		t.Errorf("ColorLoadOp() = %v, want LoadOpClear", got)
	}
	if got := sc.DepthLoadOp(); got != types.LoadOpLoad {
		t.Errorf("DepthLoadOp() = %v, want LoadOpLoad", got)
	}
}

func TestTakeLoadOpsResets(t *testing.T) {
	sc := NewStateContext(render.NullDeviceHandle{}, 100, 100)
	sc.Clear(color.White, true)

	colorLoad, cv, depthLoad := sc.TakeLoadOps()
	if colorLoad != types.LoadOpClear || depthLoad != types.LoadOpClear {
		t.Errorf("TakeLoadOps() loads = %v, %v, want Clear, Clear", colorLoad, depthLoad)
	}
	if cv.R != 1 || cv.A != 1 {
		t.Errorf("TakeLoadOps() clearValue = %+v, want white", cv)
	}

	if got := sc.ColorLoadOp(); got != types.LoadOpLoad {
		t.Errorf("ColorLoadOp() after take = %v, want LoadOpLoad", got)
	}
	if got := sc.DepthLoadOp(); got != types.LoadOpLoad {
		t.Errorf("DepthLoadOp() after take = %v, want LoadOpLoad", got)
	}
}

func TestBindFramebufferRestore(t *testing.T) {
	sc := NewStateContext(render.NullDeviceHandle{}, 100, 100)
	target := render.NewPixmapTarget(32, 32)

	restore := sc.BindFramebuffer(target)
	if sc.BoundTarget() != target {
		t.Error("BoundTarget() should be the bound pixmap")
	}
	restore()
	if sc.BoundTarget() != nil {
		t.Error("BoundTarget() should be nil after restore")
	}
}

func TestBindFramebufferNested(t *testing.T) {
	sc := NewStateContext(render.NullDeviceHandle{}, 100, 100)
	a := render.NewPixmapTarget(16, 16)
	b := render.NewPixmapTarget(8, 8)

	restoreA := sc.BindFramebuffer(a)
	restoreB := sc.BindFramebuffer(b)
	if sc.BoundTarget() != b {
		t.Error("BoundTarget() should be the inner target")
	}
	restoreB()
	if sc.BoundTarget() != a {
		t.Error("BoundTarget() should be the outer target after inner restore")
	}
	restoreA()
	if sc.BoundTarget() != nil {
		t.Error("BoundTarget() should be nil after both restores")
	}
}

func TestScissorRestore(t *testing.T) {
	sc := NewStateContext(render.NullDeviceHandle{}, 100, 100)

	restore := sc.Scissor(render.Rect{X: 10, Y: 10, Width: 20, Height: 20})
	if sc.scissor == nil {
		t.Fatal("scissor should be set")
	}
	restore()
	if sc.scissor != nil {
		t.Error("scissor should be disabled after restore")
	}
}

func TestAttachPassNil(t *testing.T) {
	sc := NewStateContext(render.NullDeviceHandle{}, 100, 100)
	if err := sc.AttachPass(nil); err != ErrNilPass {
		t.Errorf("AttachPass(nil) = %v, want ErrNilPass", err)
	}
}

func TestWGPUColor(t *testing.T) {
	tests := []struct {
		name string
		in   color.Color
		want types.Color
	}{
		{"transparent", color.Transparent, types.Color{}},
		{"opaque white", color.White, types.Color{R: 1, G: 1, B: 1, A: 1}},
		{"opaque red", color.RGBA{R: 255, A: 255}, types.Color{R: 1, A: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wgpuColor(tt.in); got != tt.want {
				t.Errorf("wgpuColor() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
