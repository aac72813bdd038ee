// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package wgpu provides the GPU render.StateContext over gogpu/wgpu.
//
// WebGPU has no free-standing clear call: clears are load operations
// applied when a render pass begins, and viewport/scissor state lives
// on the pass encoder. The StateContext here therefore records state on
// the CPU side and replays it onto the host's pass encoder when one is
// attached; clears requested between passes become the color/depth
// load operations the host reads back when building its next pass
// descriptor. The host owns device, surface, and pass lifetime; stage
// receives them, it never creates them.
package wgpu
