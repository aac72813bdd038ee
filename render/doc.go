// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render provides the target and GPU-state abstractions the
// pass orchestrator draws through.
//
// The package deliberately knows nothing about layers or viewports:
// it defines where pixels go (RenderTarget), how CSS-pixel viewport
// rectangles become bottom-up device-pixel GPU state (DeviceRect), and
// a small scoped-mutation surface over the process-wide GPU state
// (StateContext). The SoftwareState implementation makes the whole
// orchestrator runnable and testable without a GPU; backend/wgpu
// provides the hardware path.
package render
