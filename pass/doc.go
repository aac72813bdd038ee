// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package pass implements the per-frame render-pass orchestrator.
//
// One call to [Render] is one pass: it walks every viewport, decides
// which layers draw, assigns each a deterministic draw-order index,
// assembles the merged module parameters for its draw call, and runs
// the per-viewport draw loop once per sub-viewport. Per-layer
// preparation is computed once per top-level viewport and shared by all
// of its sub-viewports; only the active sub-viewport changes between
// iterations, carried explicitly in [stage.DrawArgs].
//
// A failing layer is isolated: its error is delivered through the
// layer's own ReportError channel tagged with the pass name, and the
// loop moves on. Panics are treated as programmer errors and propagate.
package pass
