// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pass

import (
	"github.com/gogpu/stage"
	"github.com/gogpu/stage/render"
)

// Options configures one render pass. Layers, viewports, and effects
// remain owned by the caller; the pass reads them for a single frame.
type Options struct {
	// Target is the destination framebuffer. Nil renders to the
	// default surface.
	Target render.RenderTarget

	// Pass names the rendering sweep, e.g. "screen" or
	// "picking:hover". A name starting with "picking" marks a picking
	// pass. Empty defaults to "unknown".
	Pass string

	// Layers is the flattened layer list, parents before descendants.
	Layers []stage.Layer

	// Viewports to render, in order. Each may expand into
	// sub-viewports.
	Viewports []stage.Viewport

	// OnViewportActive notifies the host's rendering context before a
	// viewport's layers are prepared.
	OnViewportActive func(v stage.Viewport)

	// Views maps viewport ids to per-viewport directives. A
	// sub-viewport without a view of its own falls back to its
	// top-level viewport's view.
	Views map[string]stage.View

	// Effects contribute module parameters per layer, applied in list
	// order (later effects overwrite earlier keys).
	Effects []stage.Effect

	// SkipCanvasClear suppresses the whole-surface clear performed
	// before the first viewport. The zero value clears, matching the
	// common case.
	SkipCanvasClear bool

	// LayerFilter is an optional pass-level predicate, evaluated once
	// per distinct root ancestor per pass and memoized.
	LayerFilter func(ctx stage.FilterContext) bool

	// ModuleParameters are caller-supplied overrides with the highest
	// merge precedence.
	ModuleParameters map[string]any

	// PassParameters is an optional hook contributing pass-specific
	// parameters per layer, applied after effects and before
	// ModuleParameters.
	PassParameters func(layer stage.Layer) map[string]any

	// MousePosition is the last-known pointer position, surfaced to
	// draw modules as the "mousePosition" parameter.
	MousePosition *stage.Point

	// CullRect is an optional screen-space culling rectangle in CSS
	// pixels.
	CullRect *stage.Rect
}
