// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pass

import (
	"image/color"
	"strings"

	"github.com/gogpu/stage"
	"github.com/gogpu/stage/render"
)

// pickingPrefix marks picking passes by name.
const pickingPrefix = "picking"

// run carries the per-pass state shared by every viewport.
type run struct {
	sc        render.StateContext
	opts      *Options
	pass      string
	isPicking bool
	ratio     float64
	byID      map[string]stage.Layer

	// filterCache memoizes the pass-level LayerFilter by root-ancestor
	// id, shared across all viewports and sub-viewports of the pass.
	filterCache map[string]bool
}

// Render executes one render pass and returns one Stats entry per
// sub-viewport drawn, in viewport-then-sub-viewport order.
//
// The pass binds the target framebuffer (restoring the prior binding on
// exit), clears the whole drawing surface unless SkipCanvasClear is
// set, then for each viewport notifies OnViewportActive, computes the
// per-layer draw state once, and runs the draw loop for each of the
// viewport's sub-viewports (the viewport itself when it declares none).
//
// A pass always runs to completion: per-layer draw errors are reported
// through the failing layer's own error channel and never abort the
// frame. Malformed inputs are the caller's contract to prevent.
func Render(sc render.StateContext, opts *Options) []Stats {
	name := opts.Pass
	if name == "" {
		name = "unknown"
	}
	r := &run{
		sc:          sc,
		opts:        opts,
		pass:        name,
		isPicking:   strings.HasPrefix(name, pickingPrefix),
		ratio:       resolveRatio(sc, opts.ModuleParameters),
		byID:        layerTable(opts.Layers),
		filterCache: make(map[string]bool),
	}

	restore := sc.BindFramebuffer(opts.Target)
	defer restore()

	if !opts.SkipCanvasClear {
		sc.Clear(color.Transparent, true)
	}

	var results []Stats
	for _, vp := range opts.Viewports {
		if opts.OnViewportActive != nil {
			opts.OnViewportActive(vp)
		}
		params := r.prepareViewport(vp)
		subs := vp.SubViewports()
		if len(subs) == 0 {
			subs = []stage.Viewport{vp}
		}
		for _, sub := range subs {
			results = append(results, r.drawViewport(sub, vp, params))
		}
	}
	return results
}

// layerTable indexes layers by id for parent lookups.
func layerTable(layers []stage.Layer) map[string]stage.Layer {
	byID := make(map[string]stage.Layer, len(layers))
	for _, l := range layers {
		byID[l.ID()] = l
	}
	return byID
}

// prepareViewport computes the per-layer draw state for one top-level
// viewport: visibility, draw-order index, and module parameters. The
// result is shared by every sub-viewport of the viewport.
func (r *run) prepareViewport(vp stage.Viewport) []drawLayerParams {
	ctx := stage.FilterContext{
		Viewport:   vp,
		IsPicking:  r.isPicking,
		RenderPass: r.pass,
		CullRect:   r.opts.CullRect,
		CullBounds: stage.CullBounds(vp, r.opts.CullRect),
	}
	indices := newLayerIndexContext(0, r.byID)

	params := make([]drawLayerParams, len(r.opts.Layers))
	for i, layer := range r.opts.Layers {
		shouldDraw := r.shouldDrawLayer(layer, ctx)
		params[i] = drawLayerParams{
			shouldDraw:  shouldDraw,
			renderIndex: indices.resolve(layer, shouldDraw),
		}
		if shouldDraw {
			params[i].moduleParams = r.moduleParameters(layer)
			params[i].layerParams = layer.Parameters()
		}
	}
	return params
}

// drawViewport runs the draw loop for one (viewport, sub-viewport)
// pair: viewport setup, optional scissor-scoped clear, then the layer
// iteration in original list order.
func (r *run) drawViewport(sub, top stage.Viewport, params []drawLayerParams) Stats {
	rect := render.DeviceRect(sub.Rect(), r.targetHeight(), r.ratio)

	if view, ok := r.viewFor(sub, top); ok && view.NeedsClear() {
		r.scissoredClear(rect, view)
	}
	r.sc.SetViewport(rect)

	var stats Stats
	for i, layer := range r.opts.Layers {
		p := &params[i]
		stats.TotalCount++
		switch {
		case layer.Composite():
			// Composite layers only produce descendants; counted,
			// never drawn.
			stats.CompositeCount++
		case p.shouldDraw:
			stats.VisibleCount++
			if layer.Pickable() {
				stats.PickableCount++
			}
			err := layer.DrawLayer(stage.DrawArgs{
				Viewport:         sub,
				RenderIndex:      p.renderIndex,
				ModuleParameters: p.moduleParams,
				LayerParameters:  p.layerParams,
			})
			if err != nil {
				layer.ReportError(err, "drawing to "+r.pass)
				stage.Logger().Warn("layer draw failed",
					"layer", layer.ID(), "pass", r.pass, "err", err)
			}
		}
	}

	stage.Logger().Debug("viewport drawn",
		"viewport", sub.ID(), "pass", r.pass,
		"total", stats.TotalCount, "visible", stats.VisibleCount,
		"composite", stats.CompositeCount, "pickable", stats.PickableCount)
	return stats
}

// scissoredClear clears the viewport's region per the view directive,
// restricted to its scissor rectangle. The prior scissor state is
// restored on exit regardless of outcome.
func (r *run) scissoredClear(rect render.Rect, view stage.View) {
	restore := r.sc.Scissor(rect)
	defer restore()
	r.sc.Clear(view.ClearColor, view.ClearDepth)
}

// viewFor resolves the view directive for a sub-viewport, falling back
// to its top-level viewport's view.
func (r *run) viewFor(sub, top stage.Viewport) (stage.View, bool) {
	if v, ok := r.opts.Views[sub.ID()]; ok {
		return v, true
	}
	v, ok := r.opts.Views[top.ID()]
	return v, ok
}

// targetHeight anchors the CSS-to-device viewport mapping: the
// explicit target's height when one is bound, otherwise the default
// surface's drawing-buffer height.
func (r *run) targetHeight() int {
	if r.opts.Target != nil {
		return r.opts.Target.Height()
	}
	_, h := r.sc.DrawingBufferSize()
	return h
}
