// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pass

import "github.com/gogpu/stage"

// layerDrawable evaluates the layer's base draw predicate. Layers may
// override it through the optional stage.Drawable interface; the
// default is that anything non-composite is drawable.
func layerDrawable(layer stage.Layer) bool {
	if d, ok := layer.(stage.Drawable); ok {
		return d.Drawable()
	}
	return !layer.Composite()
}

// shouldDrawLayer decides whether the layer draws this pass,
// short-circuiting on the first negative:
//
//  1. the layer's own base predicate and Visible flag
//  2. every ancestor's Visible flag and FilterSubLayer veto, walking
//     the parent chain to the root
//  3. the pass-level LayerFilter, memoized per root-ancestor id so an
//     expensive predicate runs once per pass rather than once per
//     layer per sub-viewport
//
// A positive decision marks the layer's viewport activated, a side
// effect consumed by the layer's own lifecycle.
func (r *run) shouldDrawLayer(layer stage.Layer, ctx stage.FilterContext) bool {
	if !layerDrawable(layer) || !layer.Visible() {
		return false
	}

	current := layer
	for {
		parentID := current.ParentID()
		if parentID == "" {
			break
		}
		parent := r.byID[parentID]
		if parent == nil {
			break
		}
		// The ancestor being consulted sees itself as the context's
		// layer.
		ctx.Layer = parent
		if !parent.Visible() || !parent.FilterSubLayer(ctx) {
			return false
		}
		current = parent
	}

	if r.opts.LayerFilter != nil {
		rootID := current.ID()
		allowed, ok := r.filterCache[rootID]
		if !ok {
			ctx.Layer = current
			allowed = r.opts.LayerFilter(ctx)
			r.filterCache[rootID] = allowed
		}
		if !allowed {
			return false
		}
	}

	layer.ActivateViewport(ctx.Viewport)
	return true
}
