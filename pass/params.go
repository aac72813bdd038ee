// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pass

import (
	"maps"

	"github.com/gogpu/stage"
	"github.com/gogpu/stage/render"
)

// drawLayerParams is the ephemeral per-layer draw state, computed once
// per top-level viewport and reused for every sub-viewport of that
// viewport. The active sub-viewport is not stored here; it travels as
// the explicit stage.DrawArgs.Viewport argument.
type drawLayerParams struct {
	shouldDraw   bool
	renderIndex  int
	moduleParams map[string]any
	layerParams  map[string]any
}

// moduleParameters assembles the merged parameter bag a layer's draw
// call receives. Precedence, lowest to highest:
//
//  1. the layer's declared properties
//  2. fixed per-layer context fields: wrapLongitude, mousePosition,
//     pickingActive, devicePixelRatio
//  3. each effect's contribution, in list order
//  4. the pass-specific PassParameters hook
//  5. caller-supplied Options.ModuleParameters
//
// The result is a fresh flat map with no hidden delegation; callers
// may not assume any field is read-only, but the pass itself never
// mutates it after this call.
func (r *run) moduleParameters(layer stage.Layer) map[string]any {
	merged := make(map[string]any, 8+len(r.opts.ModuleParameters))
	maps.Copy(merged, layer.Props())

	merged["wrapLongitude"] = wrapLongitude(layer)
	merged["mousePosition"] = r.opts.MousePosition
	merged["pickingActive"] = r.isPicking
	merged["devicePixelRatio"] = r.ratio

	for _, e := range r.opts.Effects {
		maps.Copy(merged, e.ModuleParameters(layer))
	}
	if r.opts.PassParameters != nil {
		maps.Copy(merged, r.opts.PassParameters(layer))
	}
	maps.Copy(merged, r.opts.ModuleParameters)
	return merged
}

// wrapLongitude reads the optional antimeridian-repeat flag.
func wrapLongitude(layer stage.Layer) bool {
	if w, ok := layer.(stage.LongitudeWrapper); ok {
		return w.WrapLongitude()
	}
	return false
}

// resolveRatio picks the device pixel ratio for the pass: a positive
// "devicePixelRatio" module-parameter override wins, otherwise the
// rendering surface's own ratio applies.
func resolveRatio(sc render.StateContext, overrides map[string]any) float64 {
	if v, ok := overrides["devicePixelRatio"]; ok {
		if f, ok := v.(float64); ok && f > 0 {
			return f
		}
	}
	return sc.DevicePixelRatio()
}
