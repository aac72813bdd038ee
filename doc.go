// Package stage orchestrates per-frame render passes over a layered
// scene across multiple camera viewports.
//
// # Overview
//
// stage is the compositing core for GoGPU applications that describe a
// frame as an ordered forest of layers drawn through one or more
// viewports. Given the layers, the viewports, and a set of
// post-processing effects, a pass decides which layers draw, assigns
// every layer a deterministic draw-order index, assembles the merged
// parameter bag each draw call receives, and isolates a failing layer
// so one bad draw never takes down the frame.
//
// The package split mirrors the responsibilities:
//   - stage (this package): the contracts host applications implement
//     (Layer, Viewport, Effect, View) and shared value types
//   - pass: the per-frame orchestrator ([pass.Render])
//   - render: render targets and scoped GPU state mutation
//   - backend/wgpu: GPU state context over gogpu/wgpu
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/stage/pass"
//	    "github.com/gogpu/stage/render"
//	)
//
//	sc := render.NewSoftwareState(800, 600, 2)
//	stats := pass.Render(sc, &pass.Options{
//	    Pass:             "screen",
//	    Layers:           layers,
//	    Viewports:        viewports,
//	    OnViewportActive: func(v stage.Viewport) { camera.Activate(v) },
//	})
//
// # Ownership
//
// Layers, viewports, and effects remain owned by the host. A pass
// reads them for one frame and performs exactly two side effects:
// marking a layer's viewport activated and reporting per-layer draw
// failures. No two passes may run concurrently against the same layer
// set.
//
// # Coordinate Systems
//
// Viewport rectangles are CSS pixels with a top-left origin. GPU
// viewport state is bottom-up device pixels; see
// [render.DeviceRect] for the mapping. World space is whatever the
// host's viewports unproject into.
package stage
