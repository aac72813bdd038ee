package stage

// Layer is a drawable (or composite, non-drawable) unit in a
// hierarchical scene description.
//
// Layers form a forest: each layer optionally names a parent by id.
// The parent reference is non-owning; ownership of the layer tree lies
// with the host's layer manager. A render pass reads layers for one
// frame and performs exactly two documented side effects: activating a
// layer's viewport (ActivateViewport) and reporting draw failures
// (ReportError). Layers are expected to appear in the pass's layer list
// with parents preceding their descendants.
type Layer interface {
	// ID uniquely identifies the layer within one pass.
	ID() string

	// ParentID names the parent layer, or "" for a root layer. The
	// id is resolved through the pass's own lookup table; the layer
	// never owns its parent.
	ParentID() string

	// Visible reports whether the layer (and, transitively, its
	// descendants) should draw.
	Visible() bool

	// Pickable reports whether the layer participates in picking
	// passes.
	Pickable() bool

	// Composite reports whether the layer only produces child layers.
	// Composite layers are counted by render statistics but never
	// issue a draw call.
	Composite() bool

	// DrawOffset returns the layer's explicit draw-order override and
	// whether one is set. An overridden layer is indexed at
	// offset + parent index and renumbers its whole subtree.
	DrawOffset() (offset int, ok bool)

	// Props returns the layer's declared properties. They form the
	// lowest-precedence level of the merged module parameters.
	Props() map[string]any

	// Parameters returns arbitrary GPU state overrides applied around
	// the layer's draw call.
	Parameters() map[string]any

	// FilterSubLayer lets a composite ancestor veto one of its
	// descendants for the current pass. The context's Layer field is
	// set to the ancestor being consulted.
	FilterSubLayer(ctx FilterContext) bool

	// ActivateViewport marks the viewport the layer will draw with
	// this pass. Consumed by the layer's own lifecycle.
	ActivateViewport(v Viewport)

	// DrawLayer issues the layer's draw call. A returned error is
	// reported through ReportError and never aborts the frame.
	DrawLayer(args DrawArgs) error

	// ReportError delivers a draw failure to the layer's own error
	// channel. The context string names the render pass.
	ReportError(err error, context string)
}

// Drawable is an optional interface for layers that gate their own
// drawing beyond the Visible flag (for example while data is still
// loading). When not implemented, a layer is drawable exactly when it
// is not composite.
type Drawable interface {
	Drawable() bool
}

// LongitudeWrapper is an optional interface for layers whose geometry
// repeats across the antimeridian. The flag is surfaced to the layer's
// draw modules as the "wrapLongitude" module parameter.
type LongitudeWrapper interface {
	WrapLongitude() bool
}

// DrawArgs carries everything a layer's draw call needs for one
// (layer, sub-viewport) invocation.
type DrawArgs struct {
	// Viewport is the active sub-viewport for this invocation. It is
	// passed explicitly instead of being patched into
	// ModuleParameters, so the parameter map can be shared across
	// sub-viewports without mutation.
	Viewport Viewport

	// RenderIndex is the layer's deterministic draw-order index. It
	// only feeds draw-order-dependent GPU state (depth bias and the
	// like); iteration order is always the original layer list order.
	RenderIndex int

	// ModuleParameters is the merged parameter bag described in the
	// pass documentation.
	ModuleParameters map[string]any

	// LayerParameters are the layer's own GPU state overrides
	// (Layer.Parameters), passed through untouched.
	LayerParameters map[string]any
}

// FilterContext is handed to the pass-level layer filter and to
// composite ancestors' FilterSubLayer.
type FilterContext struct {
	// Layer is the layer under consideration. During the ancestor
	// walk it is the ancestor currently being consulted; for the
	// pass-level filter it is the root ancestor.
	Layer Layer

	// Viewport is the top-level viewport being prepared.
	Viewport Viewport

	// IsPicking reports whether the render pass name starts with
	// "picking".
	IsPicking bool

	// RenderPass is the pass name.
	RenderPass string

	// CullRect is the optional screen-space culling rectangle from
	// the render options.
	CullRect *Rect

	// CullBounds is CullRect unprojected into world space for the
	// current viewport, or nil when no culling applies.
	CullBounds *Bounds
}
