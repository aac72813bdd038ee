package stage

// Viewport is a camera/projection window owned by the host application.
//
// The projection math inside a viewport is opaque to this library; only
// its screen rectangle and unprojection contract are consumed. A
// viewport may expand into multiple sub-viewports: alternate projections
// of the same camera, such as repeated-world copies of a map projection
// at the antimeridian. Layers are drawn once per sub-viewport, but all
// per-layer preparation (draw order, visibility, module parameters) is
// computed once per top-level viewport and shared.
//
// Viewports must be treated as immutable for the duration of a render
// pass.
type Viewport interface {
	// ID uniquely identifies the viewport. Views are matched to
	// viewports by this id.
	ID() string

	// Rect returns the viewport's position and size in CSS pixels,
	// top-left origin.
	Rect() Rect

	// Unproject converts a viewport-local screen point into a world
	// point.
	Unproject(p Point) Point

	// SubViewports returns the alternate projections to render, in
	// draw order. A nil or empty result means the viewport renders
	// only itself.
	SubViewports() []Viewport
}
