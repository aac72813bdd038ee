package stage

import "image/color"

// View is an optional per-viewport directive. Its primary job is to
// describe whether and how the viewport's region of the target is
// cleared before its layers draw. The clear is scoped to the
// viewport's scissor rectangle and never touches neighboring
// viewports.
type View struct {
	// ClearColor, when non-nil, clears the viewport region to this
	// color before drawing.
	ClearColor color.Color

	// ClearDepth clears the depth buffer in the viewport region.
	ClearDepth bool
}

// NeedsClear reports whether the view requests any clearing.
func (v View) NeedsClear() bool {
	return v.ClearColor != nil || v.ClearDepth
}
