package stage

// CullBounds converts a screen-space culling rectangle into a
// conservative world-space bounding box for the given viewport.
//
// A nil rect disables culling and yields nil. The rect is first
// translated into viewport-local coordinates. Because projections are
// generally non-linear, a screen-aligned rectangle does not map to a
// world-aligned rectangle; when the rect spans more than one pixel in
// either dimension all four corners are unprojected and their
// componentwise min/max box is returned, a conservative superset of the
// true footprint. A rect no larger than one pixel in both dimensions
// collapses to a point box around the single unprojected corner.
func CullBounds(v Viewport, rect *Rect) *Bounds {
	if rect == nil {
		return nil
	}

	vr := v.Rect()
	x := rect.X - vr.X
	y := rect.Y - vr.Y

	topLeft := v.Unproject(Pt(x, y))
	b := Bounds{MinX: topLeft.X, MinY: topLeft.Y, MaxX: topLeft.X, MaxY: topLeft.Y}

	if rect.Width > 1 || rect.Height > 1 {
		corners := [3]Point{
			{X: x + rect.Width, Y: y},
			{X: x, Y: y + rect.Height},
			{X: x + rect.Width, Y: y + rect.Height},
		}
		for _, c := range corners {
			b.Extend(v.Unproject(c))
		}
	}
	return &b
}
