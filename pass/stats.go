// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pass

// Stats summarizes one (viewport, sub-viewport) draw loop. It is pure
// output with no identity.
//
// For every Stats value, VisibleCount+CompositeCount <= TotalCount and
// PickableCount <= VisibleCount.
type Stats struct {
	// TotalCount is the number of layers iterated.
	TotalCount int

	// VisibleCount is the number of layers that issued a draw call.
	VisibleCount int

	// CompositeCount is the number of composite layers encountered.
	// Composite layers are counted whether or not they passed the
	// visibility filter; they never draw.
	CompositeCount int

	// PickableCount is the number of drawn layers marked pickable.
	PickableCount int
}
