// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pass

import "github.com/gogpu/stage"

// indexScope is one numbering scope's monotonically increasing counter.
// The root scope numbers all layers without an explicit draw offset; a
// layer that declares an offset anchors a nested scope that renumbers
// its subtree starting at the anchor's own index.
type indexScope struct {
	next int
}

// layerIndexContext assigns deterministic draw-order indices for one
// top-level viewport. All state is explicit: the id->index map, the
// id->scope map marking overridden subtrees, and the id->layer table
// used to resolve the non-owning parent references.
type layerIndexContext struct {
	indices map[string]int
	scopes  map[string]*indexScope
	byID    map[string]stage.Layer
	root    indexScope
}

func newLayerIndexContext(start int, byID map[string]stage.Layer) *layerIndexContext {
	return &layerIndexContext{
		indices: make(map[string]int),
		scopes:  make(map[string]*indexScope),
		byID:    byID,
		root:    indexScope{next: start},
	}
}

// resolve returns the layer's draw-order index, assigning one on first
// use. drawn reports whether the layer will actually draw this pass;
// only drawn layers advance a scope's counter, so the counter always
// trails the highest index handed to a drawn layer. Resolving the same
// layer twice returns the same index.
func (c *layerIndexContext) resolve(layer stage.Layer, drawn bool) int {
	return c.resolveIn(&c.root, layer, drawn)
}

func (c *layerIndexContext) resolveIn(scope *indexScope, layer stage.Layer, drawn bool) int {
	id := layer.ID()
	if index, ok := c.indices[id]; ok {
		return index
	}

	parentID := layer.ParentID()
	if parentID != "" {
		if _, ok := c.indices[parentID]; !ok {
			if parent := c.byID[parentID]; parent != nil {
				// The documented precondition is parent-before-child;
				// this recursion keeps degenerate orderings correct.
				c.resolveIn(scope, parent, false)
			}
		}
	}

	// A layer whose ancestor anchors a scope inherits that scope's
	// numbering. The scope itself is materialized lazily, seeded with
	// the anchor's own index, so sibling layers share it on first use.
	delegate, inScope := c.scopes[parentID]
	if parentID != "" && inScope {
		if delegate == nil {
			delegate = &indexScope{next: c.indices[parentID]}
			c.scopes[parentID] = delegate
		}
		scope = delegate
	}

	var index int
	if offset, ok := layer.DrawOffset(); ok {
		// parentID == "" reads the zero value: no parent counts as 0.
		index = offset + c.indices[parentID]
		// The override anchors a fresh scope: moving this layer moves
		// its entire subtree without disturbing siblings.
		c.scopes[id] = nil
	} else {
		index = scope.next
		if parentID != "" && inScope {
			// Membership propagates so grandchildren delegate to the
			// same scope through their parent.
			c.scopes[id] = scope
		}
	}

	if drawn && index >= scope.next {
		scope.next = index + 1
	}
	c.indices[id] = index
	return index
}
