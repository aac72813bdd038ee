// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pass

import (
	"testing"

	"github.com/gogpu/stage"
)

func resolveAll(t *testing.T, layers []*testLayer, drawn map[string]bool) map[string]int {
	t.Helper()
	list := make([]stage.Layer, len(layers))
	for i, l := range layers {
		list[i] = l
	}
	ctx := newLayerIndexContext(0, layerTable(list))
	got := make(map[string]int, len(layers))
	for _, l := range layers {
		got[l.id] = ctx.resolve(l, drawn[l.id])
	}
	return got
}

func TestLayerIndexSequential(t *testing.T) {
	layers := []*testLayer{
		{id: "a"}, {id: "b"}, {id: "c"},
	}
	got := resolveAll(t, layers, map[string]bool{"a": true, "b": true, "c": true})

	want := map[string]int{"a": 0, "b": 1, "c": 2}
	for id, w := range want {
		if got[id] != w {
			t.Errorf("index[%s] = %d, want %d", id, got[id], w)
		}
	}
}

func TestLayerIndexUndrawnDoesNotAdvance(t *testing.T) {
	layers := []*testLayer{
		{id: "a"}, {id: "b"}, {id: "c"}, {id: "d"},
	}
	got := resolveAll(t, layers, map[string]bool{"a": true, "d": true})

	// b and c are skipped this pass: both read the counter without
	// advancing it, so d draws directly above a.
	want := map[string]int{"a": 0, "b": 1, "c": 1, "d": 1}
	for id, w := range want {
		if got[id] != w {
			t.Errorf("index[%s] = %d, want %d", id, got[id], w)
		}
	}
}

func TestLayerIndexIdempotent(t *testing.T) {
	a := &testLayer{id: "a"}
	b := &testLayer{id: "b"}
	ctx := newLayerIndexContext(0, layerTable([]stage.Layer{a, b}))

	first := ctx.resolve(a, true)
	ctx.resolve(b, true)
	if again := ctx.resolve(a, true); again != first {
		t.Errorf("second resolve = %d, want stable %d", again, first)
	}
}

func TestLayerIndexOffsetSubtree(t *testing.T) {
	layers := []*testLayer{
		{id: "a"},
		{id: "group", composite: true, offset: offsetOf(10)},
		{id: "child1", parent: "group"},
		{id: "child2", parent: "group"},
		{id: "grand", parent: "child2"},
		{id: "b"},
	}
	got := resolveAll(t, layers, map[string]bool{
		"a": true, "child1": true, "child2": true, "grand": true, "b": true,
	})

	// The offset anchors a scope at index 10 numbering the whole
	// subtree; the outer counter is untouched, so b follows a.
	want := map[string]int{
		"a": 0, "group": 10, "child1": 10, "child2": 11, "grand": 12, "b": 1,
	}
	for id, w := range want {
		if got[id] != w {
			t.Errorf("index[%s] = %d, want %d", id, got[id], w)
		}
	}
}

func TestLayerIndexOffsetRelativeToParent(t *testing.T) {
	layers := []*testLayer{
		{id: "a"},
		{id: "root", composite: true, offset: offsetOf(5)},
		{id: "nested", parent: "root", composite: true, offset: offsetOf(2)},
		{id: "leaf", parent: "nested"},
	}
	got := resolveAll(t, layers, map[string]bool{"a": true, "leaf": true})

	// Each override is relative to its parent's index: root lands at
	// 5, nested at 5+2, and nested's scope numbers leaf from there.
	want := map[string]int{"a": 0, "root": 5, "nested": 7, "leaf": 7}
	for id, w := range want {
		if got[id] != w {
			t.Errorf("index[%s] = %d, want %d", id, got[id], w)
		}
	}
}

func TestLayerIndexChildBeforeParent(t *testing.T) {
	parent := &testLayer{id: "group", composite: true, offset: offsetOf(3)}
	child := &testLayer{id: "child", parent: "group"}
	ctx := newLayerIndexContext(0, layerTable([]stage.Layer{parent, child}))

	// Resolving the child first forces the parent's index to be
	// resolved on demand.
	if got := ctx.resolve(child, true); got != 3 {
		t.Errorf("child index = %d, want 3", got)
	}
	if got := ctx.resolve(parent, false); got != 3 {
		t.Errorf("parent index = %d, want 3", got)
	}
}

func TestLayerIndexStartOffset(t *testing.T) {
	a := &testLayer{id: "a"}
	ctx := newLayerIndexContext(7, layerTable([]stage.Layer{a}))
	if got := ctx.resolve(a, true); got != 7 {
		t.Errorf("index = %d, want the start index 7", got)
	}
}
