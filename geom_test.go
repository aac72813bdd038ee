package stage

import "testing"

func TestPointAddSub(t *testing.T) {
	p := Pt(3, 4)
	q := Pt(1, 2)

	if got := p.Add(q); got != Pt(4, 6) {
		t.Errorf("Add() = %v, want (4, 6)", got)
	}
	if got := p.Sub(q); got != Pt(2, 2) {
		t.Errorf("Sub() = %v, want (2, 2)", got)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 20, Height: 20}

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"inside", Pt(15, 15), true},
		{"top-left corner", Pt(10, 10), true},
		{"right edge exclusive", Pt(30, 15), false},
		{"bottom edge exclusive", Pt(15, 30), false},
		{"outside", Pt(0, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestBoundsExtend(t *testing.T) {
	b := Bounds{MinX: 0, MinY: 0, MaxX: 0, MaxY: 0}
	b.Extend(Pt(5, -3))
	b.Extend(Pt(-2, 7))

	want := Bounds{MinX: -2, MinY: -3, MaxX: 5, MaxY: 7}
	if b != want {
		t.Errorf("bounds = %+v, want %+v", b, want)
	}
}
