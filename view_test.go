package stage

import (
	"image/color"
	"testing"
)

func TestViewNeedsClear(t *testing.T) {
	tests := []struct {
		name string
		view View
		want bool
	}{
		{"zero view", View{}, false},
		{"color only", View{ClearColor: color.Black}, true},
		{"depth only", View{ClearDepth: true}, true},
		{"both", View{ClearColor: color.White, ClearDepth: true}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.view.NeedsClear(); got != tt.want {
				t.Errorf("NeedsClear() = %v, want %v", got, tt.want)
			}
		})
	}
}
