package core

import "testing"

func TestSteerTarget(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want float64
	}{
		{"none", Input{}, 0},
		{"left", Input{Left: true}, 1},
		{"right", Input{Right: true}, -1},
		{"both", Input{Left: true, Right: true}, 0},
		{"throttle only", Input{Forward: true}, 0},
	}
	for _, tt := range tests {
		if got := tt.in.SteerTarget(); got != tt.want {
			t.Errorf("%s: Expected %f, got %f", tt.name, tt.want, got)
		}
	}
}
