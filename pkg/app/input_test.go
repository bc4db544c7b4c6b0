package app

import "testing"

func TestAxisValue(t *testing.T) {
	tests := []struct {
		positive, negative bool
		want               float64
	}{
		{false, false, 0},
		{true, false, 1},
		{false, true, -1},
		{true, true, 0},
	}
	for _, tt := range tests {
		if got := axisValue(tt.positive, tt.negative); got != tt.want {
			t.Errorf("axisValue(%v, %v) = %v, want %v", tt.positive, tt.negative, got, tt.want)
		}
	}
}
