package game

import "testing"

func TestFrameClockAdvance(t *testing.T) {
	tests := []struct {
		name    string
		max     float64
		steps   []float64
		wantNow float64
		wantDt  float64
	}{
		{name: "正常推进", max: 0.1, steps: []float64{0.016, 0.016}, wantNow: 0.032, wantDt: 0.016},
		{name: "超大步长被截断", max: 0.05, steps: []float64{1.0}, wantNow: 0.05, wantDt: 0.05},
		{name: "负步长视为零", max: 0.05, steps: []float64{0.02, -1}, wantNow: 0.02, wantDt: 0},
		{name: "不限制步长", max: 0, steps: []float64{2.5}, wantNow: 2.5, wantDt: 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewFrameClock(tt.max)
			for _, dt := range tt.steps {
				c.Advance(dt)
			}
			if diff := c.Now() - tt.wantNow; diff > 1e-12 || diff < -1e-12 {
				t.Errorf("Now = %v, want %v", c.Now(), tt.wantNow)
			}
			if c.DeltaTime() != tt.wantDt {
				t.Errorf("DeltaTime = %v, want %v", c.DeltaTime(), tt.wantDt)
			}
			if c.Frame() != uint64(len(tt.steps)) {
				t.Errorf("Frame = %d, want %d", c.Frame(), len(tt.steps))
			}
		})
	}
}

func TestFrameClockMonotonic(t *testing.T) {
	c := NewFrameClock(0.05)
	prev := c.Now()
	for _, dt := range []float64{0.01, -0.5, 0, 3, 0.02} {
		c.Advance(dt)
		if c.Now() < prev {
			t.Fatalf("clock went backwards: %v -> %v", prev, c.Now())
		}
		prev = c.Now()
	}
}
