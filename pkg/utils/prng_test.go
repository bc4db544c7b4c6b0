package utils

import "testing"

func TestPRNGDeterministic(t *testing.T) {
	a := NewPRNG(42)
	b := NewPRNG(42)

	for i := 0; i < 100; i++ {
		if x, y := a.Range(-9, 9), b.Range(-9, 9); x != y {
			t.Fatalf("step %d: same seed produced %v and %v", i, x, y)
		}
	}
}

func TestPRNGRange(t *testing.T) {
	p := NewPRNG(7)
	for i := 0; i < 1000; i++ {
		v := p.Range(-3, 5)
		if v < -3 || v >= 5 {
			t.Fatalf("Range(-3, 5) = %v out of bounds", v)
		}
	}
}

func TestPRNGIntnNonPositive(t *testing.T) {
	p := NewPRNG(1)
	if got := p.Intn(0); got != 0 {
		t.Errorf("Intn(0) = %d, want 0", got)
	}
	if got := p.Intn(-5); got != 0 {
		t.Errorf("Intn(-5) = %d, want 0", got)
	}
}

func TestPRNGZeroSeedUsesClock(t *testing.T) {
	if p := NewPRNG(0); p.Seed() == 0 {
		t.Error("zero seed should be replaced by a time-based seed")
	}
}
