package noise

import (
	"math"
	"testing"
)

func TestSampleDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 200; i++ {
		x := float64(i) * 0.13
		y := float64(i) * 0.07
		if a.Sample(x, y) != b.Sample(x, y) {
			t.Fatalf("same seed produced different values at (%f, %f)", x, y)
		}
	}
}

func TestSamplePure(t *testing.T) {
	f := New(7)
	first := f.Sample(3.2, 1.7)
	for i := 0; i < 10; i++ {
		if got := f.Sample(3.2, 1.7); got != first {
			t.Fatalf("repeated sample changed: %f != %f", got, first)
		}
	}
}

func TestSampleRange(t *testing.T) {
	f := New(99)
	for i := 0; i < 2000; i++ {
		x := float64(i) * 0.05
		y := float64(i%37) * 0.11
		v := f.Sample(x, y)
		if math.IsNaN(v) || v < -2 || v > 2 {
			t.Fatalf("sample out of expected range at (%f, %f): %f", x, y, v)
		}
	}
}

func TestSeedsDiffer(t *testing.T) {
	a := New(1)
	b := New(2)

	same := true
	for i := 0; i < 100 && same; i++ {
		x := float64(i) * 0.17
		y := float64(i) * 0.29
		if a.Sample(x, y) != b.Sample(x, y) {
			same = false
		}
	}
	if same {
		t.Fatal("different seeds produced identical fields")
	}
}

func TestGridPointsSmooth(t *testing.T) {
	// Neighboring samples at a fine step should never jump by more than
	// the step allows for a gradient field.
	f := New(5)
	const step = 0.01
	prev := f.Sample(0, 0.5)
	for i := 1; i < 500; i++ {
		v := f.Sample(float64(i)*step, 0.5)
		if math.Abs(v-prev) > 0.2 {
			t.Fatalf("discontinuity at x=%f: %f -> %f", float64(i)*step, prev, v)
		}
		prev = v
	}
}
