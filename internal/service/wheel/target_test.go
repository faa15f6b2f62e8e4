package wheel

import (
	"errors"
	"math"
	"spin_wheel/internal/model"
	"spin_wheel/pkg/random"
	"testing"
)

func TestPickTarget_Range(t *testing.T) {
	rng := random.NewSeeded(7)
	for n := 1; n <= 12; n++ {
		for i := 0; i < 500; i++ {
			target, err := PickTarget(n, 5, 9, rng)
			if err != nil {
				t.Fatalf("n=%d: unexpected error: %v", n, err)
			}
			if target.Index < 0 || target.Index >= n {
				t.Fatalf("n=%d: index %d out of range", n, target.Index)
			}
			if target.ExtraSpins < 5 || target.ExtraSpins > 9 {
				t.Fatalf("n=%d: extra spins %d out of [5,9]", n, target.ExtraSpins)
			}
		}
	}
}

func TestPickTarget_Uniform(t *testing.T) {
	const (
		n       = 8
		samples = 80000
	)
	rng := random.NewSeeded(2024)

	counts := make([]int, n)
	extras := make(map[int]int)
	for i := 0; i < samples; i++ {
		target, err := PickTarget(n, 5, 9, rng)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		counts[target.Index]++
		extras[target.ExtraSpins]++
	}

	expected := float64(samples) / n
	for idx, c := range counts {
		if math.Abs(float64(c)-expected) > expected*0.05 {
			t.Errorf("index %d: %d hits, expected about %.0f", idx, c, expected)
		}
	}

	expectedExtra := float64(samples) / 5
	for k := 5; k <= 9; k++ {
		if math.Abs(float64(extras[k])-expectedExtra) > expectedExtra*0.05 {
			t.Errorf("extra spins %d: %d hits, expected about %.0f", k, extras[k], expectedExtra)
		}
	}
}

func TestPickTarget_NoSegments(t *testing.T) {
	_, err := PickTarget(0, 5, 9, &sequenceRNG{})
	if !errors.Is(err, model.ErrNoSegments) {
		t.Fatalf("expected ErrNoSegments, got %v", err)
	}
}

func TestTerminalAngle_EightSegments(t *testing.T) {
	for k := 5; k <= 9; k++ {
		got := TerminalAngle(model.SpinTarget{Index: 3, ExtraSpins: k}, 8)
		want := 360*float64(k) + (360 - (3*45 + 22.5))
		if got != want {
			t.Errorf("k=%d: got %v, want %v", k, got, want)
		}
	}
}

func TestSegmentAt_MatchesTerminalAngle(t *testing.T) {
	for n := 1; n <= 24; n++ {
		for idx := 0; idx < n; idx++ {
			for k := 5; k <= 9; k++ {
				angle := TerminalAngle(model.SpinTarget{Index: idx, ExtraSpins: k}, n)
				got, err := SegmentAt(angle, n)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got != idx {
					t.Fatalf("n=%d idx=%d k=%d: pointer is over segment %d", n, idx, k, got)
				}
			}
		}
	}
}

func TestSegmentAt(t *testing.T) {
	tests := []struct {
		rotation float64
		n        int
		want     int
	}{
		{0, 4, 0},
		{10, 4, 3},
		{-10, 4, 0},
		{90, 4, 3},
		{91, 4, 2},
		{720 + 45, 4, 3},
	}
	for _, tt := range tests {
		got, err := SegmentAt(tt.rotation, tt.n)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != tt.want {
			t.Errorf("SegmentAt(%v, %d) = %d, want %d", tt.rotation, tt.n, got, tt.want)
		}
	}

	if _, err := SegmentAt(10, 0); !errors.Is(err, model.ErrNoSegments) {
		t.Errorf("expected ErrNoSegments, got %v", err)
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := map[float64]float64{
		0:      0,
		-30:    330,
		720:    0,
		360.5:  0.5,
		2722.5: 202.5,
	}
	for in, want := range tests {
		if got := NormalizeAngle(in); math.Abs(got-want) > 1e-9 {
			t.Errorf("NormalizeAngle(%v) = %v, want %v", in, got, want)
		}
	}
}
