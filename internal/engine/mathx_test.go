package engine

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name          string
		val, min, max float64
		want          float64
	}{
		{"below range", -5, 0, 10, 0},
		{"above range", 15, 0, 10, 10},
		{"inside range", 5, 0, 10, 5},
		{"at min", 0, 0, 10, 0},
		{"at max", 10, 0, 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.val, tt.min, tt.max); got != tt.want {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.val, tt.min, tt.max, got, tt.want)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(0, 10, 0.5); got != 5 {
		t.Errorf("Lerp(0, 10, 0.5) = %v, want 5", got)
	}
	if got := Lerp(2, 4, 0); got != 2 {
		t.Errorf("Lerp(2, 4, 0) = %v, want 2", got)
	}
	if got := Lerp(2, 4, 1); got != 4 {
		t.Errorf("Lerp(2, 4, 1) = %v, want 4", got)
	}
}

func TestDistance(t *testing.T) {
	if got := Distance(0, 0, 3, 4); got != 5 {
		t.Errorf("Distance(0,0,3,4) = %v, want 5", got)
	}
	if got := DistanceSq(1, 1, 4, 5); got != 25 {
		t.Errorf("DistanceSq(1,1,4,5) = %v, want 25", got)
	}
}

func TestMoveTowards(t *testing.T) {
	tests := []struct {
		name                      string
		current, target, maxDelta float64
		want                      float64
	}{
		{"step right", 0, 10, 3, 3},
		{"step left", 10, 0, 3, 7},
		{"reaches target", 9, 10, 3, 10},
		{"already there", 5, 5, 3, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MoveTowards(tt.current, tt.target, tt.maxDelta); got != tt.want {
				t.Errorf("MoveTowards(%v, %v, %v) = %v, want %v",
					tt.current, tt.target, tt.maxDelta, got, tt.want)
			}
		})
	}
}

func TestEasingEndpoints(t *testing.T) {
	funcs := map[string]func(float64) float64{
		"EaseOutQuad":  EaseOutQuad,
		"EaseOutCubic": EaseOutCubic,
		"EaseInOut":    EaseInOut,
	}

	for name, fn := range funcs {
		if got := fn(0); math.Abs(got) > 1e-9 {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
		if got := fn(1); math.Abs(got-1) > 1e-9 {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
		// Out-of-range inputs clamp.
		if got := fn(-1); math.Abs(got) > 1e-9 {
			t.Errorf("%s(-1) = %v, want 0", name, got)
		}
		if got := fn(2); math.Abs(got-1) > 1e-9 {
			t.Errorf("%s(2) = %v, want 1", name, got)
		}
	}
}

func TestEaseOutDecelerates(t *testing.T) {
	// The first half of the range covers more ground than the second.
	firstHalf := EaseOutQuad(0.5) - EaseOutQuad(0)
	secondHalf := EaseOutQuad(1) - EaseOutQuad(0.5)
	if firstHalf <= secondHalf {
		t.Errorf("EaseOutQuad first half %v <= second half %v", firstHalf, secondHalf)
	}
}
