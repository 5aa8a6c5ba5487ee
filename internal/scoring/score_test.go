package scoring

import (
	"math"
	"testing"
)

func TestNormalizedScore_FixedPoints(t *testing.T) {
	tests := []struct {
		name   string
		raw, n int
		want   float64
	}{
		{"single max", 5, 1, 100},
		{"single min", 1, 1, 0},
		{"all neutral 8", 24, 8, 50},
		{"two of eight answered, both max", 10, 2, 100},
		{"zero answered", 0, 0, 0},
		{"zero answered with raw", 17, 0, 0},
		{"quarter step", 9, 8, 3.13}, // 3.125 rounds half up
		{"sevenths", 8, 7, 3.57},
		{"thirds", 4, 3, 8.33},
		{"clamped high", 50, 2, 100},
		{"clamped low", 0, 3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizedScore(tt.raw, tt.n); got != tt.want {
				t.Errorf("NormalizedScore(%d, %d) = %v, want %v", tt.raw, tt.n, got, tt.want)
			}
		})
	}
}

func TestNormalizedScore_MinAndMaxForAnyCount(t *testing.T) {
	for n := 1; n <= 8; n++ {
		if got := NormalizedScore(n, n); got != 0 {
			t.Errorf("NormalizedScore(%d, %d) = %v, want 0", n, n, got)
		}
		if got := NormalizedScore(5*n, n); got != 100 {
			t.Errorf("NormalizedScore(%d, %d) = %v, want 100", 5*n, n, got)
		}
	}
}

func TestNormalizedScore_Monotonic(t *testing.T) {
	for n := 1; n <= 8; n++ {
		prev := NormalizedScore(n, n)
		for raw := n + 1; raw <= 5*n; raw++ {
			got := NormalizedScore(raw, n)
			if got < prev {
				t.Errorf("n=%d: score(%d)=%v < score(%d)=%v", n, raw, got, raw-1, prev)
			}
			if got < 0 || got > 100 {
				t.Errorf("n=%d raw=%d: score %v outside [0,100]", n, raw, got)
			}
			prev = got
		}
	}
}

func TestNormalizedScore_TwoDecimals(t *testing.T) {
	for n := 1; n <= 8; n++ {
		for raw := n; raw <= 5*n; raw++ {
			got := NormalizedScore(raw, n)
			scaled := got * 100
			if math.Abs(scaled-math.Round(scaled)) > 1e-9 {
				t.Errorf("NormalizedScore(%d, %d) = %v has more than two decimals", raw, n, got)
			}
		}
	}
}
