// Package scoring converts Likert answers into normalized constitution
// scores and classifies the respondent. Everything here is pure and safe
// for concurrent use.
package scoring

import (
	"math"

	"github.com/abhisek/tizhi/internal/bank"
)

// Scores holds one normalized score in [0,100] per category.
type Scores [bank.CategoryCount]float64

// Of returns the score for category c.
func (s Scores) Of(c bank.Category) float64 {
	if !c.Valid() {
		return 0
	}
	return s[c]
}

// NormalizedScore rescales a raw sum of n answers from [n, 5n] to [0, 100],
// rounded to two decimals. Zero answered questions score exactly 0.
func NormalizedScore(rawSum, answeredCount int) float64 {
	if answeredCount <= 0 {
		return 0
	}
	n := float64(answeredCount)
	v := (float64(rawSum) - n) / (n * 4) * 100
	return clamp(round2(v), 0, 100)
}

// round2 rounds half away from zero at the second decimal place.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
