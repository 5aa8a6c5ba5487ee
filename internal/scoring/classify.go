package scoring

import (
	"fmt"
	"sort"

	"github.com/abhisek/tizhi/internal/bank"
)

// Classification thresholds on the normalized score.
const (
	BalancedThreshold = 60.0 // balanced score needed for any positive balance judgment
	AffirmedThreshold = 40.0 // skewed score at or above this is a definite constitution
	LeaningThreshold  = 30.0 // skewed score at or above this (and below Affirmed) is a tendency
)

// Judgment is the verdict on the balanced constitution.
type Judgment int

const (
	NotBalanced       Judgment = iota // default
	BasicallyBalanced                 // 基本是平和质
	Balanced                          // 平和质
)

// String returns a kebab-case identifier.
func (j Judgment) String() string {
	switch j {
	case Balanced:
		return "balanced"
	case BasicallyBalanced:
		return "basically-balanced"
	default:
		return "not-balanced"
	}
}

// Name returns the Chinese verdict, empty for NotBalanced.
func (j Judgment) Name() string {
	switch j {
	case Balanced:
		return "平和质"
	case BasicallyBalanced:
		return "基本是平和质"
	default:
		return ""
	}
}

// MarshalText encodes the judgment as its identifier.
func (j Judgment) MarshalText() ([]byte, error) {
	return []byte(j.String()), nil
}

// UnmarshalText accepts the identifiers produced by MarshalText.
func (j *Judgment) UnmarshalText(text []byte) error {
	for _, v := range []Judgment{NotBalanced, BasicallyBalanced, Balanced} {
		if v.String() == string(text) {
			*j = v
			return nil
		}
	}
	return fmt.Errorf("unknown balance judgment %q", text)
}

// Classification partitions the skewed categories by their own score and
// carries the balance judgment. Set members follow catalog order.
type Classification struct {
	Balance  Judgment
	Affirmed []bank.Category // score >= AffirmedThreshold
	Leaning  []bank.Category // LeaningThreshold <= score < AffirmedThreshold
}

// Classify applies the threshold rules to a full set of scores.
func Classify(s Scores) Classification {
	var cl Classification

	if s.Of(bank.Balanced) >= BalancedThreshold {
		below40, below30 := true, true
		for _, c := range bank.SkewedCategories() {
			if s.Of(c) >= AffirmedThreshold {
				below40 = false
			}
			if s.Of(c) >= LeaningThreshold {
				below30 = false
			}
		}
		switch {
		case below30:
			cl.Balance = Balanced
		case below40:
			cl.Balance = BasicallyBalanced
		}
	}

	for _, c := range bank.SkewedCategories() {
		switch v := s.Of(c); {
		case v >= AffirmedThreshold:
			cl.Affirmed = append(cl.Affirmed, c)
		case v >= LeaningThreshold:
			cl.Leaning = append(cl.Leaning, c)
		}
	}
	return cl
}

// Rank orders all categories by descending score. Equal scores keep
// catalog order.
func Rank(s Scores) []bank.Category {
	ranking := bank.AllCategories()
	sort.SliceStable(ranking, func(i, j int) bool {
		return s.Of(ranking[i]) > s.Of(ranking[j])
	})
	return ranking
}
