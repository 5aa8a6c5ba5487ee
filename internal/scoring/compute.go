package scoring

import (
	"github.com/abhisek/tizhi/internal/bank"
)

// Result is the derived outcome of one completed questionnaire.
type Result struct {
	Sex            bank.Sex
	Scores         Scores
	RawSums        [bank.CategoryCount]int
	Counts         [bank.CategoryCount]int // divisor used; nominal count when nothing was answered
	Ranking        []bank.Category
	Classification Classification
}

// Compute scores answers against the effective bank for sex.
//
// Each category's answers are truncated to the bank's question count.
// Values outside 1..5 count as unanswered. A category with no answered
// questions falls back to its nominal count and scores 0.
func Compute(answers AnswerSet, sex bank.Sex) Result {
	b := bank.Effective(sex)
	res := Result{Sex: sex}

	for _, c := range bank.AllCategories() {
		cells := answers[c]
		if n := b.Count(c); len(cells) > n {
			cells = cells[:n]
		}

		raw, answered := 0, 0
		for _, v := range cells {
			if bank.ValidAnswer(v) {
				raw += v
				answered++
			}
		}

		res.RawSums[c] = raw
		if answered == 0 {
			res.Counts[c] = b.Count(c)
			res.Scores[c] = 0
			continue
		}
		res.Counts[c] = answered
		res.Scores[c] = NormalizedScore(raw, answered)
	}

	res.Ranking = Rank(res.Scores)
	res.Classification = Classify(res.Scores)
	return res
}

// Top returns the first n categories of the ranking.
func (r Result) Top(n int) []bank.Category {
	if n > len(r.Ranking) {
		n = len(r.Ranking)
	}
	if n < 0 {
		n = 0
	}
	return append([]bank.Category(nil), r.Ranking[:n]...)
}
