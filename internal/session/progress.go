package session

import (
	"fmt"
	"math"

	"github.com/abhisek/tizhi/internal/bank"
)

// Progress counts answered items against the bank size.
type Progress struct {
	Done  int
	Total int
}

// Percent returns Done/Total as a whole percentage, rounding halves up.
func (p Progress) Percent() int {
	if p.Total <= 0 {
		return 0
	}
	return int(math.Floor(float64(p.Done)*100/float64(p.Total) + 0.5))
}

// Complete reports whether every item is answered.
func (p Progress) Complete() bool {
	return p.Total > 0 && p.Done >= p.Total
}

// String formats the progress as "done/total (pct%)".
func (p Progress) String() string {
	return fmt.Sprintf("%d/%d (%d%%)", p.Done, p.Total, p.Percent())
}

// Progress reports how many items of the current bank are answered.
func (s *Session) Progress() Progress {
	p := Progress{Total: s.bank.Total()}
	for _, c := range bank.AllCategories() {
		p.Done += s.answers.Answered(c)
	}
	return p
}

// IncompleteError is returned by Submit while items remain unanswered.
type IncompleteError struct {
	Item    bank.Item // first unanswered item
	Missing int
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("%d question(s) unanswered, first is #%d", e.Missing, e.Item.Number)
}
