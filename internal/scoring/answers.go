package scoring

import (
	"errors"
	"fmt"

	"github.com/abhisek/tizhi/internal/bank"
)

// Unanswered marks an answer cell that holds no value.
const Unanswered = 0

var (
	// ErrIndexRange is returned when an answer position is outside the category.
	ErrIndexRange = errors.New("answer index out of range")
	// ErrValueRange is returned for values other than Unanswered or 1..5.
	ErrValueRange = errors.New("answer value out of range")
)

// AnswerSet maps each category to answers aligned with the effective
// bank's question order. A cell holding Unanswered has no value.
type AnswerSet map[bank.Category][]int

// NewAnswerSet returns an all-unanswered set sized to b.
func NewAnswerSet(b bank.Bank) AnswerSet {
	a := make(AnswerSet, bank.CategoryCount)
	for _, c := range bank.AllCategories() {
		a[c] = make([]int, b.Count(c))
	}
	return a
}

// Set stores value v at position i of category c.
// The slice for c grows if the set was not created with NewAnswerSet.
func (a AnswerSet) Set(c bank.Category, i, v int) error {
	if !c.Valid() {
		return fmt.Errorf("set answer: %w: %d", bank.ErrUnknownCategory, int(c))
	}
	if i < 0 {
		return fmt.Errorf("set answer %s[%d]: %w", c, i, ErrIndexRange)
	}
	if v != Unanswered && !bank.ValidAnswer(v) {
		return fmt.Errorf("set answer %s[%d] = %d: %w", c, i, v, ErrValueRange)
	}
	cells := a[c]
	if i >= len(cells) {
		grown := make([]int, i+1)
		copy(grown, cells)
		cells = grown
	}
	cells[i] = v
	a[c] = cells
	return nil
}

// Get returns the value at position i of category c, or Unanswered.
func (a AnswerSet) Get(c bank.Category, i int) int {
	cells := a[c]
	if i < 0 || i >= len(cells) {
		return Unanswered
	}
	return cells[i]
}

// Answered counts the cells of c holding a value on the scale.
func (a AnswerSet) Answered(c bank.Category) int {
	n := 0
	for _, v := range a[c] {
		if bank.ValidAnswer(v) {
			n++
		}
	}
	return n
}

// Fill sets every cell of the bank's categories to v.
func (a AnswerSet) Fill(b bank.Bank, v int) {
	for _, c := range bank.AllCategories() {
		cells := make([]int, b.Count(c))
		for i := range cells {
			cells[i] = v
		}
		a[c] = cells
	}
}

// Clone returns a deep copy of a.
func (a AnswerSet) Clone() AnswerSet {
	out := make(AnswerSet, len(a))
	for c, cells := range a {
		out[c] = append([]int(nil), cells...)
	}
	return out
}
