// Package bank holds the static constitution questionnaire and produces the
// per-sex effective view of it.
package bank

import (
	"fmt"
	"slices"
)

// Bank is the effective question bank for one respondent sex.
// A Bank is read-only; every accessor returns copies.
type Bank struct {
	sex       Sex
	questions [CategoryCount][]Question
	items     []Item
}

// banks holds the precomputed effective banks, built by init().
var banks map[Sex]*Bank

func init() {
	if err := validateCatalog(catalog); err != nil {
		panic(err)
	}
	banks = make(map[Sex]*Bank, 2)
	for _, s := range Sexes() {
		banks[s] = buildBank(catalog, s)
	}
}

// buildBank filters the catalog for sex s, keeping catalog order.
func buildBank(questions []Question, s Sex) *Bank {
	b := &Bank{sex: s}
	for _, q := range questions {
		if !q.AppliesTo(s) {
			continue
		}
		b.questions[q.Category] = append(b.questions[q.Category], q)
	}
	n := 1
	for _, c := range AllCategories() {
		for i, q := range b.questions[c] {
			b.items = append(b.items, Item{Number: n, Category: c, Index: i, Question: q})
			n++
		}
	}
	return b
}

// Effective returns the question bank a respondent of sex s answers:
// every unconstrained question plus the half of each sex-specific pair
// that applies to s.
func Effective(s Sex) Bank {
	return *banks[s]
}

// All returns the full declared catalog, including both gendered items.
func All() []Question {
	return slices.Clone(catalog)
}

// Validate checks the declared catalog for structural problems.
func Validate() error {
	return validateCatalog(catalog)
}

// Sex returns the respondent sex the bank was built for.
func (b Bank) Sex() Sex {
	return b.sex
}

// Questions returns the questions of category c in catalog order.
func (b Bank) Questions(c Category) []Question {
	if !c.Valid() {
		return nil
	}
	return slices.Clone(b.questions[c])
}

// Count returns the number of questions in category c.
func (b Bank) Count(c Category) int {
	if !c.Valid() {
		return 0
	}
	return len(b.questions[c])
}

// Total returns the number of questions across all categories.
func (b Bank) Total() int {
	return len(b.items)
}

// Items returns the flattened bank, numbered from 1 in catalog order.
func (b Bank) Items() []Item {
	return slices.Clone(b.items)
}

// Item returns the item with the given 1-based number.
func (b Bank) Item(number int) (Item, error) {
	if number < 1 || number > len(b.items) {
		return Item{}, fmt.Errorf("question %d out of range 1..%d", number, len(b.items))
	}
	return b.items[number-1], nil
}
