package bank

import (
	"fmt"
	"strings"
)

// validateCatalog performs all structural checks on the given questions.
// Returns a combined error describing all problems found, or nil if valid.
func validateCatalog(questions []Question) error {
	var errs []string

	seen := make(map[string]bool, len(questions))
	var perCategory [CategoryCount]int
	var femaleOnly, maleOnly [CategoryCount]int

	for i, q := range questions {
		if q.ID == "" {
			errs = append(errs, fmt.Sprintf("question #%d has no ID", i+1))
		} else if seen[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question ID: %q", q.ID))
		}
		seen[q.ID] = true

		if strings.TrimSpace(q.Text) == "" {
			errs = append(errs, fmt.Sprintf("question %q has no text", q.ID))
		}
		if !q.Category.Valid() {
			errs = append(errs, fmt.Sprintf("question %q has invalid category %d", q.ID, int(q.Category)))
			continue
		}

		switch q.Only {
		case Any:
		case FemaleOnly:
			femaleOnly[q.Category]++
		case MaleOnly:
			maleOnly[q.Category]++
		default:
			errs = append(errs, fmt.Sprintf("question %q has invalid constraint %d", q.ID, int(q.Only)))
		}
		perCategory[q.Category]++
	}

	for _, c := range AllCategories() {
		if perCategory[c] == 0 {
			errs = append(errs, fmt.Sprintf("category %q has no questions", c))
		}
		// Gendered items must come in matched pairs so both sexes answer
		// the same number of questions per category.
		if femaleOnly[c] != maleOnly[c] {
			errs = append(errs, fmt.Sprintf("category %q has %d female-only and %d male-only questions",
				c, femaleOnly[c], maleOnly[c]))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("question bank validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
