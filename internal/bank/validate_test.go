package bank

import (
	"strings"
	"testing"
)

// fullCategorySet returns one valid question per category.
func fullCategorySet() []Question {
	var qs []Question
	for _, c := range AllCategories() {
		qs = append(qs, Question{ID: c.String() + "-1", Category: c, Text: "q"})
	}
	return qs
}

func TestValidate_SeedCatalogPasses(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("seed catalog validation failed: %v", err)
	}
}

func TestValidateCatalog_MinimalPasses(t *testing.T) {
	if err := validateCatalog(fullCategorySet()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateCatalog_DetectsDuplicateID(t *testing.T) {
	qs := append(fullCategorySet(), Question{ID: "balanced-1", Category: Balanced, Text: "again"})
	err := validateCatalog(qs)
	if err == nil {
		t.Fatal("expected error for duplicate ID, got nil")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("error should mention duplicate, got: %v", err)
	}
}

func TestValidateCatalog_DetectsEmptyCategory(t *testing.T) {
	qs := fullCategorySet()[1:] // drop balanced
	err := validateCatalog(qs)
	if err == nil {
		t.Fatal("expected error for empty category, got nil")
	}
	if !strings.Contains(err.Error(), `"balanced" has no questions`) {
		t.Errorf("error should name the empty category, got: %v", err)
	}
}

func TestValidateCatalog_DetectsUnpairedGenderedQuestion(t *testing.T) {
	qs := append(fullCategorySet(), Question{ID: "dh-x", Category: DampHeat, Text: "x", Only: FemaleOnly})
	err := validateCatalog(qs)
	if err == nil {
		t.Fatal("expected error for unpaired gendered question, got nil")
	}
	if !strings.Contains(err.Error(), "1 female-only and 0 male-only") {
		t.Errorf("error should describe the imbalance, got: %v", err)
	}
}

func TestValidateCatalog_DetectsBadFields(t *testing.T) {
	qs := append(fullCategorySet(),
		Question{ID: "", Category: Balanced, Text: "no id"},
		Question{ID: "blank", Category: Balanced, Text: "   "},
		Question{ID: "bad-cat", Category: Category(12), Text: "x"},
		Question{ID: "bad-sex", Category: Balanced, Text: "x", Only: Constraint(9)},
	)
	err := validateCatalog(qs)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	for _, want := range []string{"has no ID", `"blank" has no text`, "invalid category", "invalid constraint"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error should contain %q, got: %v", want, err)
		}
	}
}
