package bank

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCategory is returned when a name does not match any category.
var ErrUnknownCategory = errors.New("unknown category")

// Category is one of the nine body constitutions.
// The numeric order is the catalog order used for display and tie-breaking.
type Category int

const (
	Balanced         Category = iota // 平和质, the baseline constitution
	QiDeficiency                     // 气虚质
	YangDeficiency                   // 阳虚质
	YinDeficiency                    // 阴虚质
	PhlegmDampness                   // 痰湿质
	DampHeat                         // 湿热质
	BloodStasis                      // 血瘀质
	QiStagnation                     // 气郁质
	InheritedSpecial                 // 特禀质
)

// CategoryCount is the number of categories. Arrays indexed by Category use it.
const CategoryCount = 9

type categoryInfo struct {
	slug    string
	name    string
	english string
}

var categories = [CategoryCount]categoryInfo{
	Balanced:         {"balanced", "平和质", "Balanced"},
	QiDeficiency:     {"qi-deficiency", "气虚质", "Qi Deficiency"},
	YangDeficiency:   {"yang-deficiency", "阳虚质", "Yang Deficiency"},
	YinDeficiency:    {"yin-deficiency", "阴虚质", "Yin Deficiency"},
	PhlegmDampness:   {"phlegm-dampness", "痰湿质", "Phlegm-Dampness"},
	DampHeat:         {"damp-heat", "湿热质", "Damp-Heat"},
	BloodStasis:      {"blood-stasis", "血瘀质", "Blood Stasis"},
	QiStagnation:     {"qi-stagnation", "气郁质", "Qi Stagnation"},
	InheritedSpecial: {"inherited-special", "特禀质", "Inherited Special"},
}

// AllCategories returns all categories in catalog order.
func AllCategories() []Category {
	out := make([]Category, CategoryCount)
	for i := range out {
		out[i] = Category(i)
	}
	return out
}

// SkewedCategories returns the eight non-balanced categories in catalog order.
func SkewedCategories() []Category {
	return AllCategories()[1:]
}

// Valid reports whether c is one of the nine categories.
func (c Category) Valid() bool {
	return c >= 0 && int(c) < CategoryCount
}

// IsSkewed reports whether c is one of the eight skewed constitutions.
func (c Category) IsSkewed() bool {
	return c.Valid() && c != Balanced
}

// String returns the kebab-case slug, e.g. "damp-heat".
func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("category(%d)", int(c))
	}
	return categories[c].slug
}

// Name returns the Chinese name, e.g. "湿热质".
func (c Category) Name() string {
	if !c.Valid() {
		return c.String()
	}
	return categories[c].name
}

// EnglishName returns a human-readable English name.
func (c Category) EnglishName() string {
	if !c.Valid() {
		return c.String()
	}
	return categories[c].english
}

// MarshalText encodes the category as its slug.
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCategory, int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText accepts anything ParseCategory accepts.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCategory resolves a slug, Chinese name or English name.
// Matching ignores case, surrounding space, and "_" versus "-" versus " ".
func ParseCategory(s string) (Category, error) {
	key := normalizeName(s)
	for i, info := range categories {
		if key == info.slug || key == info.name || key == normalizeName(info.english) {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("_", "-", " ", "-").Replace(s)
}
