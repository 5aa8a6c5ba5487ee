// Package report turns a scoring result into a presentable report and
// renders it as text, Markdown, JSON or YAML.
package report

import (
	"time"

	"github.com/abhisek/tizhi/internal/bank"
	"github.com/abhisek/tizhi/internal/scoring"
)

// MainTypeCount is how many leading categories of the ranking are
// reported as the respondent's main constitution types.
const MainTypeCount = 2

// Disclaimer is shown with every report.
const Disclaimer = "本工具仅用于健康教育与体质自测，不构成医疗建议；如有不适或疾病，请及时就医。"

var advice = []string{
	"作息规律，四季随时令，不熬夜。",
	"饮食清淡均衡，少油腻辛辣。",
	"早睡早起，避免久坐久劳。",
}

// Advice returns the general lifestyle advice attached to every report.
func Advice() []string {
	return append([]string(nil), advice...)
}

// CategoryScore is one category's line in a report.
type CategoryScore struct {
	Category    bank.Category `json:"category" yaml:"category"`
	Name        string        `json:"name" yaml:"name"`
	English     string        `json:"english" yaml:"english"`
	Score       float64       `json:"score" yaml:"score"`
	RawSum      int           `json:"raw_sum" yaml:"raw_sum"`
	Count       int           `json:"count" yaml:"count"`
	Description string        `json:"description" yaml:"description"`
}

// Report is the serializable outcome of one questionnaire.
type Report struct {
	ID          string           `json:"id,omitempty" yaml:"id,omitempty"`
	GeneratedAt time.Time        `json:"generated_at" yaml:"generated_at"`
	Sex         string           `json:"sex" yaml:"sex"`
	Scores      []CategoryScore  `json:"scores" yaml:"scores"`
	Ranking     []bank.Category  `json:"ranking" yaml:"ranking"`
	MainTypes   []bank.Category  `json:"main_types" yaml:"main_types"`
	Balance     scoring.Judgment `json:"balance" yaml:"balance"`
	BalanceName string           `json:"balance_name,omitempty" yaml:"balance_name,omitempty"`
	Affirmed    []bank.Category  `json:"affirmed" yaml:"affirmed"`
	Leaning     []bank.Category  `json:"leaning" yaml:"leaning"`
	Advice      []string         `json:"advice" yaml:"advice"`
	Disclaimer  string           `json:"disclaimer" yaml:"disclaimer"`
}

// Build assembles a report for res. Scores are listed in catalog order.
func Build(id string, res scoring.Result, at time.Time) Report {
	r := Report{
		ID:          id,
		GeneratedAt: at,
		Sex:         res.Sex.String(),
		Ranking:     append([]bank.Category{}, res.Ranking...),
		MainTypes:   res.Top(MainTypeCount),
		Balance:     res.Classification.Balance,
		BalanceName: res.Classification.Balance.Name(),
		Affirmed:    append([]bank.Category{}, res.Classification.Affirmed...),
		Leaning:     append([]bank.Category{}, res.Classification.Leaning...),
		Advice:      Advice(),
		Disclaimer:  Disclaimer,
	}
	for _, c := range bank.AllCategories() {
		r.Scores = append(r.Scores, CategoryScore{
			Category:    c,
			Name:        c.Name(),
			English:     c.EnglishName(),
			Score:       res.Scores.Of(c),
			RawSum:      res.RawSums[c],
			Count:       res.Counts[c],
			Description: Description(c),
		})
	}
	return r
}

// Score returns the reported score of c.
func (r Report) Score(c bank.Category) float64 {
	for _, s := range r.Scores {
		if s.Category == c {
			return s.Score
		}
	}
	return 0
}

// Verdict headlines when the balanced judgment fails.
const (
	VerdictSkewed     = "偏颇体质"
	VerdictUnresolved = "未达平和质"
)

// Verdict returns the headline judgment in Chinese. A failed balance
// judgment reads as skewed only when some skewed constitution is affirmed.
func (r Report) Verdict() string {
	switch {
	case r.BalanceName != "":
		return r.BalanceName
	case len(r.Affirmed) > 0:
		return VerdictSkewed
	default:
		return VerdictUnresolved
	}
}
