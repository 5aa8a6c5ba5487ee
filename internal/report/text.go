package report

import (
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/tizhi/internal/bank"
)

// BarWidth is the cell width of score bars in the text report.
const BarWidth = 20

// Bar draws score (0..100) as a fixed-width bar of filled and empty cells.
func Bar(score float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(score/100*float64(width) + 0.5)
	filled = max(0, min(width, filled))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// padRight pads s with spaces to w terminal cells. CJK runes count as two.
func padRight(s string, w int) string {
	if gap := w - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

func names(cs []bank.Category) string {
	if len(cs) == 0 {
		return "无"
	}
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.Name()
	}
	return strings.Join(parts, "、")
}

// Text writes r as an aligned plain-text table followed by the verdict.
func Text(w io.Writer, r Report) error {
	var b strings.Builder

	fmt.Fprintf(&b, "体质辨识结果 (%s)\n", r.Sex)
	if r.ID != "" {
		fmt.Fprintf(&b, "ID: %s\n", r.ID)
	}
	b.WriteString("\n")

	for _, s := range r.Scores {
		fmt.Fprintf(&b, "  %s %s %6.2f  %s  (%d/%d)\n",
			padRight(s.Name, 8),
			padRight(s.Category.String(), 18),
			s.Score,
			Bar(s.Score, BarWidth),
			s.RawSum, s.Count,
		)
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "判定:     %s\n", r.Verdict())
	fmt.Fprintf(&b, "主要体质: %s\n", names(r.MainTypes))
	fmt.Fprintf(&b, "确定体质: %s\n", names(r.Affirmed))
	fmt.Fprintf(&b, "倾向体质: %s\n", names(r.Leaning))

	b.WriteString("\n建议:\n")
	for _, a := range r.Advice {
		fmt.Fprintf(&b, "  - %s\n", a)
	}
	fmt.Fprintf(&b, "\n%s\n", r.Disclaimer)

	_, err := io.WriteString(w, b.String())
	return err
}
