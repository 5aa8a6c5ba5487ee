package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// Markdown returns r as a Markdown document.
func Markdown(r Report) string {
	var b strings.Builder

	b.WriteString("# 体质辨识报告\n\n")
	fmt.Fprintf(&b, "- **判定**: %s\n", r.Verdict())
	fmt.Fprintf(&b, "- **主要体质**: %s\n", names(r.MainTypes))
	fmt.Fprintf(&b, "- **确定体质**: %s\n", names(r.Affirmed))
	fmt.Fprintf(&b, "- **倾向体质**: %s\n", names(r.Leaning))
	fmt.Fprintf(&b, "- **性别**: %s\n\n", r.Sex)

	b.WriteString("| 体质 | Category | 得分 | 原始分 | 题数 |\n")
	b.WriteString("|------|----------|-----:|-------:|-----:|\n")
	for _, s := range r.Scores {
		fmt.Fprintf(&b, "| %s | %s | %.2f | %d | %d |\n",
			s.Name, s.Category, s.Score, s.RawSum, s.Count)
	}

	if len(r.MainTypes) > 0 {
		b.WriteString("\n## 体质说明\n")
		for _, c := range r.MainTypes {
			fmt.Fprintf(&b, "\n### %s\n\n%s\n", c.Name(), Description(c))
		}
	}

	b.WriteString("\n## 调养建议\n\n")
	for _, a := range r.Advice {
		fmt.Fprintf(&b, "- %s\n", a)
	}

	fmt.Fprintf(&b, "\n> %s\n", r.Disclaimer)
	return b.String()
}

// RenderMarkdown renders the Markdown report for a terminal. Plain output
// carries no ANSI escapes.
func RenderMarkdown(r Report, width int, plain bool) (string, error) {
	if width <= 0 {
		width = DefaultWidth
	}
	style := glamour.WithAutoStyle()
	if plain {
		style = glamour.WithStandardStyle("notty")
	}
	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := renderer.Render(Markdown(r))
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
