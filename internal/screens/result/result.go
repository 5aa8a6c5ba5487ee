package result

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tizhi/internal/bank"
	"github.com/abhisek/tizhi/internal/report"
	"github.com/abhisek/tizhi/internal/router"
	"github.com/abhisek/tizhi/internal/screen"
	"github.com/abhisek/tizhi/internal/scoring"
	"github.com/abhisek/tizhi/internal/ui/components"
	"github.com/abhisek/tizhi/internal/ui/layout"
	"github.com/abhisek/tizhi/internal/ui/theme"
)

const barWidth = 30

// ResultScreen displays a scored report in a scrollable viewport.
type ResultScreen struct {
	report   report.Report
	vp       viewport.Model
	rendered int // width the viewport content was rendered for
}

var (
	_ screen.Screen          = (*ResultScreen)(nil)
	_ screen.KeyHintProvider = (*ResultScreen)(nil)
	_ screen.BackHandler     = (*ResultScreen)(nil)
)

// New creates a ResultScreen for r.
func New(r report.Report) *ResultScreen {
	vp := viewport.New()
	// "b" belongs to KeyEdit here.
	vp.KeyMap.PageUp = key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up"))
	return &ResultScreen{report: r, vp: vp}
}

func (s *ResultScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultScreen) Title() string {
	return "测评结果"
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	return append(
		components.Hints(components.KeyEdit, components.KeyUp),
		layout.KeyHint{Key: "Enter/Esc", Description: "Home"},
	)
}

// Back returns to the home screen rather than the questionnaire.
func (s *ResultScreen) Back() tea.Cmd {
	return func() tea.Msg { return router.PopToRootMsg{} }
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch {
		case key.Matches(kmsg, components.KeyEdit):
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case key.Matches(kmsg, components.KeyEnter):
			return s, s.Back()
		}
	}
	var cmd tea.Cmd
	s.vp, cmd = s.vp.Update(msg)
	return s, cmd
}

func (s *ResultScreen) View(width, height int) string {
	if s.rendered != width {
		s.vp.SetContent(s.render(width))
		s.rendered = width
	}
	s.vp.SetWidth(width)
	s.vp.SetHeight(height)
	return s.vp.View()
}

func (s *ResultScreen) render(width int) string {
	r := s.report
	cw := min(width-4, 72)
	center := func(str string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, str)
	}
	heading := func(str string) string {
		return center(lipgloss.NewStyle().Width(cw).Foreground(theme.Primary).Bold(true).Render(str))
	}
	para := func(str string, fg lipgloss.Style) string {
		return center(fg.Width(cw).Render(str))
	}

	var b strings.Builder

	verdictStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.Warning)
	if r.Balance != scoring.NotBalanced {
		verdictStyle = verdictStyle.Foreground(theme.Success)
	}
	b.WriteString("\n")
	b.WriteString(center(verdictStyle.Render("判定：" + r.Verdict())))
	b.WriteString("\n")
	b.WriteString(center(theme.Body.Render("主要体质：" + joinNames(r.MainTypes))))
	b.WriteString("\n\n")

	for _, cs := range r.Scores {
		fill := theme.ProgressFilled
		if cs.Category.IsSkewed() {
			fill = theme.ScoreStyle(cs.Score, scoring.AffirmedThreshold, scoring.LeaningThreshold)
		}
		name := lipgloss.NewStyle().Width(8).Foreground(theme.Text).Render(cs.Name)
		value := lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%6.2f", cs.Score))
		b.WriteString(center(name + components.ScoreBar(cs.Score, barWidth, fill) + value))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(para("确定体质（≥40）："+joinNames(r.Affirmed), theme.Body))
	b.WriteString("\n")
	b.WriteString(para("倾向体质（30–40）："+joinNames(r.Leaning), theme.Body))
	b.WriteString("\n\n")

	b.WriteString(heading("体质说明"))
	b.WriteString("\n")
	for _, c := range r.MainTypes {
		b.WriteString(para(c.Name()+"："+report.Description(c), theme.Body))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(heading("调养建议"))
	b.WriteString("\n")
	for _, a := range r.Advice {
		b.WriteString(para("• "+a, theme.Body))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(para(r.Disclaimer, theme.Hint))
	return b.String()
}

func joinNames(cs []bank.Category) string {
	if len(cs) == 0 {
		return "无"
	}
	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = c.Name()
	}
	return strings.Join(names, "、")
}
