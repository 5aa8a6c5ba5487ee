package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tizhi/internal/bank"
	"github.com/abhisek/tizhi/internal/ui/theme"
)

// AnswerMsg is emitted when the respondent picks or clears a value for
// the selector identified by ID. Value 0 means cleared.
type AnswerMsg struct {
	ID    int
	Value int
}

// Likert is a five-point scale selector. Cursor is the highlighted row;
// Value is the stored answer (0 when unanswered).
type Likert struct {
	ID     int
	Points []bank.Point
	Cursor int
	Value  int
}

// NewLikert creates a selector positioned on value, or on the middle of
// the scale when unanswered.
func NewLikert(id, value int) Likert {
	l := Likert{ID: id, Points: bank.Scale(), Value: value}
	l.Cursor = len(l.Points) / 2
	if bank.ValidAnswer(value) {
		l.Cursor = value - bank.MinAnswer
	}
	return l
}

// Update moves the cursor and emits AnswerMsg on selection.
func (l Likert) Update(msg tea.Msg) (Likert, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return l, nil
	}

	switch {
	case key.Matches(kmsg, KeyUp):
		if l.Cursor > 0 {
			l.Cursor--
		}
	case key.Matches(kmsg, KeyDown):
		if l.Cursor < len(l.Points)-1 {
			l.Cursor++
		}
	case key.Matches(kmsg, KeyChoose):
		v := int(kmsg.String()[0] - '0')
		l.Cursor = v - bank.MinAnswer
		return l.choose(v)
	case key.Matches(kmsg, KeyEnter):
		return l.choose(l.Points[l.Cursor].Value)
	case key.Matches(kmsg, KeyClear):
		return l.choose(0)
	}
	return l, nil
}

func (l Likert) choose(v int) (Likert, tea.Cmd) {
	l.Value = v
	id := l.ID
	return l, func() tea.Msg { return AnswerMsg{ID: id, Value: v} }
}

// View renders one row per scale point.
func (l Likert) View() string {
	var b strings.Builder
	for i, p := range l.Points {
		prefix := "  "
		if i == l.Cursor {
			prefix = "▸ "
		}
		mark := " "
		if p.Value == l.Value {
			mark = "●"
		}
		line := fmt.Sprintf("%s%d  %s  %s  %s", prefix, p.Value, mark, p.Label, p.English)

		style := theme.Unselected
		switch {
		case p.Value == l.Value:
			style = theme.Chosen
		case i == l.Cursor:
			style = theme.Selected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return lipgloss.NewStyle().PaddingLeft(2).Render(strings.TrimSuffix(b.String(), "\n"))
}
