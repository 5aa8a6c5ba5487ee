package questionnaire

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/tizhi/internal/bank"
	"github.com/abhisek/tizhi/internal/report"
	"github.com/abhisek/tizhi/internal/router"
	"github.com/abhisek/tizhi/internal/screen"
	"github.com/abhisek/tizhi/internal/screens/result"
	"github.com/abhisek/tizhi/internal/session"
	"github.com/abhisek/tizhi/internal/ui/components"
	"github.com/abhisek/tizhi/internal/ui/layout"
	"github.com/abhisek/tizhi/internal/ui/theme"
)

// QuestionnaireScreen walks the respondent through the effective bank one
// question at a time.
type QuestionnaireScreen struct {
	sess   *session.Session
	log    *zap.Logger
	now    func() time.Time
	items  []bank.Item
	pos    int // index into items
	likert components.Likert
	notice string
}

var (
	_ screen.Screen          = (*QuestionnaireScreen)(nil)
	_ screen.KeyHintProvider = (*QuestionnaireScreen)(nil)
	_ screen.StatusProvider  = (*QuestionnaireScreen)(nil)
)

// New opens the questionnaire on the first unanswered question of sess.
func New(sess *session.Session, log *zap.Logger, now func() time.Time) *QuestionnaireScreen {
	if log == nil {
		log = zap.NewNop()
	}
	if now == nil {
		now = time.Now
	}
	q := &QuestionnaireScreen{
		sess:  sess,
		log:   log,
		now:   now,
		items: sess.Bank().Items(),
	}
	if item, ok := sess.FirstUnanswered(); ok {
		q.pos = item.Number - 1
	}
	q.load()
	return q
}

func (q *QuestionnaireScreen) current() bank.Item {
	return q.items[q.pos]
}

func (q *QuestionnaireScreen) load() {
	n := q.current().Number
	q.likert = components.NewLikert(n, q.sess.Value(n))
}

func (q *QuestionnaireScreen) goTo(pos int) {
	q.pos = max(0, min(len(q.items)-1, pos))
	q.load()
}

// Current returns the item on screen.
func (q *QuestionnaireScreen) Current() bank.Item {
	return q.current()
}

// Notice returns the message shown under the selector, if any.
func (q *QuestionnaireScreen) Notice() string {
	return q.notice
}

func (q *QuestionnaireScreen) Init() tea.Cmd {
	return nil
}

func (q *QuestionnaireScreen) Title() string {
	return "体质问卷"
}

func (q *QuestionnaireScreen) Status() string {
	return q.sess.Progress().String()
}

func (q *QuestionnaireScreen) KeyHints() []layout.KeyHint {
	return components.Hints(
		components.KeyUp,
		components.KeyChoose,
		components.KeyPrev,
		components.KeySubmit,
		components.KeyBack,
	)
}

func (q *QuestionnaireScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case components.AnswerMsg:
		q.apply(msg)
		return q, nil

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, components.KeyPrev):
			q.goTo(q.pos - 1)
			return q, nil
		case key.Matches(msg, components.KeyNext):
			q.goTo(q.pos + 1)
			return q, nil
		case key.Matches(msg, components.KeySubmit):
			return q, q.submit()
		}
	}

	var cmd tea.Cmd
	q.likert, cmd = q.likert.Update(msg)
	return q, cmd
}

// apply stores an answer and advances to the next question when a value
// was chosen for the question on screen.
func (q *QuestionnaireScreen) apply(msg components.AnswerMsg) {
	if err := q.sess.Answer(msg.ID, msg.Value); err != nil {
		q.log.Warn("answer rejected", zap.Int("question", msg.ID), zap.Error(err))
		q.notice = err.Error()
		return
	}
	q.notice = ""
	if msg.ID == q.current().Number && msg.Value != 0 && q.pos < len(q.items)-1 {
		q.goTo(q.pos + 1)
		return
	}
	q.load()
}

func (q *QuestionnaireScreen) submit() tea.Cmd {
	res, err := q.sess.Submit()
	var incomplete *session.IncompleteError
	switch {
	case errors.As(err, &incomplete):
		q.goTo(incomplete.Item.Number - 1)
		q.notice = fmt.Sprintf("还有 %d 题未作答，已跳转到第 %d 题", incomplete.Missing, incomplete.Item.Number)
		return nil
	case err != nil:
		q.notice = err.Error()
		return nil
	}

	r := report.Build(q.sess.ID(), res, q.now())
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: result.New(r)}
	}
}

func (q *QuestionnaireScreen) View(width, height int) string {
	item := q.current()
	cw := min(width-8, 72)
	b := q.sess.Bank()

	var sections []string

	counter := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("第 %d / %d 题    %s %s (%d/%d)",
			item.Number, len(q.items),
			item.Category.Name(), item.Category.EnglishName(),
			item.Index+1, b.Count(item.Category)))
	sections = append(sections, counter)

	p := q.sess.Progress()
	sections = append(sections, components.NewProgressBar("", float64(p.Percent())/100, true, cw).View())

	question := lipgloss.NewStyle().
		Width(cw).
		Foreground(theme.Text).
		Bold(true).
		Render(item.Question.Text)
	sections = append(sections, "", question, "", q.likert.View())

	if q.notice != "" {
		sections = append(sections, "", theme.Notice.Render(q.notice))
	}

	content := lipgloss.NewStyle().Width(cw).Render(strings.Join(sections, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
