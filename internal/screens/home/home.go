package home

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/tizhi/internal/report"
	"github.com/abhisek/tizhi/internal/router"
	"github.com/abhisek/tizhi/internal/screen"
	"github.com/abhisek/tizhi/internal/screens/questionnaire"
	"github.com/abhisek/tizhi/internal/session"
	"github.com/abhisek/tizhi/internal/ui/components"
	"github.com/abhisek/tizhi/internal/ui/layout"
	"github.com/abhisek/tizhi/internal/ui/theme"
)

// Menu positions.
const (
	itemStart = iota
	itemSex
	itemReset
	itemQuit
)

// HomeScreen lets the respondent pick a sex and start or resume the
// questionnaire. It owns the session for the whole program run.
type HomeScreen struct {
	sess   *session.Session
	log    *zap.Logger
	now    func() time.Time
	menu   components.Menu
	notice string
}

var (
	_ screen.Screen          = (*HomeScreen)(nil)
	_ screen.KeyHintProvider = (*HomeScreen)(nil)
)

// New creates a HomeScreen around sess.
func New(sess *session.Session, log *zap.Logger, now func() time.Time) *HomeScreen {
	if log == nil {
		log = zap.NewNop()
	}
	h := &HomeScreen{sess: sess, log: log, now: now}
	h.refresh()
	return h
}

// refresh rebuilds the menu labels from the session, keeping the cursor
// where it was when that item is still enabled.
func (h *HomeScreen) refresh() {
	selected := h.menu.Selected
	p := h.sess.Progress()

	start := "开始测评"
	if p.Done > 0 {
		start = "继续测评  " + p.String()
	}
	items := []components.MenuItem{
		itemStart: {Label: start, Action: h.start},
		itemSex:   {Label: fmt.Sprintf("性别：%s  (Enter 切换)", h.sess.Sex().Label()), Action: h.toggleSex},
		itemReset: {Label: "清空答案", Action: h.reset, Disabled: p.Done == 0},
		itemQuit:  {Label: "退出", Action: func() tea.Cmd { return tea.Quit }},
	}

	h.menu = components.NewMenu(items)
	if selected >= 0 && selected < len(items) && !items[selected].Disabled {
		h.menu.Selected = selected
	}
}

func (h *HomeScreen) start() tea.Cmd {
	q := questionnaire.New(h.sess, h.log, h.now)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: q}
	}
}

func (h *HomeScreen) toggleSex() tea.Cmd {
	next := h.sess.Sex().Other()
	hadAnswers := h.sess.Progress().Done > 0
	h.sess.SetSex(next)

	h.notice = ""
	if hadAnswers {
		h.notice = "已切换性别，答案已清空"
	}
	return nil
}

func (h *HomeScreen) reset() tea.Cmd {
	h.sess.SetSex(h.sess.Sex())
	h.notice = "答案已清空"
	return nil
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "首页"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return components.Hints(components.KeyUp, components.KeyEnter, components.KeyQuit)
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	// The questionnaire shares the session, so labels may be stale.
	h.refresh()

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	h.refresh()
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	h.refresh()

	cw := min(width-8, 56)
	total := h.sess.Bank().Total()

	title := theme.Title.Width(cw).Render("中医体质辨识")
	subtitle := theme.Subtitle.Width(cw).Render(
		fmt.Sprintf("共 %d 题 · 九种体质 · 每题 1–5 分", total))

	menu := theme.Card.Width(cw).Render(strings.TrimSuffix(h.menu.View(), "\n"))

	sections := []string{title, subtitle, "", menu}
	if h.notice != "" {
		sections = append(sections, "", theme.Notice.Render(h.notice))
	}
	disclaimer := lipgloss.NewStyle().
		Width(cw).
		Foreground(theme.TextDim).
		Align(lipgloss.Center).
		Render(report.Disclaimer)
	sections = append(sections, "", disclaimer)

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
