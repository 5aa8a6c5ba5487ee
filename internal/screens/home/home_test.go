package home

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/tizhi/internal/bank"
	"github.com/abhisek/tizhi/internal/router"
	"github.com/abhisek/tizhi/internal/screens/questionnaire"
	"github.com/abhisek/tizhi/internal/session"
)

var (
	down  = tea.KeyPressMsg{Code: tea.KeyDown}
	enter = tea.KeyPressMsg{Code: tea.KeyEnter}
)

func TestStartPushesQuestionnaire(t *testing.T) {
	h := New(session.New(bank.Female), nil, nil)
	_, cmd := h.Update(enter)
	require.NotNil(t, cmd)

	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &questionnaire.QuestionnaireScreen{}, push.Screen)
}

func TestLabelsFollowSession(t *testing.T) {
	sess := session.New(bank.Female)
	h := New(sess, nil, nil)
	view := h.View(100, 30)
	assert.Contains(t, view, "开始测评")
	assert.Contains(t, view, "性别：女")

	require.NoError(t, sess.Answer(1, 2))
	view = h.View(100, 30)
	assert.Contains(t, view, "继续测评")
	assert.Contains(t, view, "1/66")
}

func TestToggleSexClearsAnswers(t *testing.T) {
	sess := session.New(bank.Female)
	require.NoError(t, sess.Answer(5, 4))
	h := New(sess, nil, nil)

	h.Update(down)
	_, cmd := h.Update(enter)

	assert.Nil(t, cmd)
	assert.Equal(t, bank.Male, sess.Sex())
	assert.Equal(t, 0, sess.Progress().Done)
	assert.Contains(t, h.View(100, 30), "已切换性别，答案已清空")
	assert.Contains(t, h.View(100, 30), "性别：男")
}

func TestToggleSexWithoutAnswersHasNoNotice(t *testing.T) {
	sess := session.New(bank.Male)
	h := New(sess, nil, nil)

	h.Update(down)
	h.Update(enter)

	assert.Equal(t, bank.Female, sess.Sex())
	assert.NotContains(t, h.View(100, 30), "答案已清空")
}

func TestResetIsDisabledUntilAnswered(t *testing.T) {
	sess := session.New(bank.Female)
	h := New(sess, nil, nil)

	h.Update(down)
	h.Update(down) // skips the disabled reset item
	_, cmd := h.Update(enter)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestReset(t *testing.T) {
	sess := session.New(bank.Female)
	require.NoError(t, sess.Answer(1, 2))
	h := New(sess, nil, nil)

	h.Update(down)
	h.Update(down)
	h.Update(enter)

	assert.Equal(t, 0, sess.Progress().Done)
	assert.Equal(t, bank.Female, sess.Sex())
	assert.Contains(t, h.View(100, 30), "答案已清空")
}

func TestTitle(t *testing.T) {
	h := New(session.New(bank.Female), nil, nil)
	assert.Equal(t, "首页", h.Title())
	assert.NotEmpty(t, h.KeyHints())
}
