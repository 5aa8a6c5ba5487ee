// Package session tracks one respondent working through the questionnaire:
// the effective bank for their sex, the answers given so far, and the
// final submission.
package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/tizhi/internal/bank"
	"github.com/abhisek/tizhi/internal/scoring"
)

// Session holds the in-memory state of one questionnaire run.
// A Session is not safe for concurrent use.
type Session struct {
	id        string
	sex       bank.Sex
	bank      bank.Bank
	answers   scoring.AnswerSet
	startedAt time.Time

	log *zap.Logger
	now func() time.Time
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for session events.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// New starts a session for a respondent of the given sex with every
// question unanswered.
func New(sex bank.Sex, opts ...Option) *Session {
	s := &Session{
		id:  uuid.New().String(),
		log: zap.NewNop(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(zap.String("session_id", s.id))
	s.startedAt = s.now()
	s.reset(sex)
	s.log.Debug("session started", zap.Stringer("sex", sex), zap.Int("questions", s.bank.Total()))
	return s
}

func (s *Session) reset(sex bank.Sex) {
	s.sex = sex
	s.bank = bank.Effective(sex)
	s.answers = scoring.NewAnswerSet(s.bank)
}

// ID returns the session's UUID.
func (s *Session) ID() string { return s.id }

// Sex returns the respondent sex.
func (s *Session) Sex() bank.Sex { return s.sex }

// Bank returns the effective bank for the current sex.
func (s *Session) Bank() bank.Bank { return s.bank }

// StartedAt returns when the session was created.
func (s *Session) StartedAt() time.Time { return s.startedAt }

// SetSex switches the respondent sex. The bank is rebuilt and every
// answer is discarded, even when the sex is unchanged.
func (s *Session) SetSex(sex bank.Sex) {
	prev := s.sex
	s.reset(sex)
	s.log.Info("sex changed, answers reset",
		zap.Stringer("from", prev),
		zap.Stringer("to", sex),
		zap.Int("questions", s.bank.Total()),
	)
}

// Answer records value v for item number n. A value of
// scoring.Unanswered clears the item.
func (s *Session) Answer(n, v int) error {
	item, err := s.bank.Item(n)
	if err != nil {
		return fmt.Errorf("answer: %w", err)
	}
	if err := s.answers.Set(item.Category, item.Index, v); err != nil {
		return fmt.Errorf("answer question %d: %w", n, err)
	}
	return nil
}

// Value returns the answer stored for item number n, or
// scoring.Unanswered.
func (s *Session) Value(n int) int {
	item, err := s.bank.Item(n)
	if err != nil {
		return scoring.Unanswered
	}
	return s.answers.Get(item.Category, item.Index)
}

// Answers returns a copy of the current answer set.
func (s *Session) Answers() scoring.AnswerSet {
	return s.answers.Clone()
}

// FirstUnanswered returns the lowest-numbered item without an answer.
func (s *Session) FirstUnanswered() (bank.Item, bool) {
	for _, item := range s.bank.Items() {
		if !bank.ValidAnswer(s.answers.Get(item.Category, item.Index)) {
			return item, true
		}
	}
	return bank.Item{}, false
}

// Submit scores the session. If any item is still unanswered it returns
// an *IncompleteError pointing at the first one and nothing is scored.
func (s *Session) Submit() (scoring.Result, error) {
	p := s.Progress()
	if item, ok := s.FirstUnanswered(); ok {
		err := &IncompleteError{Item: item, Missing: p.Total - p.Done}
		s.log.Info("submit rejected", zap.Int("first_unanswered", item.Number), zap.Int("missing", err.Missing))
		return scoring.Result{}, err
	}

	res := scoring.Compute(s.answers, s.sex)
	s.log.Info("session submitted",
		zap.Stringer("balance", res.Classification.Balance),
		zap.Stringers("top", res.Top(2)),
		zap.Duration("elapsed", s.now().Sub(s.startedAt)),
	)
	return res, nil
}
