package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/pathfinder/internal/catalog"
	"github.com/abhisek/pathfinder/internal/scoring"
)

var (
	ErrNotStarted    = errors.New("assessment not started")
	ErrUnanswered    = errors.New("current question has no answer")
	ErrInvalidAnswer = errors.New("answer out of range")
	ErrCompleted     = errors.New("assessment already completed")
	ErrIncomplete    = errors.New("assessment not completed")
)

// Scorer turns a completed response list into a report.
type Scorer interface {
	Compute(responses []scoring.Response) scoring.Report
}

// Session walks a learner through the catalog one question at a time and
// scores the answers once the last question is confirmed.
type Session struct {
	catalog *catalog.Catalog
	scorer  Scorer
	logger  *zap.Logger

	id        string
	phase     Phase
	index     int
	responses ResponseSet

	startedAt   time.Time
	completedAt time.Time
	report      *scoring.Report
}

// New creates a session in the intro phase. A nil logger disables logging.
func New(c *catalog.Catalog, scorer Scorer, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		catalog: c,
		scorer:  scorer,
		logger:  logger,
	}
}

// ID returns the current run's identifier, empty before Start.
func (s *Session) ID() string { return s.id }

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Catalog returns the question catalog.
func (s *Session) Catalog() *catalog.Catalog { return s.catalog }

// Start begins a fresh run at the first question. Any earlier responses are
// discarded.
func (s *Session) Start(now time.Time) {
	s.reset()
	s.id = uuid.New().String()
	s.phase = PhaseQuestions
	s.startedAt = now
	s.logger.Info("assessment started",
		zap.String("session_id", s.id),
		zap.String("catalog_version", s.catalog.Version()),
		zap.Int("questions", s.catalog.Len()),
	)
}

// Restart returns to the intro phase with no responses.
func (s *Session) Restart() {
	if s.id != "" {
		s.logger.Info("assessment restarted", zap.String("session_id", s.id))
	}
	s.reset()
}

func (s *Session) reset() {
	s.id = ""
	s.phase = PhaseIntro
	s.index = 0
	s.responses.Reset()
	s.startedAt = time.Time{}
	s.completedAt = time.Time{}
	s.report = nil
}

func (s *Session) checkActive() error {
	switch s.phase {
	case PhaseIntro:
		return ErrNotStarted
	case PhaseResults:
		return ErrCompleted
	}
	return nil
}

// Current returns the question being answered.
func (s *Session) Current() (catalog.Question, error) {
	if err := s.checkActive(); err != nil {
		return catalog.Question{}, err
	}
	q, _ := s.catalog.At(s.index)
	return q, nil
}

// Index returns the 0-based position of the current question.
func (s *Session) Index() int { return s.index }

// IsLast reports whether the current question is the final one.
func (s *Session) IsLast() bool {
	return s.index == s.catalog.Len()-1
}

// CanGoBack reports whether Previous would move.
func (s *Session) CanGoBack() bool {
	return s.phase == PhaseQuestions && s.index > 0
}

// Answer records value for the current question, replacing any earlier
// answer to it.
func (s *Session) Answer(value int) error {
	q, err := s.Current()
	if err != nil {
		return err
	}
	if !q.ValidValue(value) {
		return fmt.Errorf("question %s: value %d: %w", q.ID, value, ErrInvalidAnswer)
	}
	s.responses.Upsert(scoring.Response{QuestionID: q.ID, Value: value, Section: q.Section})
	s.logger.Debug("answer recorded",
		zap.String("session_id", s.id),
		zap.String("question_id", q.ID),
		zap.Int("value", value),
	)
	return nil
}

// CurrentAnswer returns the recorded answer for the current question.
func (s *Session) CurrentAnswer() (int, bool) {
	q, err := s.Current()
	if err != nil {
		return 0, false
	}
	r, ok := s.responses.Get(q.ID)
	return r.Value, ok
}

// Next advances to the following question. On the last question it
// completes the assessment, computes the report and returns done=true.
func (s *Session) Next(now time.Time) (done bool, err error) {
	q, err := s.Current()
	if err != nil {
		return false, err
	}
	if _, ok := s.responses.Get(q.ID); !ok {
		return false, fmt.Errorf("question %s: %w", q.ID, ErrUnanswered)
	}
	if !s.IsLast() {
		s.index++
		return false, nil
	}
	s.complete(now)
	return true, nil
}

func (s *Session) complete(now time.Time) {
	report := s.scorer.Compute(s.responses.List())
	s.report = &report
	s.phase = PhaseResults
	s.completedAt = now
	s.logger.Info("assessment completed",
		zap.String("session_id", s.id),
		zap.Int("answered", s.responses.Len()),
		zap.Int("overall", report.Overall),
		zap.String("recommendation", string(report.Recommendation)),
		zap.Duration("duration", now.Sub(s.startedAt)),
	)
}

// Previous moves back one question. It is a no-op on the first question.
func (s *Session) Previous() error {
	if err := s.checkActive(); err != nil {
		return err
	}
	if s.index > 0 {
		s.index--
	}
	return nil
}

// Progress returns the current position.
func (s *Session) Progress() Progress {
	p := Progress{Total: s.catalog.Len(), Answered: s.responses.Len()}
	switch s.phase {
	case PhaseQuestions:
		p.Number = s.index + 1
	case PhaseResults:
		p.Number = p.Total
	}
	return p
}

// Responses returns a copy of the recorded responses.
func (s *Session) Responses() []scoring.Response {
	return s.responses.List()
}

// Report returns the report of a completed assessment.
func (s *Session) Report() (scoring.Report, error) {
	if s.report == nil {
		return scoring.Report{}, ErrIncomplete
	}
	return *s.report, nil
}

// Summary returns the report together with session metadata.
func (s *Session) Summary() (Summary, error) {
	report, err := s.Report()
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		SessionID:      s.id,
		CatalogVersion: s.catalog.Version(),
		StartedAt:      s.startedAt,
		CompletedAt:    s.completedAt,
		Answered:       s.responses.Len(),
		Total:          s.catalog.Len(),
		Report:         report,
	}, nil
}
