package session

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/pathfinder/internal/catalog"
	"github.com/abhisek/pathfinder/internal/scoring"
)

var t0 = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

// countingScorer records how often it is asked for a report.
type countingScorer struct {
	calls int
	last  []scoring.Response
}

func (c *countingScorer) Compute(responses []scoring.Response) scoring.Report {
	c.calls++
	c.last = responses
	return scoring.ComputeReport(catalog.Default(), responses)
}

func newTestSession() (*Session, *countingScorer) {
	sc := &countingScorer{}
	return New(catalog.Default(), sc, nil), sc
}

// answerAll answers every remaining question with v and confirms each.
func answerAll(t *testing.T, s *Session, v int) {
	t.Helper()
	for {
		q, err := s.Current()
		if err != nil {
			t.Fatalf("Current: %v", err)
		}
		if err := s.Answer(min(v, q.AnswerCount())); err != nil {
			t.Fatalf("Answer(%s): %v", q.ID, err)
		}
		done, err := s.Next(t0.Add(5 * time.Minute))
		if err != nil {
			t.Fatalf("Next(%s): %v", q.ID, err)
		}
		if done {
			return
		}
	}
}

func TestSession_NotStarted(t *testing.T) {
	s, _ := newTestSession()

	if s.Phase() != PhaseIntro {
		t.Errorf("Phase = %v, want intro", s.Phase())
	}
	if _, err := s.Current(); !errors.Is(err, ErrNotStarted) {
		t.Errorf("Current err = %v, want ErrNotStarted", err)
	}
	if err := s.Answer(3); !errors.Is(err, ErrNotStarted) {
		t.Errorf("Answer err = %v, want ErrNotStarted", err)
	}
	if _, err := s.Next(t0); !errors.Is(err, ErrNotStarted) {
		t.Errorf("Next err = %v, want ErrNotStarted", err)
	}
	if _, err := s.Report(); !errors.Is(err, ErrIncomplete) {
		t.Errorf("Report err = %v, want ErrIncomplete", err)
	}
}

func TestSession_StartAssignsID(t *testing.T) {
	s, _ := newTestSession()
	s.Start(t0)
	first := s.ID()
	if first == "" {
		t.Fatal("expected a session ID after Start")
	}
	s.Start(t0)
	if s.ID() == first {
		t.Error("expected a fresh session ID on the second Start")
	}
	q, err := s.Current()
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if q.ID != "p1" {
		t.Errorf("first question = %q, want p1", q.ID)
	}
}

func TestSession_NextRequiresAnswer(t *testing.T) {
	s, _ := newTestSession()
	s.Start(t0)

	if _, err := s.Next(t0); !errors.Is(err, ErrUnanswered) {
		t.Fatalf("Next err = %v, want ErrUnanswered", err)
	}
	if s.Index() != 0 {
		t.Errorf("Index = %d, want 0", s.Index())
	}
}

func TestSession_AnswerValidation(t *testing.T) {
	s, _ := newTestSession()
	s.Start(t0)

	for _, v := range []int{0, 6, -1} {
		if err := s.Answer(v); !errors.Is(err, ErrInvalidAnswer) {
			t.Errorf("Answer(%d) err = %v, want ErrInvalidAnswer", v, err)
		}
	}
	if _, ok := s.CurrentAnswer(); ok {
		t.Error("invalid answers should not be recorded")
	}
}

func TestSession_AnswerReplaces(t *testing.T) {
	s, _ := newTestSession()
	s.Start(t0)

	_ = s.Answer(2)
	_ = s.Answer(4)
	v, ok := s.CurrentAnswer()
	if !ok || v != 4 {
		t.Errorf("CurrentAnswer = %d, %v; want 4, true", v, ok)
	}
	if got := len(s.Responses()); got != 1 {
		t.Errorf("got %d responses, want 1", got)
	}
}

func TestSession_PreviousKeepsAnswers(t *testing.T) {
	s, _ := newTestSession()
	s.Start(t0)

	if s.CanGoBack() {
		t.Error("CanGoBack should be false on the first question")
	}
	_ = s.Answer(5)
	if _, err := s.Next(t0); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if !s.CanGoBack() {
		t.Error("CanGoBack should be true on the second question")
	}
	if err := s.Previous(); err != nil {
		t.Fatalf("Previous: %v", err)
	}
	if v, ok := s.CurrentAnswer(); !ok || v != 5 {
		t.Errorf("CurrentAnswer after Previous = %d, %v; want 5, true", v, ok)
	}
	if err := s.Previous(); err != nil {
		t.Fatalf("Previous on first question: %v", err)
	}
	if s.Index() != 0 {
		t.Errorf("Index = %d, want 0", s.Index())
	}
}

func TestSession_Progress(t *testing.T) {
	s, _ := newTestSession()
	if p := s.Progress(); p.Number != 0 || p.Total != 22 {
		t.Errorf("intro progress = %+v", p)
	}
	s.Start(t0)
	_ = s.Answer(3)
	_, _ = s.Next(t0)

	p := s.Progress()
	if p.Number != 2 || p.Total != 22 || p.Answered != 1 {
		t.Errorf("progress = %+v, want 2/22 with 1 answered", p)
	}
	if got := p.Percent(); got != 9 {
		t.Errorf("Percent = %d, want 9", got)
	}
}

func TestSession_CompletesOnce(t *testing.T) {
	s, sc := newTestSession()
	s.Start(t0)
	answerAll(t, s, 4)

	if s.Phase() != PhaseResults {
		t.Fatalf("Phase = %v, want results", s.Phase())
	}
	if sc.calls != 1 {
		t.Errorf("scorer called %d times, want 1", sc.calls)
	}
	if len(sc.last) != 22 {
		t.Errorf("scorer got %d responses, want 22", len(sc.last))
	}
	if _, err := s.Next(t0); !errors.Is(err, ErrCompleted) {
		t.Errorf("Next after completion err = %v, want ErrCompleted", err)
	}
	if err := s.Answer(1); !errors.Is(err, ErrCompleted) {
		t.Errorf("Answer after completion err = %v, want ErrCompleted", err)
	}
	r, err := s.Report()
	if err != nil {
		t.Fatalf("Report: %v", err)
	}
	_, _ = s.Report()
	if sc.calls != 1 {
		t.Errorf("Report recomputed: %d calls", sc.calls)
	}
	if r.Recommendation != scoring.RecommendYes || r.Overall != 80 {
		t.Errorf("report = %s/%d, want yes/80", r.Recommendation, r.Overall)
	}
}

func TestSession_Summary(t *testing.T) {
	s, _ := newTestSession()
	s.Start(t0)
	answerAll(t, s, 3)

	sum, err := s.Summary()
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if sum.SessionID != s.ID() {
		t.Errorf("SessionID = %q, want %q", sum.SessionID, s.ID())
	}
	if sum.Answered != 22 || sum.Total != 22 {
		t.Errorf("answered %d/%d, want 22/22", sum.Answered, sum.Total)
	}
	if sum.Duration() != 5*time.Minute {
		t.Errorf("Duration = %v, want 5m", sum.Duration())
	}
	if sum.CatalogVersion != catalog.DefaultVersion {
		t.Errorf("CatalogVersion = %q", sum.CatalogVersion)
	}
}

func TestSession_Restart(t *testing.T) {
	s, _ := newTestSession()
	s.Start(t0)
	answerAll(t, s, 5)

	s.Restart()
	if s.Phase() != PhaseIntro {
		t.Errorf("Phase = %v, want intro", s.Phase())
	}
	if len(s.Responses()) != 0 {
		t.Errorf("responses survived restart: %d", len(s.Responses()))
	}
	if _, err := s.Report(); !errors.Is(err, ErrIncomplete) {
		t.Errorf("Report err = %v, want ErrIncomplete", err)
	}
	if s.ID() != "" {
		t.Errorf("ID = %q, want empty", s.ID())
	}

	s.Start(t0)
	if s.Index() != 0 {
		t.Errorf("Index = %d after retake, want 0", s.Index())
	}
}

func TestSession_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s := New(catalog.Default(), scoring.New(catalog.Default()), zap.New(core))
	s.Start(t0)
	answerAll(t, s, 2)

	if n := logs.FilterMessage("answer recorded").Len(); n != 22 {
		t.Errorf("got %d answer logs, want 22", n)
	}
	done := logs.FilterMessage("assessment completed").All()
	if len(done) != 1 {
		t.Fatalf("got %d completion logs, want 1", len(done))
	}
	fields := done[0].ContextMap()
	if fields["recommendation"] != "no" {
		t.Errorf("recommendation field = %v, want no", fields["recommendation"])
	}
	if fields["session_id"] != s.ID() {
		t.Errorf("session_id field = %v, want %q", fields["session_id"], s.ID())
	}
}
