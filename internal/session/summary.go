package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/pathfinder/internal/catalog"
	"github.com/abhisek/pathfinder/internal/scoring"
)

// Summary holds a completed assessment and the run it came from.
type Summary struct {
	SessionID      string         `json:"session_id" yaml:"session_id"`
	CatalogVersion string         `json:"catalog_version" yaml:"catalog_version"`
	StartedAt      time.Time      `json:"started_at" yaml:"started_at"`
	CompletedAt    time.Time      `json:"completed_at" yaml:"completed_at"`
	Answered       int            `json:"answered" yaml:"answered"`
	Total          int            `json:"total" yaml:"total"`
	Report         scoring.Report `json:"report" yaml:"report"`
}

// Duration returns the time between start and completion.
func (s Summary) Duration() time.Duration {
	if s.CompletedAt.Before(s.StartedAt) {
		return 0
	}
	return s.CompletedAt.Sub(s.StartedAt)
}

// Evaluate scores a response set outside an interactive session. Answered
// counts only responses the engine scores: a known question and an in-range
// value.
func Evaluate(c *catalog.Catalog, scorer Scorer, responses *ResponseSet, now time.Time) Summary {
	answered := 0
	for _, r := range responses.List() {
		if q, ok := c.Question(r.QuestionID); ok && q.ValidValue(r.Value) {
			answered++
		}
	}
	return Summary{
		SessionID:      uuid.New().String(),
		CatalogVersion: c.Version(),
		StartedAt:      now,
		CompletedAt:    now,
		Answered:       answered,
		Total:          c.Len(),
		Report:         scorer.Compute(responses.List()),
	}
}
