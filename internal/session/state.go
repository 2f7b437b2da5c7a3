package session

// Phase represents the current phase of an assessment.
type Phase int

const (
	PhaseIntro     Phase = iota // Not started, or restarted
	PhaseQuestions              // Answering questions
	PhaseResults                // Completed, report available
)

func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhaseQuestions:
		return "questions"
	case PhaseResults:
		return "results"
	default:
		return "unknown"
	}
}

// Progress describes how far through the catalog a session is.
type Progress struct {
	// Number is the 1-based position of the current question.
	Number int
	Total  int
	// Answered counts distinct questions with a response.
	Answered int
}

// Fraction returns Number/Total in [0, 1].
func (p Progress) Fraction() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Number) / float64(p.Total)
}

// Percent returns the fraction as a whole percentage.
func (p Progress) Percent() int {
	return int(p.Fraction()*100 + 0.5)
}
