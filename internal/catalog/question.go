package catalog

import "fmt"

// Section represents a top-level question grouping.
type Section string

const (
	SectionPsychometric Section = "psychometric"
	SectionTechnical    Section = "technical"
	SectionWISCAR       Section = "wiscar"
)

// AllSections returns all sections in presentation order.
func AllSections() []Section {
	return []Section{
		SectionPsychometric,
		SectionTechnical,
		SectionWISCAR,
	}
}

// DisplayName returns a human-readable name for a section.
func (s Section) DisplayName() string {
	switch s {
	case SectionPsychometric:
		return "Psychometric Assessment"
	case SectionTechnical:
		return "Technical & Aptitude"
	case SectionWISCAR:
		return "WISCAR Framework"
	default:
		return "Assessment"
	}
}

// Valid reports whether s is one of the known sections.
func (s Section) Valid() bool {
	switch s {
	case SectionPsychometric, SectionTechnical, SectionWISCAR:
		return true
	}
	return false
}

// AnswerType describes how a question is answered.
type AnswerType string

const (
	TypeScale    AnswerType = "scale"    // Likert 1-5
	TypeChoice   AnswerType = "choice"   // Pick one option
	TypeScenario AnswerType = "scenario" // Pick one option describing a behavior
)

// ParseAnswerType parses an answer type, accepting the labels used by older
// catalog files ("likert", "multiple-choice").
func ParseAnswerType(s string) (AnswerType, error) {
	switch s {
	case "scale", "likert":
		return TypeScale, nil
	case "choice", "multiple-choice":
		return TypeChoice, nil
	case "scenario":
		return TypeScenario, nil
	}
	return "", fmt.Errorf("unknown answer type %q", s)
}

// HasOptions reports whether answers are an index into the options list.
func (t AnswerType) HasOptions() bool {
	return t == TypeChoice || t == TypeScenario
}

// MaxScaleValue is the top of the Likert scale. Every raw answer value is
// normalized against it, including option indices.
const MaxScaleValue = 5

// ScalePoint is a single labelled point on the Likert scale.
type ScalePoint struct {
	Value int
	Label string
}

// LikertScale returns the five-point agreement scale.
func LikertScale() []ScalePoint {
	return []ScalePoint{
		{Value: 1, Label: "Strongly Disagree"},
		{Value: 2, Label: "Disagree"},
		{Value: 3, Label: "Neutral"},
		{Value: 4, Label: "Agree"},
		{Value: 5, Label: "Strongly Agree"},
	}
}

// Question is an immutable catalog entry.
type Question struct {
	ID       string
	Section  Section
	Type     AnswerType
	Prompt   string
	Options  []string
	Category string  // Free-form tag used for sub-dimension grouping
	Weight   float64 // Zero means unweighted (1.0)
}

// EffectiveWeight returns the weight used for section scoring.
func (q Question) EffectiveWeight() float64 {
	if q.Weight == 0 {
		return 1
	}
	return q.Weight
}

// AnswerCount returns how many distinct answer values the question accepts.
func (q Question) AnswerCount() int {
	if q.Type.HasOptions() {
		return len(q.Options)
	}
	return MaxScaleValue
}

// ValidValue reports whether v is an acceptable raw answer for q.
func (q Question) ValidValue(v int) bool {
	return v >= 1 && v <= q.AnswerCount()
}

// AnswerLabel returns the label shown for a raw answer value, or "" when the
// value is out of range.
func (q Question) AnswerLabel(v int) string {
	if !q.ValidValue(v) {
		return ""
	}
	if q.Type.HasOptions() {
		return q.Options[v-1]
	}
	return LikertScale()[v-1].Label
}
