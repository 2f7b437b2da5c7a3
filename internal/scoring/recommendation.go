package scoring

import "fmt"

// Recommendation is the career-fit verdict.
type Recommendation string

const (
	RecommendYes   Recommendation = "yes"
	RecommendMaybe Recommendation = "maybe"
	RecommendNo    Recommendation = "no"
)

// DisplayName returns the headline shown for a recommendation.
func (r Recommendation) DisplayName() string {
	switch r {
	case RecommendYes:
		return "Strongly Recommended"
	case RecommendMaybe:
		return "Conditionally Recommended"
	case RecommendNo:
		return "Alternative Paths Suggested"
	default:
		return "Assessment Complete"
	}
}

// ParseRecommendation validates a recommendation value.
func ParseRecommendation(s string) (Recommendation, error) {
	switch Recommendation(s) {
	case RecommendYes, RecommendMaybe, RecommendNo:
		return Recommendation(s), nil
	}
	return "", fmt.Errorf("unknown recommendation %q", s)
}

// Recommend applies the decision rule. The first matching tier wins.
func Recommend(overall, psychometric, technical int) Recommendation {
	switch {
	case overall >= 75 && psychometric >= 70 && technical >= 60:
		return RecommendYes
	case overall >= 55 && (psychometric >= 60 || technical >= 50):
		return RecommendMaybe
	default:
		return RecommendNo
	}
}

// NextSteps is the follow-up guidance shown with a recommendation.
type NextSteps struct {
	Title string   `json:"title" yaml:"title"`
	Items []string `json:"items" yaml:"items"`
}

// NextStepsTable maps each recommendation to its guidance.
type NextStepsTable map[Recommendation]NextSteps

// DefaultNextSteps returns the built-in guidance table.
func DefaultNextSteps() NextStepsTable {
	return NextStepsTable{
		RecommendYes: {
			Title: "Recommended Actions",
			Items: []string{
				"Pursue EQ certification programs",
				"Practice with EQ assessment tools",
				"Gain supervised assessment experience",
				"Build coaching or consulting skills",
			},
		},
		RecommendMaybe: {
			Title: "Development Areas",
			Items: []string{
				"Strengthen foundational EQ knowledge",
				"Develop interpersonal sensitivity",
				"Practice data interpretation skills",
				"Consider related roles first",
			},
		},
		RecommendNo: {
			Title: "Alternative Paths",
			Items: []string{
				"HR support roles",
				"Basic data analysis",
				"Customer service training",
				"General psychology education",
			},
		},
	}
}

// For returns the guidance for r, or an empty value when the table has none.
func (t NextStepsTable) For(r Recommendation) NextSteps {
	ns, ok := t[r]
	if !ok {
		return NextSteps{}
	}
	return NextSteps{Title: ns.Title, Items: append([]string(nil), ns.Items...)}
}
