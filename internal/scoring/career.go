package scoring

import "slices"

// CareerTemplate describes a career path and the metrics its match is
// averaged from.
type CareerTemplate struct {
	Title       string
	Description string
	Skills      []string
	Inputs      []Metric
}

// CareerPath is a ranked career suggestion.
type CareerPath struct {
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Match       int      `json:"match" yaml:"match"`
	Skills      []string `json:"skills" yaml:"skills"`
}

// CareerCatalog is an ordered list of career templates. Order breaks ties
// in the ranking.
type CareerCatalog []CareerTemplate

// DefaultCareerCatalog returns the built-in career paths.
func DefaultCareerCatalog() CareerCatalog {
	return CareerCatalog{
		{
			Title:       "EQ Assessor",
			Description: "Administer and interpret emotional intelligence assessments for individuals and organizations",
			Skills:      []string{"Emotional Intelligence", "Assessment Tools", "Data Interpretation", "Communication"},
			Inputs:      []Metric{MetricOverall},
		},
		{
			Title:       "Organizational Psychologist",
			Description: "Apply psychological principles to improve workplace dynamics and performance",
			Skills:      []string{"Psychology", "Research Methods", "Organizational Behavior", "Consulting"},
			Inputs:      []Metric{MetricOverall, DimensionMetric(DimCognitive)},
		},
		{
			Title:       "Executive Coach",
			Description: "Coach leaders on emotional intelligence and interpersonal effectiveness",
			Skills:      []string{"Coaching", "Leadership Development", "Communication", "Business Acumen"},
			Inputs:      []Metric{DimensionMetric(DimInterest), DimensionMetric(DimRealWorld)},
		},
		{
			Title:       "HR Learning & Development Specialist",
			Description: "Design and implement EQ-focused training programs for organizations",
			Skills:      []string{"Training Design", "HR Knowledge", "Program Management", "Assessment Tools"},
			Inputs:      []Metric{MetricOverall, DimensionMetric(DimSkill)},
		},
	}
}

// Rank computes every template's match and sorts descending by match.
// Equal matches keep catalog order.
func (c CareerCatalog) Rank(s Scores) []CareerPath {
	paths := make([]CareerPath, 0, len(c))
	for _, t := range c {
		paths = append(paths, CareerPath{
			Title:       t.Title,
			Description: t.Description,
			Match:       matchScore(s, t.Inputs),
			Skills:      slices.Clone(t.Skills),
		})
	}
	slices.SortStableFunc(paths, func(a, b CareerPath) int {
		return b.Match - a.Match
	})
	return paths
}

func matchScore(s Scores, inputs []Metric) int {
	if len(inputs) == 0 {
		return 0
	}
	sum := 0
	for _, m := range inputs {
		sum += s.Score(m)
	}
	return round(float64(sum) / float64(len(inputs)))
}
