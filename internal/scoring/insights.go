package scoring

// Band is one threshold of an insight rule.
type Band struct {
	Min     int
	Message string
}

// InsightRule emits the message of the first band whose Min the metric
// reaches. Bands are expected in descending Min order.
type InsightRule struct {
	Metric Metric
	Bands  []Band
}

// InsightPolicy is an ordered list of rules. Each rule contributes at most one
// insight.
type InsightPolicy []InsightRule

// Evaluate returns the insights for the given scores, in rule order.
func (p InsightPolicy) Evaluate(s Scores) []string {
	var out []string
	for _, rule := range p {
		v := s.Score(rule.Metric)
		for _, b := range rule.Bands {
			if v >= b.Min {
				out = append(out, b.Message)
				break
			}
		}
	}
	return out
}

// DefaultInsightPolicy returns the built-in insight rules. The psychometric
// and technical rules end with a zero band, so the result is never empty.
func DefaultInsightPolicy() InsightPolicy {
	return InsightPolicy{
		{
			Metric: MetricPsychometric,
			Bands: []Band{
				{Min: 80, Message: "Your natural empathy and interpersonal awareness are exceptional strengths for EQ assessment work."},
				{Min: 60, Message: "You show good emotional awareness that can be further developed with practice."},
				{Min: 0, Message: "Consider developing your emotional intelligence and interpersonal sensitivity before pursuing this career."},
			},
		},
		{
			Metric: MetricTechnical,
			Bands: []Band{
				{Min: 80, Message: "You have strong technical knowledge of EQ concepts and assessment practices."},
				{Min: 60, Message: "Your foundational knowledge is solid, but additional training in EQ theory would be beneficial."},
				{Min: 0, Message: "You would benefit from formal training in emotional intelligence theory and assessment methods."},
			},
		},
		{
			Metric: DimensionMetric(DimWill),
			Bands: []Band{
				{Min: 80, Message: "Your motivation and persistence suggest you'd thrive in this challenging but rewarding field."},
			},
		},
		{
			Metric: DimensionMetric(DimInterest),
			Bands: []Band{
				{Min: 80, Message: "Your genuine interest in human behavior and psychology is a key asset for this career."},
			},
		},
		{
			Metric: MetricOverall,
			Bands: []Band{
				{Min: 75, Message: "You show excellent potential for success as an EQ Assessor with the right training and experience."},
				{Min: 55, Message: "With focused development in key areas, you could build the skills needed for this career path."},
			},
		},
	}
}
