package scoring

import "fmt"

// Metric names a single score on a report. Insight rules and career paths
// refer to scores through metrics.
type Metric string

const (
	MetricPsychometric Metric = "psychometric"
	MetricTechnical    Metric = "technical"
	MetricOverall      Metric = "overall"
)

// DimensionMetric returns the metric for a competency dimension.
func DimensionMetric(d Dimension) Metric {
	return Metric(d.Tag())
}

// ParseMetric validates a metric name.
func ParseMetric(s string) (Metric, error) {
	switch Metric(s) {
	case MetricPsychometric, MetricTechnical, MetricOverall:
		return Metric(s), nil
	}
	if _, ok := DimensionFromCategory(s); ok {
		return Metric(s), nil
	}
	return "", fmt.Errorf("unknown metric %q", s)
}

// Level is a coarse score band used for colouring and summaries.
type Level int

const (
	LevelWeak Level = iota
	LevelModerate
	LevelStrong
)

const (
	strongThreshold   = 80
	moderateThreshold = 60
)

// LevelFor returns the band a score falls in.
func LevelFor(score int) Level {
	switch {
	case score >= strongThreshold:
		return LevelStrong
	case score >= moderateThreshold:
		return LevelModerate
	default:
		return LevelWeak
	}
}

func (l Level) String() string {
	switch l {
	case LevelStrong:
		return "strong"
	case LevelModerate:
		return "moderate"
	default:
		return "weak"
	}
}
