package scoring

import (
	"math"

	"github.com/abhisek/pathfinder/internal/catalog"
)

// Response is one answer. Value is 1-5 for scale questions and the 1-based
// option index for choice and scenario questions.
type Response struct {
	QuestionID string          `json:"question" yaml:"question"`
	Value      int             `json:"value" yaml:"value"`
	Section    catalog.Section `json:"section,omitempty" yaml:"section,omitempty"`
}

// Profile holds the six WISCAR dimension scores, each 0-100.
type Profile struct {
	Will      int `json:"will" yaml:"will"`
	Interest  int `json:"interest" yaml:"interest"`
	Skill     int `json:"skill" yaml:"skill"`
	Cognitive int `json:"cognitive" yaml:"cognitive"`
	Ability   int `json:"ability" yaml:"ability"`
	RealWorld int `json:"realWorld" yaml:"realWorld"`
}

// Get returns the score of one dimension.
func (p Profile) Get(d Dimension) int {
	switch d {
	case DimWill:
		return p.Will
	case DimInterest:
		return p.Interest
	case DimSkill:
		return p.Skill
	case DimCognitive:
		return p.Cognitive
	case DimAbility:
		return p.Ability
	case DimRealWorld:
		return p.RealWorld
	default:
		return 0
	}
}

func (p *Profile) set(d Dimension, v int) {
	switch d {
	case DimWill:
		p.Will = v
	case DimInterest:
		p.Interest = v
	case DimSkill:
		p.Skill = v
	case DimCognitive:
		p.Cognitive = v
	case DimAbility:
		p.Ability = v
	case DimRealWorld:
		p.RealWorld = v
	}
}

// Mean returns the unrounded mean of all six dimensions.
func (p Profile) Mean() float64 {
	sum := 0
	for _, d := range AllDimensions() {
		sum += p.Get(d)
	}
	return float64(sum) / float64(len(AllDimensions()))
}

// Scores looks up a metric value.
type Scores interface {
	Score(m Metric) int
}

// Report is the immutable result of scoring a completed assessment.
type Report struct {
	Psychometric   int            `json:"psychometric" yaml:"psychometric"`
	Technical      int            `json:"technical" yaml:"technical"`
	Profile        Profile        `json:"wiscar" yaml:"wiscar"`
	Overall        int            `json:"overall" yaml:"overall"`
	Recommendation Recommendation `json:"recommendation" yaml:"recommendation"`
	Insights       []string       `json:"insights" yaml:"insights"`
	CareerPaths    []CareerPath   `json:"career_paths" yaml:"career_paths"`
	NextSteps      NextSteps      `json:"next_steps" yaml:"next_steps"`
}

// Score implements Scores. Unknown metrics score 0.
func (r Report) Score(m Metric) int {
	switch m {
	case MetricPsychometric:
		return r.Psychometric
	case MetricTechnical:
		return r.Technical
	case MetricOverall:
		return r.Overall
	}
	if d, ok := DimensionFromCategory(string(m)); ok {
		return r.Profile.Get(d)
	}
	return 0
}

// TopCareers returns at most n career paths from the head of the ranking.
func (r Report) TopCareers(n int) []CareerPath {
	if n < 0 || n > len(r.CareerPaths) {
		n = len(r.CareerPaths)
	}
	return r.CareerPaths[:n]
}

// Option configures an Engine.
type Option func(*Engine)

// WithInsightPolicy replaces the insight rules.
func WithInsightPolicy(p InsightPolicy) Option {
	return func(e *Engine) { e.insights = p }
}

// WithCareerCatalog replaces the career paths. An empty catalog is ignored
// so reports always carry at least one path.
func WithCareerCatalog(c CareerCatalog) Option {
	return func(e *Engine) {
		if len(c) > 0 {
			e.careers = c
		}
	}
}

// WithNextSteps replaces the next-step guidance table.
func WithNextSteps(t NextStepsTable) Option {
	return func(e *Engine) { e.nextSteps = t }
}

// Engine scores responses against a question catalog. It holds no mutable
// state and is safe for concurrent use.
type Engine struct {
	catalog   *catalog.Catalog
	insights  InsightPolicy
	careers   CareerCatalog
	nextSteps NextStepsTable
}

// New creates an engine for the given catalog with default policies.
func New(c *catalog.Catalog, opts ...Option) *Engine {
	e := &Engine{
		catalog:   c,
		insights:  DefaultInsightPolicy(),
		careers:   DefaultCareerCatalog(),
		nextSteps: DefaultNextSteps(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Catalog returns the catalog the engine scores against.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Compute builds the full report for a response list.
func (e *Engine) Compute(responses []Response) Report {
	answers := latestAnswers(e.catalog, responses)

	r := Report{
		Psychometric: sectionScore(e.catalog, answers, catalog.SectionPsychometric),
		Technical:    sectionScore(e.catalog, answers, catalog.SectionTechnical),
		Profile:      buildProfile(e.catalog, answers),
	}
	r.Overall = Overall(r.Psychometric, r.Technical, r.Profile)
	r.Recommendation = Recommend(r.Overall, r.Psychometric, r.Technical)
	r.Insights = e.insights.Evaluate(r)
	r.CareerPaths = e.careers.Rank(r)
	r.NextSteps = e.nextSteps.For(r.Recommendation)
	return r
}

// ComputeReport scores responses with the default policies.
func ComputeReport(c *catalog.Catalog, responses []Response) Report {
	return New(c).Compute(responses)
}

// SectionScore returns the weighted 0-100 score of one section.
func SectionScore(c *catalog.Catalog, responses []Response, s catalog.Section) int {
	return sectionScore(c, latestAnswers(c, responses), s)
}

// BuildProfile returns the WISCAR profile for the responses.
func BuildProfile(c *catalog.Catalog, responses []Response) Profile {
	return buildProfile(c, latestAnswers(c, responses))
}

// Overall blends the section scores and the profile mean.
func Overall(psychometric, technical int, p Profile) int {
	return round(float64(psychometric)*0.4 + float64(technical)*0.3 + p.Mean()*0.3)
}

// latestAnswers keeps the last response per known question ID. An
// out-of-range last response leaves the question unanswered.
func latestAnswers(c *catalog.Catalog, responses []Response) map[string]int {
	answers := make(map[string]int, len(responses))
	for _, r := range responses {
		q, ok := c.Question(r.QuestionID)
		if !ok {
			continue
		}
		if !q.ValidValue(r.Value) {
			delete(answers, r.QuestionID)
			continue
		}
		answers[r.QuestionID] = r.Value
	}
	return answers
}

// normalize maps a raw value (or mean of raw values) onto 0-100.
func normalize(v float64) float64 {
	return v / catalog.MaxScaleValue * 100
}

// sectionScore walks the section in catalog order so the floating-point sum
// does not depend on response order.
func sectionScore(c *catalog.Catalog, answers map[string]int, s catalog.Section) int {
	var sum, total float64
	for _, q := range c.BySection(s) {
		v, ok := answers[q.ID]
		if !ok {
			continue
		}
		w := q.EffectiveWeight()
		sum += normalize(float64(v)) * w
		total += w
	}
	if total == 0 {
		return 0
	}
	return round(sum / total)
}

func buildProfile(c *catalog.Catalog, answers map[string]int) Profile {
	var sums, counts [6]int
	for _, q := range c.BySection(catalog.SectionWISCAR) {
		d, ok := DimensionFromCategory(q.Category)
		if !ok {
			continue
		}
		v, ok := answers[q.ID]
		if !ok {
			continue
		}
		sums[d] += v
		counts[d]++
	}

	var p Profile
	for _, d := range AllDimensions() {
		if counts[d] == 0 {
			continue
		}
		mean := float64(sums[d]) / float64(counts[d])
		p.set(d, round(normalize(mean)))
	}
	return p
}

// round rounds half up. Every input is non-negative.
func round(x float64) int {
	return int(math.Floor(x + 0.5))
}
