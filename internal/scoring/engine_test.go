package scoring

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/abhisek/pathfinder/internal/catalog"
)

// uniform answers every question with v, capped at the question's option count.
func uniform(v int) []Response {
	var out []Response
	for _, q := range catalog.Default().Questions() {
		value := v
		if n := q.AnswerCount(); value > n {
			value = n
		}
		out = append(out, Response{QuestionID: q.ID, Value: value, Section: q.Section})
	}
	return out
}

func TestComputeReport_Empty(t *testing.T) {
	r := ComputeReport(catalog.Default(), nil)

	if r.Psychometric != 0 || r.Technical != 0 || r.Overall != 0 {
		t.Errorf("scores = %d/%d/%d, want all 0", r.Psychometric, r.Technical, r.Overall)
	}
	if r.Profile != (Profile{}) {
		t.Errorf("profile = %+v, want zero", r.Profile)
	}
	if r.Recommendation != RecommendNo {
		t.Errorf("recommendation = %q, want no", r.Recommendation)
	}
	if len(r.Insights) != 2 {
		t.Errorf("got %d insights, want 2: %v", len(r.Insights), r.Insights)
	}
	if len(r.CareerPaths) != 4 {
		t.Fatalf("got %d career paths, want 4", len(r.CareerPaths))
	}
	for i, want := range DefaultCareerCatalog() {
		if r.CareerPaths[i].Title != want.Title {
			t.Errorf("path %d = %q, want %q", i, r.CareerPaths[i].Title, want.Title)
		}
		if r.CareerPaths[i].Match != 0 {
			t.Errorf("path %q match = %d, want 0", want.Title, r.CareerPaths[i].Match)
		}
	}
	if r.NextSteps.Title != "Alternative Paths" {
		t.Errorf("next steps = %q, want Alternative Paths", r.NextSteps.Title)
	}
}

func TestComputeReport_MaxAnswers(t *testing.T) {
	r := ComputeReport(catalog.Default(), uniform(5))

	// Choice and scenario questions have four options, so they top out at 80.
	if r.Psychometric != 97 {
		t.Errorf("psychometric = %d, want 97", r.Psychometric)
	}
	if r.Technical != 83 {
		t.Errorf("technical = %d, want 83", r.Technical)
	}
	want := Profile{Will: 100, Interest: 100, Skill: 100, Cognitive: 100, Ability: 100, RealWorld: 80}
	if r.Profile != want {
		t.Errorf("profile = %+v, want %+v", r.Profile, want)
	}
	if r.Overall != 93 {
		t.Errorf("overall = %d, want 93", r.Overall)
	}
	if r.Recommendation != RecommendYes {
		t.Errorf("recommendation = %q, want yes", r.Recommendation)
	}
	if len(r.Insights) != 5 {
		t.Errorf("got %d insights, want 5", len(r.Insights))
	}

	// Organizational Psychologist and HR L&D tie at 97 and keep catalog order.
	wantOrder := []string{
		"Organizational Psychologist",
		"HR Learning & Development Specialist",
		"EQ Assessor",
		"Executive Coach",
	}
	wantMatch := []int{97, 97, 93, 90}
	for i, p := range r.CareerPaths {
		if p.Title != wantOrder[i] || p.Match != wantMatch[i] {
			t.Errorf("path %d = %q (%d), want %q (%d)", i, p.Title, p.Match, wantOrder[i], wantMatch[i])
		}
	}
}

func TestComputeReport_UniformBands(t *testing.T) {
	tests := []struct {
		value    int
		score    int
		rec      Recommendation
		insights int
	}{
		{4, 80, RecommendYes, 5},
		{3, 60, RecommendMaybe, 3},
		{2, 40, RecommendNo, 2},
		{1, 20, RecommendNo, 2},
	}
	for _, tt := range tests {
		r := ComputeReport(catalog.Default(), uniform(tt.value))
		if r.Psychometric != tt.score || r.Technical != tt.score || r.Overall != tt.score {
			t.Errorf("value %d: scores = %d/%d/%d, want %d", tt.value, r.Psychometric, r.Technical, r.Overall, tt.score)
		}
		for _, d := range AllDimensions() {
			if got := r.Profile.Get(d); got != tt.score {
				t.Errorf("value %d: %s = %d, want %d", tt.value, d.DisplayName(), got, tt.score)
			}
		}
		if r.Recommendation != tt.rec {
			t.Errorf("value %d: recommendation = %q, want %q", tt.value, r.Recommendation, tt.rec)
		}
		if len(r.Insights) != tt.insights {
			t.Errorf("value %d: got %d insights, want %d", tt.value, len(r.Insights), tt.insights)
		}
	}
}

func TestComputeReport_Deterministic(t *testing.T) {
	responses := uniform(4)
	responses[0].Value = 2
	responses[9].Value = 1
	responses[17].Value = 5

	want := ComputeReport(catalog.Default(), responses)
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		shuffled := append([]Response(nil), responses...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		got := ComputeReport(catalog.Default(), shuffled)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("shuffle %d: report differs\n got %+v\nwant %+v", i, got, want)
		}
	}
}

func TestComputeReport_Bounded(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	qs := catalog.Default().Questions()
	for i := 0; i < 200; i++ {
		var responses []Response
		n := rng.Intn(40)
		for j := 0; j < n; j++ {
			q := qs[rng.Intn(len(qs))]
			responses = append(responses, Response{QuestionID: q.ID, Value: rng.Intn(10) - 2})
		}
		r := ComputeReport(catalog.Default(), responses)
		scores := []int{r.Psychometric, r.Technical, r.Overall}
		for _, d := range AllDimensions() {
			scores = append(scores, r.Profile.Get(d))
		}
		for _, p := range r.CareerPaths {
			scores = append(scores, p.Match)
		}
		for _, s := range scores {
			if s < 0 || s > 100 {
				t.Fatalf("iteration %d: score %d out of range in %+v", i, s, r)
			}
		}
		if len(r.CareerPaths) == 0 || len(r.Insights) == 0 {
			t.Fatalf("iteration %d: empty careers or insights", i)
		}
	}
}

func TestComputeReport_LastResponseWins(t *testing.T) {
	c := catalog.Default()
	once := ComputeReport(c, []Response{{QuestionID: "p1", Value: 5}})
	twice := ComputeReport(c, []Response{{QuestionID: "p1", Value: 1}, {QuestionID: "p1", Value: 5}})
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("duplicate responses changed the report: %+v vs %+v", once, twice)
	}
}

func TestComputeReport_LastResponseWinsWhenOutOfRange(t *testing.T) {
	c := catalog.Default()
	only := ComputeReport(c, []Response{{QuestionID: "p1", Value: 9}})
	both := ComputeReport(c, []Response{{QuestionID: "p1", Value: 5}, {QuestionID: "p1", Value: 9}})
	if !reflect.DeepEqual(only, both) {
		t.Errorf("earlier response survived an out-of-range overwrite: %+v vs %+v", only, both)
	}
	if both.Psychometric != 0 {
		t.Errorf("Psychometric = %d, want 0", both.Psychometric)
	}

	// A later in-range response still counts.
	fixed := ComputeReport(c, []Response{{QuestionID: "p1", Value: 9}, {QuestionID: "p1", Value: 5}})
	if fixed.Psychometric != 100 {
		t.Errorf("Psychometric = %d, want 100", fixed.Psychometric)
	}
}

func TestComputeReport_IgnoresUnknownQuestions(t *testing.T) {
	c := catalog.Default()
	base := uniform(3)
	want := ComputeReport(c, base)
	noisy := append(append([]Response(nil), base...),
		Response{QuestionID: "x99", Value: 5},
		Response{QuestionID: "", Value: 1},
	)
	if got := ComputeReport(c, noisy); !reflect.DeepEqual(got, want) {
		t.Errorf("unknown question changed report")
	}
}

func TestComputeReport_IgnoresOutOfRange(t *testing.T) {
	c := catalog.Default()
	want := ComputeReport(c, nil)
	got := ComputeReport(c, []Response{
		{QuestionID: "p1", Value: 0},
		{QuestionID: "p2", Value: 6},
		{QuestionID: "t1", Value: 5}, // t1 has four options
	})
	if !reflect.DeepEqual(got, want) {
		t.Errorf("out-of-range values were scored: %+v", got)
	}
}

func TestComputeReport_SectionFromCatalog(t *testing.T) {
	// A response's own section label does not move it between sections.
	r := ComputeReport(catalog.Default(), []Response{{QuestionID: "p1", Value: 5, Section: catalog.SectionTechnical}})
	if r.Psychometric != 100 || r.Technical != 0 {
		t.Errorf("scores = %d/%d, want 100/0", r.Psychometric, r.Technical)
	}
}

func TestSectionScore_Weighted(t *testing.T) {
	// p1 (1.2) = 3 -> 60, p2 (1.5) = 5 -> 100: (72 + 150) / 2.7 = 82.2
	got := SectionScore(catalog.Default(), []Response{
		{QuestionID: "p1", Value: 3},
		{QuestionID: "p2", Value: 5},
	}, catalog.SectionPsychometric)
	if got != 82 {
		t.Errorf("SectionScore = %d, want 82", got)
	}
}

func TestSectionScore_Monotonic(t *testing.T) {
	c := catalog.Default()
	base := uniform(3)
	prev := -1
	for v := 1; v <= 5; v++ {
		responses := append([]Response(nil), base...)
		responses[0].Value = v // p1
		got := SectionScore(c, responses, catalog.SectionPsychometric)
		if got < prev {
			t.Errorf("p1=%d: score %d dropped below %d", v, got, prev)
		}
		prev = got
	}
}

func TestSectionScore_DefaultWeight(t *testing.T) {
	c, err := catalog.New("test", []catalog.Question{
		{ID: "a", Section: catalog.SectionPsychometric, Type: catalog.TypeScale, Prompt: "a"},
		{ID: "b", Section: catalog.SectionPsychometric, Type: catalog.TypeScale, Prompt: "b", Weight: 1},
		{ID: "t", Section: catalog.SectionTechnical, Type: catalog.TypeScale, Prompt: "t"},
		{ID: "w", Section: catalog.SectionWISCAR, Type: catalog.TypeScale, Prompt: "w"},
	})
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	// Zero weight counts as 1, so this is a plain mean of 20 and 100.
	got := SectionScore(c, []Response{{QuestionID: "a", Value: 1}, {QuestionID: "b", Value: 5}}, catalog.SectionPsychometric)
	if got != 60 {
		t.Errorf("SectionScore = %d, want 60", got)
	}
}

func TestBuildProfile(t *testing.T) {
	// w1 and w7 are both "will": mean 3.5 -> 70. w2 "interest" alone: 2 -> 40.
	p := BuildProfile(catalog.Default(), []Response{
		{QuestionID: "w1", Value: 3},
		{QuestionID: "w7", Value: 4},
		{QuestionID: "w2", Value: 2},
		{QuestionID: "p1", Value: 5}, // interest-tagged, but not a WISCAR question
	})
	want := Profile{Will: 70, Interest: 40}
	if p != want {
		t.Errorf("BuildProfile = %+v, want %+v", p, want)
	}
}

func TestBuildProfile_UnmatchedCategory(t *testing.T) {
	c, err := catalog.New("test", []catalog.Question{
		{ID: "p", Section: catalog.SectionPsychometric, Type: catalog.TypeScale, Prompt: "p"},
		{ID: "t", Section: catalog.SectionTechnical, Type: catalog.TypeScale, Prompt: "t"},
		{ID: "w", Section: catalog.SectionWISCAR, Type: catalog.TypeScale, Prompt: "w", Category: "Will"},
	})
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	if p := BuildProfile(c, []Response{{QuestionID: "w", Value: 5}}); p != (Profile{}) {
		t.Errorf("case-mismatched category scored: %+v", p)
	}
}

func TestOverall(t *testing.T) {
	p := Profile{Will: 100, Interest: 100, Skill: 100, Cognitive: 100, Ability: 100, RealWorld: 100}
	if got := Overall(100, 100, p); got != 100 {
		t.Errorf("Overall = %d, want 100", got)
	}
	// 50*0.4 + 50*0.3 + (60/6)*0.3 = 20 + 15 + 3 = 38
	if got := Overall(50, 50, Profile{Will: 60}); got != 38 {
		t.Errorf("Overall = %d, want 38", got)
	}
	// The profile mean is not rounded before blending: mean 1/6 * 0.3 = 0.05.
	if got := Overall(1, 1, Profile{Will: 1}); got != 1 {
		t.Errorf("Overall = %d, want 1", got)
	}
}

func TestEngine_Options(t *testing.T) {
	policy := InsightPolicy{{Metric: MetricOverall, Bands: []Band{{Min: 0, Message: "done"}}}}
	careers := CareerCatalog{{Title: "Solo", Inputs: []Metric{MetricPsychometric}}}
	steps := NextStepsTable{RecommendNo: {Title: "Later", Items: []string{"rest"}}}

	e := New(catalog.Default(), WithInsightPolicy(policy), WithCareerCatalog(careers), WithNextSteps(steps))
	r := e.Compute([]Response{{QuestionID: "p1", Value: 5}})

	if !reflect.DeepEqual(r.Insights, []string{"done"}) {
		t.Errorf("insights = %v", r.Insights)
	}
	if len(r.CareerPaths) != 1 || r.CareerPaths[0].Match != 100 {
		t.Errorf("career paths = %+v", r.CareerPaths)
	}
	if r.NextSteps.Title != "Later" {
		t.Errorf("next steps = %+v", r.NextSteps)
	}
}

func TestEngine_EmptyCareerCatalogKeepsDefault(t *testing.T) {
	r := New(catalog.Default(), WithCareerCatalog(nil)).Compute(nil)
	if len(r.CareerPaths) != len(DefaultCareerCatalog()) {
		t.Errorf("got %d career paths, want default catalog", len(r.CareerPaths))
	}
}

func TestReport_TopCareers(t *testing.T) {
	r := ComputeReport(catalog.Default(), uniform(4))
	if got := len(r.TopCareers(3)); got != 3 {
		t.Errorf("TopCareers(3) returned %d", got)
	}
	if got := len(r.TopCareers(10)); got != 4 {
		t.Errorf("TopCareers(10) returned %d", got)
	}
}

func TestReport_Score(t *testing.T) {
	r := Report{Psychometric: 1, Technical: 2, Overall: 3, Profile: Profile{RealWorld: 4}}
	tests := []struct {
		m    Metric
		want int
	}{
		{MetricPsychometric, 1},
		{MetricTechnical, 2},
		{MetricOverall, 3},
		{DimensionMetric(DimRealWorld), 4},
		{Metric("bogus"), 0},
	}
	for _, tt := range tests {
		if got := r.Score(tt.m); got != tt.want {
			t.Errorf("Score(%q) = %d, want %d", tt.m, got, tt.want)
		}
	}
}
