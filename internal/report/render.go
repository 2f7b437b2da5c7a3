package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/template"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/pathfinder/internal/scoring"
	"github.com/abhisek/pathfinder/internal/session"
)

// DefaultTopCareers is how many career paths are shown when Options leaves
// TopCareers unset.
const DefaultTopCareers = 3

// Options controls rendering.
type Options struct {
	Format     Format
	TopCareers int
}

func (o Options) topCareers() int {
	if o.TopCareers <= 0 {
		return DefaultTopCareers
	}
	return o.TopCareers
}

// Render writes the summary to w in the requested format.
func Render(w io.Writer, sum session.Summary, opts Options) error {
	doc := newDocument(sum, opts.topCareers())
	switch opts.Format {
	case FormatText:
		return textTmpl.Execute(w, doc)
	case FormatMarkdown, "":
		return markdownTmpl.Execute(w, doc)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown export format %q", opts.Format)
}

type scoreLine struct {
	Name  string `json:"name" yaml:"name"`
	Score int    `json:"score" yaml:"score"`
	Level string `json:"level" yaml:"level"`
}

// document is the exported shape. JSON and YAML encode it directly; the
// text templates read the same fields.
type document struct {
	SessionID       string               `json:"session_id" yaml:"session_id"`
	CatalogVersion  string               `json:"catalog_version" yaml:"catalog_version"`
	CompletedAt     time.Time            `json:"completed_at" yaml:"completed_at"`
	DurationSeconds int                  `json:"duration_seconds" yaml:"duration_seconds"`
	Answered        int                  `json:"answered" yaml:"answered"`
	Total           int                  `json:"total" yaml:"total"`
	Recommendation  string               `json:"recommendation" yaml:"recommendation"`
	Headline        string               `json:"headline" yaml:"headline"`
	Overall         int                  `json:"overall" yaml:"overall"`
	Sections        []scoreLine          `json:"sections" yaml:"sections"`
	WISCAR          []scoreLine          `json:"wiscar" yaml:"wiscar"`
	CareerPaths     []scoring.CareerPath `json:"career_paths" yaml:"career_paths"`
	Insights        []string             `json:"insights" yaml:"insights"`
	NextSteps       scoring.NextSteps    `json:"next_steps" yaml:"next_steps"`
}

func newDocument(sum session.Summary, top int) document {
	r := sum.Report
	doc := document{
		SessionID:       sum.SessionID,
		CatalogVersion:  sum.CatalogVersion,
		CompletedAt:     sum.CompletedAt.UTC(),
		DurationSeconds: int(sum.Duration().Seconds()),
		Answered:        sum.Answered,
		Total:           sum.Total,
		Recommendation:  string(r.Recommendation),
		Headline:        r.Recommendation.DisplayName(),
		Overall:         r.Overall,
		Sections: []scoreLine{
			line("Psychometric Compatibility", r.Psychometric),
			line("Technical Readiness", r.Technical),
		},
		CareerPaths: r.TopCareers(top),
		Insights:    r.Insights,
		NextSteps:   r.NextSteps,
	}
	for _, d := range scoring.AllDimensions() {
		doc.WISCAR = append(doc.WISCAR, line(d.DisplayName(), r.Profile.Get(d)))
	}
	return doc
}

func line(name string, score int) scoreLine {
	return scoreLine{Name: name, Score: score, Level: scoring.LevelFor(score).String()}
}

var funcs = template.FuncMap{
	"join": strings.Join,
	"pad": func(s string, n int) string {
		if len(s) >= n {
			return s
		}
		return s + strings.Repeat(" ", n-len(s))
	},
	"inc": func(i int) int { return i + 1 },
	"date": func(t time.Time) string {
		if t.IsZero() {
			return "-"
		}
		return t.Format("2006-01-02 15:04 MST")
	},
	"rule": func(n int) string { return strings.Repeat("─", n) },
}

var markdownTmpl = template.Must(template.New("markdown").Funcs(funcs).Parse(`# EQ Assessor Evaluation Results

**{{.Headline}}** | Overall score: **{{.Overall}}%**

Answered {{.Answered}} of {{.Total}} questions. Completed {{date .CompletedAt}}.

## Core Assessment Scores

| Area | Score | Level |
|---|---|---|
{{range .Sections}}| {{.Name}} | {{.Score}}% | {{.Level}} |
{{end}}
## WISCAR Framework Analysis

| Dimension | Score | Level |
|---|---|---|
{{range .WISCAR}}| {{.Name}} | {{.Score}}% | {{.Level}} |
{{end}}
## Recommended Career Paths
{{range $i, $p := .CareerPaths}}
{{inc $i}}. **{{$p.Title}}** ({{$p.Match}}% match)
   {{$p.Description}}
   Skills: {{join $p.Skills ", "}}
{{end}}
## Personalized Insights
{{range .Insights}}
- {{.}}{{end}}
{{if .NextSteps.Title}}
## Next Steps: {{.NextSteps.Title}}
{{range .NextSteps.Items}}
- {{.}}{{end}}
{{end}}`))

var textTmpl = template.Must(template.New("text").Funcs(funcs).Parse(`EQ Assessor Evaluation Results
{{rule 40}}
{{.Headline}}
Overall score: {{.Overall}}%
Answered {{.Answered}}/{{.Total}}

Core scores
{{range .Sections}}  {{pad .Name 28}} {{printf "%3d" .Score}}%
{{end}}
WISCAR
{{range .WISCAR}}  {{pad .Name 28}} {{printf "%3d" .Score}}%
{{end}}
Career paths
{{range $i, $p := .CareerPaths}}  {{inc $i}}. {{pad $p.Title 38}} {{printf "%3d" $p.Match}}% match
     {{join $p.Skills ", "}}
{{end}}
Insights
{{range .Insights}}  * {{.}}
{{end}}{{if .NextSteps.Title}}
{{.NextSteps.Title}}
{{range .NextSteps.Items}}  * {{.}}
{{end}}{{end}}`))
