package results

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathfinder/internal/scoring"
	"github.com/abhisek/pathfinder/internal/ui/components"
	"github.com/abhisek/pathfinder/internal/ui/theme"
)

// renderReport renders the whole report; View windows it to the screen.
func (s *ResultsScreen) renderReport(width int) string {
	r := s.summary.Report
	cw := min(width-4, 90)
	center := func(str string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, str)
	}

	var b strings.Builder

	// Verdict.
	b.WriteString(center(theme.RecommendationStyle(r.Recommendation).Render(r.Recommendation.DisplayName())))
	b.WriteString("\n\n")
	b.WriteString(center(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("Overall Score: %d%%", r.Overall))))
	b.WriteString("\n")
	d := s.summary.Duration()
	b.WriteString(center(theme.Hint.Render(fmt.Sprintf("%d of %d answered in %d:%02d",
		s.summary.Answered, s.summary.Total, int(d.Minutes()), int(d.Seconds())%60))))
	b.WriteString("\n\n")

	// Scores.
	b.WriteString(center(section("Scores", cw)))
	b.WriteString(center(scoreBox([]scoreRow{
		{"Psychometric Compatibility", r.Psychometric},
		{"Technical Readiness", r.Technical},
	}, cw)))
	b.WriteString("\n\n")

	b.WriteString(center(section("WISCAR Analysis", cw)))
	rows := make([]scoreRow, 0, len(scoring.AllDimensions()))
	for _, dim := range scoring.AllDimensions() {
		rows = append(rows, scoreRow{dim.DisplayName(), r.Profile.Get(dim)})
	}
	b.WriteString(center(scoreBox(rows, cw)))
	b.WriteString("\n\n")

	// Careers.
	b.WriteString(center(section("Career Paths", cw)))
	var careers strings.Builder
	for i, c := range r.TopCareers(s.opts.TopCareers) {
		if i > 0 {
			careers.WriteString("\n\n")
		}
		careers.WriteString(theme.Heading.Render(fmt.Sprintf("%d. %s", i+1, c.Title)))
		careers.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("  %d%% match", c.Match)))
		careers.WriteString("\n")
		careers.WriteString(theme.Body.Width(cw).Render(c.Description))
		if len(c.Skills) > 0 {
			careers.WriteString("\n")
			careers.WriteString(theme.Hint.Render("Skills: " + strings.Join(c.Skills, ", ")))
		}
	}
	b.WriteString(center(lipgloss.NewStyle().Width(cw).Render(careers.String())))
	b.WriteString("\n\n")

	// Insights.
	if len(r.Insights) > 0 {
		b.WriteString(center(section("Insights", cw)))
		b.WriteString(center(bullets(r.Insights, cw)))
		b.WriteString("\n\n")
	}

	// Next steps.
	b.WriteString(center(section("Next Steps: "+r.NextSteps.Title, cw)))
	b.WriteString(center(bullets(r.NextSteps.Items, cw)))

	return b.String()
}

type scoreRow struct {
	label string
	score int
}

func scoreBox(rows []scoreRow, width int) string {
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		label := fmt.Sprintf("%-28s", row.label)
		fill := theme.LevelColor(scoring.LevelFor(row.score))
		lines = append(lines, components.NewScoreBar(label, row.score, fill, width).View())
	}
	return strings.Join(lines, "\n")
}

func section(title string, width int) string {
	return theme.Heading.Render(title) + "\n" +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width)) + "\n"
}

func bullets(items []string, width int) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(theme.Body.Width(width).Render("• " + item))
	}
	return b.String()
}

// renderStatus renders the export prompt or the last export result.
func (s *ResultsScreen) renderStatus(width int) string {
	switch {
	case s.exporting:
		prompt := theme.Heading.Render(fmt.Sprintf("Export as %s to:", s.opts.ExportFormat)) + "\n" + s.input.View()
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Card.Render(prompt))
	case s.status != "":
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Confirmed.Render("✓ "+s.status))
	}
	return ""
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press r to start again.", errMsg))
}
