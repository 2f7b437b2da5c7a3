package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathfinder/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
	// Fill overrides the filled segment style. The zero value uses the
	// theme's secondary color.
	Fill lipgloss.Style
}

// NewProgressBar creates a new progress bar. percent is a fraction in [0,1].
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
		Fill:        lipgloss.NewStyle().Background(theme.Secondary),
	}
}

// NewScoreBar creates a bar for a 0-100 score, colored by its level.
func NewScoreBar(label string, score int, fill lipgloss.Style, width int) ProgressBar {
	p := NewProgressBar(label, float64(score)/100, true, width)
	p.Fill = fill
	return p
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 0
	if p.ShowPercent {
		percentWidth = 6 // "  100%"
	}

	barWidth := max(p.Width-labelWidth-percentWidth, 4)
	filled := min(max(int(float64(barWidth)*p.Percent), 0), barWidth)
	empty := barWidth - filled

	result += p.Fill.Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", empty))

	if p.ShowPercent {
		result += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", int(p.Percent*100+0.5)))
	}

	return result
}
