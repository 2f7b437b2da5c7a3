package theme

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathfinder/internal/scoring"
)

// Color palette
var (
	Primary   = lipgloss.Color("#6366F1") // Indigo
	Secondary = lipgloss.Color("#0EA5E9") // Sky
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#10B981") // Emerald
	Warning   = lipgloss.Color("#EAB308") // Yellow
	Error     = lipgloss.Color("#EF4444") // Red
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Heading = lipgloss.NewStyle().
		Bold(true).
		Foreground(Secondary)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Disabled = lipgloss.NewStyle().
			Foreground(TextDim)

	Failure = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	Confirmed = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)
)

// Components
var (
	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Foreground(TextDim).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)

// LevelColor maps a score level onto its bar color.
func LevelColor(l scoring.Level) lipgloss.Style {
	switch l {
	case scoring.LevelStrong:
		return lipgloss.NewStyle().Background(Success)
	case scoring.LevelModerate:
		return lipgloss.NewStyle().Background(Warning)
	default:
		return lipgloss.NewStyle().Background(Error)
	}
}

// RecommendationStyle returns the badge style for a verdict.
func RecommendationStyle(r scoring.Recommendation) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true).Padding(0, 2).Foreground(BgDark)
	switch r {
	case scoring.RecommendYes:
		return base.Background(Success)
	case scoring.RecommendMaybe:
		return base.Background(Warning)
	default:
		return base.Background(Error)
	}
}
