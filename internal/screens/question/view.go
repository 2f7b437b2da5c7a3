package question

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathfinder/internal/catalog"
	"github.com/abhisek/pathfinder/internal/ui/components"
	"github.com/abhisek/pathfinder/internal/ui/theme"
)

// renderQuestion renders the prompt, its answers and navigation.
func (s *QuestionScreen) renderQuestion(width, height int) string {
	q, err := s.sess.Current()
	if err != nil {
		return renderError(width, err.Error())
	}
	progress := s.sess.Progress()
	cw := min(width-4, 90)

	var b strings.Builder

	// Section and position line.
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + q.Section.DisplayName())
	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Question %d of %d", progress.Number, progress.Total))

	infoLine := infoLeft
	if pad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4; pad > 0 {
		infoLine += strings.Repeat(" ", pad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString("  " + components.NewProgressBar("", progress.Fraction(), true, width-6).View())
	b.WriteString("\n\n")

	// Prompt.
	prompt := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Prompt)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, prompt))
	b.WriteString("\n")
	if q.Type == catalog.TypeScenario {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("Choose the response closest to what you would do.")))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Answers, left aligned inside a centered block.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choices.View()))
	b.WriteString("\n")

	// Navigation.
	label := "Next"
	if s.sess.IsLast() {
		label = "Complete Assessment"
	}
	nav := components.NewButton(label, s.choices.HasChoice(), nil).View()
	if s.sess.CanGoBack() {
		nav = theme.ButtonInactive.Render("← Previous") + "  " + nav
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, nav))

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Failure.Render(s.errMsg)))
	}

	return b.String()
}

// renderQuitConfirm renders the leave confirmation dialog.
func renderQuitConfirm(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Leave the assessment?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Your answers will be discarded."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("[Y] Yes, leave"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s", errMsg))
}
