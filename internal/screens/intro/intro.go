package intro

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathfinder/internal/catalog"
	"github.com/abhisek/pathfinder/internal/router"
	"github.com/abhisek/pathfinder/internal/screen"
	"github.com/abhisek/pathfinder/internal/session"
	"github.com/abhisek/pathfinder/internal/ui/components"
	"github.com/abhisek/pathfinder/internal/ui/layout"
	"github.com/abhisek/pathfinder/internal/ui/theme"
)

const (
	heading  = "Should I Become an EQ Assessor?"
	tagline  = "Pathfinder Series Assessment"
	roleText = "Discover your potential as an Emotional Intelligence professional. " +
		"EQ Assessors measure, interpret and explain emotional intelligence, helping people " +
		"grow their interpersonal skills, leadership and performance."
)

type sectionCard struct {
	title string
	body  string
}

var sectionCards = []sectionCard{
	{
		title: "Psychometric Analysis",
		body:  "Personality compatibility, empathy levels and motivation for EQ assessment work.",
	},
	{
		title: "Technical Aptitude",
		body:  "Knowledge of EQ concepts, assessment tools and data interpretation.",
	},
	{
		title: "WISCAR Framework",
		body:  "Will, Interest, Skill, Cognitive readiness, Ability to learn and Real-world alignment.",
	},
}

// IntroScreen introduces the assessment and starts it.
type IntroScreen struct {
	sess      *session.Session
	questions func() screen.Screen
	now       func() time.Time
	menu      components.Menu
}

var _ screen.Screen = (*IntroScreen)(nil)
var _ screen.KeyHintProvider = (*IntroScreen)(nil)

// New creates the intro screen. Choosing Start Assessment starts sess and
// replaces this screen with the one built by questions.
func New(sess *session.Session, questions func() screen.Screen, now func() time.Time) *IntroScreen {
	if now == nil {
		now = time.Now
	}
	s := &IntroScreen{sess: sess, questions: questions, now: now}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "Start Assessment", Action: s.start},
		{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }},
	})
	return s
}

func (s *IntroScreen) start() tea.Cmd {
	s.sess.Start(s.now())
	next := s.questions()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *IntroScreen) Init() tea.Cmd {
	return nil
}

func (s *IntroScreen) Title() string {
	return "Welcome"
}

func (s *IntroScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *IntroScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *IntroScreen) View(width, height int) string {
	// height is the content area; add back the header and footer.
	compact := layout.IsCompactHeight(height + 6)
	cw := min(width-4, 96)

	var sections []string

	sections = append(sections, theme.Title.Width(cw).Render(heading))
	sections = append(sections, theme.Subtitle.Width(cw).Render(tagline))

	if !compact {
		sections = append(sections, "", theme.Body.Width(cw).Align(lipgloss.Center).Render(roleText))
	}

	sections = append(sections, "", renderCards(cw, compact))

	if !compact {
		sections = append(sections, "", renderExpectations(s.sess.Catalog(), cw))
	}

	sections = append(sections, "", lipgloss.PlaceHorizontal(cw, lipgloss.Center, s.menu.View()))

	content := strings.Join(sections, "\n")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, content)
}

func renderCards(width int, compact bool) string {
	cardWidth := width/len(sectionCards) - 1
	style := theme.Card.Width(cardWidth)
	if compact {
		style = style.Padding(0, 1)
	}

	cards := make([]string, 0, len(sectionCards))
	for _, c := range sectionCards {
		body := theme.Heading.Render(c.title) + "\n" + theme.Hint.Render(c.body)
		cards = append(cards, style.Render(body))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func renderExpectations(c *catalog.Catalog, width int) string {
	counts := make([]string, 0, 3)
	for _, sec := range catalog.AllSections() {
		n := len(c.BySection(sec))
		if n == 0 {
			continue
		}
		counts = append(counts, fmt.Sprintf("%d %s", n, sec.DisplayName()))
	}

	lines := []string{
		theme.Heading.Render("What to Expect"),
		fmt.Sprintf("• %d questions: %s", c.Len(), strings.Join(counts, ", ")),
		"• Self-assessment statements and workplace scenarios",
		"• About 15-20 minutes, results shown immediately",
		"• Career matches, insights and next steps you can export",
	}
	return theme.Body.Width(width).Render(strings.Join(lines, "\n"))
}
