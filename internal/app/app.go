package app

import (
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/pathfinder/internal/report"
	"github.com/abhisek/pathfinder/internal/router"
	"github.com/abhisek/pathfinder/internal/screen"
	"github.com/abhisek/pathfinder/internal/screens/intro"
	"github.com/abhisek/pathfinder/internal/screens/question"
	"github.com/abhisek/pathfinder/internal/screens/results"
	"github.com/abhisek/pathfinder/internal/session"
	"github.com/abhisek/pathfinder/internal/ui/layout"
)

// Options holds the dependencies injected into the TUI.
type Options struct {
	Session      *session.Session
	TopCareers   int
	ExportDir    string
	ExportFormat report.Format
	Logger       *zap.Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	sess   *session.Session
	width  int
	height int
}

// navigator builds the screens of one assessment loop. Screens receive its
// methods as factories so none of them imports another.
type navigator struct {
	opts Options
}

func (n navigator) intro() screen.Screen {
	return intro.New(n.opts.Session, n.questions, n.opts.Now)
}

func (n navigator) questions() screen.Screen {
	return question.New(n.opts.Session, question.Factories{
		Results: n.results,
		Intro:   n.intro,
	}, n.opts.Now)
}

func (n navigator) results() screen.Screen {
	return results.New(n.opts.Session, results.Options{
		TopCareers:   n.opts.TopCareers,
		ExportDir:    n.opts.ExportDir,
		ExportFormat: n.opts.ExportFormat,
		Logger:       n.opts.Logger,
	}, n.intro)
}

// newAppModel creates a new AppModel with the intro screen.
func newAppModel(opts Options) AppModel {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	nav := navigator{opts: opts}
	return AppModel{
		router: router.New(nav.intro()),
		sess:   opts.Session,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render composes the frame for the current terminal size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	var answered, total int
	if m.sess != nil && m.sess.Phase() != session.PhaseIntro {
		p := m.sess.Progress()
		answered, total = p.Answered, p.Total
	}
	header := layout.RenderHeader(title, answered, total, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := max(m.height-headerHeight-footerHeight, 0)

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.Session == nil {
		return fmt.Errorf("run app: no session")
	}
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
