package results

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/pathfinder/internal/report"
	"github.com/abhisek/pathfinder/internal/router"
	"github.com/abhisek/pathfinder/internal/screen"
	"github.com/abhisek/pathfinder/internal/session"
	"github.com/abhisek/pathfinder/internal/ui/components"
	"github.com/abhisek/pathfinder/internal/ui/layout"
)

// Options controls what the results screen shows and where exports go.
type Options struct {
	TopCareers   int
	ExportDir    string
	ExportFormat report.Format
	Logger       *zap.Logger
}

// ResultsScreen shows the report of a completed session.
type ResultsScreen struct {
	sess   *session.Session
	opts   Options
	intro  func() screen.Screen
	logger *zap.Logger

	summary session.Summary
	errMsg  string
	offset  int

	exporting bool
	input     components.TextInput
	status    string
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates the results screen. Retake restarts sess and replaces this
// screen with the one built by intro.
func New(sess *session.Session, opts Options, intro func() screen.Screen) *ResultsScreen {
	if opts.TopCareers <= 0 {
		opts.TopCareers = report.DefaultTopCareers
	}
	if opts.ExportDir == "" {
		opts.ExportDir = "."
	}
	if opts.ExportFormat == "" {
		opts.ExportFormat = report.FormatMarkdown
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &ResultsScreen{sess: sess, opts: opts, intro: intro, logger: logger}
	sum, err := sess.Summary()
	if err != nil {
		s.errMsg = err.Error()
	}
	s.summary = sum
	return s
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Your Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	if s.exporting {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Save"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "E", Description: "Export"},
		{Key: "R", Description: "Retake"},
		{Key: "Q", Description: "Quit"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if s.exporting {
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	if s.exporting {
		return s.handleExportKey(kmsg)
	}

	switch kmsg.String() {
	case "q", "Q":
		return s, tea.Quit
	case "r", "R":
		s.sess.Restart()
		intro := s.intro()
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: intro}
		}
	case "e", "E":
		if s.errMsg != "" {
			return s, nil
		}
		s.exporting = true
		s.status = ""
		s.input = components.NewTextInput("Export directory", s.opts.ExportDir, 256)
		return s, s.input.Init()
	case "up", "k":
		s.offset = max(s.offset-1, 0)
	case "down", "j":
		s.offset++
	case "pgup":
		s.offset = max(s.offset-10, 0)
	case "pgdown", "space":
		s.offset += 10
	case "home", "g":
		s.offset = 0
	}
	return s, nil
}

func (s *ResultsScreen) handleExportKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.exporting = false
		return s, nil
	case "enter":
		dir := strings.TrimSpace(s.input.Value())
		path, err := report.WriteFile(dir, s.summary, report.Options{
			Format:     s.opts.ExportFormat,
			TopCareers: s.opts.TopCareers,
		})
		if err != nil {
			s.logger.Warn("export failed", zap.String("session_id", s.summary.SessionID), zap.Error(err))
			s.input.Submit(false, err.Error())
			return s, nil
		}
		s.logger.Info("results exported",
			zap.String("session_id", s.summary.SessionID),
			zap.String("path", path),
			zap.String("format", string(s.opts.ExportFormat)),
		)
		s.opts.ExportDir = dir
		s.exporting = false
		s.status = "Saved to " + path
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *ResultsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}

	footer := s.renderStatus(width)
	bodyHeight := max(height-countLines(footer), 1)

	lines := strings.Split(s.renderReport(width), "\n")
	s.offset = min(s.offset, max(len(lines)-bodyHeight, 0))
	end := min(s.offset+bodyHeight, len(lines))
	body := strings.Join(lines[s.offset:end], "\n")

	if footer == "" {
		return body
	}
	return body + "\n" + footer
}

func countLines(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}
