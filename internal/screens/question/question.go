package question

import (
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pathfinder/internal/catalog"
	"github.com/abhisek/pathfinder/internal/router"
	"github.com/abhisek/pathfinder/internal/screen"
	"github.com/abhisek/pathfinder/internal/session"
	"github.com/abhisek/pathfinder/internal/ui/components"
	"github.com/abhisek/pathfinder/internal/ui/layout"
)

// Factories build the screens this one hands over to.
type Factories struct {
	// Results is shown once the last question is confirmed.
	Results func() screen.Screen
	// Intro is shown when the learner abandons the assessment.
	Intro func() screen.Screen
}

// QuestionScreen presents the current question of a running session.
type QuestionScreen struct {
	sess    *session.Session
	next    Factories
	now     func() time.Time
	choices components.ChoiceList
	errMsg  string

	confirmingQuit bool
	done           bool
}

var _ screen.Screen = (*QuestionScreen)(nil)
var _ screen.KeyHintProvider = (*QuestionScreen)(nil)

// New creates the question screen for a started session.
func New(sess *session.Session, next Factories, now func() time.Time) *QuestionScreen {
	if now == nil {
		now = time.Now
	}
	s := &QuestionScreen{sess: sess, next: next, now: now}
	s.load()
	return s
}

// load rebuilds the choice list for the session's current question.
func (s *QuestionScreen) load() {
	q, err := s.sess.Current()
	if err != nil {
		s.errMsg = err.Error()
		return
	}
	s.errMsg = ""
	chosen, _ := s.sess.CurrentAnswer()
	s.choices = components.NewChoiceList(answerLabels(q), chosen)
}

func answerLabels(q catalog.Question) []string {
	if q.Type.HasOptions() {
		return q.Options
	}
	points := catalog.LikertScale()
	labels := make([]string, len(points))
	for i, p := range points {
		labels[i] = p.Label
	}
	return labels
}

func (s *QuestionScreen) Init() tea.Cmd {
	return nil
}

func (s *QuestionScreen) Title() string {
	q, err := s.sess.Current()
	if err != nil {
		return "Assessment"
	}
	return q.Section.DisplayName()
}

func (s *QuestionScreen) KeyHints() []layout.KeyHint {
	if s.confirmingQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave"},
			{Key: "N", Description: "Keep going"},
		}
	}
	next := "Next"
	if s.sess.IsLast() {
		next = "Complete"
	}
	hints := []layout.KeyHint{
		{Key: "↑↓/1-9", Description: "Choose"},
		{Key: "Enter", Description: next},
	}
	if s.sess.CanGoBack() {
		hints = append(hints, layout.KeyHint{Key: "←", Description: "Previous"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Leave"})
}

func (s *QuestionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || s.done {
		return s, nil
	}
	key := kmsg.String()

	if s.confirmingQuit {
		switch key {
		case "y", "Y":
			s.confirmingQuit = false
			return s, s.leave()
		case "n", "N", "esc":
			s.confirmingQuit = false
		}
		return s, nil
	}

	switch key {
	case "esc":
		s.confirmingQuit = true
		return s, nil
	case "enter":
		return s.advance()
	case "backspace", "left", "h":
		if s.sess.CanGoBack() {
			if err := s.sess.Previous(); err != nil {
				s.errMsg = err.Error()
				return s, nil
			}
			s.load()
		}
		return s, nil
	}

	s.choices, _ = s.choices.Update(msg)
	if s.choices.HasChoice() {
		if err := s.sess.Answer(s.choices.Chosen); err != nil {
			s.errMsg = err.Error()
		}
	}
	return s, nil
}

// advance confirms the current answer. Without one it does nothing.
func (s *QuestionScreen) advance() (screen.Screen, tea.Cmd) {
	done, err := s.sess.Next(s.now())
	if errors.Is(err, session.ErrUnanswered) {
		return s, nil
	}
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	if !done {
		s.load()
		return s, nil
	}

	s.done = true
	results := s.next.Results()
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: results}
	}
}

func (s *QuestionScreen) leave() tea.Cmd {
	s.sess.Restart()
	s.done = true
	intro := s.next.Intro()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: intro}
	}
}

func (s *QuestionScreen) View(width, height int) string {
	if s.confirmingQuit {
		return renderQuitConfirm(width, height)
	}
	return s.renderQuestion(width, height)
}
