package app

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pathfinder/internal/catalog"
	"github.com/abhisek/pathfinder/internal/router"
	"github.com/abhisek/pathfinder/internal/scoring"
	"github.com/abhisek/pathfinder/internal/session"
)

func testModel(t *testing.T) (AppModel, *session.Session) {
	t.Helper()
	c, err := catalog.New("test/1", []catalog.Question{
		{ID: "p1", Section: catalog.SectionPsychometric, Type: catalog.TypeScale, Prompt: "I notice how others feel."},
		{ID: "t1", Section: catalog.SectionTechnical, Type: catalog.TypeChoice, Prompt: "Pick one.",
			Options: []string{"a", "b"}},
		{ID: "w1", Section: catalog.SectionWISCAR, Type: catalog.TypeScale, Prompt: "I want this.", Category: "will"},
	})
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	sess := session.New(c, scoring.New(c), nil)
	now := func() time.Time { return time.Date(2024, 6, 9, 14, 0, 0, 0, time.UTC) }
	m := newAppModel(Options{Session: sess, ExportDir: t.TempDir(), Now: now})
	model, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return model.(AppModel), sess
}

// send delivers msg and then any screen navigation it produced.
func send(m AppModel, msg tea.Msg) AppModel {
	model, cmd := m.Update(msg)
	m = model.(AppModel)
	if cmd == nil {
		return m
	}
	switch nav := cmd().(type) {
	case router.ReplaceScreenMsg, router.PushScreenMsg, router.PopScreenMsg:
		model, _ = m.Update(nav)
		m = model.(AppModel)
	}
	return m
}

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func enter() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func TestAppModel_StartsOnIntro(t *testing.T) {
	m, _ := testModel(t)
	if got := m.router.Active().Title(); got != "Welcome" {
		t.Errorf("active = %q, want Welcome", got)
	}
	if !strings.Contains(m.render(), "Pathfinder") {
		t.Error("expected app name in header")
	}
}

func TestAppModel_FullAssessment(t *testing.T) {
	m, sess := testModel(t)

	m = send(m, enter())
	if got := m.router.Active().Title(); got != "Psychometric Assessment" {
		t.Fatalf("active = %q, want Psychometric Assessment", got)
	}
	if !strings.Contains(m.render(), "0/3 answered") {
		t.Error("expected answered count in header")
	}

	m = send(m, key('4'))
	m = send(m, enter())
	m = send(m, key('2'))
	m = send(m, enter())
	m = send(m, key('5'))
	m = send(m, enter())

	if got := m.router.Active().Title(); got != "Your Results" {
		t.Fatalf("active = %q, want Your Results", got)
	}
	if m.router.Depth() != 1 {
		t.Errorf("depth = %d, want 1", m.router.Depth())
	}
	if sess.Phase() != session.PhaseResults {
		t.Errorf("Phase = %v, want results", sess.Phase())
	}

	m = send(m, key('r'))
	if got := m.router.Active().Title(); got != "Welcome" {
		t.Errorf("active after retake = %q, want Welcome", got)
	}
	if len(sess.Responses()) != 0 {
		t.Error("expected retake to discard responses")
	}
}

func TestAppModel_CtrlCQuits(t *testing.T) {
	m, _ := testModel(t)
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected a command on ctrl+c")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestAppModel_EscReachesQuestionScreen(t *testing.T) {
	m, _ := testModel(t)
	m = send(m, enter())
	m = send(m, tea.KeyPressMsg{Code: tea.KeyEscape})

	if !strings.Contains(m.render(), "Leave the assessment?") {
		t.Error("expected esc to open the leave confirmation")
	}
}

func TestAppModel_TooSmall(t *testing.T) {
	m, _ := testModel(t)
	model, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	if !strings.Contains(model.(AppModel).render(), "Terminal too small") {
		t.Error("expected the minimum size message")
	}
}

func TestRun_RequiresSession(t *testing.T) {
	if err := Run(Options{}); err == nil {
		t.Error("expected an error without a session")
	}
}
