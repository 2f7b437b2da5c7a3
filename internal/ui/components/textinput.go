package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathfinder/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with the app's styling and a one-line
// status shown after submission.
type TextInput struct {
	Model     textinput.Model
	submitted bool
	ok        bool
	status    string
}

// NewTextInput creates a focused text input prefilled with value.
func NewTextInput(placeholder, value string, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.SetValue(value)
	ti.CursorEnd()
	ti.Focus()

	if charLimit > 0 {
		ti.CharLimit = charLimit
	}

	return TextInput{Model: ti}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages. Editing clears an earlier status.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		t.submitted = false
	}
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text input.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.submitted {
		if t.ok {
			view += "\n" + lipgloss.NewStyle().Foreground(theme.Success).Render("✓ "+t.status)
		} else {
			view += "\n" + lipgloss.NewStyle().Foreground(theme.Error).Render("✗ "+t.status)
		}
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// Submit records the outcome of acting on the value.
func (t *TextInput) Submit(ok bool, status string) {
	t.submitted = true
	t.ok = ok
	t.status = status
}
