package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pathfinder/internal/ui/theme"
)

// ChoiceList is a single-select list of answers. Moving the cursor selects
// the highlighted option, and the first arrow press from an empty list lands
// on option 1. Digit keys jump straight to an option. Values are 1-based, 0
// means nothing chosen yet.
type ChoiceList struct {
	Options []string
	Chosen  int
}

// NewChoiceList creates a list with chosen preselected (0 for none).
func NewChoiceList(options []string, chosen int) ChoiceList {
	if chosen < 0 || chosen > len(options) {
		chosen = 0
	}
	return ChoiceList{Options: options, Chosen: chosen}
}

// Update handles keyboard selection.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(c.Options) == 0 {
		return c, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		switch {
		case c.Chosen == 0:
			c.Chosen = 1
		case c.Chosen > 1:
			c.Chosen--
		}
	case "down", "j":
		if c.Chosen < len(c.Options) {
			c.Chosen++
		}
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if n := int(key[0] - '0'); n <= len(c.Options) {
				c.Chosen = n
			}
		}
	}
	return c, nil
}

// HasChoice reports whether an option is selected.
func (c ChoiceList) HasChoice() bool {
	return c.Chosen > 0
}

// View renders the list with number prefixes.
func (c ChoiceList) View() string {
	var b strings.Builder
	for i, opt := range c.Options {
		n := i + 1
		if n == c.Chosen {
			b.WriteString(theme.Selected.Render(fmt.Sprintf("▸ %d)  %s", n, opt)))
		} else {
			b.WriteString(theme.Unselected.Render(fmt.Sprintf("  %d)  %s", n, opt)))
		}
		b.WriteString("\n")
	}
	return b.String()
}
