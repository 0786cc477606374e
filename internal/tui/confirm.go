package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// confirmModel is the yes/no dialog shown before every destructive action.
// onYes runs when the user confirms.
type confirmModel struct {
	message string
	onYes   func() tea.Cmd
}

func (m confirmModel) View() string {
	content := m.message + "\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}

// handle processes a key while the dialog is open. It reports whether the
// dialog is closed and the command to run.
func (m confirmModel) handle(msg tea.KeyMsg) (closed bool, cmd tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		if m.onYes != nil {
			cmd = m.onYes()
		}
		return true, cmd
	case key.Matches(msg, keys.no):
		return true, nil
	}
	return false, nil
}
