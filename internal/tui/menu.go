package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/salestrak-pa/internal/state"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type menuEntry struct {
	title string
	page  string
}

type MenuModel struct {
	items  []menuEntry
	idx    int
	notice state.Notification
	now    func() time.Time
}

func NewMenuModel() *MenuModel {
	return &MenuModel{
		items: []menuEntry{
			{title: "Log in", page: pageLogin},
			{title: "Register", page: pageRegister},
			{title: "Forgot password", page: pageReset},
		},
		now: time.Now,
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case Notice:
		m.notice = msg.Notification
		return m, cmdClearStatus()
	case clearStatusMsg:
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.idx > 0 {
				m.idx--
			}
		case "down", "j":
			if m.idx < len(m.items)-1 {
				m.idx++
			}
		case "enter":
			return m, navigate(m.items[m.idx].page, nil)
		}
	}

	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder
	idColWidth := lipgloss.Width(fmt.Sprintf("%d", len(m.items))) + 2

	actionColWidth := lipgloss.Width("Action")
	for _, item := range m.items {
		if w := lipgloss.Width(item.title); w > actionColWidth {
			actionColWidth = w
		}
	}

	b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, "#", actionColWidth, "Action"))
	b.WriteString(strings.Repeat("─", idColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, item := range m.items {
		mark := " "
		if i == m.idx {
			mark = ">"
		}
		idCell := fmt.Sprintf("%s %d", mark, i+1)
		b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, idCell, actionColWidth, item.title))
	}

	data := withNotification(strings.TrimRight(b.String(), "\n"), m.notice, m.now())
	return renderPage("SALESTRAK PA", data, "enter: select │ ↑/↓: navigate │ v: version")
}
