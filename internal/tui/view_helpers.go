package tui

import (
	"strings"
	"time"

	"github.com/MKhiriev/salestrak-pa/internal/state"
	tea "github.com/charmbracelet/bubbletea"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("  ctrl+c: quit"))

	return b.String()
}

// renderNotification renders n if it is still visible at now, or "".
func renderNotification(n state.Notification, now time.Time) string {
	if !n.Visible(now) {
		return ""
	}
	switch n.Level {
	case state.LevelSuccess:
		return successStyle.Render("OK: " + n.Text)
	case state.LevelWarning:
		return warningStyle.Render("Warning: " + n.Text)
	default:
		return errorStyle.Render("Error: " + n.Text)
	}
}

// withNotification appends the notification line under data.
func withNotification(data string, n state.Notification, now time.Time) string {
	line := renderNotification(n, now)
	if line == "" {
		return data
	}
	return strings.TrimRight(data, "\n") + "\n\n" + line
}

// cmdClearStatus fires once the notification lifetime is over.
func cmdClearStatus() tea.Cmd {
	return tea.Tick(state.NotificationTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func cursor(selected bool) string {
	if selected {
		return "> "
	}
	return "  "
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

func navigate(page string, payload any) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page, Payload: payload} }
}
