package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/salestrak-pa/internal/state"
	"github.com/MKhiriev/salestrak-pa/internal/utils"
)

func (m *ItemModel) View() string {
	title := "ITEM"
	if m.editor.IsNew() {
		title = "NEW ITEM"
	}

	switch {
	case m.confirm != nil:
		return renderPage(title, m.confirm.View(), "y: confirm │ n/esc: cancel")
	case m.loadErr != "":
		return renderPage(title, errorStyle.Render(m.loadErr), "esc: back to dashboard")
	case m.editor.Loading:
		return renderPage(title, "Loading...", "esc: back to dashboard")
	case m.editor.ShowReminderForm:
		return renderPage(title, withNotification(m.viewReminderForm(), m.notice, m.now()),
			"tab: next field │ ←/→: alert before │ enter: save │ esc: cancel")
	case m.editor.ShowDocumentForm:
		return renderPage(title, withNotification(m.viewDocumentForm(), m.notice, m.now()),
			"tab: next field │ enter: save │ esc: cancel")
	case m.editor.Mode == state.ModeEditing:
		hotKeys := "tab: next field │ ←/→: header │ ctrl+n: new header │ ctrl+s: save │ esc: cancel"
		if m.addingHeader {
			hotKeys = "enter: add header │ esc: cancel"
		}
		return renderPage(title, withNotification(m.viewForm(), m.notice, m.now()), hotKeys)
	default:
		return renderPage(title, withNotification(m.viewItem(), m.notice, m.now()),
			"e: edit │ D: delete │ c: copy link │ tab: reminders/documents │ a: add │ enter: edit │ x: delete │ o: download │ u: copy URL │ esc: back")
	}
}

func (m *ItemModel) viewItem() string {
	f := m.editor.Form

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-12s %s\n", "Header:", valueOrDash(f.HeaderName)))
	b.WriteString(fmt.Sprintf("%-12s %s\n", "Title:", valueOrDash(f.Title)))
	b.WriteString(fmt.Sprintf("%-12s %s\n", "Summary:", valueOrDash(f.ShortDesc)))
	b.WriteString(fmt.Sprintf("%-12s %s\n", "Details:", valueOrDash(f.DetDesc)))
	b.WriteString(fmt.Sprintf("%-12s %s\n", "Highlights:", valueOrDash(f.Highlights)))
	b.WriteString(fmt.Sprintf("%-12s %s\n", "Link:", helpStyle.Render(utils.ItemPath(f.HeaderID, f.ItemID))))

	b.WriteString("\n")
	b.WriteString(m.sectionTitle(childReminder, "Reminders", len(m.editor.Reminders)))
	if len(m.editor.Reminders) == 0 {
		b.WriteString("  No reminders\n")
	}
	for i, r := range m.editor.Reminders {
		line := fmt.Sprintf("%s · %s · alert %s", r.Name, r.Date, valueOrDash(r.AlertBefore))
		b.WriteString(m.childRow(childReminder, i, line))
	}

	b.WriteString("\n")
	b.WriteString(m.sectionTitle(childDocument, "Documents", len(m.editor.Documents)))
	if len(m.editor.Documents) == 0 {
		b.WriteString("  No documents\n")
	}
	for i, d := range m.editor.Documents {
		b.WriteString(m.childRow(childDocument, i, d.Name))
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m *ItemModel) sectionTitle(kind childKind, name string, count int) string {
	line := fmt.Sprintf("%s %s", name, badgeStyle.Render(fmt.Sprintf("%d", count)))
	if m.section == kind {
		return selectedStyle.Render("▸ ") + line + "\n"
	}
	return "  " + line + "\n"
}

func (m *ItemModel) childRow(kind childKind, idx int, label string) string {
	selected := m.section == kind && m.cursors[kind] == idx
	line := cursor(selected) + label
	if selected {
		line = selectedStyle.Render(line)
	}
	return "  " + line + "\n"
}

func (m *ItemModel) viewForm() string {
	var b strings.Builder

	header := "(select a header)"
	if m.editor.Form.HeaderID > 0 {
		header = m.editor.Form.HeaderName
	}
	if len(m.editor.Headers) == 0 {
		header = "(no headers yet, ctrl+n to add one)"
	}
	b.WriteString(m.formRow(fieldHeader, "Header", "< "+header+" >"))
	if m.addingHeader {
		b.WriteString(fmt.Sprintf("%-12s [%s]\n", "", m.headerInput.View()))
	}

	b.WriteString(m.formRow(fieldTitle, "Title", "["+m.title.View()+"]"))
	b.WriteString(m.formRow(fieldShortDesc, "Summary", "["+m.shortDesc.View()+"]"))
	b.WriteString(m.formRow(fieldDetDesc, "Details", ""))
	b.WriteString(m.detDesc.View())
	b.WriteString("\n")
	b.WriteString(m.formRow(fieldHighlights, "Highlights", ""))
	b.WriteString(m.highlights.View())
	b.WriteString("\n")

	if m.saving {
		b.WriteString("\n[Saving...]")
	} else {
		b.WriteString("\n[Save]")
	}
	return b.String()
}

func (m *ItemModel) formRow(field int, label, value string) string {
	return fmt.Sprintf("%s%-10s %s\n", cursor(m.field == field), label+":", value)
}

func (m *ItemModel) viewReminderForm() string {
	f := m.reminderForm
	heading := "New reminder"
	if m.editor.ReminderForm.EditingID > 0 {
		heading = "Edit reminder"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(heading))
	b.WriteString("\n\n")
	labels := []string{"Name", "Date", "Alert"}
	for i, label := range labels {
		b.WriteString(fmt.Sprintf("%s%-6s [%s]\n", cursor(f.focus == i), label+":", f.inputs[i].View()))
	}
	if len(m.editor.LeadTimes) > 0 {
		names := make([]string, 0, len(m.editor.LeadTimes))
		for _, lt := range m.editor.LeadTimes {
			names = append(names, lt.Name)
		}
		b.WriteString(helpStyle.Render("choices: " + strings.Join(names, ", ")))
	}
	return b.String()
}

func (m *ItemModel) viewDocumentForm() string {
	f := m.documentForm
	heading := "New document"
	if m.editor.DocumentForm.EditingID > 0 {
		heading = "Edit document"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(heading))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s%-6s [%s]\n", cursor(f.focus == documentName), "Name:", f.inputs[documentName].View()))
	b.WriteString(fmt.Sprintf("%s%-6s [%s]\n", cursor(f.focus == documentFile), "File:", f.inputs[documentFile].View()))
	if file := m.editor.DocumentForm.File; file != nil && file.IsExisting {
		b.WriteString(helpStyle.Render("leave the file empty to keep " + file.Name))
	}
	return b.String()
}
