package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/salestrak-pa/internal/state"
	"github.com/MKhiriev/salestrak-pa/internal/validators"
	"github.com/MKhiriev/salestrak-pa/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	reminderName = iota
	reminderDate
	reminderBefore
)

type reminderFormModel struct {
	inputs []textinput.Model
	focus  int
}

func newReminderFormModel() reminderFormModel {
	return reminderFormModel{
		inputs: []textinput.Model{
			newItemInput("reminder name", 200),
			newItemInput("YYYY-MM-DD", 25),
			newItemInput("alert before (←/→ to pick)", 50),
		},
	}
}

func (f *reminderFormModel) open(form models.ReminderForm) tea.Cmd {
	f.inputs[reminderName].SetValue(form.Name)
	f.inputs[reminderDate].SetValue(form.Date)
	f.inputs[reminderBefore].SetValue(form.Before)
	return f.setFocus(reminderName)
}

func (f *reminderFormModel) close() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = reminderName
}

func (f *reminderFormModel) setFocus(idx int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = (idx + len(f.inputs)) % len(f.inputs)
	return f.inputs[f.focus].Focus()
}

func (f *reminderFormModel) form(editingID int64) models.ReminderForm {
	return models.ReminderForm{
		Name:      strings.TrimSpace(f.inputs[reminderName].Value()),
		Date:      strings.TrimSpace(f.inputs[reminderDate].Value()),
		Before:    strings.TrimSpace(f.inputs[reminderBefore].Value()),
		EditingID: editingID,
	}
}

// cycleLeadTime replaces the "alert before" value with the next or previous
// lead time choice.
func (f *reminderFormModel) cycleLeadTime(choices []models.LeadTime, delta int) {
	if len(choices) == 0 {
		return
	}
	current := f.inputs[reminderBefore].Value()
	idx := -1
	for i, lt := range choices {
		if lt.Name == current {
			idx = i
		}
	}
	switch {
	case idx < 0 && delta < 0:
		idx = len(choices) - 1
	case idx < 0:
		idx = 0
	default:
		idx = (idx + delta + len(choices)) % len(choices)
	}
	f.inputs[reminderBefore].SetValue(choices[idx].Name)
}

func (m *ItemModel) updateReminderForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := &m.reminderForm
	switch {
	case key.Matches(msg, keys.esc):
		m.editor.CloseReminderForm()
		f.close()
		return m, nil
	case key.Matches(msg, keys.tab):
		return m, f.setFocus(f.focus + 1)
	case key.Matches(msg, keys.backtab):
		return m, f.setFocus(f.focus - 1)
	case key.Matches(msg, keys.enter):
		form := f.form(m.editor.ReminderForm.EditingID)
		m.editor.ReminderForm = form
		return m, m.cmdSaveReminder(form)
	}

	if f.focus == reminderBefore {
		switch {
		case key.Matches(msg, keys.left):
			f.cycleLeadTime(m.editor.LeadTimes, -1)
			return m, nil
		case key.Matches(msg, keys.right):
			f.cycleLeadTime(m.editor.LeadTimes, 1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return m, cmd
}

const (
	documentName = iota
	documentFile
)

type documentFormModel struct {
	inputs []textinput.Model
	focus  int
}

func newDocumentFormModel() documentFormModel {
	return documentFormModel{
		inputs: []textinput.Model{
			newItemInput("document name", 200),
			newItemInput("path to a PDF, JPG, PNG or Excel file", 1024),
		},
	}
}

func (f *documentFormModel) open(upload models.DocumentUpload) tea.Cmd {
	f.inputs[documentName].SetValue(upload.Name)
	f.inputs[documentFile].SetValue("")
	return f.setFocus(documentName)
}

func (f *documentFormModel) close() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = documentName
}

func (f *documentFormModel) setFocus(idx int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = (idx + len(f.inputs)) % len(f.inputs)
	return f.inputs[f.focus].Focus()
}

func (m *ItemModel) updateDocumentForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := &m.documentForm
	switch {
	case key.Matches(msg, keys.esc):
		m.editor.CloseDocumentForm()
		f.close()
		return m, nil
	case key.Matches(msg, keys.tab):
		return m, f.setFocus(f.focus + 1)
	case key.Matches(msg, keys.backtab):
		return m, f.setFocus(f.focus - 1)
	case key.Matches(msg, keys.enter):
		return m, m.submitDocument()
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return m, cmd
}

// submitDocument attaches the typed file, if any, and saves the document.
// An empty path keeps the stored file of an edited document.
func (m *ItemModel) submitDocument() tea.Cmd {
	f := &m.documentForm
	m.editor.DocumentForm.Name = strings.TrimSpace(f.inputs[documentName].Value())

	if path := strings.TrimSpace(f.inputs[documentFile].Value()); path != "" {
		ref, err := fileRef(path)
		if err != nil {
			m.notice = state.Warning(err.Error(), m.now())
			return cmdClearStatus()
		}
		m.editor.AttachFile(ref)
	}

	return m.cmdSaveDocument(m.editor.DocumentForm)
}

// fileRef describes the local file at path for upload.
func fileRef(path string) (models.FileRef, error) {
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, rest)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return models.FileRef{}, fmt.Errorf("cannot read file %s", path)
	}
	if info.IsDir() {
		return models.FileRef{}, fmt.Errorf("%s is a directory", path)
	}

	ref := models.FileRef{
		Name: filepath.Base(path),
		Path: path,
		Size: info.Size(),
	}
	ref.ContentType = validators.DocumentContentType(ref)
	return ref, nil
}
