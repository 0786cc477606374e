package state

import (
	"github.com/MKhiriev/salestrak-pa/models"
)

// Mode is the item editor mode.
type Mode int

const (
	// ModeViewing shows the item read-only.
	ModeViewing Mode = iota
	// ModeEditing shows the item form.
	ModeEditing
)

func (m Mode) String() string {
	if m == ModeEditing {
		return "editing"
	}
	return "viewing"
}

// ItemEditor is the state of the item screen. A brand-new item starts in
// ModeEditing; an existing one starts in ModeViewing once loaded.
type ItemEditor struct {
	Mode Mode
	Form models.ItemForm

	Reminders []models.Reminder
	Documents []models.Document
	Headers   []models.Header
	LeadTimes []models.LeadTime

	ReminderForm     models.ReminderForm
	ShowReminderForm bool

	DocumentForm     models.DocumentUpload
	ShowDocumentForm bool

	Loading bool

	// loaded is the last saved form, restored by Cancel.
	loaded models.ItemForm
}

// NewItemEditor returns the editor of a brand-new item.
func NewItemEditor() *ItemEditor {
	return &ItemEditor{
		Mode:      ModeEditing,
		Reminders: []models.Reminder{},
		Documents: []models.Document{},
	}
}

// IsNew reports whether the edited item has never been saved.
func (e *ItemEditor) IsNew() bool {
	return e.Form.IsNew()
}

// LoadItem shows a fetched item and its children in ModeViewing.
func (e *ItemEditor) LoadItem(details models.ItemDetails) {
	it := details.Item
	e.Form = models.ItemForm{
		HeaderID:   it.HeaderID,
		HeaderName: it.HeaderName,
		ItemID:     it.ID,
		Title:      it.Title,
		ShortDesc:  it.ShortDesc,
		DetDesc:    it.DetDesc,
		Highlights: it.Highlights,
	}
	e.loaded = e.Form
	e.Reminders = nonNil(details.Reminders)
	e.Documents = nonNil(details.Documents)
	e.Mode = ModeViewing
	e.Loading = false
}

// BeginEdit switches a loaded item to ModeEditing.
func (e *ItemEditor) BeginEdit() {
	e.Mode = ModeEditing
}

// Cancel drops unsaved changes and returns to ModeViewing. A brand-new item
// has nothing to return to: Cancel reports false and the screen should leave.
func (e *ItemEditor) Cancel() bool {
	if e.IsNew() {
		return false
	}
	e.Form = e.loaded
	e.Mode = ModeViewing
	return true
}

// Saved records a successful save and returns to ModeViewing.
func (e *ItemEditor) Saved(result models.ItemSaved) {
	if result.HeaderID > 0 {
		e.Form.HeaderID = result.HeaderID
	}
	if result.ItemID > 0 {
		e.Form.ItemID = result.ItemID
	}
	e.Form.HeaderName = e.headerName(e.Form.HeaderID)
	e.loaded = e.Form
	e.Mode = ModeViewing
}

// SetHeaders stores the header choices.
func (e *ItemEditor) SetHeaders(headers []models.Header) {
	e.Headers = headers
}

// AddHeader appends a newly created header and selects it.
func (e *ItemEditor) AddHeader(h models.Header) {
	e.Headers = append(e.Headers, h)
	e.SelectHeader(h.ID)
}

// SelectHeader picks the owning header of the item.
func (e *ItemEditor) SelectHeader(id int64) {
	e.Form.HeaderID = id
	e.Form.HeaderName = e.headerName(id)
}

func (e *ItemEditor) headerName(id int64) string {
	for _, h := range e.Headers {
		if h.ID == id {
			return h.HeaderName
		}
	}
	return e.Form.HeaderName
}

// SetLeadTimes stores the "alert before" choices.
func (e *ItemEditor) SetLeadTimes(leadTimes []models.LeadTime) {
	e.LeadTimes = leadTimes
}

// NewReminder opens an empty reminder form.
func (e *ItemEditor) NewReminder() {
	e.ReminderForm = models.ReminderForm{}
	e.ShowReminderForm = true
}

// EditReminder fills the reminder form with a fetched reminder.
func (e *ItemEditor) EditReminder(r models.Reminder) {
	e.ReminderForm = models.ReminderForm{
		Name:      r.Name,
		Date:      r.Date,
		Before:    r.AlertBefore,
		EditingID: r.ID,
	}
	e.ShowReminderForm = true
}

// CloseReminderForm clears and hides the reminder form.
func (e *ItemEditor) CloseReminderForm() {
	e.ReminderForm = models.ReminderForm{}
	e.ShowReminderForm = false
}

// RemoveReminder drops a deleted reminder from the list.
func (e *ItemEditor) RemoveReminder(id int64) {
	e.Reminders = removeByID(e.Reminders, id, func(r models.Reminder) int64 { return r.ID })
}

// NewDocument opens an empty document form for the current item.
func (e *ItemEditor) NewDocument() {
	e.DocumentForm = models.DocumentUpload{HeaderID: e.Form.HeaderID, ItemID: e.Form.ItemID}
	e.ShowDocumentForm = true
}

// EditDocument fills the document form from a stored document. The stored
// file is referenced as existing so that it is not uploaded again.
func (e *ItemEditor) EditDocument(doc models.Document) {
	e.DocumentForm = models.DocumentUpload{
		Name:     doc.Name,
		HeaderID: e.Form.HeaderID,
		ItemID:   e.Form.ItemID,
		File: &models.FileRef{
			Name:       doc.Name,
			Path:       doc.FilePath,
			IsExisting: true,
		},
		EditingID: doc.ID,
	}
	e.ShowDocumentForm = true
}

// AttachFile replaces the file of the document form with a new one.
func (e *ItemEditor) AttachFile(file models.FileRef) {
	file.IsExisting = false
	e.DocumentForm.File = &file
}

// CloseDocumentForm clears and hides the document form.
func (e *ItemEditor) CloseDocumentForm() {
	e.DocumentForm = models.DocumentUpload{}
	e.ShowDocumentForm = false
}

// RemoveDocument drops a deleted document from the list.
func (e *ItemEditor) RemoveDocument(id int64) {
	e.Documents = removeByID(e.Documents, id, func(d models.Document) int64 { return d.ID })
}

func removeByID[T any](list []T, id int64, idOf func(T) int64) []T {
	out := make([]T, 0, len(list))
	for _, v := range list {
		if idOf(v) != id {
			out = append(out, v)
		}
	}
	return out
}

func nonNil[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}
