// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/salestrak-pa/internal/app"
	"github.com/MKhiriev/salestrak-pa/internal/service"
	"github.com/MKhiriev/salestrak-pa/internal/state"
	"github.com/MKhiriev/salestrak-pa/internal/utils"
	"github.com/MKhiriev/salestrak-pa/internal/validators"
	"github.com/MKhiriev/salestrak-pa/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
)

type childKind int

const (
	childReminder childKind = iota
	childDocument
)

// Focusable fields of the item form, in tab order.
const (
	fieldHeader = iota
	fieldTitle
	fieldShortDesc
	fieldDetDesc
	fieldHighlights
	itemFieldCount
)

// ItemServices groups the services used by the item editor.
type ItemServices struct {
	Items     service.ClientItemService
	Reminders service.ClientReminderService
	Documents service.ClientDocumentService
}

// ItemModel is the item editor. It shows an existing item read-only, edits
// it, and manages its reminders and documents. A brand-new item opens
// straight in the form.
type ItemModel struct {
	ctx         context.Context
	svc         ItemServices
	downloadDir string
	linkBase    string
	writeClip   func(string) error

	editor  *state.ItemEditor
	open    OpenItem
	loadErr string
	saving  bool

	title      textinput.Model
	shortDesc  textinput.Model
	detDesc    textarea.Model
	highlights textarea.Model
	field      int

	headerInput  textinput.Model
	addingHeader bool

	section childKind
	cursors [2]int

	reminderForm reminderFormModel
	documentForm documentFormModel

	confirm *confirmModel
	notice  state.Notification
	now     func() time.Time
}

// NewItemModel creates the item editor. Downloads are written to
// downloadDir; copied item links are prefixed with linkBase.
func NewItemModel(ctx context.Context, svc ItemServices, downloadDir, linkBase string) *ItemModel {
	m := &ItemModel{
		ctx:         ctx,
		svc:         svc,
		downloadDir: downloadDir,
		linkBase:    linkBase,
		writeClip:   clipboard.WriteAll,
		now:         time.Now,
	}
	m.reset()
	return m
}

func newItemInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = 50
	return in
}

func newItemArea(placeholder string) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.SetWidth(50)
	ta.SetHeight(4)
	ta.ShowLineNumbers = false
	return ta
}

func (m *ItemModel) reset() {
	m.editor = state.NewItemEditor()
	m.editor.Loading = true
	m.open = OpenItem{}
	m.loadErr = ""
	m.saving = false
	m.title = newItemInput("title", 200)
	m.shortDesc = newItemInput("short description", 500)
	m.detDesc = newItemArea("detailed description")
	m.highlights = newItemArea("highlights")
	m.headerInput = newItemInput("new header name", 100)
	m.addingHeader = false
	m.field = fieldHeader
	m.section = childReminder
	m.cursors = [2]int{}
	m.reminderForm = newReminderFormModel()
	m.documentForm = newDocumentFormModel()
	m.confirm = nil
	m.notice = state.Notification{}
}

// Init clears the previous item. The item to show arrives as an [OpenItem]
// payload.
func (m *ItemModel) Init() tea.Cmd {
	m.reset()
	return nil
}

func (m *ItemModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case OpenItem:
		m.reset()
		m.open = msg
		return m, m.cmdLoad()

	case Notice:
		m.notice = msg.Notification
		return m, cmdClearStatus()

	case clearStatusMsg:
		return m, nil

	case itemLoadedMsg:
		return m.handleLoaded(msg)

	case itemSavedMsg:
		return m.handleSaved(msg)

	case itemDeletedMsg:
		if msg.err != nil {
			return m, m.fail(msg.err, app.MsgItemDeleteFailed)
		}
		return m, navigate(pageDashboard, Notice{Notification: state.Success(app.MsgItemDeleted, m.now())})

	case headerAddedMsg:
		return m.handleHeaderAdded(msg)

	case reminderFetchedMsg:
		if msg.err != nil {
			return m, m.fail(msg.err, app.MsgReminderFetchFailed)
		}
		m.editor.EditReminder(msg.reminder)
		return m, m.reminderForm.open(m.editor.ReminderForm)

	case childDoneMsg:
		return m.handleChildDone(msg)

	case downloadDoneMsg:
		if msg.err != nil {
			return m, m.fail(msg.err, app.MsgDocumentDownloadFailed)
		}
		return m, m.succeed(fmt.Sprintf(app.MsgDocumentDownloaded, msg.path, humanize.IBytes(uint64(msg.size))))

	case copiedMsg:
		if msg.err != nil {
			m.notice = state.Failure(app.MsgClipboardFailed, m.now())
			return m, cmdClearStatus()
		}
		return m, m.succeed(app.MsgLinkCopied)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *ItemModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.confirm != nil:
		closed, cmd := m.confirm.handle(msg)
		if closed {
			m.confirm = nil
		}
		return m, cmd
	case m.saving:
		return m, nil
	case m.editor.Loading, m.loadErr != "":
		if key.Matches(msg, keys.esc) {
			return m, navigate(pageDashboard, nil)
		}
		return m, nil
	case m.editor.ShowReminderForm:
		return m.updateReminderForm(msg)
	case m.editor.ShowDocumentForm:
		return m.updateDocumentForm(msg)
	case m.editor.Mode == state.ModeEditing:
		return m.updateEditing(msg)
	default:
		return m.updateViewing(msg)
	}
}

func (m *ItemModel) handleLoaded(msg itemLoadedMsg) (tea.Model, tea.Cmd) {
	m.editor.Loading = false
	if msg.err != nil {
		if isSessionExpired(msg.err) {
			return m, m.sessionExpired()
		}
		if service.IsInvalidItemLink(msg.err) {
			m.loadErr = "This item link is not valid"
		} else {
			m.loadErr = errorText(msg.err, app.MsgItemLoadFailed)
		}
		return m, nil
	}

	m.editor.SetHeaders(msg.headers)
	m.editor.SetLeadTimes(msg.leadTimes)
	if !msg.isNew {
		m.editor.LoadItem(msg.details)
	}
	m.fillInputs()
	m.clampCursors()

	if msg.warn != nil {
		m.notice = state.Warning(errorText(msg.warn, app.MsgGenericError), m.now())
		return m, cmdClearStatus()
	}
	if m.editor.Mode == state.ModeEditing {
		return m, m.focusField(fieldHeader)
	}
	return m, nil
}

func (m *ItemModel) handleSaved(msg itemSavedMsg) (tea.Model, tea.Cmd) {
	m.saving = false
	if msg.err != nil {
		fallback := app.MsgItemUpdateFailed
		if msg.isNew {
			fallback = app.MsgItemCreateFailed
		}
		return m, m.fail(msg.err, fallback)
	}

	m.editor.Saved(msg.saved)
	m.open = OpenItem{
		EncodedHeaderID: utils.EncodeID(m.editor.Form.HeaderID),
		EncodedItemID:   utils.EncodeID(m.editor.Form.ItemID),
	}
	m.blurAll()

	if msg.isNew {
		return m, m.succeed(app.MsgItemCreated)
	}
	return m, m.succeed(app.MsgItemUpdated)
}

func (m *ItemModel) handleHeaderAdded(msg headerAddedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if errors.Is(msg.err, service.ErrAlreadyExists) {
			m.notice = state.Warning(service.UserMessage(msg.err, "Header already exists"), m.now())
			return m, cmdClearStatus()
		}
		return m, m.fail(msg.err, app.MsgHeaderAddFailed)
	}

	m.addingHeader = false
	m.headerInput.SetValue("")
	m.headerInput.Blur()
	if msg.header.ID == 0 {
		return m, m.focusField(fieldHeader)
	}
	m.editor.AddHeader(msg.header)
	return m, tea.Batch(m.focusField(fieldHeader), m.succeed(app.MsgHeaderAdded))
}

func (m *ItemModel) handleChildDone(msg childDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return m, m.fail(msg.err, msg.fallback)
	}

	switch {
	case msg.kind == childReminder && msg.removed > 0:
		m.editor.RemoveReminder(msg.removed)
	case msg.kind == childDocument && msg.removed > 0:
		m.editor.RemoveDocument(msg.removed)
	case msg.kind == childReminder:
		m.editor.CloseReminderForm()
		m.reminderForm.close()
	default:
		m.editor.CloseDocumentForm()
		m.documentForm.close()
	}
	m.clampCursors()

	if msg.removed > 0 {
		return m, m.succeed(msg.success)
	}
	// reload so the list shows what the server stored
	return m, tea.Batch(m.cmdLoad(), m.succeed(msg.success))
}

// fail shows err. Validation failures are warnings; an expired session
// sends the user back to the login screen.
func (m *ItemModel) fail(err error, fallback string) tea.Cmd {
	if isSessionExpired(err) {
		return m.sessionExpired()
	}
	var fe *validators.FieldErrors
	if errors.As(err, &fe) {
		m.notice = state.Warning(fe.Message(), m.now())
		return cmdClearStatus()
	}
	m.notice = state.Failure(errorText(err, fallback), m.now())
	return cmdClearStatus()
}

func (m *ItemModel) succeed(text string) tea.Cmd {
	m.notice = state.Success(text, m.now())
	return cmdClearStatus()
}

func (m *ItemModel) sessionExpired() tea.Cmd {
	m.reset()
	return navigate(pageLogin, Notice{Notification: state.Warning(app.MsgSessionExpired, m.now())})
}

func (m *ItemModel) updateViewing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		return m, navigate(pageDashboard, nil)
	case key.Matches(msg, keys.edit):
		m.editor.BeginEdit()
		m.fillInputs()
		return m, m.focusField(fieldTitle)
	case key.Matches(msg, keys.delete):
		m.confirm = &confirmModel{
			message: fmt.Sprintf("Delete item %q?", m.editor.Form.Title),
			onYes:   m.cmdDeleteItem,
		}
	case key.Matches(msg, keys.tab), key.Matches(msg, keys.backtab):
		if m.section == childReminder {
			m.section = childDocument
		} else {
			m.section = childReminder
		}
	case key.Matches(msg, keys.up):
		if m.cursors[m.section] > 0 {
			m.cursors[m.section]--
		}
	case key.Matches(msg, keys.down):
		if m.cursors[m.section] < m.childCount(m.section)-1 {
			m.cursors[m.section]++
		}
	case key.Matches(msg, keys.add):
		return m, m.openChildForm()
	case key.Matches(msg, keys.enter):
		return m, m.editSelected()
	case key.Matches(msg, keys.remove):
		m.confirmRemoveSelected()
	case key.Matches(msg, keys.download):
		if doc, ok := m.selectedDocument(); ok {
			return m, m.cmdDownload(doc.ID)
		}
	case key.Matches(msg, keys.copyURL):
		if doc, ok := m.selectedDocument(); ok {
			return m, m.cmdCopy(m.svc.Documents.DownloadURL(doc.ID))
		}
	case key.Matches(msg, keys.copy):
		return m, m.cmdCopy(m.itemLink())
	}
	return m, nil
}

func (m *ItemModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.addingHeader {
		switch {
		case key.Matches(msg, keys.esc):
			m.addingHeader = false
			m.headerInput.SetValue("")
			m.headerInput.Blur()
			return m, m.focusField(fieldHeader)
		case key.Matches(msg, keys.enter):
			return m, m.cmdAddHeader(m.headerInput.Value())
		}
		var cmd tea.Cmd
		m.headerInput, cmd = m.headerInput.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.esc):
		if !m.editor.Cancel() {
			return m, navigate(pageDashboard, nil)
		}
		m.fillInputs()
		m.blurAll()
		return m, nil
	case key.Matches(msg, keys.save):
		return m, m.cmdSave()
	case key.Matches(msg, keys.tab):
		return m, m.focusField((m.field + 1) % itemFieldCount)
	case key.Matches(msg, keys.backtab):
		return m, m.focusField((m.field + itemFieldCount - 1) % itemFieldCount)
	}

	if m.field == fieldHeader {
		switch {
		case key.Matches(msg, keys.left):
			m.cycleHeader(-1)
		case key.Matches(msg, keys.right):
			m.cycleHeader(1)
		case key.Matches(msg, keys.header):
			m.addingHeader = true
			return m, m.headerInput.Focus()
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.field {
	case fieldTitle:
		m.title, cmd = m.title.Update(msg)
	case fieldShortDesc:
		m.shortDesc, cmd = m.shortDesc.Update(msg)
	case fieldDetDesc:
		m.detDesc, cmd = m.detDesc.Update(msg)
	case fieldHighlights:
		m.highlights, cmd = m.highlights.Update(msg)
	}
	return m, cmd
}

func (m *ItemModel) cycleHeader(delta int) {
	headers := m.editor.Headers
	if len(headers) == 0 {
		return
	}
	idx := -1
	for i, h := range headers {
		if h.ID == m.editor.Form.HeaderID {
			idx = i
		}
	}
	switch {
	case idx < 0 && delta < 0:
		idx = len(headers) - 1
	case idx < 0:
		idx = 0
	default:
		idx = (idx + delta + len(headers)) % len(headers)
	}
	m.editor.SelectHeader(headers[idx].ID)
}

// fillInputs copies the editor form into the inputs.
func (m *ItemModel) fillInputs() {
	f := m.editor.Form
	m.title.SetValue(f.Title)
	m.shortDesc.SetValue(f.ShortDesc)
	m.detDesc.SetValue(f.DetDesc)
	m.highlights.SetValue(f.Highlights)
}

// readInputs copies the inputs back into the editor form.
func (m *ItemModel) readInputs() {
	m.editor.Form.Title = m.title.Value()
	m.editor.Form.ShortDesc = m.shortDesc.Value()
	m.editor.Form.DetDesc = m.detDesc.Value()
	m.editor.Form.Highlights = m.highlights.Value()
}

func (m *ItemModel) blurAll() {
	m.title.Blur()
	m.shortDesc.Blur()
	m.detDesc.Blur()
	m.highlights.Blur()
}

func (m *ItemModel) focusField(field int) tea.Cmd {
	m.blurAll()
	m.field = field
	switch field {
	case fieldTitle:
		return m.title.Focus()
	case fieldShortDesc:
		return m.shortDesc.Focus()
	case fieldDetDesc:
		return m.detDesc.Focus()
	case fieldHighlights:
		return m.highlights.Focus()
	}
	return nil
}

func (m *ItemModel) childCount(kind childKind) int {
	if kind == childReminder {
		return len(m.editor.Reminders)
	}
	return len(m.editor.Documents)
}

func (m *ItemModel) clampCursors() {
	for _, kind := range []childKind{childReminder, childDocument} {
		n := m.childCount(kind)
		if m.cursors[kind] >= n {
			m.cursors[kind] = max(n-1, 0)
		}
	}
}

func (m *ItemModel) selectedDocument() (doc models.Document, ok bool) {
	if m.section != childDocument || len(m.editor.Documents) == 0 {
		return doc, false
	}
	return m.editor.Documents[m.cursors[childDocument]], true
}

func (m *ItemModel) selectedReminder() (r models.Reminder, ok bool) {
	if m.section != childReminder || len(m.editor.Reminders) == 0 {
		return r, false
	}
	return m.editor.Reminders[m.cursors[childReminder]], true
}

func (m *ItemModel) itemLink() string {
	return m.linkBase + utils.ItemPath(m.editor.Form.HeaderID, m.editor.Form.ItemID)
}

func (m *ItemModel) confirmRemoveSelected() {
	if r, ok := m.selectedReminder(); ok {
		m.confirm = &confirmModel{
			message: fmt.Sprintf("Delete reminder %q?", r.Name),
			onYes:   func() tea.Cmd { return m.cmdDeleteReminder(r.ID) },
		}
		return
	}
	if doc, ok := m.selectedDocument(); ok {
		m.confirm = &confirmModel{
			message: fmt.Sprintf("Delete document %q?", doc.Name),
			onYes:   func() tea.Cmd { return m.cmdDeleteDocument(doc.ID) },
		}
	}
}

func (m *ItemModel) openChildForm() tea.Cmd {
	if m.section == childReminder {
		m.editor.NewReminder()
		return m.reminderForm.open(m.editor.ReminderForm)
	}
	m.editor.NewDocument()
	return m.documentForm.open(m.editor.DocumentForm)
}

func (m *ItemModel) editSelected() tea.Cmd {
	if r, ok := m.selectedReminder(); ok {
		return m.cmdFetchReminder(r.ID)
	}
	if doc, ok := m.selectedDocument(); ok {
		m.editor.EditDocument(doc)
		return m.documentForm.open(m.editor.DocumentForm)
	}
	return nil
}
