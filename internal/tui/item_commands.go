package tui

import (
	"github.com/MKhiriev/salestrak-pa/internal/app"
	"github.com/MKhiriev/salestrak-pa/models"
	tea "github.com/charmbracelet/bubbletea"
)

// cmdLoad fetches the item of m.open together with the header and lead time
// choices. Without encoded ids only the choices are fetched.
func (m *ItemModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	items := m.svc.Items
	open := m.open

	return func() tea.Msg {
		msg := itemLoadedMsg{isNew: open.EncodedHeaderID == "" && open.EncodedItemID == ""}
		if !msg.isNew {
			details, err := items.Get(ctx, open.EncodedHeaderID, open.EncodedItemID)
			if err != nil {
				return itemLoadedMsg{err: err}
			}
			msg.details = details
		}

		headers, err := items.Headers(ctx)
		if err != nil {
			msg.warn = err
		}
		msg.headers = headers

		leadTimes, err := items.LeadTimes(ctx)
		if err != nil && msg.warn == nil {
			msg.warn = err
		}
		msg.leadTimes = leadTimes

		return msg
	}
}

func (m *ItemModel) cmdSave() tea.Cmd {
	m.readInputs()
	m.saving = true

	ctx := m.ctx
	items := m.svc.Items
	form := m.editor.Form

	return func() tea.Msg {
		saved, _, err := items.Save(ctx, form)
		return itemSavedMsg{saved: saved, isNew: form.IsNew(), err: err}
	}
}

func (m *ItemModel) cmdDeleteItem() tea.Cmd {
	ctx := m.ctx
	items := m.svc.Items
	id := m.editor.Form.ItemID
	return func() tea.Msg {
		return itemDeletedMsg{err: items.Delete(ctx, id)}
	}
}

func (m *ItemModel) cmdAddHeader(name string) tea.Cmd {
	ctx := m.ctx
	items := m.svc.Items
	return func() tea.Msg {
		header, err := items.AddHeader(ctx, name)
		return headerAddedMsg{header: header, err: err}
	}
}

func (m *ItemModel) cmdFetchReminder(id int64) tea.Cmd {
	ctx := m.ctx
	reminders := m.svc.Reminders
	return func() tea.Msg {
		r, err := reminders.Edit(ctx, id)
		return reminderFetchedMsg{reminder: r, err: err}
	}
}

func (m *ItemModel) cmdSaveReminder(form models.ReminderForm) tea.Cmd {
	ctx := m.ctx
	reminders := m.svc.Reminders
	headerID, itemID := m.editor.Form.HeaderID, m.editor.Form.ItemID

	if form.EditingID == 0 {
		return func() tea.Msg {
			err := reminders.Add(ctx, headerID, itemID, form)
			return childDoneMsg{kind: childReminder, success: app.MsgReminderAdded, fallback: app.MsgReminderAddFailed, err: err}
		}
	}
	return func() tea.Msg {
		err := reminders.Update(ctx, form)
		return childDoneMsg{kind: childReminder, success: app.MsgReminderUpdated, fallback: app.MsgReminderUpdateFailed, err: err}
	}
}

func (m *ItemModel) cmdDeleteReminder(id int64) tea.Cmd {
	ctx := m.ctx
	reminders := m.svc.Reminders
	return func() tea.Msg {
		err := reminders.Delete(ctx, id)
		return childDoneMsg{kind: childReminder, removed: id, success: app.MsgReminderDeleted, fallback: app.MsgReminderDeleteFailed, err: err}
	}
}

func (m *ItemModel) cmdSaveDocument(upload models.DocumentUpload) tea.Cmd {
	ctx := m.ctx
	documents := m.svc.Documents

	success, fallback := app.MsgDocumentAdded, app.MsgDocumentAddFailed
	if upload.EditingID > 0 {
		success, fallback = app.MsgDocumentUpdated, app.MsgDocumentUpdateFailed
	}
	return func() tea.Msg {
		err := documents.Save(ctx, upload)
		return childDoneMsg{kind: childDocument, success: success, fallback: fallback, err: err}
	}
}

func (m *ItemModel) cmdDeleteDocument(id int64) tea.Cmd {
	ctx := m.ctx
	documents := m.svc.Documents
	return func() tea.Msg {
		err := documents.Delete(ctx, id)
		return childDoneMsg{kind: childDocument, removed: id, success: app.MsgDocumentDeleted, fallback: app.MsgDocumentDeleteFailed, err: err}
	}
}

func (m *ItemModel) cmdDownload(id int64) tea.Cmd {
	ctx := m.ctx
	documents := m.svc.Documents
	dir := m.downloadDir
	return func() tea.Msg {
		path, size, err := documents.Download(ctx, id, dir)
		return downloadDoneMsg{path: path, size: size, err: err}
	}
}

func (m *ItemModel) cmdCopy(text string) tea.Cmd {
	write := m.writeClip
	return func() tea.Msg {
		return copiedMsg{err: write(text)}
	}
}
