package tui

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/salestrak-pa/internal/adapter"
	"github.com/MKhiriev/salestrak-pa/internal/app"
	"github.com/MKhiriev/salestrak-pa/internal/service"
	"github.com/MKhiriev/salestrak-pa/internal/state"
	"github.com/MKhiriev/salestrak-pa/internal/utils"
	"github.com/MKhiriev/salestrak-pa/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItemDetails() models.ItemDetails {
	return models.ItemDetails{
		Item: models.Item{ID: 10, HeaderID: 1, HeaderName: "Leads", Title: "Acme renewal", ShortDesc: "Q3"},
		Reminders: []models.Reminder{
			{ID: 3, Name: "Call back", Date: "2026-03-12", AlertBefore: "1 day"},
		},
		Documents: []models.Document{{ID: 7, Name: "Acme quote"}},
	}
}

type itemFixture struct {
	items     *fakeItems
	reminders *fakeReminders
	model     *ItemModel
}

func newItemFixture() itemFixture {
	f := itemFixture{
		items: &fakeItems{
			details:   testItemDetails(),
			headers:   []models.Header{{ID: 1, HeaderName: "Leads"}, {ID: 2, HeaderName: "Accounts"}},
			leadTimes: []models.LeadTime{{ID: 1, Name: "1 day"}, {ID: 2, Name: "1 week"}},
		},
		reminders: &fakeReminders{},
	}
	f.model = NewItemModel(context.Background(), ItemServices{
		Items:     f.items,
		Reminders: f.reminders,
		Documents: fakeDocuments{},
	}, "/tmp", "http://app")
	f.model.now = func() time.Time { return fixedNow }
	return f
}

// open delivers an OpenItem and the resulting load to the model.
func (f itemFixture) open(t *testing.T, target OpenItem) {
	t.Helper()
	f.model.Init()
	_, cmd := f.model.Update(target)
	msg, ok := findMsg[itemLoadedMsg](drain(t, cmd))
	require.True(t, ok)
	f.model.Update(msg)
}

var existingItem = OpenItem{EncodedHeaderID: utils.EncodeID(1), EncodedItemID: utils.EncodeID(10)}

func TestItemModel_ExistingItemOpensReadOnly(t *testing.T) {
	f := newItemFixture()
	f.open(t, existingItem)

	m := f.model
	assert.Equal(t, state.ModeViewing, m.editor.Mode)
	view := m.View()
	assert.Contains(t, view, "Acme renewal")
	assert.Contains(t, view, "Call back")
	assert.Contains(t, view, "Acme quote")
	assert.Contains(t, view, utils.ItemPath(1, 10))
}

func TestItemModel_InvalidLinkShowsError(t *testing.T) {
	f := newItemFixture()
	f.items.getErr = fmt.Errorf("%w: bad", service.ErrInvalidItemLink)
	f.open(t, OpenItem{EncodedHeaderID: "!!", EncodedItemID: "??"})

	assert.Contains(t, f.model.View(), "This item link is not valid")

	_, cmd := f.model.Update(keyOf(tea.KeyEsc))
	nav, ok := findMsg[NavigateTo](drain(t, cmd))
	require.True(t, ok)
	assert.Equal(t, pageDashboard, nav.Page)
}

func TestItemModel_NewItemCancelLeaves(t *testing.T) {
	f := newItemFixture()
	f.open(t, OpenItem{})

	m := f.model
	assert.Equal(t, state.ModeEditing, m.editor.Mode)
	assert.Contains(t, m.View(), "NEW ITEM")

	_, cmd := m.Update(keyOf(tea.KeyEsc))
	nav, ok := findMsg[NavigateTo](drain(t, cmd))
	require.True(t, ok)
	assert.Equal(t, pageDashboard, nav.Page)
}

func TestItemModel_EditCancelRestoresValues(t *testing.T) {
	f := newItemFixture()
	f.open(t, existingItem)
	m := f.model

	m.Update(runes("e"))
	require.Equal(t, state.ModeEditing, m.editor.Mode)
	require.Equal(t, fieldTitle, m.field)

	m.Update(runes(" v2"))
	assert.Equal(t, "Acme renewal v2", m.title.Value())

	m.Update(keyOf(tea.KeyEsc))
	assert.Equal(t, state.ModeViewing, m.editor.Mode)
	assert.Equal(t, "Acme renewal", m.title.Value())
}

func TestItemModel_SaveNewItem(t *testing.T) {
	f := newItemFixture()
	f.open(t, OpenItem{})
	m := f.model

	m.Update(keyOf(tea.KeyRight))
	assert.Equal(t, int64(1), m.editor.Form.HeaderID)
	m.Update(keyOf(tea.KeyRight))
	assert.Equal(t, "Accounts", m.editor.Form.HeaderName)

	m.Update(keyOf(tea.KeyTab))
	m.Update(runes("Initech"))

	_, cmd := m.Update(keyOf(tea.KeyCtrlS))
	assert.True(t, m.saving)
	saved, ok := findMsg[itemSavedMsg](drain(t, cmd))
	require.True(t, ok)
	assert.True(t, saved.isNew)

	m.Update(saved)
	require.Len(t, f.items.saved, 1)
	assert.Equal(t, "Initech", f.items.saved[0].Title)
	assert.Equal(t, int64(2), f.items.saved[0].HeaderID)
	assert.Equal(t, int64(42), m.editor.Form.ItemID)
	assert.Equal(t, state.ModeViewing, m.editor.Mode)
	assert.Equal(t, app.MsgItemCreated, m.notice.Text)
	assert.Equal(t, utils.EncodeID(42), m.open.EncodedItemID)
}

func TestItemModel_AddHeaderConflictIsWarning(t *testing.T) {
	f := newItemFixture()
	f.open(t, OpenItem{})
	m := f.model

	m.Update(keyOf(tea.KeyCtrlN))
	require.True(t, m.addingHeader)

	err := fmt.Errorf("%w: %w", service.ErrAlreadyExists, adapter.NewHTTPError(409, "Header already exists"))
	m.Update(headerAddedMsg{err: err})

	assert.Equal(t, state.LevelWarning, m.notice.Level)
	assert.Equal(t, "Header already exists", m.notice.Text)
	assert.True(t, m.addingHeader)
}

func TestItemModel_AddHeaderSelectsIt(t *testing.T) {
	f := newItemFixture()
	f.open(t, OpenItem{})
	m := f.model

	m.Update(keyOf(tea.KeyCtrlN))
	m.Update(runes("Partners"))
	_, cmd := m.Update(keyOf(tea.KeyEnter))
	added, ok := findMsg[headerAddedMsg](drain(t, cmd))
	require.True(t, ok)

	m.Update(added)
	assert.False(t, m.addingHeader)
	assert.Equal(t, int64(99), m.editor.Form.HeaderID)
	assert.Equal(t, "Partners", m.editor.Form.HeaderName)
	assert.Equal(t, app.MsgHeaderAdded, m.notice.Text)
}

func TestItemModel_DeleteItemNeedsConfirmation(t *testing.T) {
	f := newItemFixture()
	f.open(t, existingItem)
	m := f.model

	m.Update(runes("D"))
	require.NotNil(t, m.confirm)
	assert.Contains(t, m.View(), `Delete item "Acme renewal"?`)

	_, cmd := m.Update(runes("y"))
	done, ok := findMsg[itemDeletedMsg](drain(t, cmd))
	require.True(t, ok)
	assert.Equal(t, []int64{10}, f.items.deleted)

	_, cmd = m.Update(done)
	nav, ok := findMsg[NavigateTo](drain(t, cmd))
	require.True(t, ok)
	assert.Equal(t, pageDashboard, nav.Page)
	assert.Equal(t, app.MsgItemDeleted, nav.Payload.(Notice).Notification.Text)
}

func TestItemModel_DeleteReminderRemovesRow(t *testing.T) {
	f := newItemFixture()
	f.open(t, existingItem)
	m := f.model

	m.Update(runes("x"))
	require.NotNil(t, m.confirm)
	_, cmd := m.Update(runes("y"))
	done, ok := findMsg[childDoneMsg](drain(t, cmd))
	require.True(t, ok)

	m.Update(done)
	assert.Equal(t, []int64{3}, f.reminders.deleted)
	assert.Empty(t, m.editor.Reminders)
	assert.Equal(t, app.MsgReminderDeleted, m.notice.Text)
	assert.Contains(t, m.View(), "No reminders")
}

func TestItemModel_EditReminderPrefetches(t *testing.T) {
	f := newItemFixture()
	f.open(t, existingItem)
	m := f.model

	_, cmd := m.Update(keyOf(tea.KeyEnter))
	fetched, ok := findMsg[reminderFetchedMsg](drain(t, cmd))
	require.True(t, ok)

	m.Update(fetched)
	require.True(t, m.editor.ShowReminderForm)
	assert.Equal(t, int64(3), m.editor.ReminderForm.EditingID)
	assert.Equal(t, "Call back", m.reminderForm.inputs[reminderName].Value())

	m.Update(keyOf(tea.KeyTab))
	m.Update(keyOf(tea.KeyTab))
	m.Update(keyOf(tea.KeyRight))
	assert.Equal(t, "1 week", m.reminderForm.inputs[reminderBefore].Value())

	_, cmd = m.Update(keyOf(tea.KeyEnter))
	done, ok := findMsg[childDoneMsg](drain(t, cmd))
	require.True(t, ok)
	assert.Equal(t, app.MsgReminderUpdated, done.success)

	_, cmd = m.Update(done)
	assert.False(t, m.editor.ShowReminderForm)
	_, reloaded := findMsg[itemLoadedMsg](drain(t, cmd))
	assert.True(t, reloaded)
}

func TestItemModel_DownloadReportsSize(t *testing.T) {
	f := newItemFixture()
	f.open(t, existingItem)
	m := f.model

	m.Update(keyOf(tea.KeyTab))
	_, cmd := m.Update(runes("o"))
	done, ok := findMsg[downloadDoneMsg](drain(t, cmd))
	require.True(t, ok)

	m.Update(done)
	assert.Equal(t, "Saved /tmp/quote.pdf (2.0 KiB)", m.notice.Text)
}

func TestItemModel_CopyLink(t *testing.T) {
	f := newItemFixture()
	f.open(t, existingItem)
	m := f.model

	var copied string
	m.writeClip = func(s string) error {
		copied = s
		return nil
	}

	_, cmd := m.Update(runes("c"))
	msg, ok := findMsg[copiedMsg](drain(t, cmd))
	require.True(t, ok)
	m.Update(msg)

	assert.Equal(t, "http://app"+utils.ItemPath(1, 10), copied)
	assert.Equal(t, app.MsgLinkCopied, m.notice.Text)

	m.Update(copiedMsg{err: fmt.Errorf("no clipboard utility")})
	assert.Equal(t, app.MsgClipboardFailed, m.notice.Text)
	assert.Equal(t, state.LevelError, m.notice.Level)
}

func TestItemModel_ExpiredSessionGoesToLogin(t *testing.T) {
	f := newItemFixture()
	f.open(t, existingItem)

	_, cmd := f.model.Update(childDoneMsg{err: service.ErrSessionExpired, fallback: app.MsgReminderAddFailed})
	nav, ok := findMsg[NavigateTo](drain(t, cmd))
	require.True(t, ok)
	assert.Equal(t, pageLogin, nav.Page)
}

func TestFileRef(t *testing.T) {
	dir := t.TempDir()

	_, err := fileRef(dir)
	assert.ErrorContains(t, err, "is a directory")

	_, err = fileRef(dir + "/missing.pdf")
	assert.ErrorContains(t, err, "cannot read file")
}
