package tui

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/salestrak-pa/internal/validators"
	"github.com/MKhiriev/salestrak-pa/models"
	tea "github.com/charmbracelet/bubbletea"
)

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)

// drain runs cmd and returns the messages it produced. Batches are
// flattened; commands that do not answer quickly, such as ticks, are
// skipped.
func drain(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}

	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()

	select {
	case msg := <-ch:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, drain(t, c)...)
			}
			return out
		}
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	case <-time.After(200 * time.Millisecond):
		return nil
	}
}

func findMsg[T any](msgs []tea.Msg) (T, bool) {
	for _, msg := range msgs {
		if v, ok := msg.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyOf(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

type fakeAuth struct {
	user        *models.User
	loginErr    error
	message     string
	logoutCalls int
	lastEmail   string
	lastLogin   models.LoginRequest
}

func (f *fakeAuth) Login(_ context.Context, req models.LoginRequest) (*models.User, error) {
	f.lastLogin = req
	return f.user, f.loginErr
}

func (f *fakeAuth) Register(ctx context.Context, form models.RegistrationForm) (string, error) {
	if err := validators.NewFormValidator().Validate(ctx, form); err != nil {
		return "", err
	}
	return f.message, nil
}

func (f *fakeAuth) ResetPassword(ctx context.Context, form models.PasswordResetForm) (string, error) {
	if err := validators.NewFormValidator().Validate(ctx, form); err != nil {
		return "", err
	}
	return f.message, nil
}

func (f *fakeAuth) Me(context.Context) (*models.User, error) { return f.user, nil }

func (f *fakeAuth) Logout(context.Context) error {
	f.logoutCalls++
	return nil
}

func (f *fakeAuth) RestoreSession(context.Context) (*models.User, error) { return f.user, nil }

func (f *fakeAuth) LastEmail(context.Context) string { return f.lastEmail }

type fakeDashboard struct {
	data models.DashboardData
}

func (f *fakeDashboard) Load(context.Context) models.DashboardData { return f.data }

type fakeSearch struct {
	items []models.SearchOption
	docs  []models.SearchOption
}

func (f *fakeSearch) SearchItems(context.Context, string) ([]models.SearchOption, error) {
	return f.items, nil
}

func (f *fakeSearch) SearchDocuments(context.Context, string) ([]models.SearchOption, error) {
	return f.docs, nil
}

type fakeItems struct {
	details   models.ItemDetails
	headers   []models.Header
	leadTimes []models.LeadTime
	getErr    error
	deleted   []int64
	saved     []models.ItemForm
}

func (f *fakeItems) Headers(context.Context) ([]models.Header, error) { return f.headers, nil }

func (f *fakeItems) AddHeader(_ context.Context, name string) (models.Header, error) {
	return models.Header{ID: 99, HeaderName: name}, nil
}

func (f *fakeItems) Get(context.Context, string, string) (models.ItemDetails, error) {
	return f.details, f.getErr
}

func (f *fakeItems) Save(_ context.Context, form models.ItemForm) (models.ItemSaved, string, error) {
	f.saved = append(f.saved, form)
	return models.ItemSaved{HeaderID: form.HeaderID, ItemID: 42}, "", nil
}

func (f *fakeItems) Delete(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeItems) LeadTimes(context.Context) ([]models.LeadTime, error) { return f.leadTimes, nil }

type fakeReminders struct {
	deleted []int64
}

func (f *fakeReminders) Add(context.Context, int64, int64, models.ReminderForm) error { return nil }

func (f *fakeReminders) Edit(_ context.Context, id int64) (models.Reminder, error) {
	return models.Reminder{ID: id, Name: "Call back", Date: "2026-03-12", AlertBefore: "1 day"}, nil
}

func (f *fakeReminders) Update(context.Context, models.ReminderForm) error { return nil }

func (f *fakeReminders) Delete(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeDocuments struct{}

func (fakeDocuments) Save(context.Context, models.DocumentUpload) error { return nil }

func (fakeDocuments) Delete(context.Context, int64) error { return nil }

func (fakeDocuments) Download(context.Context, int64, string) (string, int64, error) {
	return "/tmp/quote.pdf", 2048, nil
}

func (fakeDocuments) DownloadURL(id int64) string { return "http://backend/download/7" }
