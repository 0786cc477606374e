package tui

import (
	"github.com/MKhiriev/salestrak-pa/internal/state"
	"github.com/MKhiriev/salestrak-pa/models"
)

// Page names registered in the router.
const (
	pageMenu      = "menu"
	pageLogin     = "login"
	pageRegister  = "register"
	pageReset     = "reset"
	pageDashboard = "dashboard"
	pageItem      = "item"
)

// NavigateTo switches the active page. Payload, when set, is delivered to the
// new page right after its Init command.
type NavigateTo struct {
	Page    string
	Payload any
}

// Notice carries a notification into the page being opened. Email, when
// set, pre-fills the email field of an auth page.
type Notice struct {
	Notification state.Notification
	Email        string
}

// OpenItem opens the item editor. Empty encoded ids open a brand-new item.
type OpenItem struct {
	EncodedHeaderID string
	EncodedItemID   string
}

// DashboardRefreshed delivers the result of a background dashboard reload.
type DashboardRefreshed struct {
	Data models.DashboardData
}

type lastEmailMsg struct {
	email string
}

type authDoneMsg struct {
	mode    state.AuthMode
	user    *models.User
	message string
	err     error
}

type dashboardLoadedMsg struct {
	data models.DashboardData
}

type typeaheadMsg struct {
	seq     uint64
	options []models.SearchOption
	err     error
}

type logoutDoneMsg struct {
	err error
}

type itemLoadedMsg struct {
	details   models.ItemDetails
	headers   []models.Header
	leadTimes []models.LeadTime
	isNew     bool
	err       error
	// warn is a failure of the header or lead time lookups, which do
	// not prevent the item from being shown.
	warn error
}

type itemSavedMsg struct {
	saved models.ItemSaved
	isNew bool
	err   error
}

type itemDeletedMsg struct {
	err error
}

type headerAddedMsg struct {
	header models.Header
	err    error
}

type reminderFetchedMsg struct {
	reminder models.Reminder
	err      error
}

// childDoneMsg reports a reminder or document mutation of the item editor.
type childDoneMsg struct {
	success  string
	fallback string
	removed  int64
	kind     childKind
	err      error
}

type downloadDoneMsg struct {
	path string
	size int64
	err  error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
