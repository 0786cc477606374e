package service

import (
	"context"
	"time"

	"github.com/MKhiriev/salestrak-pa/models"
)

// ClientAuthService defines the client-side contract for registration,
// authentication and the lifetime of the cookie session. Every form is
// validated before any request is sent.
type ClientAuthService interface {
	// Login validates req, authenticates against the backend and persists
	// the resulting session cookies together with the email, so that the
	// next start can restore the session and pre-fill the login form.
	// Returns the user reported by the backend. When the backend omits it
	// and the follow-up /me call fails for any reason other than an
	// expired session, Login returns (nil, nil): the user is signed in and
	// the dashboard fetches the profile itself.
	Login(ctx context.Context, req models.LoginRequest) (*models.User, error)

	// Register validates the form (including the password policy and the
	// accepted terms) and creates the account. Returns the server message.
	Register(ctx context.Context, form models.RegistrationForm) (string, error)

	// ResetPassword validates the form and sets a new password for the
	// email. Returns the server message.
	ResetPassword(ctx context.Context, form models.PasswordResetForm) (string, error)

	// Me returns the signed-in user, or nil when the session carries none.
	Me(ctx context.Context) (*models.User, error)

	// Logout ends the server session and always forgets the local one. A
	// failing server call is logged and does not keep the user signed in.
	Logout(ctx context.Context) error

	// RestoreSession loads the saved cookies and asks the backend who they
	// belong to. Returns ErrNoStoredSession when nothing usable was saved.
	RestoreSession(ctx context.Context) (*models.User, error)

	// LastEmail returns the email of the last successful login, or "".
	LastEmail(ctx context.Context) string
}

// ClientDashboardService loads everything the dashboard shows.
type ClientDashboardService interface {
	// Load fetches the user, the grouped items, the reminders and the
	// documents concurrently. Each result is kept independently: a failing
	// fetch is recorded in DashboardData.Errs and never aborts the others.
	Load(ctx context.Context) models.DashboardData
}

// ClientItemService defines item and header operations.
type ClientItemService interface {
	// Headers lists every header.
	Headers(ctx context.Context) ([]models.Header, error)

	// AddHeader creates a header. A blank name is ignored and yields a zero
	// header and no error. A taken name yields ErrAlreadyExists.
	AddHeader(ctx context.Context, name string) (models.Header, error)

	// Get decodes the obfuscated identifiers of an item link and fetches
	// the item with its reminders and documents.
	Get(ctx context.Context, encodedHeaderID, encodedItemID string) (models.ItemDetails, error)

	// Save validates the form and creates or updates the item. For a new
	// item the returned path is the obfuscated item link; for an update it
	// is empty.
	Save(ctx context.Context, form models.ItemForm) (models.ItemSaved, string, error)

	// Delete removes the item.
	Delete(ctx context.Context, itemID int64) error

	// LeadTimes lists the "alert before" options for reminders.
	LeadTimes(ctx context.Context) ([]models.LeadTime, error)
}

// ClientReminderService defines reminder operations of the item editor.
type ClientReminderService interface {
	// Add validates the form and creates a reminder for the item.
	Add(ctx context.Context, headerID, itemID int64, form models.ReminderForm) error

	// Edit fetches a reminder for editing.
	Edit(ctx context.Context, id int64) (models.Reminder, error)

	// Update validates the form and saves the reminder form.EditingID.
	Update(ctx context.Context, form models.ReminderForm) error

	// Delete removes a reminder.
	Delete(ctx context.Context, id int64) error
}

// ClientDocumentService defines document operations of the item editor.
type ClientDocumentService interface {
	// Save validates the upload and creates the document, or updates
	// upload.EditingID when it is set. Kind and size are checked before
	// anything is sent.
	Save(ctx context.Context, upload models.DocumentUpload) error

	// Delete removes a document.
	Delete(ctx context.Context, id int64) error

	// Download streams the stored file of document id into dir and returns
	// the written path and the number of bytes written.
	Download(ctx context.Context, id int64, dir string) (string, int64, error)

	// DownloadURL returns the absolute download address of document id.
	DownloadURL(id int64) string
}

// ClientSearchService runs the server-side typeahead lookups.
type ClientSearchService interface {
	SearchItems(ctx context.Context, term string) ([]models.SearchOption, error)
	SearchDocuments(ctx context.Context, term string) ([]models.SearchOption, error)
}

// ClientRefreshJob defines the contract for a background worker that
// periodically reloads the dashboard.
type ClientRefreshJob interface {
	// Start launches the background refresh goroutine. It reloads every
	// interval, defaulting to DefaultRefreshInterval if interval is zero or
	// negative, and hands each result to onLoad. Any previously running job
	// is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration, onLoad func(models.DashboardData))

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}

// AppInfoService reports build metadata for the version overlay.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
