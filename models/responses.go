package models

// APIError is the JSON error body the backend sends with non-2xx responses.
type APIError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Text returns the first non-empty message of the error body.
func (e APIError) Text() string {
	if e.Error != "" {
		return e.Error
	}
	return e.Message
}

// DashboardData is the result of the dashboard fan-out. Each collection is
// filled independently; Errs holds the failures keyed by resource name.
type DashboardData struct {
	User      *User
	Groups    []HeaderGroup
	Reminders []Reminder
	Documents []Document
	Errs      map[string]error
}

// Dashboard resource names used as keys of DashboardData.Errs.
const (
	ResourceUser      = "user"
	ResourceItems     = "items"
	ResourceReminders = "reminders"
	ResourceDocuments = "documents"
)
