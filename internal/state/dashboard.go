package state

import (
	"strings"
	"time"

	"github.com/MKhiriev/salestrak-pa/internal/view"
	"github.com/MKhiriev/salestrak-pa/models"
)

// Loading tracks the in-flight dashboard fetches per resource.
type Loading struct {
	User      bool
	Items     bool
	Reminders bool
	Documents bool
}

// Any reports whether at least one fetch is still running.
func (l Loading) Any() bool {
	return l.User || l.Items || l.Reminders || l.Documents
}

// Dashboard is the state of the dashboard screen.
type Dashboard struct {
	User      *models.User
	Groups    []models.HeaderGroup
	Reminders []models.Reminder
	Documents []models.Document

	// Errs keeps the failures of the last load by resource name.
	Errs    map[string]error
	Loading Loading

	SearchTerm   string
	ShowAllItems bool

	// Options are the server typeahead suggestions for SearchTerm.
	Options []models.SearchOption

	typeaheadSeq uint64
}

// NewDashboard returns an empty dashboard.
func NewDashboard() *Dashboard {
	return &Dashboard{
		Groups:    []models.HeaderGroup{},
		Reminders: []models.Reminder{},
		Documents: []models.Document{},
	}
}

// StartLoading raises every loading flag.
func (d *Dashboard) StartLoading() {
	d.Loading = Loading{User: true, Items: true, Reminders: true, Documents: true}
}

// ApplyLoad stores the outcome of a dashboard load. Every loading flag is
// cleared whatever failed. A failed resource keeps its previous value.
func (d *Dashboard) ApplyLoad(data models.DashboardData) {
	d.Loading = Loading{}
	d.Errs = data.Errs

	if d.Errs[models.ResourceUser] == nil {
		d.User = data.User
	}
	if d.Errs[models.ResourceItems] == nil && data.Groups != nil {
		d.Groups = data.Groups
	}
	if d.Errs[models.ResourceReminders] == nil && data.Reminders != nil {
		d.Reminders = data.Reminders
	}
	if d.Errs[models.ResourceDocuments] == nil && data.Documents != nil {
		d.Documents = data.Documents
	}
}

// SetSearchTerm updates the free-text term. Clearing the term drops the
// typeahead suggestions and invalidates any pending typeahead response.
func (d *Dashboard) SetSearchTerm(term string) {
	d.SearchTerm = term
	if strings.TrimSpace(term) == "" {
		d.Options = nil
		d.typeaheadSeq++
	}
}

// ToggleShowAll flips the "see more" switch of the item pane.
func (d *Dashboard) ToggleShowAll() {
	d.ShowAllItems = !d.ShowAllItems
}

// BeginTypeahead registers a new typeahead request and returns its sequence
// number.
func (d *Dashboard) BeginTypeahead() uint64 {
	d.typeaheadSeq++
	return d.typeaheadSeq
}

// ApplyTypeahead stores the suggestions of request seq. Responses of any
// request other than the latest one are discarded and false is returned.
func (d *Dashboard) ApplyTypeahead(seq uint64, options []models.SearchOption) bool {
	if seq != d.typeaheadSeq {
		return false
	}
	d.Options = options
	return true
}

// Items returns the item pane grouped by header.
func (d *Dashboard) Items() view.GroupedItems {
	return view.GroupItems(d.Groups, d.ShowAllItems)
}

// ReminderPartition splits the reminders around the local day of now.
func (d *Dashboard) ReminderPartition(now time.Time) view.ReminderPartition {
	return view.PartitionReminders(d.Reminders, now)
}

// FilteredItems returns the items matching SearchTerm, or nil for an empty
// term.
func (d *Dashboard) FilteredItems() []models.Item {
	return view.FilterItems(d.Groups, d.SearchTerm)
}

// FilteredDocuments returns the documents matching SearchTerm, or nil for an
// empty term.
func (d *Dashboard) FilteredDocuments() []models.Document {
	return view.FilterDocuments(d.Documents, d.SearchTerm)
}

// Welcome is the greeting line shown above the panes.
func (d *Dashboard) Welcome() string {
	if d.User == nil || d.User.Email == "" {
		return "Welcome"
	}
	return "Welcome, " + d.User.Email
}
