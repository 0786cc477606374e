package state

import (
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/salestrak-pa/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboard_ApplyLoadClearsFlagsOnPartialFailure(t *testing.T) {
	d := NewDashboard()
	d.StartLoading()
	require.True(t, d.Loading.Any())

	d.ApplyLoad(models.DashboardData{
		User:      &models.User{Email: "a@b.c"},
		Groups:    []models.HeaderGroup{{HeaderID: 1, Items: []models.Item{{ID: 1}}}},
		Documents: []models.Document{{ID: 3}},
		Errs:      map[string]error{models.ResourceReminders: errors.New("boom")},
	})

	assert.False(t, d.Loading.Any())
	assert.Len(t, d.Groups, 1)
	assert.Len(t, d.Documents, 1)
	assert.Empty(t, d.Reminders)
	assert.Equal(t, "Welcome, a@b.c", d.Welcome())
}

func TestDashboard_FailedResourceKeepsPreviousValue(t *testing.T) {
	d := NewDashboard()
	d.ApplyLoad(models.DashboardData{Reminders: []models.Reminder{{ID: 1}}})

	d.StartLoading()
	d.ApplyLoad(models.DashboardData{Errs: map[string]error{models.ResourceReminders: errors.New("boom")}})

	assert.Equal(t, []models.Reminder{{ID: 1}}, d.Reminders)
}

func TestDashboard_TypeaheadDiscardsStaleResponses(t *testing.T) {
	d := NewDashboard()
	d.SetSearchTerm("a")
	first := d.BeginTypeahead()
	d.SetSearchTerm("ac")
	second := d.BeginTypeahead()

	assert.True(t, d.ApplyTypeahead(second, []models.SearchOption{{ID: 2, Label: "Acme"}}))
	assert.False(t, d.ApplyTypeahead(first, []models.SearchOption{{ID: 1, Label: "Apex"}}))
	assert.Equal(t, []models.SearchOption{{ID: 2, Label: "Acme"}}, d.Options)
}

func TestDashboard_ClearingTermDropsOptions(t *testing.T) {
	d := NewDashboard()
	d.SetSearchTerm("ac")
	seq := d.BeginTypeahead()
	d.SetSearchTerm("")

	assert.False(t, d.ApplyTypeahead(seq, []models.SearchOption{{ID: 1}}))
	assert.Nil(t, d.Options)
	assert.Nil(t, d.FilteredItems())
	assert.Nil(t, d.FilteredDocuments())
}

func TestDashboard_DerivedViews(t *testing.T) {
	d := NewDashboard()
	var items []models.Item
	for i := 1; i <= 7; i++ {
		items = append(items, models.Item{ID: int64(i), Title: "Item"})
	}
	d.ApplyLoad(models.DashboardData{
		Groups:    []models.HeaderGroup{{HeaderID: 1, HeaderName: "Clients", Items: items}},
		Reminders: []models.Reminder{{ID: 1, Date: "2000-01-01"}},
	})

	assert.Equal(t, 2, d.Items().Hidden)
	d.ToggleShowAll()
	assert.Equal(t, 0, d.Items().Hidden)

	p := d.ReminderPartition(time.Now())
	assert.Len(t, p.Expired, 1)

	d.SetSearchTerm("CLIENTS")
	assert.Len(t, d.FilteredItems(), 7)
}

func TestDashboard_WelcomeWithoutUser(t *testing.T) {
	assert.Equal(t, "Welcome", NewDashboard().Welcome())
}
