package tui

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/salestrak-pa/internal/app"
	"github.com/MKhiriev/salestrak-pa/internal/service"
	"github.com/MKhiriev/salestrak-pa/internal/state"
	"github.com/MKhiriev/salestrak-pa/internal/utils"
	"github.com/MKhiriev/salestrak-pa/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDashboardData() models.DashboardData {
	return models.DashboardData{
		User: &models.User{Email: "rep@example.com"},
		Groups: []models.HeaderGroup{
			{HeaderID: 1, HeaderName: "Leads", Items: []models.Item{
				{ID: 10, Title: "Acme renewal"},
				{ID: 11, Title: "Globex pilot"},
			}},
		},
		Reminders: []models.Reminder{
			{ID: 1, Name: "Call back", Date: "2026-03-12", HeaderID: 1, ItemID: 10},
			{ID: 2, Name: "Send quote", Date: "2026-03-07", HeaderID: 1, ItemID: 11},
		},
		Documents: []models.Document{{ID: 5, Name: "Acme quote", HeaderID: 1, ItemID: 10}},
	}
}

func newTestDashboardModel(auth *fakeAuth, data models.DashboardData, search *fakeSearch) *DashboardModel {
	m := NewDashboardModel(context.Background(), &fakeDashboard{data: data}, search, auth)
	m.now = func() time.Time { return fixedNow }
	return m
}

func loaded(t *testing.T, m *DashboardModel) {
	t.Helper()
	msg, ok := findMsg[dashboardLoadedMsg](drain(t, m.Init()))
	require.True(t, ok)
	require.True(t, m.state.Loading.Any())
	m.Update(msg)
	require.False(t, m.state.Loading.Any())
}

func TestDashboardModel_ShowsPanes(t *testing.T) {
	m := newTestDashboardModel(&fakeAuth{}, testDashboardData(), &fakeSearch{})
	loaded(t, m)

	view := m.View()
	assert.Contains(t, view, "Welcome, rep@example.com")
	assert.Contains(t, view, "Globex pilot")
	assert.Contains(t, view, "Call back · in 2 days")
	assert.Contains(t, view, "Send quote · expired 3 days ago")
	assert.Contains(t, view, "Enter a search term")
}

func TestDashboardModel_EmptyStates(t *testing.T) {
	m := newTestDashboardModel(&fakeAuth{}, models.DashboardData{}, &fakeSearch{})
	loaded(t, m)

	view := m.View()
	assert.Contains(t, view, "No items yet")
	assert.Contains(t, view, "No reminders")
}

func TestDashboardModel_EnterOpensMostRecentItem(t *testing.T) {
	m := newTestDashboardModel(&fakeAuth{}, testDashboardData(), &fakeSearch{})
	loaded(t, m)

	_, cmd := m.Update(keyOf(tea.KeyEnter))
	nav, ok := findMsg[NavigateTo](drain(t, cmd))
	require.True(t, ok)
	assert.Equal(t, pageItem, nav.Page)
	assert.Equal(t, OpenItem{EncodedHeaderID: utils.EncodeID(1), EncodedItemID: utils.EncodeID(11)}, nav.Payload)
}

func TestDashboardModel_SeeMoreToggle(t *testing.T) {
	data := models.DashboardData{Groups: []models.HeaderGroup{{HeaderID: 1, HeaderName: "Leads"}}}
	for i := 1; i <= 7; i++ {
		data.Groups[0].Items = append(data.Groups[0].Items, models.Item{ID: int64(i), Title: fmt.Sprintf("Deal %d", i)})
	}
	m := newTestDashboardModel(&fakeAuth{}, data, &fakeSearch{})
	loaded(t, m)

	assert.Contains(t, m.View(), "see more (2 more)")
	assert.NotContains(t, m.View(), "Deal 1")

	m.Update(runes("m"))
	assert.Contains(t, m.View(), "Deal 1")
	assert.Contains(t, m.View(), "see less")
}

func TestDashboardModel_TypeaheadDropsStaleResponses(t *testing.T) {
	search := &fakeSearch{items: []models.SearchOption{{ID: 11, HeaderID: 1, Label: "Globex pilot", Kind: models.SearchKindItem}}}
	m := newTestDashboardModel(&fakeAuth{}, testDashboardData(), search)
	loaded(t, m)

	m.Update(runes("/"))
	require.True(t, m.typing)

	_, first := m.Update(runes("g"))
	_, second := m.Update(runes("l"))
	assert.Equal(t, "gl", m.state.SearchTerm)

	latest, ok := findMsg[typeaheadMsg](drain(t, second))
	require.True(t, ok)
	stale, ok := findMsg[typeaheadMsg](drain(t, first))
	require.True(t, ok)
	require.Less(t, stale.seq, latest.seq)

	m.Update(latest)
	stale.options = []models.SearchOption{{Label: "stale"}}
	m.Update(stale)

	require.Len(t, m.state.Options, 1)
	assert.Equal(t, "Globex pilot", m.state.Options[0].Label)
	assert.Contains(t, m.View(), "Suggested item: Globex pilot")
}

func TestDashboardModel_ClientFilter(t *testing.T) {
	m := newTestDashboardModel(&fakeAuth{}, testDashboardData(), &fakeSearch{})
	loaded(t, m)

	m.Update(runes("/"))
	m.Update(runes("acme"))
	m.Update(keyOf(tea.KeyEnter))
	assert.False(t, m.typing)

	view := m.View()
	assert.Contains(t, view, "Item: Acme renewal")
	assert.Contains(t, view, "Document: Acme quote")
	assert.NotContains(t, view, "Item: Globex pilot")
}

func TestDashboardModel_LogoutAsksForConfirmation(t *testing.T) {
	auth := &fakeAuth{}
	m := newTestDashboardModel(auth, testDashboardData(), &fakeSearch{})
	loaded(t, m)

	m.Update(runes("L"))
	require.NotNil(t, m.confirm)
	assert.Contains(t, m.View(), "log out")

	m.Update(runes("n"))
	assert.Nil(t, m.confirm)
	assert.Zero(t, auth.logoutCalls)

	m.Update(runes("L"))
	_, cmd := m.Update(runes("y"))
	done, ok := findMsg[logoutDoneMsg](drain(t, cmd))
	require.True(t, ok)
	assert.Equal(t, 1, auth.logoutCalls)

	_, cmd = m.Update(done)
	nav, ok := findMsg[NavigateTo](drain(t, cmd))
	require.True(t, ok)
	assert.Equal(t, pageLogin, nav.Page)
	assert.Equal(t, app.MsgLoggedOut, nav.Payload.(Notice).Notification.Text)
	assert.Nil(t, m.state.User)
}

func TestDashboardModel_PartialFailureKeepsOtherPanes(t *testing.T) {
	m := newTestDashboardModel(&fakeAuth{}, testDashboardData(), &fakeSearch{})
	loaded(t, m)

	m.Update(DashboardRefreshed{Data: models.DashboardData{
		User:   &models.User{Email: "rep@example.com"},
		Groups: []models.HeaderGroup{},
		Errs:   map[string]error{models.ResourceReminders: fmt.Errorf("boom")},
	}})

	assert.Len(t, m.state.Reminders, 2)
	assert.Equal(t, state.LevelWarning, m.notice.Level)
	assert.Contains(t, m.View(), "Could not load reminders")
}

func TestDashboardModel_ExpiredSessionGoesToLogin(t *testing.T) {
	m := newTestDashboardModel(&fakeAuth{}, testDashboardData(), &fakeSearch{})
	loaded(t, m)

	_, cmd := m.Update(DashboardRefreshed{Data: models.DashboardData{
		Errs: map[string]error{models.ResourceUser: service.ErrSessionExpired},
	}})

	nav, ok := findMsg[NavigateTo](drain(t, cmd))
	require.True(t, ok)
	assert.Equal(t, pageLogin, nav.Page)
	assert.Equal(t, app.MsgSessionExpired, nav.Payload.(Notice).Notification.Text)
	assert.Empty(t, m.state.Groups)
}
