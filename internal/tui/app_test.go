package tui

import (
	"testing"

	"github.com/MKhiriev/salestrak-pa/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingPage remembers the messages it was given.
type recordingPage struct {
	name  string
	inits int
	got   []tea.Msg
}

func (p *recordingPage) Init() tea.Cmd {
	p.inits++
	return nil
}

func (p *recordingPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	p.got = append(p.got, msg)
	return p, nil
}

func (p *recordingPage) View() string { return p.name }

func newTestRoot(start string) (RootModel, map[string]*recordingPage) {
	recs := map[string]*recordingPage{
		pageMenu:      {name: pageMenu},
		pageLogin:     {name: pageLogin},
		pageDashboard: {name: pageDashboard},
	}
	pages := make(map[string]tea.Model, len(recs))
	for k, v := range recs {
		pages[k] = v
	}
	return NewRootModel(pages, start, "1.2.3", models.NewAppBuildInfo("1.2.3", "2026-01-01", "abc123")), recs
}

func TestRootModel_NavigateInitsPageAndDeliversPayload(t *testing.T) {
	root, recs := newTestRoot(pageMenu)

	notice := Notice{Email: "a@b.c"}
	updated, cmd := root.Update(NavigateTo{Page: pageLogin, Payload: notice})
	r := updated.(RootModel)

	assert.Equal(t, pageLogin, r.currentPage)
	assert.Equal(t, 1, recs[pageLogin].inits)

	msgs := drain(t, cmd)
	got, ok := findMsg[Notice](msgs)
	require.True(t, ok)
	assert.Equal(t, "a@b.c", got.Email)
}

func TestRootModel_UnknownPageIsIgnored(t *testing.T) {
	root, _ := newTestRoot(pageMenu)

	updated, cmd := root.Update(NavigateTo{Page: "nowhere"})
	assert.Nil(t, cmd)
	assert.Equal(t, pageMenu, updated.(RootModel).currentPage)
}

func TestRootModel_VersionOverlayOnlyOnMenu(t *testing.T) {
	root, recs := newTestRoot(pageMenu)

	updated, _ := root.Update(runes("v"))
	r := updated.(RootModel)
	assert.True(t, r.showBuildInfo)
	assert.Contains(t, r.View(), "1.2.3")
	assert.Contains(t, r.View(), "abc123")

	updated, _ = r.Update(keyOf(tea.KeyEsc))
	r = updated.(RootModel)
	assert.False(t, r.showBuildInfo)

	dash, _ := newTestRoot(pageDashboard)
	updated, _ = dash.Update(runes("v"))
	assert.False(t, updated.(RootModel).showBuildInfo)
	assert.Empty(t, recs[pageMenu].got)
}

func TestRootModel_RefreshOnlyReachesVisibleDashboard(t *testing.T) {
	root, recs := newTestRoot(pageLogin)

	updated, _ := root.Update(DashboardRefreshed{})
	assert.Empty(t, recs[pageLogin].got)
	assert.Empty(t, recs[pageDashboard].got)

	updated, _ = updated.Update(NavigateTo{Page: pageDashboard})
	updated.Update(DashboardRefreshed{})
	require.Len(t, recs[pageDashboard].got, 1)
}

func TestRootModel_CtrlCQuits(t *testing.T) {
	root, _ := newTestRoot(pageMenu)

	_, cmd := root.Update(keyOf(tea.KeyCtrlC))
	msgs := drain(t, cmd)
	_, ok := findMsg[tea.QuitMsg](msgs)
	assert.True(t, ok)
}
