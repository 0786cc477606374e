package tui

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/salestrak-pa/internal/app"
	"github.com/MKhiriev/salestrak-pa/internal/service"
	"github.com/MKhiriev/salestrak-pa/internal/state"
	"github.com/MKhiriev/salestrak-pa/internal/utils"
	"github.com/MKhiriev/salestrak-pa/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type dashboardPane int

const (
	paneItems dashboardPane = iota
	paneReminders
	paneSearch
	paneCount
)

// dashboardRow is a selectable line of a pane. Rows without both ids are
// shown but cannot be opened.
type dashboardRow struct {
	label    string
	headerID int64
	itemID   int64
}

func (r dashboardRow) openable() bool {
	return r.headerID > 0 && r.itemID > 0
}

// DashboardModel shows the items, the reminders and the search pane of the
// signed-in user.
type DashboardModel struct {
	ctx       context.Context
	dashboard service.ClientDashboardService
	search    service.ClientSearchService
	auth      service.ClientAuthService

	state   *state.Dashboard
	pane    dashboardPane
	cursors [paneCount]int

	searchInput textinput.Model
	typing      bool

	confirm *confirmModel
	notice  state.Notification
	now     func() time.Time
}

func NewDashboardModel(ctx context.Context, dashboard service.ClientDashboardService, search service.ClientSearchService, auth service.ClientAuthService) *DashboardModel {
	in := textinput.New()
	in.Placeholder = "search items and documents"
	in.CharLimit = 100
	in.Width = 40

	return &DashboardModel{
		ctx:         ctx,
		dashboard:   dashboard,
		search:      search,
		auth:        auth,
		state:       state.NewDashboard(),
		searchInput: in,
		now:         time.Now,
	}
}

// Init reloads everything on every visit. Data already shown stays visible
// until the new results arrive.
func (m *DashboardModel) Init() tea.Cmd {
	m.confirm = nil
	return m.cmdLoad()
}

func (m *DashboardModel) cmdLoad() tea.Cmd {
	m.state.StartLoading()
	ctx := m.ctx
	dashboard := m.dashboard
	return func() tea.Msg {
		return dashboardLoadedMsg{data: dashboard.Load(ctx)}
	}
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case Notice:
		m.notice = msg.Notification
		return m, cmdClearStatus()

	case clearStatusMsg:
		return m, nil

	case dashboardLoadedMsg:
		return m.applyLoad(msg.data)

	case DashboardRefreshed:
		return m.applyLoad(msg.Data)

	case typeaheadMsg:
		if isSessionExpired(msg.err) {
			return m, m.sessionExpired()
		}
		m.state.ApplyTypeahead(msg.seq, msg.options)
		return m, nil

	case logoutDoneMsg:
		m.resetState()
		n := state.Success(app.MsgLoggedOut, m.now())
		if msg.err != nil {
			n = state.Warning(errorText(msg.err, app.MsgGenericError), m.now())
		}
		return m, navigate(pageLogin, Notice{Notification: n})

	case tea.KeyMsg:
		if m.confirm != nil {
			closed, cmd := m.confirm.handle(msg)
			if closed {
				m.confirm = nil
			}
			return m, cmd
		}
		if m.typing {
			return m.updateSearch(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *DashboardModel) applyLoad(data models.DashboardData) (tea.Model, tea.Cmd) {
	for _, err := range data.Errs {
		if isSessionExpired(err) {
			return m, m.sessionExpired()
		}
	}

	m.state.ApplyLoad(data)
	m.clampCursors()

	if len(data.Errs) == 0 {
		return m, nil
	}
	failed := make([]string, 0, len(data.Errs))
	for resource := range data.Errs {
		failed = append(failed, resource)
	}
	slices.Sort(failed)
	m.notice = state.Warning("Could not load "+strings.Join(failed, ", "), m.now())
	return m, cmdClearStatus()
}

func (m *DashboardModel) sessionExpired() tea.Cmd {
	m.resetState()
	return navigate(pageLogin, Notice{Notification: state.Warning(app.MsgSessionExpired, m.now())})
}

func (m *DashboardModel) resetState() {
	m.state = state.NewDashboard()
	m.cursors = [paneCount]int{}
	m.pane = paneItems
	m.typing = false
	m.searchInput.SetValue("")
	m.searchInput.Blur()
	m.confirm = nil
}

func (m *DashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.tab):
		m.pane = (m.pane + 1) % paneCount
	case key.Matches(msg, keys.backtab):
		m.pane = (m.pane + paneCount - 1) % paneCount
	case key.Matches(msg, keys.up):
		if m.cursors[m.pane] > 0 {
			m.cursors[m.pane]--
		}
	case key.Matches(msg, keys.down):
		if m.cursors[m.pane] < len(m.rows(m.pane))-1 {
			m.cursors[m.pane]++
		}
	case key.Matches(msg, keys.enter):
		return m, m.openSelected()
	case key.Matches(msg, keys.newItem):
		return m, navigate(pageItem, OpenItem{})
	case key.Matches(msg, keys.refresh):
		return m, m.cmdLoad()
	case key.Matches(msg, keys.seeMore):
		m.state.ToggleShowAll()
		m.clampCursors()
	case key.Matches(msg, keys.search):
		m.pane = paneSearch
		m.typing = true
		return m, m.searchInput.Focus()
	case key.Matches(msg, keys.logout):
		m.confirm = &confirmModel{
			message: "Are you sure you want to log out?",
			onYes:   m.cmdLogout,
		}
	}
	return m, nil
}

func (m *DashboardModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "tab":
		m.typing = false
		m.searchInput.Blur()
		return m, nil
	}

	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	term := m.searchInput.Value()
	if term == before {
		return m, cmd
	}

	m.state.SetSearchTerm(term)
	m.cursors[paneSearch] = 0
	if strings.TrimSpace(term) == "" {
		return m, cmd
	}
	return m, tea.Batch(cmd, m.cmdTypeahead(m.state.BeginTypeahead(), term))
}

func (m *DashboardModel) cmdTypeahead(seq uint64, term string) tea.Cmd {
	ctx := m.ctx
	search := m.search
	return func() tea.Msg {
		items, itemsErr := search.SearchItems(ctx, term)
		docs, docsErr := search.SearchDocuments(ctx, term)

		err := itemsErr
		if err == nil {
			err = docsErr
		}
		return typeaheadMsg{seq: seq, options: append(items, docs...), err: err}
	}
}

func (m *DashboardModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	auth := m.auth
	return func() tea.Msg {
		return logoutDoneMsg{err: auth.Logout(ctx)}
	}
}

func (m *DashboardModel) openSelected() tea.Cmd {
	rows := m.rows(m.pane)
	idx := m.cursors[m.pane]
	if idx < 0 || idx >= len(rows) {
		return nil
	}

	row := rows[idx]
	if !row.openable() {
		m.notice = state.Warning("This entry is not linked to an item", m.now())
		return cmdClearStatus()
	}
	return navigate(pageItem, OpenItem{
		EncodedHeaderID: utils.EncodeID(row.headerID),
		EncodedItemID:   utils.EncodeID(row.itemID),
	})
}

func (m *DashboardModel) rows(pane dashboardPane) []dashboardRow {
	switch pane {
	case paneItems:
		var rows []dashboardRow
		for _, g := range m.state.Items().Groups {
			for _, it := range g.Items {
				rows = append(rows, dashboardRow{label: itemLabel(it), headerID: it.HeaderID, itemID: it.ID})
			}
		}
		return rows

	case paneReminders:
		p := m.state.ReminderPartition(m.now())
		var rows []dashboardRow
		for _, r := range p.Upcoming {
			rows = append(rows, dashboardRow{label: upcomingLabel(r.Reminder, r.Days), headerID: r.HeaderID, itemID: r.ItemID})
		}
		for _, r := range p.Expired {
			rows = append(rows, dashboardRow{label: expiredLabel(r.Reminder, r.Days), headerID: r.HeaderID, itemID: r.ItemID})
		}
		return rows

	default:
		var rows []dashboardRow
		for _, it := range m.state.FilteredItems() {
			rows = append(rows, dashboardRow{label: "Item: " + itemLabel(it), headerID: it.HeaderID, itemID: it.ID})
		}
		for _, d := range m.state.FilteredDocuments() {
			rows = append(rows, dashboardRow{label: "Document: " + d.Name + withItemTitle(d.ItemTitle), headerID: d.HeaderID, itemID: d.ItemID})
		}
		for _, o := range m.state.Options {
			rows = append(rows, optionRow(o))
		}
		return rows
	}
}

func optionRow(o models.SearchOption) dashboardRow {
	row := dashboardRow{headerID: o.HeaderID, itemID: o.ItemID}
	if o.Kind == models.SearchKindItem {
		row.label = "Suggested item: " + o.DisplayLabel()
		if row.itemID == 0 {
			row.itemID = o.ID
		}
		return row
	}
	row.label = "Suggested document: " + o.DisplayLabel()
	return row
}

func itemLabel(it models.Item) string {
	if strings.TrimSpace(it.ShortDesc) == "" {
		return it.Title
	}
	return it.Title + " · " + fitText(it.ShortDesc, 40)
}

func withItemTitle(title string) string {
	if title == "" {
		return ""
	}
	return " (" + title + ")"
}

func upcomingLabel(r models.Reminder, days int) string {
	switch days {
	case 0:
		return r.Name + " · today"
	case 1:
		return r.Name + " · in 1 day"
	default:
		return fmt.Sprintf("%s · in %d days", r.Name, days)
	}
}

func expiredLabel(r models.Reminder, days int) string {
	if days == 1 {
		return r.Name + " · expired 1 day ago"
	}
	return fmt.Sprintf("%s · expired %d days ago", r.Name, days)
}

func (m *DashboardModel) clampCursors() {
	for p := paneItems; p < paneCount; p++ {
		n := len(m.rows(p))
		if m.cursors[p] >= n {
			m.cursors[p] = max(n-1, 0)
		}
	}
}

func (m *DashboardModel) View() string {
	if m.confirm != nil {
		return renderPage("DASHBOARD", m.confirm.View(), "y: confirm │ n/esc: cancel")
	}

	var b strings.Builder
	b.WriteString(m.state.Welcome())
	if m.state.Loading.Any() {
		b.WriteString(helpStyle.Render("  loading..."))
	}
	b.WriteString("\n\n")

	b.WriteString(m.paneStyle(paneItems).Render(m.viewItems()))
	b.WriteString("\n")
	b.WriteString(m.paneStyle(paneReminders).Render(m.viewReminders()))
	b.WriteString("\n")
	b.WriteString(m.paneStyle(paneSearch).Render(m.viewSearch()))

	hotKeys := "tab: pane │ ↑/↓: select │ enter: open │ n: new item │ m: see more │ /: search │ r: refresh │ L: log out"
	if m.typing {
		hotKeys = "type to search │ enter/esc: done"
	}
	return renderPage("DASHBOARD", withNotification(b.String(), m.notice, m.now()), hotKeys)
}

func (m *DashboardModel) paneStyle(p dashboardPane) lipgloss.Style {
	if m.pane == p {
		return activePane
	}
	return inactivePane
}

func (m *DashboardModel) viewItems() string {
	var b strings.Builder
	grouped := m.state.Items()
	b.WriteString(titleStyle.Render("Items"))
	b.WriteString(" ")
	b.WriteString(badgeStyle.Render(fmt.Sprintf("%d", grouped.Total)))
	b.WriteString("\n")

	if m.state.Loading.Items && grouped.Empty {
		b.WriteString("Loading items...")
		return b.String()
	}
	if grouped.Empty {
		b.WriteString("No items yet. Press n to create one.")
		return b.String()
	}

	row := 0
	for _, g := range grouped.Groups {
		b.WriteString(fmt.Sprintf("%s %s\n", g.HeaderName, badgeStyle.Render(fmt.Sprintf("%d", len(g.Items)))))
		for _, it := range g.Items {
			b.WriteString(m.renderRow(paneItems, row, itemLabel(it)))
			row++
		}
	}

	switch {
	case grouped.Hidden > 0:
		b.WriteString(helpStyle.Render(fmt.Sprintf("m: see more (%d more)", grouped.Hidden)))
	case m.state.ShowAllItems && grouped.Total > 0:
		b.WriteString(helpStyle.Render("m: see less"))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *DashboardModel) viewReminders() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Reminders"))
	b.WriteString("\n")

	p := m.state.ReminderPartition(m.now())
	if m.state.Loading.Reminders && len(m.state.Reminders) == 0 {
		b.WriteString("Loading reminders...")
		return b.String()
	}
	if len(p.Upcoming) == 0 && len(p.Expired) == 0 {
		b.WriteString("No reminders")
		return b.String()
	}

	row := 0
	if len(p.Upcoming) > 0 {
		b.WriteString("Upcoming\n")
		for _, r := range p.Upcoming {
			b.WriteString(m.renderRow(paneReminders, row, upcomingLabel(r.Reminder, r.Days)+withItemTitle(r.ItemTitle)))
			row++
		}
	}
	if len(p.Expired) > 0 {
		b.WriteString("Expired\n")
		for _, r := range p.Expired {
			b.WriteString(m.renderRow(paneReminders, row, expiredStyle.Render(expiredLabel(r.Reminder, r.Days)+withItemTitle(r.ItemTitle))))
			row++
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *DashboardModel) viewSearch() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Search"))
	b.WriteString("\n[")
	b.WriteString(m.searchInput.View())
	b.WriteString("]\n")

	if strings.TrimSpace(m.state.SearchTerm) == "" {
		b.WriteString("Enter a search term")
		return b.String()
	}

	rows := m.rows(paneSearch)
	if len(rows) == 0 {
		b.WriteString("Nothing found")
		return b.String()
	}
	for i, r := range rows {
		b.WriteString(m.renderRow(paneSearch, i, r.label))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *DashboardModel) renderRow(p dashboardPane, idx int, label string) string {
	selected := m.pane == p && m.cursors[p] == idx
	line := cursor(selected) + label
	if selected {
		line = selectedStyle.Render(line)
	}
	return line + "\n"
}
