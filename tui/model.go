// ABOUTME: bubbletea model for the terminal admin panel
// ABOUTME: Renders the dashboard and every resource table from the shared screens

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"library-admin/core/dashboard"
	"library-admin/core/domain"
	"library-admin/core/interfaces"
	"library-admin/core/pagination"
	"library-admin/core/screen"
	"library-admin/core/table"
)

const refreshInterval = time.Second

type (
	loadedMsg struct {
		resource string
		err      error
	}
	dashboardMsg struct {
		view *dashboard.View
		err  error
	}
	mutatedMsg struct {
		err error
	}
	tickMsg time.Time
)

// tab is one page of the panel. A nil screen is the dashboard.
type tab struct {
	label  string
	screen *screen.Screen
}

// Model is the terminal panel. It implements tea.Model.
type Model struct {
	ctx       context.Context
	tabs      []tab
	dashboard *screen.Dashboard
	notifier  interfaces.Notifier
	busy      interfaces.BusyIndicator

	active   int
	cursor   int
	sortCol  int
	loaded   map[string]bool
	dash     *dashboard.View
	width    int
	quitting bool

	searching bool
	input     string

	// pendingDelete is the id awaiting y/n confirmation
	pendingDelete int
	prompt        string
}

// New creates the panel. d may be nil to hide the dashboard tab.
func New(ctx context.Context, screens *screen.Set, d *screen.Dashboard, notifier interfaces.Notifier, busy interfaces.BusyIndicator) *Model {
	m := &Model{
		ctx:       ctx,
		dashboard: d,
		notifier:  notifier,
		busy:      busy,
		loaded:    make(map[string]bool),
	}
	if d != nil {
		m.tabs = append(m.tabs, tab{label: "Dashboard"})
	}
	for _, s := range screens.All() {
		m.tabs = append(m.tabs, tab{label: s.Resource().Label, screen: s})
	}
	return m
}

// Run starts the program and blocks until the user quits
func Run(ctx context.Context, m *Model) error {
	_, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()
	return err
}

// Init loads the first tab and starts the toast refresh ticker
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loadActive(false), tick())
}

// Update handles key presses and load results
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return m, m.handleKey(msg.String())
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case loadedMsg:
		if msg.err == nil {
			m.loaded[msg.resource] = true
		}
		m.clampCursor()
	case dashboardMsg:
		if msg.err == nil {
			m.dash = msg.view
		}
	case mutatedMsg:
		m.clampCursor()
	case tickMsg:
		return m, tick()
	}
	return m, nil
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) current() *screen.Screen {
	if len(m.tabs) == 0 {
		return nil
	}
	return m.tabs[m.active].screen
}

// handleKey applies one key press and returns the follow-up command
func (m *Model) handleKey(key string) tea.Cmd {
	if key == "ctrl+c" {
		m.quitting = true
		return tea.Quit
	}
	if m.pendingDelete != 0 {
		return m.confirmKey(key)
	}
	if m.searching {
		return m.searchKey(key)
	}

	s := m.current()
	switch key {
	case "q":
		m.quitting = true
		return tea.Quit
	case "tab", "right", "l":
		return m.switchTab(1)
	case "shift+tab", "left", "h":
		return m.switchTab(-1)
	case "r":
		return m.loadActive(true)
	case "x":
		if active := m.notifier.Active(); len(active) > 0 {
			m.notifier.Dismiss(active[len(active)-1].ID)
		}
		return nil
	}
	if s == nil {
		return nil
	}

	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		m.cursor++
		m.clampCursor()
	case "n", "pgdown":
		m.invoke(s.View().Pagination.Next)
	case "p", "pgup":
		m.invoke(s.View().Pagination.Previous)
	case "s":
		columns := s.Resource().Columns
		s.Table().ToggleSort(columns[m.sortCol%len(columns)].Key)
	case "c":
		m.sortCol = (m.sortCol + 1) % len(s.Resource().Columns)
		s.Table().ToggleSort(s.Resource().Columns[m.sortCol].Key)
	case "f":
		if f := s.Resource().Filter; f != nil {
			s.Table().SetStatus(f.Next(s.Table().Status()))
			m.cursor = 0
		}
	case "/":
		m.searching = true
		m.input = s.View().Query
	case "d":
		if row, ok := m.selected(); ok && row.ID != 0 {
			m.pendingDelete = row.ID
			m.prompt = fmt.Sprintf("Are you sure you want to delete this %s? (y/n)", s.Resource().Singular)
		}
	}
	return nil
}

func (m *Model) confirmKey(key string) tea.Cmd {
	id := m.pendingDelete
	m.pendingDelete = 0
	m.prompt = ""
	if key != "y" {
		return nil
	}
	s := m.current()
	ctx := m.ctx
	return func() tea.Msg {
		_, err := s.Delete(ctx, id, nil)
		return mutatedMsg{err: err}
	}
}

func (m *Model) searchKey(key string) tea.Cmd {
	switch key {
	case "esc":
		m.searching = false
	case "enter":
		m.searching = false
		m.current().Table().SetQuery(strings.TrimSpace(m.input))
		m.cursor = 0
	case "backspace":
		if runes := []rune(m.input); len(runes) > 0 {
			m.input = string(runes[:len(runes)-1])
		}
	case "space":
		m.input += " "
	default:
		if len([]rune(key)) == 1 {
			m.input += key
		}
	}
	return nil
}

func (m *Model) switchTab(delta int) tea.Cmd {
	if len(m.tabs) == 0 {
		return nil
	}
	m.active = (m.active + delta + len(m.tabs)) % len(m.tabs)
	m.cursor = 0
	m.sortCol = 0
	return m.loadActive(false)
}

// loadActive fetches the active tab unless it is already loaded
func (m *Model) loadActive(force bool) tea.Cmd {
	if len(m.tabs) == 0 {
		return nil
	}
	ctx := m.ctx
	s := m.current()
	if s == nil {
		d := m.dashboard
		return func() tea.Msg {
			view, err := d.Load(ctx)
			return dashboardMsg{view: view, err: err}
		}
	}
	name := s.Resource().Name
	if m.loaded[name] && !force {
		return nil
	}
	return func() tea.Msg {
		return loadedMsg{resource: name, err: s.Load(ctx)}
	}
}

func (m *Model) invoke(control pagination.Control) {
	s := m.current()
	s.View().Pagination.Invoke(control, func(page int) {
		s.Table().SetPage(page)
		m.cursor = 0
	})
}

func (m *Model) selected() (table.Row, bool) {
	s := m.current()
	if s == nil {
		return table.Row{}, false
	}
	rows := s.View().Rows
	if m.cursor < 0 || m.cursor >= len(rows) {
		return table.Row{}, false
	}
	return rows[m.cursor], true
}

func (m *Model) clampCursor() {
	s := m.current()
	if s == nil {
		m.cursor = 0
		return
	}
	rows := len(s.View().Rows)
	if m.cursor >= rows {
		m.cursor = rows - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the panel
func (m *Model) View() tea.View {
	v := tea.NewView(m.Render())
	v.AltScreen = true
	return v
}

// Render returns the panel as plain styled text
func (m *Model) Render() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Library Admin Panel"))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	if s := m.current(); s != nil {
		b.WriteString(m.renderTable(s.View()))
	} else if len(m.tabs) > 0 {
		b.WriteString(m.renderDashboard())
	}

	if m.busy != nil && m.busy.Visible() {
		b.WriteString("\n" + busyStyle.Render("Loading..."))
	}
	for _, n := range m.notifier.Active() {
		b.WriteString("\n" + toastStyle(n.Kind).Render(n.Message))
	}
	if m.prompt != "" {
		b.WriteString("\n" + busyStyle.Render(m.prompt))
	}
	if m.searching {
		b.WriteString("\nSearch: " + m.input + "█")
	}

	b.WriteString("\n\n" + mutedStyle.Render(m.help()))
	return b.String()
}

func (m *Model) renderTabs() string {
	labels := make([]string, 0, len(m.tabs))
	for i, t := range m.tabs {
		if i == m.active {
			labels = append(labels, activeTab.Render(t.label))
		} else {
			labels = append(labels, tabStyle.Render(t.label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, labels...)
}

func filterLabel(resource string) string {
	if r, ok := domain.LookupResource(resource); ok && r.Filter != nil {
		return r.Filter.Label
	}
	return "Filter"
}

func (m *Model) renderTable(view table.View) string {
	widths := make([]int, len(view.Headers))
	for i, h := range view.Headers {
		widths[i] = lipgloss.Width(h.Label + h.Indicator)
		for _, row := range view.Rows {
			widths[i] = max(widths[i], lipgloss.Width(row.Cell(h.Key)))
		}
		widths[i] = min(widths[i], maxColumnWidth)
	}

	var b strings.Builder
	filtered := view.Status != "" && view.Status != domain.FilterAll
	if view.Query != "" || filtered {
		filter := "Search: " + view.Query
		if filtered {
			filter += "  " + filterLabel(view.Resource) + ": " + view.Status
		}
		b.WriteString(mutedStyle.Render(filter) + "\n")
	}

	cells := make([]string, len(view.Headers))
	for i, h := range view.Headers {
		cells[i] = fit(h.Label+h.Indicator, widths[i])
	}
	b.WriteString(headerStyle.Render(strings.Join(cells, "  ")))
	b.WriteString("\n")

	if view.Empty() {
		b.WriteString(mutedStyle.Render(view.EmptyMessage))
		b.WriteString("\n")
	}
	for r, row := range view.Rows {
		for i, h := range view.Headers {
			cells[i] = fit(row.Cell(h.Key), widths[i])
		}
		line := strings.Join(cells, "  ")
		if r == m.cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}

	if controls := view.Pagination.All(); controls != nil {
		parts := make([]string, 0, len(controls))
		for _, c := range controls {
			switch {
			case c.Active:
				parts = append(parts, "["+c.Label+"]")
			case c.Disabled:
				parts = append(parts, mutedStyle.Render(c.Label))
			default:
				parts = append(parts, c.Label)
			}
		}
		b.WriteString("\n" + strings.Join(parts, " ") + "\n")
	}
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%d %s", view.TotalRecords, strings.ToLower(view.Label))))
	return b.String()
}

func (m *Model) renderDashboard() string {
	if m.dash == nil {
		return mutedStyle.Render("No dashboard data")
	}

	cards := make([]string, 0, len(m.dash.Cards))
	for _, c := range m.dash.Cards {
		cards = append(cards, cardStyle.Render(fmt.Sprintf("%s\n%d", c.Label, c.Value)))
	}

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	b.WriteString("\n\n" + headerStyle.Render("Books by genre") + "\n")
	for _, g := range m.dash.Genres {
		bar := lipgloss.NewStyle().Foreground(lipgloss.Color(g.Color)).Render(strings.Repeat("█", int(g.Percent/5)+1))
		b.WriteString(fmt.Sprintf("%s %s %d (%.1f%%)\n", fit(g.Label, 16), bar, g.Count, g.Percent))
	}

	b.WriteString("\n" + headerStyle.Render("Recent borrowings") + "\n")
	if m.dash.RecentEmptyText != "" {
		b.WriteString(mutedStyle.Render(m.dash.RecentEmptyText) + "\n")
	}
	for _, r := range m.dash.RecentBorrowings {
		b.WriteString(fmt.Sprintf("%s %s %s %s\n", fit(r.Member, 20), fit(r.Book, 24), fit(r.Due, 14), r.Status))
	}

	b.WriteString("\n" + headerStyle.Render("Top books") + "\n")
	if m.dash.TopBooksEmptyText != "" {
		b.WriteString(mutedStyle.Render(m.dash.TopBooksEmptyText) + "\n")
	}
	for _, t := range m.dash.TopBooks {
		b.WriteString(fmt.Sprintf("%d. %s %d\n", t.Rank, fit(t.Title, 30), t.Count))
	}
	return b.String()
}

func (m *Model) help() string {
	if m.current() == nil {
		return "tab: next  r: refresh  x: dismiss  q: quit"
	}
	return "tab: next  ↑/↓: move  n/p: page  s: sort  c: column  /: search  f: filter  d: delete  r: refresh  x: dismiss  q: quit"
}
