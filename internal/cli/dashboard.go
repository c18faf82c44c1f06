package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/atajados/internal/cli/formatter"
	"github.com/alexanderramin/atajados/internal/contract"
	"github.com/alexanderramin/atajados/internal/domain"
	"github.com/alexanderramin/atajados/internal/repository"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// ── tabs ─────────────────────────────────────────────────────────────────────

type dashboardTab int

const (
	tabDashboard dashboardTab = iota
	tabItems
	tabUnits
	tabSummary
	tabSchedule
	tabCount
)

var tabNames = [tabCount]string{"Dashboard", "Items", "Units", "Summary", "Schedule"}

func (t dashboardTab) String() string { return tabNames[t] }

// ── keys ─────────────────────────────────────────────────────────────────────

type dashboardKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Reload key.Binding
	Quit   key.Binding
}

func newDashboardKeyMap() dashboardKeyMap {
	return dashboardKeyMap{
		Next:   key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next tab")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab", "prev tab")),
		Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k dashboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Reload, k.Quit}
}

func (k dashboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// ── messages ─────────────────────────────────────────────────────────────────

// dashboardData is a display copy; every load replaces it wholesale.
type dashboardData struct {
	view     *contract.DashboardView
	items    []*domain.CostItem
	units    []*domain.Unit
	summary  []contract.UnitSummary
	schedule *contract.ScheduleView
}

type dashboardLoadedMsg struct {
	tab  dashboardTab
	data dashboardData
	err  error
}

// ── model ────────────────────────────────────────────────────────────────────

type dashboardModel struct {
	ctx  context.Context
	app  *App
	tab  dashboardTab
	keys dashboardKeyMap
	help help.Model

	table   table.Model
	data    dashboardData
	loading bool
	err     error
	width   int
	height  int
}

func newDashboardModel(ctx context.Context, app *App) *dashboardModel {
	t := table.New(table.WithFocused(true), table.WithHeight(15))
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(formatter.ColorHeader).Bold(true)
	styles.Selected = styles.Selected.Foreground(formatter.ColorFg).Background(formatter.ColorDim)
	t.SetStyles(styles)

	return &dashboardModel{
		ctx:     ctx,
		app:     app,
		keys:    newDashboardKeyMap(),
		help:    help.New(),
		table:   t,
		loading: true,
	}
}

func (m *dashboardModel) Init() tea.Cmd {
	return m.load(m.tab)
}

// load re-queries the services for tab.
func (m *dashboardModel) load(tab dashboardTab) tea.Cmd {
	app, ctx := m.app, m.ctx
	return func() tea.Msg {
		var (
			d   dashboardData
			err error
		)
		switch tab {
		case tabDashboard:
			d.view, err = app.Reports.Dashboard(ctx)
		case tabItems:
			d.items, err = app.Items.List(ctx, repository.ItemFilter{})
		case tabUnits:
			d.units, err = app.Units.List(ctx)
		case tabSummary:
			d.summary, err = app.Reports.UnitSummaries(ctx)
		case tabSchedule:
			d.schedule, err = app.Reports.Schedule(ctx)
		}
		return dashboardLoadedMsg{tab: tab, data: d, err: err}
	}
}

func (m *dashboardModel) switchTo(tab dashboardTab) tea.Cmd {
	m.tab = tab
	m.loading = true
	m.err = nil
	return m.load(tab)
}

func (m *dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table.SetWidth(msg.Width)
		m.table.SetHeight(max(msg.Height-6, 3))
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			return m, m.switchTo((m.tab + 1) % tabCount)
		case key.Matches(msg, m.keys.Prev):
			return m, m.switchTo((m.tab + tabCount - 1) % tabCount)
		case key.Matches(msg, m.keys.Reload):
			return m, m.switchTo(m.tab)
		}
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd

	case dashboardLoadedMsg:
		// A reply for a tab the user already left is stale.
		if msg.tab != m.tab {
			return m, nil
		}
		m.loading = false
		m.err = msg.err
		m.data = msg.data
		m.fillTable()
		return m, nil
	}
	return m, nil
}

// fillTable swaps the table's columns and rows for the current tab. Rows
// are cleared first so no row is rendered against the wrong columns.
func (m *dashboardModel) fillTable() {
	var cols []table.Column
	var rows []table.Row

	switch m.tab {
	case tabItems:
		cols = []table.Column{
			{Title: "ID", Width: 5}, {Title: "Name", Width: 40}, {Title: "Unit", Width: 6},
			{Title: "Qty", Width: 10}, {Title: "Cost", Width: 14}, {Title: "Active", Width: 6}, {Title: "Manual %", Width: 8},
		}
		for _, it := range m.data.items {
			active := "no"
			if it.Active {
				active = "yes"
			}
			rows = append(rows, table.Row{
				fmt.Sprintf("%d", it.ID), it.Name, it.UnitOfMeasure,
				formatter.Quantity(it.Quantity), formatter.Money(it.Cost()), active, formatter.Percent(it.Progress),
			})
		}
	case tabUnits:
		cols = []table.Column{
			{Title: "ID", Width: 5}, {Title: "No", Width: 5}, {Title: "Community", Width: 18},
			{Title: "Beneficiary", Width: 26}, {Title: "Status", Width: 13}, {Title: "Start", Width: 10}, {Title: "End", Width: 10},
		}
		for _, u := range m.data.units {
			rows = append(rows, table.Row{
				fmt.Sprintf("%d", u.ID), fmt.Sprintf("%d", u.Number), u.Location, u.BeneficiaryName,
				u.Status.Label(), domain.FormatDate(u.StartDate), domain.FormatDate(u.EndDate),
			})
		}
	case tabSummary:
		cols = []table.Column{{Title: "Unit", Width: 32}, {Title: "Last record", Width: 11}, {Title: "Progress", Width: 9}}
		for _, s := range m.data.summary {
			rows = append(rows, table.Row{s.Label, domain.FormatDate(s.LastRecorded), formatter.Percent(s.Progress)})
		}
	default:
		cols = []table.Column{}
	}

	m.table.SetRows(nil)
	m.table.SetColumns(cols)
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *dashboardModel) View() string {
	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n")
	case m.loading:
		b.WriteString(formatter.Dim("Loading…") + "\n")
	default:
		b.WriteString(m.renderContent())
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *dashboardModel) renderTabs() string {
	active := lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true).Underline(true)
	parts := make([]string, 0, tabCount)
	for t := range tabCount {
		if t == m.tab {
			parts = append(parts, active.Render(t.String()))
		} else {
			parts = append(parts, formatter.Dim(t.String()))
		}
	}
	return strings.Join(parts, formatter.Dim("  │  "))
}

func (m *dashboardModel) renderContent() string {
	switch m.tab {
	case tabDashboard:
		if m.data.view == nil {
			return ""
		}
		return formatter.FormatDashboard(m.data.view)
	case tabSchedule:
		if m.data.schedule == nil {
			return ""
		}
		width := defaultGanttWidth
		if m.width > ganttTableWidth {
			width = m.width - ganttTableWidth
		}
		return formatter.FormatGantt(m.data.schedule, m.app.hoursPerDay(), width)
	default:
		if len(m.table.Rows()) == 0 {
			return formatter.Dim("Nothing to show.") + "\n"
		}
		return m.table.View() + "\n"
	}
}

// ── command ──────────────────────────────────────────────────────────────────

func runDashboard(ctx context.Context, app *App) error {
	p := tea.NewProgram(newDashboardModel(ctx, app), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd.Context(), app)
		},
	}
}
