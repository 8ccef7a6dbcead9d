package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/existflow/ironplan/internal/filter"
	"github.com/existflow/ironplan/internal/logger"
	"github.com/existflow/ironplan/internal/model"
	"github.com/existflow/ironplan/internal/schedule"
	"github.com/existflow/ironplan/internal/session"
	"github.com/existflow/ironplan/internal/store"
)

// Pane represents which pane is focused
type Pane int

const (
	PaneTeam Pane = iota
	PaneSchedule
)

// Mode represents the current UI mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModeConfirmDelete
	ModeHelp
)

// Options tune the TUI
type Options struct {
	Widget        schedule.Config
	ConfirmDelete bool
	Clock         func() time.Time // Defaults to time.Now
}

// Model is the main TUI model
type Model struct {
	catalog   *store.Catalog
	state     *session.State
	projector *schedule.Projector
	grid      *weekGrid
	toasts    *toastQueue

	widget        schedule.Config
	confirmDelete bool

	// UI state
	width     int
	height    int
	pane      Pane
	mode      Mode
	empCursor int

	// Team search
	input      textinput.Model
	searchText string
	team       []model.Employee

	message string
}

// NewModel creates a new TUI model over catalog
func NewModel(catalog *store.Catalog, opts Options) Model {
	logger.Info("Initializing TUI model")

	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	ti := textinput.New()
	ti.Placeholder = "Rechercher un employé..."
	ti.CharLimit = 64
	ti.Width = 24

	toasts := newToastQueue()
	state := session.New(catalog, session.WithClock(opts.Clock), session.WithNotifier(toasts))

	m := Model{
		catalog:       catalog,
		state:         state,
		projector:     &schedule.Projector{},
		grid:          newWeekGrid(state.Week()),
		toasts:        toasts,
		widget:        opts.Widget,
		confirmDelete: opts.ConfirmDelete,
		pane:          PaneSchedule,
		mode:          ModeNormal,
		input:         ti,
		team:          catalog.Employees(),
	}
	m.grid.OnTileClick(state.HandleTileClick)
	m.refresh()

	logger.Debug("TUI model initialized",
		logger.F("employees", len(catalog.Employees())),
		logger.F("tasks", len(catalog.Tasks())))
	return m
}

// refresh hands the current rows, options and week to the grid
func (m *Model) refresh() {
	rows := m.projector.Rows(m.catalog.Employees(), m.catalog.Tasks())
	m.grid.setWeek(m.state.Week())
	m.grid.SetData(rows, m.widget)
}

// applySearch narrows the team list to the search text
func (m *Model) applySearch() {
	m.team = filter.Employees(m.catalog.Employees(), m.searchText)
	if m.empCursor >= len(m.team) {
		m.empCursor = max(0, len(m.team)-1)
	}
}

func (m *Model) currentEmployee() *model.Employee {
	if m.empCursor < len(m.team) {
		return &m.team[m.empCursor]
	}
	return nil
}
