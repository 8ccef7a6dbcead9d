package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/existflow/ironplan/internal/logger"
	"github.com/existflow/ironplan/internal/schedule"
)

// tickMsg is sent every second to expire toasts
type tickMsg time.Time

// Init initializes the model with a tick command
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Every(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.toasts.expire()
		return m, tickCmd()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case ModeSearch:
			return m.updateSearch(msg)
		case ModeConfirmDelete:
			return m.updateConfirmDelete(msg)
		case ModeHelp:
			m.mode = ModeNormal
			return m, nil
		}
		return m.handleNormalKeys(msg)
	}

	return m, nil
}

// handleNormalKeys handles key presses in normal mode
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.message = ""

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Tab):
		if m.pane == PaneTeam {
			m.pane = PaneSchedule
		} else {
			m.pane = PaneTeam
		}

	case key.Matches(msg, keys.Up):
		if m.pane == PaneTeam {
			if m.empCursor > 0 {
				m.empCursor--
			}
		} else {
			m.grid.moveRow(-1)
		}

	case key.Matches(msg, keys.Down):
		if m.pane == PaneTeam {
			if m.empCursor < len(m.team)-1 {
				m.empCursor++
			}
		} else {
			m.grid.moveRow(1)
		}

	case key.Matches(msg, keys.Left):
		if m.pane == PaneSchedule {
			m.grid.moveCol(-1)
		}

	case key.Matches(msg, keys.Right):
		if m.pane == PaneSchedule {
			m.grid.moveCol(1)
		}

	case key.Matches(msg, keys.Cycle):
		m.grid.cycleItem()

	case key.Matches(msg, keys.Enter):
		m.handleEnter()

	case key.Matches(msg, keys.Search):
		return m.startSearch()

	case key.Matches(msg, keys.PrevWeek):
		m.state.PreviousWeek()
		m.refresh()

	case key.Matches(msg, keys.NextWeek):
		m.state.NextWeek()
		m.refresh()

	case key.Matches(msg, keys.Today):
		m.state.Today()
		m.refresh()

	case key.Matches(msg, keys.PrevPage):
		m.grid.movePage(-1)

	case key.Matches(msg, keys.NextPage):
		m.grid.movePage(1)

	case key.Matches(msg, keys.Filter):
		m.toggleFilter()

	case key.Matches(msg, keys.Add):
		m.state.AddTask()

	case key.Matches(msg, keys.Edit):
		if id := m.state.SelectedTaskID(); id != "" {
			m.state.EditTask(id)
		} else {
			m.message = "Aucune tâche sélectionnée"
		}

	case key.Matches(msg, keys.Delete):
		m.handleDelete()

	case key.Matches(msg, keys.Escape):
		if m.state.SelectedTaskID() != "" {
			m.state.CloseDetail()
		} else if m.searchText != "" {
			m.searchText = ""
			m.applySearch()
			m.message = "Recherche effacée"
		}

	case key.Matches(msg, keys.Help):
		m.mode = ModeHelp
	}

	return m, nil
}

func (m *Model) handleEnter() {
	if m.pane == PaneSchedule {
		m.grid.click()
		return
	}

	emp := m.currentEmployee()
	if emp == nil {
		return
	}
	if m.state.SelectEmployee(emp.ID) {
		logger.Debug("Employee selected", logger.F("employee_id", emp.ID))
		if !m.grid.focusResource(emp.ID) {
			m.message = emp.FullName() + " n'a aucune tâche cette semaine"
		}
	}
}

func (m *Model) handleDelete() {
	id := m.state.SelectedTaskID()
	if id == "" {
		m.message = "Aucune tâche sélectionnée"
		return
	}
	if m.confirmDelete {
		m.mode = ModeConfirmDelete
		return
	}
	m.state.DeleteTask(id)
}

func (m *Model) toggleFilter() {
	switch m.widget.FilterButtonState {
	case schedule.NoFilter:
		m.message = "Filtre désactivé dans la configuration"
		return
	case filterOn:
		m.widget.FilterButtonState = filterOff
	default:
		m.widget.FilterButtonState = filterOn
	}
	m.refresh()
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.mode = ModeNormal
	if key.Matches(msg, keys.Confirm) {
		m.state.DeleteTask(m.state.SelectedTaskID())
		return m, nil
	}
	m.message = "Suppression annulée"
	return m, nil
}

func (m Model) startSearch() (tea.Model, tea.Cmd) {
	m.mode = ModeSearch
	m.pane = PaneTeam
	m.input.SetValue(m.searchText)
	m.input.Focus()
	m.input.CursorEnd()
	return m, textinput.Blink
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Escape):
		m.mode = ModeNormal
		m.input.Blur()
		m.searchText = ""
		m.applySearch()
		return m, nil

	case key.Matches(msg, keys.Enter):
		m.mode = ModeNormal
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	// Live filter as user types
	m.searchText = m.input.Value()
	m.applySearch()
	return m, cmd
}
