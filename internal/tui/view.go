package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/existflow/ironplan/internal/label"
	"github.com/existflow/ironplan/internal/model"
	"github.com/existflow/ironplan/internal/session"
)

const (
	teamWidth   = 30
	detailWidth = 36
)

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	header := m.renderHeader()
	statusBar := m.renderStatusBar()
	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(statusBar)

	var main string
	switch m.mode {
	case ModeHelp:
		main = lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, m.renderHelp())
	case ModeConfirmDelete:
		main = lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, m.renderConfirmModal(),
			lipgloss.WithWhitespaceChars(" "))
	default:
		gridWidth := max(m.width-teamWidth-detailWidth-4, 20)
		main = lipgloss.JoinHorizontal(lipgloss.Top,
			m.renderTeam(bodyHeight),
			m.grid.View(gridWidth, m.pane == PaneSchedule, m.state.SelectedTaskID()),
			m.renderDetail(bodyHeight),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, main, statusBar)
}

func (m Model) renderHeader() string {
	summary := m.catalog.Summary()

	left := TitleStyle.Render("Planification des Tâches") + "  " +
		HelpStyle.Render(label.WeekTitle(m.state.Anchor()))
	right := BadgeStyle.Foreground(Primary).Render(fmt.Sprintf("%d tâches", summary.TotalTasks)) + " " +
		BadgeStyle.Foreground(Available).Render(fmt.Sprintf("%d terminées", summary.CompletedTasks))

	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right)-2, 1)
	return HeaderStyle.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

func (m Model) renderTeam(height int) string {
	var b strings.Builder

	b.WriteString(SectionStyle.Render("Équipe") + "\n")
	if m.mode == ModeSearch {
		b.WriteString("/" + m.input.View() + "\n")
	} else if m.searchText != "" {
		b.WriteString(HelpStyle.Render("/"+m.searchText) + "\n")
	} else {
		b.WriteString(HelpStyle.Render("/ rechercher") + "\n")
	}
	b.WriteString(lipgloss.NewStyle().Foreground(Border).Render(strings.Repeat("─", teamWidth-4)) + "\n")

	if len(m.team) == 0 {
		b.WriteString(HelpStyle.Render("Aucun employé trouvé") + "\n")
	}

	selected := m.state.SelectedEmployeeID()
	for i, e := range m.team {
		cursor := "  "
		style := EmployeeItemStyle
		if i == m.empCursor && m.pane == PaneTeam {
			cursor = "❯ "
			style = EmployeeItemSelectedStyle
		}
		if e.ID == selected {
			style = style.Foreground(Highlight)
		}

		b.WriteString(cursor + swatch(e.Color, " "+pad(e.Initials(), 2)+" ") + " " +
			style.Render(pad(e.FullName(), teamWidth-12)) + "\n")
		b.WriteString("    " + HelpStyle.Render(pad(e.Position, teamWidth-17)) + " " + availabilityBadge(e) + "\n")
	}

	available, busy := model.CountAvailability(m.catalog.Employees())
	b.WriteString("\n" + lipgloss.NewStyle().Foreground(Available).Render(fmt.Sprintf("Disponibles: %d", available)) +
		"  " + lipgloss.NewStyle().Foreground(Busy).Render(fmt.Sprintf("Occupés: %d", busy)))

	return SidebarStyle.Width(teamWidth).Height(height).Render(b.String())
}

func availabilityBadge(e model.Employee) string {
	color := Busy
	if e.IsAvailable {
		color = Available
	}
	return lipgloss.NewStyle().Foreground(color).Render(label.Availability(e.IsAvailable))
}

func (m Model) renderDetail(height int) string {
	inner := detailWidth - 4
	task, ok := m.state.SelectedTask()
	if !ok {
		content := SectionStyle.Render("Aucune tâche sélectionnée") + "\n\n" +
			HelpStyle.Width(inner).Render("Cliquez sur une tâche dans le planning pour voir les détails")
		return DetailStyle.Width(detailWidth).Height(height).Render(content)
	}

	var b strings.Builder
	b.WriteString(SectionStyle.Render("Détails de la tâche") + "\n\n")
	b.WriteString(TitleStyle.Width(inner).Render(task.Title) + "\n")
	if task.Description != "" {
		b.WriteString(HelpStyle.Width(inner).Render(task.Description) + "\n")
	}

	if emp, ok := m.state.SelectedEmployee(); ok {
		b.WriteString("\n" + swatch(emp.Color, " "+emp.Initials()+" ") + " " + emp.FullName() + "\n")
		b.WriteString("     " + HelpStyle.Render(emp.Position) + "\n")
	}

	b.WriteString("\n" + SectionStyle.Render("Planning") + "\n")
	b.WriteString(detailLine("Date :", label.LongDate(task.StartDate), inner))
	b.WriteString(detailLine("Début :", label.Clock(task.StartDate), inner))
	b.WriteString(detailLine("Fin :", label.Clock(task.EndDate), inner))
	b.WriteString(detailLine("Durée :", label.Duration(task.Duration()), inner))

	b.WriteString("\n" + SectionStyle.Render("Statut") + "\n")
	b.WriteString(label.Category(task.Category) + " · " +
		GetPriorityStyle(task.Priority).Render(label.Priority(task.Priority)) + " · " +
		label.Status(task.Status) + "\n")

	b.WriteString("\n" + HelpStyle.Render("e:modifier  d:supprimer  esc:fermer"))

	return DetailStyle.Width(detailWidth).Height(height).Render(b.String())
}

func detailLine(name, value string, width int) string {
	gap := max(width-lipgloss.Width(name)-lipgloss.Width(value), 1)
	return HelpStyle.Render(name) + strings.Repeat(" ", gap) + value + "\n"
}

func (m Model) renderStatusBar() string {
	if n, ok := m.toasts.latest(); ok {
		style := ToastStyle
		if n.Variant == session.VariantDestructive {
			style = ToastDestructiveStyle
		}
		return StatusBarStyle.Width(m.width).Render(style.Render(n.Title) + "  " + n.Description)
	}

	help := "tab:pane  ←→↑↓:move  enter:select  [/]:week  t:today  a:new  e:edit  d:del  /:search  ?:help  q:quit"
	if m.message != "" {
		help = m.message
	}
	return StatusBarStyle.Width(m.width).Render(help)
}

func (m Model) renderConfirmModal() string {
	title := ""
	if task, ok := m.state.SelectedTask(); ok {
		title = task.Title
	}
	content := lipgloss.NewStyle().Bold(true).Foreground(Destructive).Render("Supprimer la tâche ?") + "\n\n"
	content += title + "\n\n"
	content += HelpStyle.Render("y:confirmer  autre touche:annuler")
	return ModalStyle.Render(content)
}

func (m Model) renderHelp() string {
	return `
╭──── Raccourcis clavier ────╮
│                            │
│  Navigation                │
│  ──────────                │
│  tab      Changer de zone  │
│  ↑↓ / jk  Ligne            │
│  ←→ / hl  Jour             │
│  space    Tâche suivante   │
│  < >      Page             │
│  [ ] p n  Semaine          │
│  t        Aujourd'hui      │
│                            │
│  Actions                   │
│  ───────                   │
│  enter    Sélectionner     │
│  a        Nouvelle tâche   │
│  e        Modifier         │
│  d        Supprimer        │
│  esc      Fermer           │
│  /        Rechercher       │
│  f        Lignes occupées  │
│                            │
│  ?        Aide             │
│  q        Quitter          │
│                            │
╰────────────────────────────╯

     Appuyez sur une touche
`
}
