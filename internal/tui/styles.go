package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/existflow/ironplan/internal/model"
)

// Color palette
var (
	// Priority colors
	PriorityUrgent = lipgloss.Color("#FF6B6B") // Red
	PriorityHigh   = lipgloss.Color("#FFB347") // Orange
	PriorityMedium = lipgloss.Color("#FFE66D") // Yellow
	PriorityLow    = lipgloss.Color("#4ECDC4") // Blue

	// Availability and toast colors
	Available   = lipgloss.Color("#95E1A3") // Green
	Busy        = lipgloss.Color("#FF6B6B") // Red
	Destructive = lipgloss.Color("#FF5555")

	// UI colors
	Primary   = lipgloss.Color("#4ECDC4")
	Secondary = lipgloss.Color("#6C757D")
	Surface   = lipgloss.Color("#16213e")
	Text      = lipgloss.Color("#FFFFFF")
	TextMuted = lipgloss.Color("#888888")
	Border    = lipgloss.Color("#333333")
	Highlight = lipgloss.Color("#4ECDC4")
)

// Styles
var (
	// Header
	HeaderStyle = lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(Border)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	BadgeStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Background(Surface)

	// Team sidebar
	SidebarStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(Border).
			Padding(0, 1)

	EmployeeItemStyle = lipgloss.NewStyle()

	EmployeeItemSelectedStyle = lipgloss.NewStyle().
					Background(Surface).
					Bold(true)

	// Week grid
	GridStyle = lipgloss.NewStyle().
			Padding(0, 1)

	GridHeaderStyle = lipgloss.NewStyle().
			Foreground(TextMuted).
			Bold(true)

	CellCursorStyle = lipgloss.NewStyle().
			Reverse(true)

	// Task detail
	DetailStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(Border).
			Padding(0, 1)

	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Text)

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(TextMuted).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(Border)

	ToastStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	ToastDestructiveStyle = lipgloss.NewStyle().
				Foreground(Destructive).
				Bold(true)

	// Confirmation modal
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Destructive).
			Padding(1, 2)

	// Help text
	HelpStyle = lipgloss.NewStyle().
			Foreground(TextMuted)
)

// GetPriorityStyle returns the style for a given priority
func GetPriorityStyle(p model.Priority) lipgloss.Style {
	switch p {
	case model.PriorityUrgent:
		return lipgloss.NewStyle().Foreground(PriorityUrgent).Bold(true)
	case model.PriorityHigh:
		return lipgloss.NewStyle().Foreground(PriorityHigh).Bold(true)
	case model.PriorityMedium:
		return lipgloss.NewStyle().Foreground(PriorityMedium)
	default:
		return lipgloss.NewStyle().Foreground(PriorityLow)
	}
}

// swatch renders text on a color token such as "#3B82F6"
func swatch(color, text string) string {
	if color == "" {
		return text
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(color)).
		Foreground(Text).
		Render(text)
}
