package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all key bindings
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Tab      key.Binding
	Enter    key.Binding
	Cycle    key.Binding
	Search   key.Binding
	PrevWeek key.Binding
	NextWeek key.Binding
	Today    key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	Filter   key.Binding
	Add      key.Binding
	Edit     key.Binding
	Delete   key.Binding
	Confirm  key.Binding
	Help     key.Binding
	Quit     key.Binding
	Escape   key.Binding
}

var keys = keyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous day")),
	Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
	Tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
	Enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	Cycle:    key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "next task in cell")),
	Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search team")),
	PrevWeek: key.NewBinding(key.WithKeys("[", "p"), key.WithHelp("[/p", "previous week")),
	NextWeek: key.NewBinding(key.WithKeys("]", "n"), key.WithHelp("]/n", "next week")),
	Today:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
	PrevPage: key.NewBinding(key.WithKeys("pgup", "<"), key.WithHelp("<", "previous page")),
	NextPage: key.NewBinding(key.WithKeys("pgdown", ">"), key.WithHelp(">", "next page")),
	Filter:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "busy rows only")),
	Add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "new task")),
	Edit:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
	Delete:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	Confirm:  key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "confirm")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Escape:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
}
