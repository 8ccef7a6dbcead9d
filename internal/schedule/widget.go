package schedule

// NoFilter is the FilterButtonState sentinel for "no filter applied"
const NoFilter = -1

// Config is the option record handed to a calendar widget
type Config struct {
	Zoom              int  `json:"zoom" yaml:"zoom"`
	FilterButtonState int  `json:"filterButtonState" yaml:"filter_button_state"`
	MaxRecordsPerPage int  `json:"maxRecordsPerPage" yaml:"max_records_per_page"`
	ShowTooltip       bool `json:"showTooltip" yaml:"show_tooltip"`
}

// DefaultConfig returns the options the planner has always used
func DefaultConfig() Config {
	return Config{
		Zoom:              1,
		FilterButtonState: NoFilter,
		MaxRecordsPerPage: 50,
		ShowTooltip:       true,
	}
}

// Click is what a widget reports when an event tile is activated.
// Either field may be empty.
type Click struct {
	ResourceID string `json:"resource_id,omitempty"`
	EventID    string `json:"event_id,omitempty"`
}

// ID returns the clicked event id, and false when the widget sent none
func (c Click) ID() (string, bool) {
	return c.EventID, c.EventID != ""
}

// Widget is the calendar renderer. It receives rows and options and reports
// tile clicks; nothing else about it is assumed.
type Widget interface {
	SetData(rows []Resource, cfg Config)
	OnTileClick(fn func(Click))
}
