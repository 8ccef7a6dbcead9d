package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/existflow/ironplan/internal/label"
	"github.com/existflow/ironplan/internal/schedule"
)

const (
	gridLabelWidth = 18
	gridUnitWidth  = 6
)

// Filter button states understood by the grid, besides schedule.NoFilter
const (
	filterOff = 0 // toggle shown, every row visible
	filterOn  = 1 // toggle shown, only rows with tasks this week
)

// weekGrid renders resource rows as a seven-column week and reports tile
// clicks. It is the terminal implementation of schedule.Widget.
type weekGrid struct {
	rows    []schedule.Resource
	cfg     schedule.Config
	week    schedule.Week
	onClick func(schedule.Click)

	page int
	row  int // cursor row within the page
	col  int // cursor day, 0 = Monday
	item int // cursor event within the cell
}

var _ schedule.Widget = (*weekGrid)(nil)

func newWeekGrid(week schedule.Week) *weekGrid {
	return &weekGrid{cfg: schedule.DefaultConfig(), week: week}
}

// SetData replaces the rows and options and keeps the cursor in range
func (g *weekGrid) SetData(rows []schedule.Resource, cfg schedule.Config) {
	g.rows = rows
	g.cfg = cfg
	g.clamp()
}

// OnTileClick registers the tile click handler
func (g *weekGrid) OnTileClick(fn func(schedule.Click)) {
	g.onClick = fn
}

func (g *weekGrid) setWeek(w schedule.Week) {
	g.week = w
	g.clamp()
}

// filtered returns the rows that pass the busy-rows filter
func (g *weekGrid) filtered() []schedule.Resource {
	if g.cfg.FilterButtonState != filterOn {
		return g.rows
	}
	out := make([]schedule.Resource, 0, len(g.rows))
	for _, r := range g.rows {
		if len(r.EventsBetween(g.week.Start, g.week.End())) > 0 {
			out = append(out, r)
		}
	}
	return out
}

func (g *weekGrid) perPage() int {
	if g.cfg.MaxRecordsPerPage <= 0 {
		return schedule.DefaultConfig().MaxRecordsPerPage
	}
	return g.cfg.MaxRecordsPerPage
}

func (g *weekGrid) pageCount() int {
	n := len(g.filtered())
	if n == 0 {
		return 1
	}
	return (n + g.perPage() - 1) / g.perPage()
}

// visibleRows returns the rows of the current page
func (g *weekGrid) visibleRows() []schedule.Resource {
	rows := g.filtered()
	start := g.page * g.perPage()
	if start >= len(rows) {
		return nil
	}
	end := min(start+g.perPage(), len(rows))
	return rows[start:end]
}

func (g *weekGrid) clamp() {
	g.page = max(0, min(g.page, g.pageCount()-1))
	g.row = max(0, min(g.row, len(g.visibleRows())-1))
	g.col = max(0, min(g.col, schedule.DaysPerWeek-1))
	g.item = max(0, min(g.item, len(g.cell())-1))
}

// cell returns the events of the cursor row on the cursor day
func (g *weekGrid) cell() []schedule.Event {
	rows := g.visibleRows()
	if g.row >= len(rows) {
		return nil
	}
	return rows[g.row].EventsOn(g.week.Days()[g.col])
}

// current returns the row and event under the cursor
func (g *weekGrid) current() (schedule.Resource, schedule.Event, bool) {
	rows := g.visibleRows()
	if g.row >= len(rows) {
		return schedule.Resource{}, schedule.Event{}, false
	}
	events := rows[g.row].EventsOn(g.week.Days()[g.col])
	if g.item >= len(events) {
		return rows[g.row], schedule.Event{}, false
	}
	return rows[g.row], events[g.item], true
}

func (g *weekGrid) moveRow(delta int) {
	g.row += delta
	g.item = 0
	g.clamp()
}

func (g *weekGrid) moveCol(delta int) {
	g.col += delta
	g.item = 0
	g.clamp()
}

func (g *weekGrid) cycleItem() {
	if n := len(g.cell()); n > 0 {
		g.item = (g.item + 1) % n
	}
}

func (g *weekGrid) movePage(delta int) {
	g.page += delta
	g.row, g.item = 0, 0
	g.clamp()
}

// focusResource moves the cursor to the row of resource id, switching page
// when needed. It reports false when the row is filtered out.
func (g *weekGrid) focusResource(id string) bool {
	for i, r := range g.filtered() {
		if r.ID == id {
			g.page = i / g.perPage()
			g.row = i % g.perPage()
			g.item = 0
			g.clamp()
			return true
		}
	}
	return false
}

// click reports the tile under the cursor. An empty cell still reports the
// row, without an event id.
func (g *weekGrid) click() {
	if g.onClick == nil {
		return
	}
	r, e, ok := g.current()
	c := schedule.Click{ResourceID: r.ID}
	if ok {
		c.EventID = e.ID
	}
	g.onClick(c)
}

func (g *weekGrid) colWidth() int {
	return gridUnitWidth * (max(g.cfg.Zoom, 0) + 1)
}

// View renders the grid. focused draws the cursor; selectedTask is
// underlined wherever it appears.
func (g *weekGrid) View(width int, focused bool, selectedTask string) string {
	colW := g.colWidth()
	days := g.week.Days()

	var b strings.Builder

	header := pad("", gridLabelWidth)
	for _, d := range days {
		header += " " + pad(label.ShortDay(d), colW)
	}
	b.WriteString(GridHeaderStyle.Render(truncate(header, width)) + "\n")

	rows := g.visibleRows()
	if len(rows) == 0 {
		b.WriteString(HelpStyle.Render("Aucune tâche cette semaine") + "\n")
	}

	for ri, r := range rows {
		cells := make([][]schedule.Event, len(days))
		height := 1
		for di, d := range days {
			cells[di] = r.EventsOn(d)
			height = max(height, len(cells[di]))
		}

		for line := 0; line < height; line++ {
			var l string
			switch line {
			case 0:
				l = pad(r.Label.Title, gridLabelWidth)
			case 1:
				l = HelpStyle.Render(pad(r.Label.Subtitle, gridLabelWidth))
			default:
				l = pad("", gridLabelWidth)
			}

			for di := range days {
				text := pad("", colW)
				var ev schedule.Event
				has := line < len(cells[di])
				if has {
					ev = cells[di][line]
					text = pad(label.Clock(ev.StartDate)+" "+ev.Title, colW)
				}

				cursor := focused && ri == g.row && di == g.col && line == g.item
				style := lipgloss.NewStyle()
				if has {
					style = style.Background(lipgloss.Color(ev.BgColor)).Foreground(Text)
					if ev.ID == selectedTask {
						style = style.Bold(true).Underline(true)
					}
				}
				if cursor {
					style = style.Inherit(CellCursorStyle)
				}
				l += " " + style.Render(text)
			}
			b.WriteString(l + "\n")
		}
	}

	var footer []string
	if g.pageCount() > 1 {
		footer = append(footer, fmt.Sprintf("Page %d/%d", g.page+1, g.pageCount()))
	}
	switch g.cfg.FilterButtonState {
	case filterOff:
		footer = append(footer, "Filtre: toutes les lignes")
	case filterOn:
		footer = append(footer, "Filtre: lignes occupées")
	}
	if g.cfg.ShowTooltip && focused {
		if _, e, ok := g.current(); ok {
			footer = append(footer, fmt.Sprintf("%s · %s-%s · %s",
				e.Title, label.Clock(e.StartDate), label.Clock(e.EndDate), e.Description))
		}
	}
	if len(footer) > 0 {
		b.WriteString("\n" + HelpStyle.Render(truncate(strings.Join(footer, "  "), width)))
	}

	return GridStyle.MaxWidth(width).Render(b.String())
}
