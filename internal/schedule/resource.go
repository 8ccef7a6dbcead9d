// Package schedule projects employees and tasks into the resource rows a
// calendar widget renders, and defines the narrow contract such a widget has
// to satisfy.
package schedule

import (
	"time"

	"github.com/existflow/ironplan/internal/model"
)

// FullOccupancy is the occupancy reported for every event tile
const FullOccupancy = 100

// Label is the row header of a resource
type Label struct {
	Icon     string `json:"icon"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// Event is one task tile inside a resource row
type Event struct {
	ID          string    `json:"id"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Occupancy   int       `json:"occupancy"`
	Title       string    `json:"title"`
	Subtitle    string    `json:"subtitle"`
	Description string    `json:"description"`
	BgColor     string    `json:"bgColor"`
}

// Resource is one employee's row and the tiles scheduled on it
type Resource struct {
	ID    string  `json:"id"`
	Label Label   `json:"label"`
	Data  []Event `json:"data"`
}

// Project builds one resource per employee, in employee order. Each row holds
// the employee's tasks in task-list order. Tasks whose employee is not in the
// list appear in no row.
func Project(employees []model.Employee, tasks []model.Task) []Resource {
	byEmployee := make(map[string][]model.Task, len(employees))
	for _, t := range tasks {
		byEmployee[t.EmployeeID] = append(byEmployee[t.EmployeeID], t)
	}

	rows := make([]Resource, 0, len(employees))
	for _, e := range employees {
		owned := byEmployee[e.ID]
		events := make([]Event, 0, len(owned))
		for _, t := range owned {
			events = append(events, newEvent(t, e))
		}
		rows = append(rows, Resource{
			ID: e.ID,
			Label: Label{
				Title:    e.FullName(),
				Subtitle: e.Position,
			},
			Data: events,
		})
	}
	return rows
}

func newEvent(t model.Task, owner model.Employee) Event {
	color := t.Color
	if color == "" {
		color = owner.Color
	}
	return Event{
		ID:          t.ID,
		StartDate:   t.StartDate,
		EndDate:     t.EndDate,
		Occupancy:   FullOccupancy,
		Title:       t.Title,
		Subtitle:    t.Description,
		Description: t.Description,
		BgColor:     color,
	}
}

// EventsBetween returns the row's events that overlap [from, to).
// A zero-length event counts when it starts inside the window.
func (r Resource) EventsBetween(from, to time.Time) []Event {
	var out []Event
	for _, e := range r.Data {
		if !e.StartDate.Before(to) {
			continue
		}
		if e.EndDate.After(from) || !e.StartDate.Before(from) {
			out = append(out, e)
		}
	}
	return out
}

// EventsOn returns the events overlapping the calendar day of day
func (r Resource) EventsOn(day time.Time) []Event {
	start := startOfDay(day)
	return r.EventsBetween(start, start.AddDate(0, 0, 1))
}
