// Package session holds the selection state of one planning session: the
// selected employee, the selected task and the week being looked at.
//
// A State is not safe for concurrent use. The TUI drives it from its update
// loop and the server serializes access per session.
package session

import (
	"time"

	"github.com/existflow/ironplan/internal/label"
	"github.com/existflow/ironplan/internal/logger"
	"github.com/existflow/ironplan/internal/model"
	"github.com/existflow/ironplan/internal/schedule"
	"github.com/existflow/ironplan/internal/store"
	"github.com/google/uuid"
)

// State is the selection state container
type State struct {
	catalog  *store.Catalog
	now      func() time.Time
	notifier Notifier

	employeeID string
	taskID     string
	anchor     time.Time
}

// Option configures a State
type Option func(*State)

// WithClock replaces time.Now as the source of "today"
func WithClock(now func() time.Time) Option {
	return func(s *State) {
		s.now = now
	}
}

// WithNotifier sets where notifications are delivered
func WithNotifier(n Notifier) Option {
	return func(s *State) {
		s.notifier = n
	}
}

// New returns a state with nothing selected, anchored on today
func New(catalog *store.Catalog, opts ...Option) *State {
	s := &State{
		catalog:  catalog,
		now:      time.Now,
		notifier: discard{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.anchor = today(s.now())
	return s
}

// Snapshot is a serializable view of a State
type Snapshot struct {
	SelectedEmployeeID string    `json:"selected_employee_id,omitempty"`
	SelectedTaskID     string    `json:"selected_task_id,omitempty"`
	Anchor             time.Time `json:"anchor"`
	WeekStart          time.Time `json:"week_start"`
	WeekTitle          string    `json:"week_title"`
}

// Catalog returns the data the state selects from
func (s *State) Catalog() *store.Catalog {
	return s.catalog
}

// Anchor returns the reference date of the visible week
func (s *State) Anchor() time.Time {
	return s.anchor
}

// Week returns the visible week
func (s *State) Week() schedule.Week {
	return schedule.WeekOf(s.anchor)
}

// SelectedEmployeeID returns the selected employee id, or ""
func (s *State) SelectedEmployeeID() string {
	return s.employeeID
}

// SelectedTaskID returns the selected task id, or ""
func (s *State) SelectedTaskID() string {
	return s.taskID
}

// SelectedEmployee resolves the selected employee
func (s *State) SelectedEmployee() (model.Employee, bool) {
	if s.employeeID == "" {
		return model.Employee{}, false
	}
	return s.catalog.Employee(s.employeeID)
}

// SelectedTask resolves the selected task
func (s *State) SelectedTask() (model.Task, bool) {
	if s.taskID == "" {
		return model.Task{}, false
	}
	return s.catalog.Task(s.taskID)
}

// Snapshot captures the current selection
func (s *State) Snapshot() Snapshot {
	week := s.Week()
	return Snapshot{
		SelectedEmployeeID: s.employeeID,
		SelectedTaskID:     s.taskID,
		Anchor:             s.anchor,
		WeekStart:          week.Start,
		WeekTitle:          label.WeekTitle(s.anchor),
	}
}

// SelectEmployee selects the employee with id and clears the task selection.
// It reports false, changing nothing, when id is unknown.
func (s *State) SelectEmployee(id string) bool {
	if _, ok := s.catalog.Employee(id); !ok {
		return false
	}
	s.employeeID = id
	s.taskID = ""
	return true
}

// SelectTaskByClick selects the task with eventID and its owner. It is a
// no-op when the task or its owner cannot be found.
func (s *State) SelectTaskByClick(eventID string) bool {
	task, ok := s.catalog.Task(eventID)
	if !ok {
		logger.Debug("Click on unknown task", logger.F("task_id", eventID))
		return false
	}
	owner, ok := s.catalog.Employee(task.EmployeeID)
	if !ok {
		logger.Debug("Click on task without owner",
			logger.F("task_id", task.ID),
			logger.F("employee_id", task.EmployeeID))
		return false
	}

	s.employeeID = owner.ID
	s.taskID = task.ID
	s.notify("Tâche sélectionnée", task.Title+" - "+owner.FullName(), VariantDefault)
	return true
}

// HandleTileClick is the widget callback. Clicks without an event id are
// ignored.
func (s *State) HandleTileClick(c schedule.Click) {
	id, ok := c.ID()
	if !ok {
		return
	}
	s.SelectTaskByClick(id)
}

// CloseDetail clears the task selection and keeps the employee
func (s *State) CloseDetail() {
	s.taskID = ""
}

// DeleteTask announces the deletion of a task and clears the task selection.
// The catalog is read-only, so the task stays in the data.
func (s *State) DeleteTask(id string) bool {
	task, ok := s.catalog.Task(id)
	if !ok {
		return false
	}
	s.notify("Tâche supprimée", task.Title+" a été supprimée", VariantDestructive)
	s.taskID = ""
	return true
}

// EditTask announces that a task would be edited
func (s *State) EditTask(id string) bool {
	task, ok := s.catalog.Task(id)
	if !ok {
		return false
	}
	s.notify("Édition de tâche", "Édition de : "+task.Title, VariantDefault)
	return true
}

// AddTask announces that task creation is not available yet
func (s *State) AddTask() {
	s.notify("Fonctionnalité à venir", "L'ajout de tâches sera bientôt disponible", VariantDefault)
}

// PreviousWeek moves the anchor back seven days
func (s *State) PreviousWeek() {
	s.anchor = s.anchor.AddDate(0, 0, -schedule.DaysPerWeek)
}

// NextWeek moves the anchor forward seven days
func (s *State) NextWeek() {
	s.anchor = s.anchor.AddDate(0, 0, schedule.DaysPerWeek)
}

// Today moves the anchor back to the current date
func (s *State) Today() {
	s.anchor = today(s.now())
}

func (s *State) notify(title, description string, variant Variant) {
	n := Notification{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Variant:     variant,
		At:          s.now(),
	}
	logger.Info("Notification",
		logger.F("title", n.Title),
		logger.F("description", n.Description),
		logger.F("variant", n.Variant))
	s.notifier.Notify(n)
}

func today(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
