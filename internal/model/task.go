package model

import (
	"fmt"
	"time"
)

// Category classifies what kind of work a task is
type Category string

const (
	CategoryMeeting     Category = "meeting"
	CategoryDevelopment Category = "development"
	CategorySupport     Category = "support"
	CategoryTraining    Category = "training"
	CategoryAdmin       Category = "admin"
)

// Priority levels for tasks
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Status is the progress state of a task
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Categories returns every category in display order
func Categories() []Category {
	return []Category{CategoryMeeting, CategoryDevelopment, CategorySupport, CategoryTraining, CategoryAdmin}
}

// Priorities returns every priority from lowest to highest
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}
}

// Statuses returns every status in lifecycle order
func Statuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusCompleted, StatusCancelled}
}

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	for _, v := range Categories() {
		if c == v {
			return true
		}
	}
	return false
}

// Valid reports whether p is one of the known priorities
func (p Priority) Valid() bool {
	for _, v := range Priorities() {
		if p == v {
			return true
		}
	}
	return false
}

// Valid reports whether s is one of the known statuses
func (s Status) Valid() bool {
	for _, v := range Statuses() {
		if s == v {
			return true
		}
	}
	return false
}

// Task is a block of work scheduled for one employee
type Task struct {
	ID          string    `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	StartDate   time.Time `json:"start_date" yaml:"start_date"`
	EndDate     time.Time `json:"end_date" yaml:"end_date"`
	EmployeeID  string    `json:"employee_id" yaml:"employee_id"`
	Category    Category  `json:"category" yaml:"category"`
	Priority    Priority  `json:"priority" yaml:"priority"`
	Status      Status    `json:"status" yaml:"status"`
	Color       string    `json:"color,omitempty" yaml:"color,omitempty"`
}

// Duration returns the scheduled length of the task
func (t Task) Duration() time.Duration {
	return t.EndDate.Sub(t.StartDate)
}

// IsCompleted returns true if the task is done
func (t Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// Validate checks the enum fields. Dates and the employee reference are not
// checked: an unknown employee only hides the task from the schedule.
func (t Task) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("task has no id")
	}
	if !t.Category.Valid() {
		return fmt.Errorf("task %s: unknown category %q", t.ID, t.Category)
	}
	if !t.Priority.Valid() {
		return fmt.Errorf("task %s: unknown priority %q", t.ID, t.Priority)
	}
	if !t.Status.Valid() {
		return fmt.Errorf("task %s: unknown status %q", t.ID, t.Status)
	}
	return nil
}

// CountCompleted returns how many tasks have the completed status
func CountCompleted(tasks []Task) int {
	n := 0
	for _, t := range tasks {
		if t.IsCompleted() {
			n++
		}
	}
	return n
}
