// Package store holds the read-only dataset of a planning session and the
// sources it can be loaded from.
package store

import "github.com/existflow/ironplan/internal/model"

// Catalog is the immutable set of employees and tasks for a session.
// Slices returned by its methods are shared and must not be modified.
type Catalog struct {
	employees   []model.Employee
	tasks       []model.Task
	employeeIdx map[string]int
	taskIdx     map[string]int
}

// Summary holds the header and sidebar counters
type Summary struct {
	TotalTasks     int `json:"total_tasks"`
	CompletedTasks int `json:"completed_tasks"`
	Available      int `json:"available"`
	Busy           int `json:"busy"`
}

// NewCatalog indexes d. When ids repeat, lookups return the first record.
func NewCatalog(d model.Dataset) *Catalog {
	c := &Catalog{
		employees:   d.Employees,
		tasks:       d.Tasks,
		employeeIdx: make(map[string]int, len(d.Employees)),
		taskIdx:     make(map[string]int, len(d.Tasks)),
	}
	for i, e := range d.Employees {
		if _, ok := c.employeeIdx[e.ID]; !ok {
			c.employeeIdx[e.ID] = i
		}
	}
	for i, t := range d.Tasks {
		if _, ok := c.taskIdx[t.ID]; !ok {
			c.taskIdx[t.ID] = i
		}
	}
	return c
}

// Employees returns every employee in load order
func (c *Catalog) Employees() []model.Employee {
	return c.employees
}

// Tasks returns every task in load order
func (c *Catalog) Tasks() []model.Task {
	return c.tasks
}

// Dataset returns the catalog contents
func (c *Catalog) Dataset() model.Dataset {
	return model.Dataset{Employees: c.employees, Tasks: c.tasks}
}

// Employee looks up an employee by id
func (c *Catalog) Employee(id string) (model.Employee, bool) {
	i, ok := c.employeeIdx[id]
	if !ok {
		return model.Employee{}, false
	}
	return c.employees[i], true
}

// Task looks up a task by id
func (c *Catalog) Task(id string) (model.Task, bool) {
	i, ok := c.taskIdx[id]
	if !ok {
		return model.Task{}, false
	}
	return c.tasks[i], true
}

// Summary counts tasks and employee availability
func (c *Catalog) Summary() Summary {
	available, busy := model.CountAvailability(c.employees)
	return Summary{
		TotalTasks:     len(c.tasks),
		CompletedTasks: model.CountCompleted(c.tasks),
		Available:      available,
		Busy:           busy,
	}
}
