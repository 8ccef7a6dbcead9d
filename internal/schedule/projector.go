package schedule

import (
	"slices"

	"github.com/existflow/ironplan/internal/model"
)

// Projector memoizes Project on its two inputs. The returned rows are shared
// between calls and must be treated as read-only.
type Projector struct {
	employees []model.Employee
	tasks     []model.Task
	rows      []Resource
	primed    bool
}

// Rows returns the projection of employees and tasks, recomputing it only
// when either list differs from the previous call.
func (p *Projector) Rows(employees []model.Employee, tasks []model.Task) []Resource {
	if p.primed && slices.Equal(p.employees, employees) && slices.EqualFunc(p.tasks, tasks, sameTask) {
		return p.rows
	}

	p.employees = slices.Clone(employees)
	p.tasks = slices.Clone(tasks)
	p.rows = Project(employees, tasks)
	p.primed = true
	return p.rows
}

func sameTask(a, b model.Task) bool {
	return a.ID == b.ID &&
		a.Title == b.Title &&
		a.Description == b.Description &&
		a.StartDate.Equal(b.StartDate) &&
		a.EndDate.Equal(b.EndDate) &&
		a.EmployeeID == b.EmployeeID &&
		a.Category == b.Category &&
		a.Priority == b.Priority &&
		a.Status == b.Status &&
		a.Color == b.Color
}
