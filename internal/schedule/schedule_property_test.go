package schedule

import (
	"fmt"
	"testing"
	"time"

	"github.com/existflow/ironplan/internal/model"
	"pgregory.net/rapid"
)

func drawDataset(rt *rapid.T) ([]model.Employee, []model.Task) {
	nEmployees := rapid.IntRange(0, 8).Draw(rt, "num_employees")
	employees := make([]model.Employee, nEmployees)
	for i := range employees {
		employees[i] = model.Employee{
			ID:        fmt.Sprintf("e%d", i),
			FirstName: rapid.StringMatching(`[A-Z][a-z]{1,8}`).Draw(rt, "first"),
			LastName:  rapid.StringMatching(`[A-Z][a-z]{1,8}`).Draw(rt, "last"),
			Color:     rapid.SampledFrom([]string{"#3B82F6", "#10B981", ""}).Draw(rt, "employee_color"),
		}
	}

	base := time.Date(2024, time.December, 23, 0, 0, 0, 0, time.UTC)
	nTasks := rapid.IntRange(0, 20).Draw(rt, "num_tasks")
	tasks := make([]model.Task, nTasks)
	for i := range tasks {
		start := base.Add(time.Duration(rapid.IntRange(0, 7*24).Draw(rt, "start_hour")) * time.Hour)
		owner := fmt.Sprintf("e%d", rapid.IntRange(0, 10).Draw(rt, "owner"))
		tasks[i] = model.Task{
			ID:         fmt.Sprintf("t%d", i),
			Title:      rapid.StringMatching(`[a-z ]{0,12}`).Draw(rt, "title"),
			EmployeeID: owner,
			StartDate:  start,
			EndDate:    start.Add(time.Duration(rapid.IntRange(0, 6).Draw(rt, "hours")) * time.Hour),
			Color:      rapid.SampledFrom([]string{"#EF4444", ""}).Draw(rt, "task_color"),
		}
	}
	return employees, tasks
}

// TestProperty1_OneRowPerEmployee verifies that every employee gets exactly
// one row, in order, holding exactly the tasks assigned to it.
func TestProperty1_OneRowPerEmployee(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		employees, tasks := drawDataset(rt)
		rows := Project(employees, tasks)

		if len(rows) != len(employees) {
			rt.Fatalf("got %d rows for %d employees", len(rows), len(employees))
		}

		projected := 0
		for i, e := range employees {
			if rows[i].ID != e.ID {
				rt.Fatalf("row %d id = %q, want %q", i, rows[i].ID, e.ID)
			}

			var want []string
			for _, task := range tasks {
				if task.EmployeeID == e.ID {
					want = append(want, task.ID)
				}
			}
			if len(rows[i].Data) != len(want) {
				rt.Fatalf("row %q has %d events, want %d", e.ID, len(rows[i].Data), len(want))
			}
			for j, ev := range rows[i].Data {
				if ev.ID != want[j] {
					rt.Fatalf("row %q event %d = %q, want %q", e.ID, j, ev.ID, want[j])
				}
				if ev.Occupancy != FullOccupancy {
					rt.Fatalf("event %q occupancy = %d", ev.ID, ev.Occupancy)
				}
			}
			projected += len(rows[i].Data)
		}

		assigned := 0
		known := make(map[string]bool, len(employees))
		for _, e := range employees {
			known[e.ID] = true
		}
		for _, task := range tasks {
			if known[task.EmployeeID] {
				assigned++
			}
		}
		if projected != assigned {
			rt.Fatalf("projected %d events, %d tasks have a known employee", projected, assigned)
		}
	})
}

// TestProperty2_ProjectIsDeterministic verifies that projecting the same
// inputs twice yields equal rows.
func TestProperty2_ProjectIsDeterministic(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		employees, tasks := drawDataset(rt)
		a := Project(employees, tasks)
		b := Project(employees, tasks)

		for i := range a {
			if a[i].ID != b[i].ID || a[i].Label != b[i].Label || len(a[i].Data) != len(b[i].Data) {
				rt.Fatalf("row %d differs: %+v vs %+v", i, a[i], b[i])
			}
			for j := range a[i].Data {
				if a[i].Data[j] != b[i].Data[j] {
					rt.Fatalf("event %d/%d differs", i, j)
				}
			}
		}
	})
}

// TestProperty3_ProjectorReturnsCachedRows verifies that the projector hands
// back the same rows for equal inputs.
func TestProperty3_ProjectorReturnsCachedRows(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		employees, tasks := drawDataset(rt)
		if len(employees) == 0 {
			return
		}

		var p Projector
		first := p.Rows(employees, tasks)
		second := p.Rows(append([]model.Employee(nil), employees...), append([]model.Task(nil), tasks...))
		if &first[0] != &second[0] {
			rt.Fatal("expected cached rows for equal inputs")
		}
	})
}

// TestProperty4_WeekOfIsMondayContainingAnchor verifies the week window for
// arbitrary anchors.
func TestProperty4_WeekOfIsMondayContainingAnchor(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		anchor := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC).
			Add(time.Duration(rapid.Int64Range(0, 3*365*24*60).Draw(rt, "minutes")) * time.Minute)

		w := WeekOf(anchor)
		if w.Start.Weekday() != time.Monday {
			rt.Fatalf("week of %v starts on %v", anchor, w.Start.Weekday())
		}
		if w.Start.Hour() != 0 || w.Start.Minute() != 0 {
			rt.Fatalf("week start %v is not midnight", w.Start)
		}
		if !w.Contains(anchor) {
			rt.Fatalf("week %v does not contain %v", w.Start, anchor)
		}
		if !WeekOf(w.Start).Start.Equal(w.Start) {
			rt.Fatal("WeekOf is not idempotent on its start")
		}
	})
}
