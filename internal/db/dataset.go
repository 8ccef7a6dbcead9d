package db

import (
	"context"
	"fmt"
	"time"

	"github.com/existflow/ironplan/internal/model"
)

// LoadDataset reads every employee and task in their stored order
func (db *DB) LoadDataset(ctx context.Context) (model.Dataset, error) {
	var d model.Dataset

	rows, err := db.QueryContext(ctx, `
		SELECT id, first_name, last_name, job_title, color, email, is_available
		FROM employees
		ORDER BY sort_order, id`)
	if err != nil {
		return d, fmt.Errorf("failed to query employees: %w", err)
	}
	for rows.Next() {
		var e model.Employee
		if err := rows.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Position, &e.Color, &e.Email, &e.IsAvailable); err != nil {
			rows.Close()
			return d, fmt.Errorf("failed to scan employee: %w", err)
		}
		d.Employees = append(d.Employees, e)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return d, fmt.Errorf("failed to read employees: %w", err)
	}
	if err := rows.Close(); err != nil {
		return d, err
	}

	rows, err = db.QueryContext(ctx, `
		SELECT id, title, description, start_date, end_date, employee_id,
		       category, priority, status, color
		FROM tasks
		ORDER BY sort_order, id`)
	if err != nil {
		return d, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var t model.Task
		var start, end string
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &start, &end, &t.EmployeeID,
			&t.Category, &t.Priority, &t.Status, &t.Color); err != nil {
			return d, fmt.Errorf("failed to scan task: %w", err)
		}
		if t.StartDate, err = time.Parse(time.RFC3339Nano, start); err != nil {
			return d, fmt.Errorf("task %s: bad start_date: %w", t.ID, err)
		}
		if t.EndDate, err = time.Parse(time.RFC3339Nano, end); err != nil {
			return d, fmt.Errorf("task %s: bad end_date: %w", t.ID, err)
		}
		d.Tasks = append(d.Tasks, t)
	}

	return d, rows.Err()
}

// ReplaceDataset overwrites the stored dataset with d in one transaction.
// It is only used to produce dataset files, never by a running planner.
func (db *DB) ReplaceDataset(ctx context.Context, d model.Dataset) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM tasks"); err != nil {
		return fmt.Errorf("failed to clear tasks: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM employees"); err != nil {
		return fmt.Errorf("failed to clear employees: %w", err)
	}

	insertEmployee := db.rebind(`
		INSERT INTO employees (id, first_name, last_name, job_title, color, email, is_available, sort_order)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	for i, e := range d.Employees {
		if _, err := tx.ExecContext(ctx, insertEmployee,
			e.ID, e.FirstName, e.LastName, e.Position, e.Color, e.Email, e.IsAvailable, i); err != nil {
			return fmt.Errorf("failed to insert employee %s: %w", e.ID, err)
		}
	}

	insertTask := db.rebind(`
		INSERT INTO tasks (id, title, description, start_date, end_date, employee_id,
		                   category, priority, status, color, sort_order)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	for i, t := range d.Tasks {
		if _, err := tx.ExecContext(ctx, insertTask,
			t.ID, t.Title, t.Description,
			t.StartDate.Format(time.RFC3339Nano), t.EndDate.Format(time.RFC3339Nano),
			t.EmployeeID, string(t.Category), string(t.Priority), string(t.Status), t.Color, i); err != nil {
			return fmt.Errorf("failed to insert task %s: %w", t.ID, err)
		}
	}

	return tx.Commit()
}
