// Package filter narrows the employee list shown in the team sidebar.
package filter

import (
	"strings"

	"github.com/existflow/ironplan/internal/model"
)

// Employees returns the employees whose "First Last" name or position
// contains search, ignoring case. An empty search returns every employee.
// Order is preserved. No accent folding is done: "dev" does not match
// "Développeur".
func Employees(employees []model.Employee, search string) []model.Employee {
	if search == "" {
		return employees
	}

	needle := Fold(search)
	out := make([]model.Employee, 0, len(employees))
	for _, e := range employees {
		if Matches(e, needle) {
			out = append(out, e)
		}
	}
	return out
}

// Fold maps s to the form both sides of a match are compared in. Runes are
// upper-cased then lower-cased, so "ı", "I" and "i" all fold to "i" and
// Fold(s) == Fold(strings.ToUpper(s)).
func Fold(s string) string {
	return strings.ToLower(strings.ToUpper(s))
}

// Matches reports whether e matches an already folded needle
func Matches(e model.Employee, needle string) bool {
	return strings.Contains(Fold(e.FullName()), needle) ||
		strings.Contains(Fold(e.Position), needle)
}
