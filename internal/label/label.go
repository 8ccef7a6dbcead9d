// Package label turns domain values into the French display strings shown by
// every surface of the planner.
package label

import "github.com/existflow/ironplan/internal/model"

var categoryLabels = map[model.Category]string{
	model.CategoryMeeting:     "Réunion",
	model.CategoryDevelopment: "Développement",
	model.CategorySupport:     "Support",
	model.CategoryTraining:    "Formation",
	model.CategoryAdmin:       "Administration",
}

var priorityLabels = map[model.Priority]string{
	model.PriorityLow:    "Faible",
	model.PriorityMedium: "Moyenne",
	model.PriorityHigh:   "Haute",
	model.PriorityUrgent: "Urgent",
}

var statusLabels = map[model.Status]string{
	model.StatusPending:    "En attente",
	model.StatusInProgress: "En cours",
	model.StatusCompleted:  "Terminé",
	model.StatusCancelled:  "Annulé",
}

// Category returns the display label of c.
// Values outside model.Categories() have no label and yield "".
func Category(c model.Category) string {
	return categoryLabels[c]
}

// Priority returns the display label of p
func Priority(p model.Priority) string {
	return priorityLabels[p]
}

// Status returns the display label of s
func Status(s model.Status) string {
	return statusLabels[s]
}

// Availability returns the badge text for an employee's availability
func Availability(available bool) string {
	if available {
		return "Disponible"
	}
	return "Occupé"
}

// Tables holds every label table keyed by raw enum value
type Tables struct {
	Categories map[string]string `json:"categories"`
	Priorities map[string]string `json:"priorities"`
	Statuses   map[string]string `json:"statuses"`
}

// All returns a copy of the three label tables
func All() Tables {
	t := Tables{
		Categories: make(map[string]string, len(categoryLabels)),
		Priorities: make(map[string]string, len(priorityLabels)),
		Statuses:   make(map[string]string, len(statusLabels)),
	}
	for k, v := range categoryLabels {
		t.Categories[string(k)] = v
	}
	for k, v := range priorityLabels {
		t.Priorities[string(k)] = v
	}
	for k, v := range statusLabels {
		t.Statuses[string(k)] = v
	}
	return t
}
