package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/existflow/ironplan/internal/label"
	"github.com/existflow/ironplan/internal/model"
	"github.com/existflow/ironplan/internal/schedule"
	"github.com/existflow/ironplan/internal/store"
)

const ruleWidth = 60

func printEmployees(w io.Writer, employees []model.Employee, all []model.Employee) {
	if len(employees) == 0 {
		fmt.Fprintln(w, "Aucun employé trouvé")
	} else {
		fmt.Fprintf(w, "\n👥 Équipe (%d)\n", len(employees))
		fmt.Fprintln(w, strings.Repeat("─", ruleWidth))
		for _, e := range employees {
			printEmployee(w, e)
		}
	}

	available, busy := model.CountAvailability(all)
	fmt.Fprintf(w, "\nDisponibles: %d  Occupés: %d\n", available, busy)
}

func printEmployee(w io.Writer, e model.Employee) {
	icon := "[ ]"
	if e.IsAvailable {
		icon = "[✓]"
	}
	fmt.Fprintf(w, "  %s  %-4s  %-20s  %-24s  %s\n",
		icon, e.ID, e.FullName(), e.Position, label.Availability(e.IsAvailable))
}

// printWeek prints the week containing anchor, one block per row. Only
// events inside that week are listed.
func printWeek(w io.Writer, anchor time.Time, catalog *store.Catalog, widget schedule.Config) {
	week := schedule.WeekOf(anchor)
	rows := schedule.Project(catalog.Employees(), catalog.Tasks())

	fmt.Fprintf(w, "\n📅 %s\n", label.WeekTitle(anchor))
	fmt.Fprintln(w, strings.Repeat("─", ruleWidth))

	shown := 0
	for _, r := range rows {
		events := r.EventsBetween(week.Start, week.End())
		if len(events) == 0 && widget.FilterButtonState == 1 {
			continue
		}
		shown++

		fmt.Fprintf(w, "\n%s · %s\n", r.Label.Title, r.Label.Subtitle)
		if len(events) == 0 {
			fmt.Fprintln(w, "    -")
			continue
		}
		for _, e := range events {
			fmt.Fprintf(w, "    %-8s  %s-%s  %s\n",
				label.ShortDay(e.StartDate), label.Clock(e.StartDate), label.Clock(e.EndDate), e.Title)
		}
	}
	if shown == 0 {
		fmt.Fprintln(w, "Aucune tâche cette semaine")
	}
	fmt.Fprintln(w)
}

func printTask(w io.Writer, t model.Task, owner model.Employee, hasOwner bool) {
	fmt.Fprintf(w, "\n📋 %s\n", t.Title)
	fmt.Fprintln(w, strings.Repeat("─", ruleWidth))
	if t.Description != "" {
		fmt.Fprintf(w, "%s\n\n", t.Description)
	}

	if hasOwner {
		fmt.Fprintf(w, "  %-12s %s (%s)\n", "Employé :", owner.FullName(), owner.Position)
	}
	fmt.Fprintf(w, "  %-12s %s\n", "Date :", label.LongDate(t.StartDate))
	fmt.Fprintf(w, "  %-12s %s\n", "Début :", label.Clock(t.StartDate))
	fmt.Fprintf(w, "  %-12s %s\n", "Fin :", label.Clock(t.EndDate))
	fmt.Fprintf(w, "  %-12s %s\n", "Durée :", label.Duration(t.Duration()))
	fmt.Fprintf(w, "  %-12s %s · %s · %s\n", "Statut :",
		label.Category(t.Category), label.Priority(t.Priority), label.Status(t.Status))
	fmt.Fprintln(w)
}
