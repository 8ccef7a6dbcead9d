package schedule

import "time"

// DaysPerWeek is the number of columns in the week grid
const DaysPerWeek = 7

// Week is the visible Monday-to-Sunday window
type Week struct {
	Start time.Time
}

// WeekOf returns the week containing anchor, starting Monday 00:00 in
// anchor's location.
func WeekOf(anchor time.Time) Week {
	offset := int(anchor.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += DaysPerWeek
	}
	return Week{Start: startOfDay(anchor).AddDate(0, 0, -offset)}
}

// End returns the exclusive end of the week
func (w Week) End() time.Time {
	return w.Start.AddDate(0, 0, DaysPerWeek)
}

// Days returns the seven day starts of the week
func (w Week) Days() []time.Time {
	days := make([]time.Time, DaysPerWeek)
	for i := range days {
		days[i] = w.Start.AddDate(0, 0, i)
	}
	return days
}

// Contains reports whether t falls inside the week
func (w Week) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End())
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
