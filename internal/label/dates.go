package label

import (
	"fmt"
	"math"
	"time"
)

var frenchMonths = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

var frenchWeekdays = [...]string{
	"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi",
}

var frenchShortWeekdays = [...]string{
	"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam.",
}

// DayMonthYear formats t as "23 décembre 2024"
func DayMonthYear(t time.Time) string {
	return fmt.Sprintf("%02d %s %d", t.Day(), frenchMonths[t.Month()-1], t.Year())
}

// LongDate formats t as "lundi 23 décembre 2024"
func LongDate(t time.Time) string {
	return frenchWeekdays[t.Weekday()] + " " + DayMonthYear(t)
}

// ShortDay formats t as a grid column header, e.g. "lun. 23"
func ShortDay(t time.Time) string {
	return fmt.Sprintf("%s %02d", frenchShortWeekdays[t.Weekday()], t.Day())
}

// Clock formats the time of day as "09:00"
func Clock(t time.Time) string {
	return t.Format("15:04")
}

// WeekTitle is the header line for the week containing anchor
func WeekTitle(anchor time.Time) string {
	return "Semaine du " + DayMonthYear(anchor)
}

// Duration renders d rounded to the minute as "1h 30min", "2h" or "45min"
func Duration(d time.Duration) string {
	total := int(math.Round(d.Minutes()))
	if total <= 0 {
		return "0min"
	}
	hours, minutes := total/60, total%60
	switch {
	case hours == 0:
		return fmt.Sprintf("%dmin", minutes)
	case minutes == 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dh %dmin", hours, minutes)
	}
}
