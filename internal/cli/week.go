package cli

import (
	"fmt"
	"time"

	"github.com/existflow/ironplan/internal/session"
	"github.com/existflow/ironplan/internal/store"
	"github.com/spf13/cobra"
)

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Print a week agenda",
	Long: `Print the tasks of one week, one block per employee.

Examples:
  ironplan week
  ironplan week --offset 1
  ironplan week --date 2024-12-23`,
	Args: cobra.NoArgs,
	RunE: runWeek,
}

var (
	weekDate   string
	weekOffset int
)

func init() {
	weekCmd.Flags().StringVar(&weekDate, "date", "", "Any day of the week to show (YYYY-MM-DD, default today)")
	weekCmd.Flags().IntVar(&weekOffset, "offset", 0, "Weeks to move from that day, negative for the past")
}

func runWeek(cmd *cobra.Command, args []string) error {
	var clock func() time.Time
	if weekDate != "" {
		day, err := time.ParseInLocation(time.DateOnly, weekDate, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --date %q: %w", weekDate, err)
		}
		clock = func() time.Time { return day }
	}

	catalog, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	st := newState(catalog, clock)
	moveWeeks(st, weekOffset)
	printWeek(cmd.OutOrStdout(), st.Anchor(), catalog, cfg.Widget)
	return nil
}

// newState returns a session anchored on clock's date, or on today when
// clock is nil
func newState(catalog *store.Catalog, clock func() time.Time) *session.State {
	if clock == nil {
		return session.New(catalog)
	}
	return session.New(catalog, session.WithClock(clock))
}

func moveWeeks(st *session.State, n int) {
	for ; n > 0; n-- {
		st.NextWeek()
	}
	for ; n < 0; n++ {
		st.PreviousWeek()
	}
}
