package cli

import (
	"github.com/existflow/ironplan/internal/filter"
	"github.com/spf13/cobra"
)

var employeesCmd = &cobra.Command{
	Use:     "employees",
	Aliases: []string{"ls", "team"},
	Short:   "List the team",
	Long: `List employees with their availability, optionally filtered by a
case-insensitive search on name or position.

Examples:
  ironplan employees
  ironplan team -s front`,
	Args: cobra.NoArgs,
	RunE: runEmployees,
}

var employeesSearch string

func init() {
	employeesCmd.Flags().StringVarP(&employeesSearch, "search", "s", "", "Filter by name or position")
}

func runEmployees(cmd *cobra.Command, args []string) error {
	catalog, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	all := catalog.Employees()
	printEmployees(cmd.OutOrStdout(), filter.Employees(all, employeesSearch), all)
	return nil
}
