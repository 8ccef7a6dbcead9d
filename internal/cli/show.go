package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <task-id>",
	Short: "Show task details",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	catalog, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	task, ok := catalog.Task(args[0])
	if !ok {
		return fmt.Errorf("task %q not found", args[0])
	}
	owner, hasOwner := catalog.Employee(task.EmployeeID)

	printTask(cmd.OutOrStdout(), task, owner, hasOwner)
	return nil
}
