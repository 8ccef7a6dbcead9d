package cli

import (
	"fmt"

	"github.com/existflow/ironplan/internal/logger"
	"github.com/existflow/ironplan/internal/store"
	"github.com/spf13/cobra"
)

var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Manage the planning dataset",
}

var datasetExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the loaded dataset to a file",
	Long: `Write the currently loaded dataset to a YAML or SQLite file. The file can
then be used as a source with --source-driver yaml|sqlite.

Examples:
  ironplan dataset export --out team.yaml
  ironplan dataset export --format sqlite --out team.db`,
	Args: cobra.NoArgs,
	RunE: runDatasetExport,
}

var (
	exportFormat string
	exportOut    string
)

func init() {
	datasetExportCmd.Flags().StringVarP(&exportFormat, "format", "f", store.DriverYAML, "Output format (yaml, sqlite)")
	datasetExportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file")
	_ = datasetExportCmd.MarkFlagRequired("out")

	datasetCmd.AddCommand(datasetExportCmd)
}

func runDatasetExport(cmd *cobra.Command, args []string) error {
	catalog, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	d := catalog.Dataset()
	if err := store.Export(cmd.Context(), exportFormat, exportOut, d); err != nil {
		logger.Error("Export failed", logger.F("format", exportFormat), logger.F("error", err))
		return fmt.Errorf("failed to export dataset: %w", err)
	}

	logger.Info("Dataset exported",
		logger.F("format", exportFormat),
		logger.F("path", exportOut),
		logger.F("employees", len(d.Employees)),
		logger.F("tasks", len(d.Tasks)))
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Exported %d employees and %d tasks to %s\n",
		len(d.Employees), len(d.Tasks), exportOut)
	return nil
}
