package cmd

import (
	"fmt"

	"inventory-manager/core/reconcile"
	"inventory-manager/feature/inventory"

	"github.com/spf13/cobra"
)

var (
	// Flags for import command
	dryRunImport bool
	objectImport string
)

// importCmd reconciles a CSV file against the stored inventory.
var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import products from a CSV file",
	Long: `Reconcile every row of an inventory CSV against the stored products.

Rows with a newer date replace the stored record, older or identical rows are ignored.
Malformed rows are reported and skipped.

Examples:
  # Import the configured seed file
  import

  # Preview what an import would change
  import restock.csv --dry-run

  # Import a CSV from the storage bucket
  import --object backups/backup.csv`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVar(&dryRunImport, "dry-run", false, "Report outcomes without writing to the database")
	importCmd.Flags().StringVar(&objectImport, "object", "", "Read the CSV from this object in the storage bucket")
	RootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer a.close()

	opts := reconcile.Options{DryRun: dryRunImport}

	var report *inventory.ImportReport
	if objectImport != "" {
		report, err = a.service.ImportObject(ctx, objectImport, opts)
	} else {
		path := a.cfg.Inventory.SeedCSV
		if len(args) == 1 {
			path = args[0]
		}
		report, err = a.service.ImportFile(ctx, path, opts)
	}
	if err != nil {
		return err
	}

	printReport(cmd, report)
	return nil
}

func printReport(cmd *cobra.Command, report *inventory.ImportReport) {
	out := cmd.OutOrStdout()
	sum := report.Summary

	if report.DryRun {
		fmt.Fprintln(out, "Dry run: no changes were written.")
	}
	for _, row := range report.Rows {
		if row.Err != nil {
			fmt.Fprintf(out, "  line %d: skipped (%v)\n", row.Line, row.Err)
			continue
		}
		fmt.Fprintf(out, "  line %d: %s: %s\n", row.Line, row.Name, row.Outcome.Describe())
	}
	fmt.Fprintf(out, "\nRun %s: %d rows, %d added, %d updated, %d older, %d unchanged, %d skipped\n",
		report.RunID, sum.Total, sum.Inserted, sum.Updated, sum.Stale, sum.Duplicates, sum.Skipped)
}
