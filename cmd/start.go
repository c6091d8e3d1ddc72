package cmd

import (
	"context"
	"errors"
	"os"

	"inventory-manager/core/reconcile"
	"inventory-manager/feature/inventory/shell"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Import the seed CSV and open the interactive menu",
	Long: `Imports the configured seed CSV (INVENTORY_SEED_CSV) when
INVENTORY_IMPORT_ON_START is set, then shows the inventory menu.`,
	RunE: runStart,
}

func init() {
	RootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer a.close()

	if a.cfg.Inventory.ImportOnStart && a.cfg.Inventory.SeedCSV != "" {
		_, err := a.service.ImportFile(ctx, a.cfg.Inventory.SeedCSV, reconcile.Options{})
		switch {
		case errors.Is(err, os.ErrNotExist):
			a.logger.Warn("Seed CSV not found, starting empty", zap.String("path", a.cfg.Inventory.SeedCSV))
		case err != nil:
			return err
		}
	}

	sh := shell.New(a.service, cmd.InOrStdin(), cmd.OutOrStdout(), a.cfg.Inventory.BackupPath, a.logger)
	if err := sh.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
