package cmd

import (
	"errors"
	"fmt"

	"inventory-manager/core/apperr"

	"github.com/spf13/cobra"
)

// Flags for backup command
var backupOut string

// backupCmd exports the inventory to CSV.
var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Export the inventory to a CSV file",
	Long: `Writes every product to a CSV file, replacing the previous backup.
When STORAGE_ENABLED is set the file is also uploaded to the storage bucket.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.close()

		path := a.cfg.Inventory.BackupPath
		if backupOut != "" {
			path = backupOut
		}

		n, err := a.service.Backup(ctx, path)
		if errors.Is(err, apperr.ErrEmptyStore) {
			fmt.Fprintln(cmd.OutOrStdout(), "There is nothing to back up yet.")
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Backup saved to %s (%d products).\n", path, n)
		return nil
	},
}

func init() {
	backupCmd.Flags().StringVar(&backupOut, "out", "", "Destination file (defaults to INVENTORY_BACKUP_PATH)")
	RootCmd.AddCommand(backupCmd)
}
