package cmd

import (
	"fmt"

	"inventory-manager/core/utils"

	"github.com/spf13/cobra"
)

// viewCmd prints a single product.
var viewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show a product by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.close()

		ids, err := a.service.ProductIDs(ctx)
		if err != nil {
			return err
		}
		id, err := utils.ParseID(args[0], ids)
		if err != nil {
			return err
		}

		p, err := a.service.ViewProduct(ctx, id)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Product:  %s\nPrice:    %s\nQuantity: %d\nUpdated:  %s\n",
			p.Name, utils.FormatPrice(p.PriceCents), p.Quantity, utils.FormatDate(p.DateUpdated))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(viewCmd)
}
