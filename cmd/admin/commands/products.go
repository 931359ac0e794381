package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/crownpanel/crownpanel/internal/products"
	"github.com/crownpanel/crownpanel/internal/view"
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Manage the product catalogue",
}

var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the catalogue",
	RunE: func(cmd *cobra.Command, _ []string) error {
		list := productSvc.List(cmd.Context())
		rows := make([][]string, 0, len(list))
		for _, p := range list {
			stock := "-"
			if p.Stock != nil {
				stock = strconv.Itoa(*p.Stock)
			}
			rows = append(rows, []string{
				strconv.FormatInt(p.ID, 10),
				p.Name,
				formatMoney(p.Price),
				p.Category,
				stock,
			})
		}
		fmt.Print(view.Table([]string{"ID", "Name", "Price", "Category", "Stock"}, rows))
		return nil
	},
}

func productFromFlags(cmd *cobra.Command) products.Product {
	p := products.Product{
		Name:        mustFlag(cmd, "name"),
		Category:    mustFlag(cmd, "category"),
		Description: mustFlag(cmd, "description"),
	}
	p.Price, _ = cmd.Flags().GetFloat64("price")
	p.Images, _ = cmd.Flags().GetStringArray("image")
	if cmd.Flags().Changed("stock") {
		stock, _ := cmd.Flags().GetInt("stock")
		p.Stock = &stock
	}
	return p
}

var productsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a product",
	RunE: func(cmd *cobra.Command, _ []string) error {
		p, err := productSvc.Add(cmd.Context(), productFromFlags(cmd))
		if err != nil {
			return err
		}
		view.Success("added product #%d %s", p.ID, p.Name)
		return nil
	},
}

var productsQuickAddCmd = &cobra.Command{
	Use:   "quick-add <name> <price>",
	Short: "Add a product from name and price alone",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		price, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("bad price %q", args[1])
		}
		p, err := productSvc.QuickAdd(cmd.Context(), args[0], price)
		if err != nil {
			return err
		}
		view.Success("added product #%d %s", p.ID, p.Name)
		return nil
	},
}

var productsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("bad id %q", args[0])
		}
		ctx := cmd.Context()
		p, err := productSvc.Get(ctx, id)
		if err != nil {
			return err
		}
		overrideFlag(cmd, "name", &p.Name)
		overrideFlag(cmd, "category", &p.Category)
		overrideFlag(cmd, "description", &p.Description)
		if cmd.Flags().Changed("price") {
			p.Price, _ = cmd.Flags().GetFloat64("price")
		}
		if cmd.Flags().Changed("stock") {
			stock, _ := cmd.Flags().GetInt("stock")
			p.Stock = &stock
		}
		if cmd.Flags().Changed("image") {
			p.Images, _ = cmd.Flags().GetStringArray("image")
		}

		if err := productSvc.Update(ctx, id, p); err != nil {
			return err
		}
		view.Success("updated product #%d", id)
		return nil
	},
}

var productsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a product, with a chance to undo",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("expected a product id")
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("bad id %q", args[0])
		}
		ctx := cmd.Context()
		deleted, err := productSvc.Delete(ctx, id)
		if err != nil {
			return err
		}
		view.Success("deleted product #%d %s", deleted.ID, deleted.Name)

		if !assumeYes {
			undo := newConfirmer(false)
			if undo.Confirm("Undo", fmt.Sprintf("Put %s back?", deleted.Name)) {
				if err := productSvc.Restore(ctx, deleted); err != nil {
					return err
				}
				view.Success("restored product #%d", deleted.ID)
			}
		}
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{productsAddCmd, productsUpdateCmd} {
		c.Flags().String("name", "", "Product name")
		c.Flags().Float64("price", 0, "Unit price")
		c.Flags().String("category", "", "Category label")
		c.Flags().Int("stock", 0, "Units in stock")
		c.Flags().StringArray("image", nil, "Image reference (repeatable, first is the cover)")
		c.Flags().String("description", "", "Long description")
	}

	productsCmd.AddCommand(productsListCmd, productsAddCmd, productsQuickAddCmd, productsUpdateCmd, productsDeleteCmd)
	rootCmd.AddCommand(productsCmd)
}
