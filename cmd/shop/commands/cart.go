package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/crownpanel/crownpanel/internal/view"
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Manage the cart",
}

var cartQty int

var cartAddCmd = &cobra.Command{
	Use:   "add <productID>",
	Short: "Add a product to the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("bad id %q", args[0])
		}
		ctx := cmd.Context()

		found := false
		for _, p := range productRepo.GetAll(ctx) {
			if p.ID == id {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("no product %d", id)
		}
		if cartQty < 1 {
			cartQty = 1
		}
		if err := cartRepo.Add(ctx, id, cartQty); err != nil {
			return err
		}
		view.Success("added %d × #%d", cartQty, id)
		return nil
	},
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove <productID>",
	Short: "Drop a product from the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("bad id %q", args[0])
		}
		if err := cartRepo.Remove(cmd.Context(), id); err != nil {
			return err
		}
		view.Success("removed #%d", id)
		return nil
	},
}

var cartShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the cart with the running total",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		lines := cartRepo.Get(ctx)
		if len(lines) == 0 {
			view.Muted("cart is empty")
			return nil
		}

		catalogue := map[int64]struct {
			name  string
			price float64
		}{}
		for _, p := range productRepo.GetAll(ctx) {
			catalogue[p.ID] = struct {
				name  string
				price float64
			}{p.Name, p.Price}
		}

		var total float64
		rows := make([][]string, 0, len(lines))
		for _, l := range lines {
			entry, ok := catalogue[l.ProductID]
			if !ok {
				// The product was removed from the catalogue; show the raw id.
				entry.name = fmt.Sprintf("#%d", l.ProductID)
			}
			total += entry.price * float64(l.Qty)
			rows = append(rows, []string{
				entry.name,
				strconv.Itoa(l.Qty),
				formatMoney(entry.price),
			})
		}
		fmt.Print(view.Table([]string{"Item", "Qty", "Price"}, rows))
		view.Muted("total: %s", formatMoney(total))
		return nil
	},
}

var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the cart",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := cartRepo.Clear(cmd.Context()); err != nil {
			return err
		}
		view.Success("cart cleared")
		return nil
	},
}

func init() {
	cartAddCmd.Flags().IntVar(&cartQty, "qty", 1, "Quantity to add")

	cartCmd.AddCommand(cartAddCmd, cartRemoveCmd, cartShowCmd, cartClearCmd)
	rootCmd.AddCommand(cartCmd)
}
