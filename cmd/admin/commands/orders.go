package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/crownpanel/crownpanel/internal/orders"
	"github.com/crownpanel/crownpanel/internal/query"
	"github.com/crownpanel/crownpanel/internal/view"
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Review and advance storefront orders",
}

var (
	orderSearch string
	orderStatus string
	orderPage   int
	orderOldest bool
)

var ordersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List orders, newest first",
	RunE: func(cmd *cobra.Command, _ []string) error {
		res := orderSvc.List(cmd.Context(), query.State{
			Query:      orderSearch,
			Filters:    map[string]string{orders.FilterStatus: orderStatus},
			SortKey:    orders.SortDate,
			Descending: !orderOldest,
			Page:       orderPage,
			PageSize:   cfg.PageSize,
		})

		rows := make([][]string, 0, len(res.Items))
		for _, o := range res.Items {
			rows = append(rows, []string{
				strconv.FormatInt(o.ID, 10),
				o.Date.String(),
				o.Customer.Name,
				strconv.Itoa(len(o.Items)),
				formatMoney(o.Total),
				view.StatusBadge(string(o.Status)),
			})
		}
		fmt.Print(view.Table([]string{"ID", "Date", "Customer", "Items", "Total", "Status"}, rows))
		view.Muted("page %d/%d, %d orders", res.Page, res.TotalPages, res.Total)
		return nil
	},
}

var ordersShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one order in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("bad id %q", args[0])
		}
		o, err := orderSvc.Get(cmd.Context(), id)
		if err != nil {
			return err
		}

		view.Title(fmt.Sprintf("order #%d  %s", o.ID, view.StatusBadge(string(o.Status))))
		fmt.Printf("placed: %s\ncustomer: %s (%s)\naddress: %s\n", o.Date, o.Customer.Name, o.Customer.Phone, o.Customer.Address)
		if o.Customer.Notes != "" {
			fmt.Printf("notes: %s\n", o.Customer.Notes)
		}

		rows := make([][]string, 0, len(o.Items))
		for _, item := range o.Items {
			rows = append(rows, []string{
				item.Name,
				strconv.Itoa(item.Qty),
				formatMoney(item.Price),
			})
		}
		fmt.Print(view.Table([]string{"Item", "Qty", "Price"}, rows))
		view.Muted("total: %s", formatMoney(o.Total))
		return nil
	},
}

var ordersStatusCmd = &cobra.Command{
	Use:   "status <id> <status>",
	Short: "Move an order to Pending, In Transit, Delivered or Cancelled",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("bad id %q", args[0])
		}
		o, err := orderSvc.SetStatus(cmd.Context(), id, args[1])
		if err != nil {
			return err
		}
		view.Success("order #%d is now %s", o.ID, o.Status)
		return nil
	},
}

func init() {
	ordersListCmd.Flags().StringVar(&orderSearch, "search", "", "Match customer name or item names")
	ordersListCmd.Flags().StringVar(&orderStatus, "status", query.All, "Filter by status")
	ordersListCmd.Flags().IntVar(&orderPage, "page", 1, "Page number")
	ordersListCmd.Flags().BoolVar(&orderOldest, "oldest", false, "Oldest first instead of newest")

	ordersCmd.AddCommand(ordersListCmd, ordersShowCmd, ordersStatusCmd)
	rootCmd.AddCommand(ordersCmd)
}
