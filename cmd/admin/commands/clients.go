package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/crownpanel/crownpanel/internal/clients"
	"github.com/crownpanel/crownpanel/internal/products"
	"github.com/crownpanel/crownpanel/internal/query"
	"github.com/crownpanel/crownpanel/internal/view"
)

var clientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "Manage the client book",
}

var (
	clientSearch string
	clientMonth  string
	clientStatus string
	clientSort   string
	clientDesc   bool
	clientPage   int
)

var clientsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List clients with search, filters and pagination",
	RunE: func(cmd *cobra.Command, _ []string) error {
		res := clientSvc.List(cmd.Context(), query.State{
			Query: clientSearch,
			Filters: map[string]string{
				clients.FilterMonth:  clientMonth,
				clients.FilterStatus: clientStatus,
			},
			SortKey:    clientSort,
			Descending: clientDesc,
			Page:       clientPage,
			PageSize:   cfg.PageSize,
		})

		statusOf := clientSvc.StatusIndex(cmd.Context())
		rows := make([][]string, 0, len(res.Items))
		for _, c := range res.Items {
			rows = append(rows, []string{
				strconv.FormatInt(c.ID, 10),
				c.Name,
				c.Phone,
				c.Birthday.String(),
				view.StatusBadge(string(statusOf(c.ID))),
			})
		}
		fmt.Print(view.Table([]string{"ID", "Name", "Phone", "Birthday", "Status"}, rows))
		view.Muted("page %d/%d, %d clients", res.Page, res.TotalPages, res.Total)
		return nil
	},
}

var clientAddItems []string

var clientsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a client, optionally with purchased products",
	Long: `Add a client. Each --item takes "productID:qty"; the price is
snapshotted from the catalogue and a transaction is recorded per item.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		in := clients.AddClientInput{
			Name:     mustFlag(cmd, "name"),
			Phone:    mustFlag(cmd, "phone"),
			Email:    mustFlag(cmd, "email"),
			Birthday: mustFlag(cmd, "birthday"),
			Notes:    mustFlag(cmd, "notes"),
		}
		for _, raw := range clientAddItems {
			item, err := parseItem(ctx, raw)
			if err != nil {
				return err
			}
			in.Items = append(in.Items, item)
		}

		c, err := clientSvc.Add(ctx, in)
		if err != nil {
			return err
		}
		view.Success("added client #%d %s", c.ID, c.Name)
		return nil
	},
}

var clientsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a client's details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("bad id %q", args[0])
		}
		ctx := cmd.Context()
		current, err := clientSvc.Get(ctx, id)
		if err != nil {
			return err
		}

		in := clients.UpdateClientInput{
			Name:     current.Name,
			Phone:    current.Phone,
			Email:    current.Email,
			Birthday: current.Birthday.String(),
			Status:   current.Status,
			Notes:    current.Notes,
		}
		overrideFlag(cmd, "name", &in.Name)
		overrideFlag(cmd, "phone", &in.Phone)
		overrideFlag(cmd, "email", &in.Email)
		overrideFlag(cmd, "birthday", &in.Birthday)
		overrideFlag(cmd, "notes", &in.Notes)

		if _, err := clientSvc.Update(ctx, id, in); err != nil {
			return err
		}
		view.Success("updated client #%d", id)
		return nil
	},
}

var clientsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a client (their purchase history is kept)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("bad id %q", args[0])
		}
		if err := clientSvc.Delete(cmd.Context(), id); err != nil {
			return err
		}
		view.Success("deleted client #%d", id)
		return nil
	},
}

var clientsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a client with purchase history and total spend",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("bad id %q", args[0])
		}
		ctx := cmd.Context()
		c, err := clientSvc.Get(ctx, id)
		if err != nil {
			return err
		}
		history, total, err := clientSvc.Purchases(ctx, id)
		if err != nil {
			return err
		}

		view.Title(fmt.Sprintf("#%d %s", c.ID, c.Name))
		fmt.Printf("phone: %s\nemail: %s\nbirthday: %s\n", c.Phone, c.Email, c.Birthday)
		if c.Notes != "" {
			fmt.Printf("notes: %s\n", c.Notes)
		}

		if len(history) > 0 {
			nameOf := products.NameIndex(productSvc.List(ctx))
			rows := make([][]string, 0, len(history))
			for _, t := range history {
				rows = append(rows, []string{
					t.Date.String(),
					nameOf(t.ProductID),
					strconv.Itoa(t.Qty),
					formatMoney(t.PriceAtPurchase),
				})
			}
			fmt.Print(view.Table([]string{"Date", "Product", "Qty", "Price"}, rows))
		}
		view.Muted("total spend: %s", formatMoney(total))
		return nil
	},
}

var clientsBirthdaysCmd = &cobra.Command{
	Use:   "birthdays",
	Short: "Upcoming birthdays with discount windows, soonest first",
	RunE: func(cmd *cobra.Command, _ []string) error {
		entries := clientSvc.Birthdays(cmd.Context())
		rows := make([][]string, 0, len(entries))
		for _, e := range entries {
			days := fmt.Sprintf("in %d days", e.Days)
			if e.Days == 0 {
				days = "today"
			}
			rows = append(rows, []string{
				e.Name,
				e.Birthday.String(),
				days,
				fmt.Sprintf("%s to %s", e.WindowStart.Format("Jan 2"), e.WindowEnd.Format("Jan 2")),
			})
		}
		fmt.Print(view.Table([]string{"Name", "Birthday", "Next", "Discount window"}, rows))
		return nil
	},
}

// parseItem resolves "productID:qty" against the catalogue so the price is
// captured as of now.
func parseItem(ctx context.Context, raw string) (clients.ItemInput, error) {
	idStr, qtyStr, ok := strings.Cut(raw, ":")
	if !ok {
		return clients.ItemInput{}, fmt.Errorf("bad item %q, want productID:qty", raw)
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return clients.ItemInput{}, fmt.Errorf("bad item %q: %w", raw, err)
	}
	qty, err := strconv.Atoi(qtyStr)
	if err != nil {
		return clients.ItemInput{}, fmt.Errorf("bad item %q: %w", raw, err)
	}
	p, err := productSvc.Get(ctx, id)
	if err != nil {
		return clients.ItemInput{}, fmt.Errorf("product %d: %w", id, err)
	}
	return clients.ItemInput{ProductID: p.ID, Qty: qty, Price: p.Price}, nil
}

func mustFlag(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

func overrideFlag(cmd *cobra.Command, name string, dest *string) {
	if cmd.Flags().Changed(name) {
		*dest, _ = cmd.Flags().GetString(name)
	}
}

func init() {
	clientsListCmd.Flags().StringVar(&clientSearch, "search", "", "Substring match on the client name")
	clientsListCmd.Flags().StringVar(&clientMonth, "month", query.All, "Birthday month 1-12")
	clientsListCmd.Flags().StringVar(&clientStatus, "status", query.All, "Active or Inactive (computed)")
	clientsListCmd.Flags().StringVar(&clientSort, "sort", clients.SortName, "Sort key: name or birthday")
	clientsListCmd.Flags().BoolVar(&clientDesc, "desc", false, "Sort descending")
	clientsListCmd.Flags().IntVar(&clientPage, "page", 1, "Page number")

	for _, c := range []*cobra.Command{clientsAddCmd, clientsUpdateCmd} {
		c.Flags().String("name", "", "Client name")
		c.Flags().String("phone", "", "Phone number")
		c.Flags().String("email", "", "Email address")
		c.Flags().String("birthday", "", "Birthday, YYYY-MM-DD")
		c.Flags().String("notes", "", "Free-form notes")
	}
	clientsAddCmd.Flags().StringArrayVar(&clientAddItems, "item", nil, `Purchased product as "productID:qty" (repeatable)`)

	clientsCmd.AddCommand(clientsListCmd, clientsAddCmd, clientsUpdateCmd, clientsDeleteCmd, clientsShowCmd, clientsBirthdaysCmd)
	rootCmd.AddCommand(clientsCmd)
}
