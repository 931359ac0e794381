package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crownpanel/crownpanel/internal/orders"
	"github.com/crownpanel/crownpanel/internal/view"
)

var (
	checkoutName     string
	checkoutPhone    string
	checkoutAddress  string
	checkoutNotes    string
	checkoutBirthday string
)

var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Place an order for the current cart",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		lines := cartRepo.Get(ctx)
		if len(lines) == 0 {
			return errors.New("cart is empty")
		}

		// Names and prices are snapshotted onto the order as they are now.
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

		in := orders.CheckoutInput{
			Name:     checkoutName,
			Phone:    checkoutPhone,
			Address:  checkoutAddress,
			Notes:    checkoutNotes,
			Birthday: checkoutBirthday,
		}
		for _, l := range lines {
			entry, ok := catalogue[l.ProductID]
			if !ok {
				entry.name = fmt.Sprintf("#%d", l.ProductID)
			}
			in.Items = append(in.Items, orders.CheckoutItem{
				ProductID: l.ProductID,
				Name:      entry.name,
				Price:     entry.price,
				Qty:       l.Qty,
			})
		}

		o, err := orderSvc.Place(ctx, in)
		if err != nil {
			return err
		}
		if err := cartRepo.Clear(ctx); err != nil {
			return err
		}
		view.Success("order #%d placed, total %s", o.ID, formatMoney(o.Total))
		return nil
	},
}

func init() {
	checkoutCmd.Flags().StringVar(&checkoutName, "name", "", "Your name")
	checkoutCmd.Flags().StringVar(&checkoutPhone, "phone", "", "Phone number")
	checkoutCmd.Flags().StringVar(&checkoutAddress, "address", "", "Delivery address")
	checkoutCmd.Flags().StringVar(&checkoutNotes, "notes", "", "Delivery notes")
	checkoutCmd.Flags().StringVar(&checkoutBirthday, "birthday", "", "Birthday YYYY-MM-DD, for birthday discounts")
	checkoutCmd.MarkFlagRequired("name")
	checkoutCmd.MarkFlagRequired("phone")
	checkoutCmd.MarkFlagRequired("address")

	rootCmd.AddCommand(checkoutCmd)
}
