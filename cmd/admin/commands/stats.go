package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crownpanel/crownpanel/internal/money"
	"github.com/crownpanel/crownpanel/internal/view"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Revenue and profit estimate over all recorded sales",
	RunE: func(cmd *cobra.Command, _ []string) error {
		s := statsSvc.Summary(cmd.Context())
		format := money.Formatter(s.Currency)

		view.Title("sales")
		fmt.Printf("sales recorded: %d\n", s.Sales)
		fmt.Printf("revenue: %s\n", format(s.Revenue))
		fmt.Printf("profit (at %.0f%% margin): %s\n", s.ProfitMargin*100, format(s.Profit))

		view.Title("clients")
		fmt.Printf("total: %d  active: %d  inactive: %d  birthdays in 30d: %d\n",
			s.Clients, s.Active, s.Inactive, s.UpcomingBirthdays)

		if len(s.TopProducts) > 0 {
			view.Title("top products")
			rows := make([][]string, 0, len(s.TopProducts))
			for _, p := range s.TopProducts {
				rows = append(rows, []string{p.Name, format(p.Revenue)})
			}
			fmt.Print(view.Table([]string{"Product", "Revenue"}, rows))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
