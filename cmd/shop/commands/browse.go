package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/crownpanel/crownpanel/internal/view"
)

var browseCategory string

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the catalogue",
	RunE: func(cmd *cobra.Command, _ []string) error {
		rows := [][]string{}
		for _, p := range productRepo.GetAll(cmd.Context()) {
			if browseCategory != "" && !strings.EqualFold(p.Category, browseCategory) {
				continue
			}
			rows = append(rows, []string{
				strconv.FormatInt(p.ID, 10),
				p.Name,
				formatMoney(p.Price),
				p.Category,
			})
		}
		fmt.Print(view.Table([]string{"ID", "Name", "Price", "Category"}, rows))
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("bad id %q", args[0])
		}
		for _, p := range productRepo.GetAll(cmd.Context()) {
			if p.ID != id {
				continue
			}
			view.Title(p.Name)
			fmt.Printf("price: %s\n", formatMoney(p.Price))
			if p.Category != "" {
				fmt.Printf("category: %s\n", p.Category)
			}
			if p.Description != "" {
				fmt.Println(p.Description)
			}
			if cover := p.Cover(); cover != "" {
				view.Muted("image: %s", cover)
			}
			return nil
		}
		return fmt.Errorf("no product %d", id)
	},
}

func init() {
	browseCmd.Flags().StringVar(&browseCategory, "category", "", "Only show one category")
	rootCmd.AddCommand(browseCmd, showCmd)
}
