package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crownpanel/crownpanel/internal/export"
	"github.com/crownpanel/crownpanel/internal/view"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:       "export {clients|transactions}",
	Short:     "Export a collection as CSV",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"clients", "transactions"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var rows any
		switch args[0] {
		case "clients":
			rows = clientRepo.GetAll(ctx)
		case "transactions":
			rows = txRepo.GetAll(ctx)
		default:
			return fmt.Errorf("unknown collection %q", args[0])
		}

		w := os.Stdout
		if exportOut != "" {
			f, err := os.Create(exportOut)
			if err != nil {
				return err
			}
			defer f.Close()
			w = f
		}
		if err := export.Write(w, rows); err != nil {
			return err
		}
		if exportOut != "" {
			view.Success("wrote %s", exportOut)
		} else {
			fmt.Println()
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Write to a file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}
