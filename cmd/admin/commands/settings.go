package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crownpanel/crownpanel/internal/view"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change shop settings",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current settings",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		s := settingsRepo.Get(ctx)
		view.Title("settings")
		fmt.Printf("profit margin: %.0f%%\ncurrency: %s\n", s.ProfitMargin*100, s.Currency)
		if s.Theme != "" {
			fmt.Printf("theme: %s\n", s.Theme)
		}
		if ref := settingsRepo.Avatar(ctx); ref != "" {
			view.Muted("avatar: %s", ref)
		}
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change settings (margin is clamped to 0..1)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		s := settingsRepo.Get(ctx)
		if cmd.Flags().Changed("margin") {
			s.ProfitMargin, _ = cmd.Flags().GetFloat64("margin")
		}
		if cmd.Flags().Changed("currency") {
			s.Currency, _ = cmd.Flags().GetString("currency")
		}
		if cmd.Flags().Changed("theme") {
			s.Theme, _ = cmd.Flags().GetString("theme")
		}
		saved, err := settingsRepo.Save(ctx, s)
		if err != nil {
			return err
		}
		view.Success("margin %.0f%%, currency %s", saved.ProfitMargin*100, saved.Currency)
		return nil
	},
}

var settingsAvatarCmd = &cobra.Command{
	Use:   "avatar [ref]",
	Short: "Show or set the profile avatar reference",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if len(args) == 0 {
			fmt.Println(settingsRepo.Avatar(ctx))
			return nil
		}
		if err := settingsRepo.SetAvatar(ctx, args[0]); err != nil {
			return err
		}
		view.Success("avatar updated")
		return nil
	},
}

func init() {
	settingsSetCmd.Flags().Float64("margin", 0, "Profit margin, 0 to 1")
	settingsSetCmd.Flags().String("currency", "", "ISO 4217 display currency")
	settingsSetCmd.Flags().String("theme", "", "UI theme name")

	settingsCmd.AddCommand(settingsShowCmd, settingsSetCmd, settingsAvatarCmd)
	rootCmd.AddCommand(settingsCmd)
}
