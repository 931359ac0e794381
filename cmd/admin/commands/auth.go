package commands

import (
	"github.com/spf13/cobra"

	"github.com/crownpanel/crownpanel/internal/view"
)

var (
	authEmail    string
	authPassword string
)

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create the admin account",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := authSvc.SignUp(cmd.Context(), authEmail, authPassword); err != nil {
			return err
		}
		view.Success("account created for %s", authEmail)
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and open a session",
	RunE: func(cmd *cobra.Command, _ []string) error {
		token, err := authSvc.SignIn(cmd.Context(), authEmail, authPassword)
		if err != nil {
			return err
		}
		view.Success("signed in, session %s", token[:8])
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Drop the current session",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := authSvc.SignOut(cmd.Context()); err != nil {
			return err
		}
		view.Success("signed out")
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{signupCmd, loginCmd} {
		c.Flags().StringVar(&authEmail, "email", "", "Account email")
		c.Flags().StringVar(&authPassword, "password", "", "Account password")
		c.MarkFlagRequired("email")
		c.MarkFlagRequired("password")
	}
	rootCmd.AddCommand(signupCmd, loginCmd, logoutCmd)
}
