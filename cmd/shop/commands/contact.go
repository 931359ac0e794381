package commands

import (
	"github.com/spf13/cobra"

	"github.com/crownpanel/crownpanel/internal/messages"
	"github.com/crownpanel/crownpanel/internal/view"
)

var (
	contactFirst      string
	contactLast       string
	contactEmail      string
	contactPhone      string
	contactSubject    string
	contactBody       string
	contactNewsletter bool
)

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Send a message to the shop",
	Long: `Send a message to the shop. Subjects: general, custom-order,
support, feedback, partnership, other.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		m, err := messageSvc.Compose(cmd.Context(), messages.ComposeInput{
			FirstName:  contactFirst,
			LastName:   contactLast,
			Email:      contactEmail,
			Phone:      contactPhone,
			Subject:    contactSubject,
			Body:       contactBody,
			Newsletter: contactNewsletter,
		})
		if err != nil {
			return err
		}
		view.Success("message sent, reference #%d", m.ID)
		return nil
	},
}

func init() {
	contactCmd.Flags().StringVar(&contactFirst, "first-name", "", "Your first name")
	contactCmd.Flags().StringVar(&contactLast, "last-name", "", "Your last name")
	contactCmd.Flags().StringVar(&contactEmail, "email", "", "Email address")
	contactCmd.Flags().StringVar(&contactPhone, "phone", "", "Phone number")
	contactCmd.Flags().StringVar(&contactSubject, "subject", "general", "Message subject")
	contactCmd.Flags().StringVar(&contactBody, "message", "", "The message itself")
	contactCmd.Flags().BoolVar(&contactNewsletter, "newsletter", false, "Subscribe to the newsletter")
	contactCmd.MarkFlagRequired("first-name")
	contactCmd.MarkFlagRequired("last-name")
	contactCmd.MarkFlagRequired("email")
	contactCmd.MarkFlagRequired("message")

	rootCmd.AddCommand(contactCmd)
}
