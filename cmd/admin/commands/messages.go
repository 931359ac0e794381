package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/crownpanel/crownpanel/internal/messages"
	"github.com/crownpanel/crownpanel/internal/view"
)

var messagesCmd = &cobra.Command{
	Use:   "messages",
	Short: "Read the contact inbox",
}

var messageFilter string

var messagesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List messages, newest first",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		list := messageSvc.List(ctx, messageFilter)
		rows := make([][]string, 0, len(list))
		for _, m := range list {
			rows = append(rows, []string{
				strconv.FormatInt(m.ID, 10),
				m.Date.Format("Jan 2 15:04"),
				m.Sender(),
				messages.SubjectLabel(m.Subject),
				string(m.Status),
			})
		}
		fmt.Print(view.Table([]string{"ID", "Date", "From", "Subject", "Status"}, rows))

		total, unread := messageSvc.Counts(ctx)
		if unread > 0 {
			view.Muted("%d messages, %d unread", total, unread)
		} else {
			view.Muted("%d messages", total)
		}
		return nil
	},
}

var messagesShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one message in full and mark it read",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("bad id %q", args[0])
		}
		ctx := cmd.Context()
		var found *messages.Message
		for _, m := range messageSvc.List(ctx, messages.FilterAll) {
			if m.ID == id {
				found = &m
				break
			}
		}
		if found == nil {
			return fmt.Errorf("no message %d", id)
		}

		view.Title(fmt.Sprintf("%s — %s", found.Sender(), messages.SubjectLabel(found.Subject)))
		fmt.Printf("date: %s\nemail: %s\n", found.Date.Format("Jan 2 2006 15:04"), found.Email)
		if found.Phone != "" {
			fmt.Printf("phone: %s\n", found.Phone)
		}
		if found.Newsletter {
			view.Muted("subscribed to the newsletter")
		}
		fmt.Println()
		fmt.Println(found.Body)

		if found.Status == messages.StatusUnread {
			if _, err := messageSvc.Toggle(ctx, id); err != nil {
				return err
			}
		}
		return nil
	},
}

var messagesToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Flip a message between read and unread",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("bad id %q", args[0])
		}
		m, err := messageSvc.Toggle(cmd.Context(), id)
		if err != nil {
			return err
		}
		view.Success("message #%d is now %s", m.ID, m.Status)
		return nil
	},
}

var messagesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a message",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("bad id %q", args[0])
		}
		if err := messageSvc.Delete(cmd.Context(), id); err != nil {
			return err
		}
		view.Success("deleted message #%d", id)
		return nil
	},
}

func init() {
	messagesListCmd.Flags().StringVar(&messageFilter, "filter", messages.FilterAll, "all, unread or read")

	messagesCmd.AddCommand(messagesListCmd, messagesShowCmd, messagesToggleCmd, messagesDeleteCmd)
	rootCmd.AddCommand(messagesCmd)
}
