package main

import (
	"github.com/spf13/cobra"

	"github.com/cheikh-mbacke/emailight-mobile/client"
)

func newAccountsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Manage connected email accounts",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List connected accounts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			return emit(cmd, c.GetEmailAccounts(cmd.Context()))
		},
	}

	var provider, authCode string
	connect := &cobra.Command{
		Use:   "connect",
		Short: "Link a mailbox with a provider auth code",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			return emit(cmd, c.ConnectEmailAccount(cmd.Context(), client.Provider(provider), authCode))
		},
	}
	connect.Flags().StringVar(&provider, "provider", "", "gmail, outlook or yahoo")
	connect.Flags().StringVar(&authCode, "auth-code", "", "Code returned by the provider")
	_ = connect.MarkFlagRequired("provider")
	_ = connect.MarkFlagRequired("auth-code")

	disconnect := &cobra.Command{
		Use:   "disconnect <id>",
		Short: "Unlink a mailbox",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			return emit(cmd, c.DisconnectEmailAccount(cmd.Context(), args[0]))
		},
	}

	cmd.AddCommand(list, connect, disconnect)
	return cmd
}

func newSendCmd(a *app) *cobra.Command {
	var email client.SendEmailRequest
	cmd := &cobra.Command{
		Use:   "send <account-id>",
		Short: "Send an email through a connected account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			return emit(cmd, c.SendEmail(cmd.Context(), args[0], email))
		},
	}
	cmd.Flags().StringVar(&email.To, "to", "", "Recipient")
	cmd.Flags().StringVar(&email.Subject, "subject", "", "Subject line")
	cmd.Flags().StringVar(&email.Content, "content", "", "Body")
	cmd.Flags().StringVar(&email.Cc, "cc", "", "Carbon copy")
	cmd.Flags().StringVar(&email.Bcc, "bcc", "", "Blind carbon copy")
	return cmd
}
