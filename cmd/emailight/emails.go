package main

import (
	"github.com/spf13/cobra"

	"github.com/cheikh-mbacke/emailight-mobile/client"
)

func newGenerateCmd(a *app) *cobra.Command {
	var req client.EmailGenerationRequest
	var style string
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write an email from a short description",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			req.Style = client.Style(style)
			return emit(cmd, c.GenerateEmail(cmd.Context(), req))
		},
	}
	cmd.Flags().StringVar(&req.Content, "content", "", "What the email should say")
	cmd.Flags().StringVar(&style, "style", string(client.StyleProfessional), "professional, casual, formal or friendly")
	cmd.Flags().StringVar(&req.Context, "context", "", "Extra context")
	return cmd
}

func newHistoryCmd(a *app) *cobra.Command {
	var limit, offset int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List sent emails, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			return emit(cmd, c.GetHistory(cmd.Context(), limit, offset))
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "Page size; server default when 0")
	cmd.Flags().IntVar(&offset, "offset", 0, "Emails to skip")
	return cmd
}

func newHealthCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Ping the backend",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			return emit(cmd, c.HealthCheck(cmd.Context()))
		},
	}
}
