package main

import (
	"github.com/spf13/cobra"

	"github.com/cheikh-mbacke/emailight-mobile/client"
)

func newDraftsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drafts",
		Short: "Manage saved drafts",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List drafts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			return emit(cmd, c.GetDrafts(cmd.Context()))
		},
	}

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			return emit(cmd, c.GetDraft(cmd.Context(), args[0]))
		},
	}

	var in client.DraftInput
	var style string
	create := &cobra.Command{
		Use:   "create",
		Short: "Save a new draft",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			in.Style = client.Style(style)
			return emit(cmd, c.CreateDraft(cmd.Context(), in))
		},
	}
	create.Flags().StringVar(&in.Subject, "subject", "", "Subject line")
	create.Flags().StringVar(&in.Content, "content", "", "Body")
	create.Flags().StringVar(&style, "style", string(client.StyleProfessional), "professional, casual, formal or friendly")
	create.Flags().StringVar(&in.Context, "context", "", "Extra context")

	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of a draft; only flags given are sent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			upd := draftUpdateFromFlags(cmd)
			c, err := a.client()
			if err != nil {
				return err
			}
			return emit(cmd, c.UpdateDraft(cmd.Context(), args[0], upd))
		},
	}
	update.Flags().String("subject", "", "Subject line")
	update.Flags().String("content", "", "Body")
	update.Flags().String("style", "", "professional, casual, formal or friendly")
	update.Flags().String("context", "", "Extra context")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			return emit(cmd, c.DeleteDraft(cmd.Context(), args[0]))
		},
	}

	cmd.AddCommand(list, get, create, update, del)
	return cmd
}

func draftUpdateFromFlags(cmd *cobra.Command) client.DraftUpdate {
	var upd client.DraftUpdate
	flags := cmd.Flags()
	if flags.Changed("subject") {
		v, _ := flags.GetString("subject")
		upd.Subject = &v
	}
	if flags.Changed("content") {
		v, _ := flags.GetString("content")
		upd.Content = &v
	}
	if flags.Changed("style") {
		v, _ := flags.GetString("style")
		s := client.Style(v)
		upd.Style = &s
	}
	if flags.Changed("context") {
		v, _ := flags.GetString("context")
		upd.Context = &v
	}
	return upd
}
