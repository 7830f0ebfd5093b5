package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/cheikh-mbacke/emailight-mobile/client"
	"github.com/cheikh-mbacke/emailight-mobile/client/forms"
)

var errInvalidForm = errors.New("form has invalid fields")

// formOutcome is what login and signup print: the field errors, and the
// envelope once a request was made.
type formOutcome struct {
	Errors   forms.Errors                          `json:"errors,omitempty"`
	Response *client.Response[client.AuthResponse] `json:"response,omitempty"`
}

func emitForm(cmd *cobra.Command, errs forms.Errors, resp *client.Response[client.AuthResponse]) error {
	if err := printJSON(cmd.OutOrStdout(), formOutcome{Errors: errs, Response: resp}); err != nil {
		return err
	}
	if resp == nil {
		return errInvalidForm
	}
	if !errs.Valid() {
		return errors.Errorf("request failed with status %d", resp.Status)
	}
	return nil
}

func newLoginCmd(a *app) *cobra.Command {
	var form forms.LoginForm
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and print the session token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if errs := forms.ValidateLogin(form); !errs.Valid() {
				return emitForm(cmd, errs, nil)
			}
			c, err := a.client()
			if err != nil {
				return err
			}
			resp := c.Login(cmd.Context(), form.Request())
			return emitForm(cmd, forms.LoginFailure(resp), resp)
		},
	}
	cmd.Flags().StringVar(&form.Email, "email", "", "Account email")
	cmd.Flags().StringVar(&form.Password, "password", "", "Account password")
	return cmd
}

func newSignUpCmd(a *app) *cobra.Command {
	var form forms.SignUpForm
	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if errs := forms.ValidateSignUp(form); !errs.Valid() {
				return emitForm(cmd, errs, nil)
			}
			c, err := a.client()
			if err != nil {
				return err
			}
			resp := c.Register(cmd.Context(), form.Request())
			return emitForm(cmd, forms.SignUpFailure(resp), resp)
		},
	}
	cmd.Flags().StringVar(&form.Name, "name", "", "Display name")
	cmd.Flags().StringVar(&form.Email, "email", "", "Account email")
	cmd.Flags().StringVar(&form.Password, "password", "", "Password")
	cmd.Flags().StringVar(&form.ConfirmPassword, "confirm-password", "", "Password again")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Revoke the current token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			return emit(cmd, c.Logout(cmd.Context()))
		},
	}
}

func newRefreshCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Exchange the current token for a new one",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			return emit(cmd, c.RefreshToken(cmd.Context()))
		},
	}
}

func newProfileCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show the authenticated user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			return emit(cmd, c.GetProfile(cmd.Context()))
		},
	}

	var upd client.UpdateProfileRequest
	update := &cobra.Command{
		Use:   "update",
		Short: "Change name, email or password",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			return emit(cmd, c.UpdateProfile(cmd.Context(), upd))
		},
	}
	update.Flags().StringVar(&upd.Name, "name", "", "New name")
	update.Flags().StringVar(&upd.Email, "email", "", "New email")
	update.Flags().StringVar(&upd.Password, "password", "", "New password")

	var current, next string
	password := &cobra.Command{
		Use:   "change-password",
		Short: "Replace the password after checking the current one",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			return emit(cmd, c.ChangePassword(cmd.Context(), current, next))
		},
	}
	password.Flags().StringVar(&current, "current", "", "Current password")
	password.Flags().StringVar(&next, "new", "", "New password")
	_ = password.MarkFlagRequired("current")
	_ = password.MarkFlagRequired("new")

	cmd.AddCommand(update, password, newRefreshCmd(a))
	return cmd
}
