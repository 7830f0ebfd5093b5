// Command emailight drives the Emailight API from the terminal. Each
// subcommand issues one request and prints the response envelope as JSON.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/cheikh-mbacke/emailight-mobile/client"
	"github.com/cheikh-mbacke/emailight-mobile/internal/config"
	"github.com/cheikh-mbacke/emailight-mobile/internal/logger"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// app carries what every subcommand needs once flags are parsed.
type app struct {
	baseURL string
	token   string
	debug   bool

	cfg    *config.Config
	logger zerolog.Logger
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "emailight",
		Short:         "Command-line client for the Emailight API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.baseURL, "base-url", "", "API root, overrides EMAILIGHT_BASE_URL")
	root.PersistentFlags().StringVar(&a.token, "token", "", "Bearer token, overrides EMAILIGHT_AUTH_TOKEN")
	root.PersistentFlags().BoolVarP(&a.debug, "debug", "d", false, "Dump HTTP exchanges")

	root.AddCommand(
		newLoginCmd(a),
		newSignUpCmd(a),
		newLogoutCmd(a),
		newProfileCmd(a),
		newDraftsCmd(a),
		newGenerateCmd(a),
		newAccountsCmd(a),
		newSendCmd(a),
		newHistoryCmd(a),
		newHealthCmd(a),
		newServeMockCmd(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if a.baseURL != "" {
		cfg.BaseURL = a.baseURL
	}
	if a.token != "" {
		cfg.AuthToken = a.token
	}
	if a.debug {
		cfg.Debug = true
		cfg.LogLevel = "debug"
	}
	a.cfg = cfg

	level := logger.ParseLevel(cfg.LogLevel)
	a.logger = logger.New("cli", cmd.ErrOrStderr()).Level(level)
	log.Logger = a.logger
	return nil
}

func (a *app) client() (*client.Client, error) {
	opts := append(a.cfg.ClientOptions(), client.WithLogger(a.logger))
	c, err := client.New(opts...)
	if err != nil {
		return nil, errors.Wrap(err, "build client")
	}
	return c, nil
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode output")
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

// emit prints the envelope and turns a failed call into a command error so
// the exit status reflects it.
func emit[T any](cmd *cobra.Command, resp *client.Response[T]) error {
	if err := printJSON(cmd.OutOrStdout(), resp); err != nil {
		return err
	}
	if !resp.OK() {
		return errors.Errorf("request failed with status %d: %s", resp.Status, resp.Error)
	}
	return nil
}
