package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/cheikh-mbacke/emailight-mobile/internal/mockserver"
)

func newServeMockCmd(a *app) *cobra.Command {
	var addr string
	var demo bool
	cmd := &cobra.Command{
		Use:   "serve-mock",
		Short: "Run an in-memory backend for local development",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr == "" {
				addr = a.cfg.MockAddr
			}
			opts := []mockserver.Option{mockserver.WithLogger(a.logger)}
			if demo {
				opts = append(opts, mockserver.WithDemoUser())
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serveMock(ctx, a, addr, mockserver.New(opts...))
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address, defaults to EMAILIGHT_MOCK_ADDR")
	cmd.Flags().BoolVar(&demo, "demo-user", true, "Seed the demo account")
	return cmd
}

func serveMock(ctx context.Context, a *app, addr string, h http.Handler) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info().Str("addr", addr).Msg("Mock backend listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		a.logger.Info().Msg("Shutting down mock backend")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctxShutdown); err != nil {
			return errors.Wrap(err, "mock backend forced to shutdown")
		}
		return nil
	case err, ok := <-errCh:
		if !ok {
			return nil
		}
		return errors.Wrap(err, "mock backend failed")
	}
}
