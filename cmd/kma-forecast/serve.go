package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	v1 "kma-forecast/internal/controllers/http/v1"
	"kma-forecast/pkg/httpserver"
)

const shutdownTimeout = 30 * time.Second

func newServeCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve forecasts over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd, opts)
		},
	}
}

func serve(cmd *cobra.Command, opts *options) error {
	a, err := newApplication(cmd, opts, os.Stdout)
	if err != nil {
		return err
	}
	defer a.close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := httpserver.InitFiberServer(a.cfg.App.Name, a.cfg.Server, a.l)

	v1.NewRouter(app, a.service, v1.Defaults{
		Point:    a.point,
		Location: a.cfg.Location.Name,
		Locale:   a.locale,
	}, a.l)

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(":" + a.cfg.Server.Port)
	}()

	a.l.Info("application started successfully", map[string]any{
		"port": a.cfg.Server.Port,
		"grid": a.point.String(),
	})

	select {
	case err := <-errCh:
		a.l.Error(err, map[string]any{"port": a.cfg.Server.Port})
		return err
	case <-ctx.Done():
		a.l.Warning("stopping application services")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return app.ShutdownWithContext(shutdownCtx)
}
