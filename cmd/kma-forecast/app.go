package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"kma-forecast/config"
	"kma-forecast/internal/repositories"
	"kma-forecast/internal/services/forecast"
	"kma-forecast/pkg/kmagrid"
	"kma-forecast/pkg/logger"
	"kma-forecast/pkg/observe"
)

type application struct {
	cfg     *config.Config
	l       *logger.Logger
	sentry  *observe.SentryHook
	service *forecast.Service
	point   kmagrid.Point
	locale  forecast.Locale
}

// flagConfigProvider applies command line flags on top of file and environment configuration.
type flagConfigProvider struct {
	*config.FileConfigProvider
	cmd  *cobra.Command
	opts *options
}

func (p flagConfigProvider) Load() (*config.Config, error) {
	cfg, err := p.FileConfigProvider.Load()
	if err != nil {
		return nil, err
	}

	flags := p.cmd.Flags()
	if flags.Changed("nx") {
		cfg.Location.NX = p.opts.nx
	}
	if flags.Changed("ny") {
		cfg.Location.NY = p.opts.ny
	}
	if flags.Changed("location") {
		cfg.Location.Name = p.opts.location
	}
	if flags.Changed("locale") {
		cfg.Location.Locale = p.opts.locale
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = p.opts.logLevel
	}

	return cfg, nil
}

func loadDotEnv() error {
	if _, err := os.Stat(".env"); err != nil {
		return nil
	}
	if err := godotenv.Load(); err != nil {
		return fmt.Errorf("error loading .env file: %w", err)
	}
	return nil
}

// newApplication wires config, logging and the forecast service. Logs go to logOut.
func newApplication(cmd *cobra.Command, opts *options, logOut io.Writer) (*application, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	cfg, err := config.NewConfigWithProvider(flagConfigProvider{
		FileConfigProvider: config.NewFileConfigProvider(opts.configPath),
		cmd:                cmd,
		opts:               opts,
	})
	if err != nil {
		return nil, err
	}

	writers := []io.Writer{logOut}

	var hook *observe.SentryHook
	if cfg.Sentry.DSN != "" {
		hook, err = observe.NewSentryHook(cfg.App.Env, cfg.App.Name, cfg.Sentry.Debug, cfg.Sentry.DSN)
		if err != nil {
			return nil, err
		}
		writers = append(writers, hook)
	}

	l := logger.NewZapLogger(cfg.App.Name, writers...).WithEnv(cfg.App.Env)
	if err := l.SetLevel(cfg.Log.Level); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}
	if hook != nil {
		hook.SetLogger(l)
	}

	locale, err := forecast.LookupLocale(cfg.Location.Locale)
	if err != nil {
		return nil, err
	}

	repo, err := repositories.InitForecastRepository(cfg, l)
	if err != nil {
		return nil, err
	}

	return &application{
		cfg:     cfg,
		l:       l,
		sentry:  hook,
		service: forecast.NewForecastService(repo, cfg.TimeLocation(), l),
		point:   kmagrid.Point{NX: cfg.Location.NX, NY: cfg.Location.NY},
		locale:  locale,
	}, nil
}

func (a *application) close() {
	if a.sentry != nil {
		a.sentry.Flush()
	}
	_ = a.l.Stop()
}

func runOnce(cmd *cobra.Command, opts *options) error {
	a, err := newApplication(cmd, opts, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer a.close()

	report, err := a.service.Report(cmd.Context(), a.point, a.cfg.Location.Name, a.locale)
	if err != nil {
		a.l.Error(err, map[string]any{"nx": a.point.NX, "ny": a.point.NY})
		return err
	}

	return forecast.Render(cmd.OutOrStdout(), report, a.locale)
}
