package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"kma-forecast/config"
)

// @title KMA Forecast API
// @version 1.0.0
// @description Short-term village forecast of the Korea Meteorological Administration for a grid cell, two hours ahead.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @BasePath /
// @schemes http https

// @tag.name Forecast
// @tag.description Short-term forecast operations
func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

type options struct {
	configPath string
	nx         int
	ny         int
	location   string
	locale     string
	logLevel   string
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "kma-forecast",
		Short: "Print the KMA short-term forecast for two hours from now",
		Long: "Queries the village forecast of the Korea Meteorological Administration for one grid cell\n" +
			"and prints temperature, sky, precipitation and chance of precipitation for two hours from now.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runOnce(cmd, opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", config.DefaultConfigPath, "path to the YAML config file")
	flags.IntVar(&opts.nx, "nx", 0, "grid x of the forecast cell")
	flags.IntVar(&opts.ny, "ny", 0, "grid y of the forecast cell")
	flags.StringVar(&opts.location, "location", "", "display name of the location")
	flags.StringVar(&opts.locale, "locale", "", "output language (ko, en)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(newServeCommand(opts))

	return root
}
