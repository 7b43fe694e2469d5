// Package cli wires the storebuilder commands.
package cli

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/threeonelabs/storebuilder/internal/config"
	"github.com/threeonelabs/storebuilder/internal/logging"
)

var (
	cfgFile  string
	logLevel string

	// loaded at init time
	paths config.Paths
	log   *logging.Logger
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "storebuilder",
		Short: "31Labs storefront agent builder",
		Long:  "storebuilder turns a short guided conversation into a published storefront agent profile.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Best-effort .env for local development
			godotenv.Load()

			var err error
			paths, err = config.ResolvePaths()
			if err != nil {
				return err
			}
			if cfgFile != "" {
				paths.Config = cfgFile
			}
			// Bootstrap logger; commands rebuild it from the loaded
			// config via loadConfig.
			level := logLevel
			if level == "" {
				level = "info"
			}
			log = logging.New(nil, level)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.storebuilder/config.yaml)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error, silent)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newChatCmd())
	cmd.AddCommand(newAgentCmd())

	return cmd
}

// loadConfig reads the config file and rebuilds the logger from the
// resolved logging settings. An explicit --log-level flag wins over the
// configured level.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(paths.Config)
	if err != nil {
		return cfg, err
	}
	level := logLevel
	if level == "" {
		level = cfg.Logging.Level
	}
	log = logging.NewConsole(level, cfg.Logging.Style)
	return cfg, nil
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}
