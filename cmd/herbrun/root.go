package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/osse101/HerbRun_Go/internal/bootstrap"
	"github.com/osse101/HerbRun_Go/internal/config"
	"github.com/osse101/HerbRun_Go/internal/logger"
)

// app holds state shared by every subcommand of one invocation.
type app struct {
	verbose    bool
	configPath string

	clients *bootstrap.Clients
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "herbrun",
		Short: "Herb run profit and drop chance calculator for Old School RuneScape",
		Long: `herbrun estimates the yield, experience and profit of a herb run from your
saved farming setup, looks up hiscores and Grand Exchange prices, and answers
"what are the odds" questions about drops.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger.InitLoggerWithWriter(logger.CLIConfig(a.verbose), cmd.ErrOrStderr())
			slog.Debug("Starting command", "command", cmd.CommandPath(), "args", args)
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&a.configPath, "config", "",
		fmt.Sprintf("user config file (default $%s or the OS config directory)", config.EnvUserConfigPath))

	root.AddCommand(
		newCalcCmd(a),
		newConfigCmd(a),
		newHiscoreCmd(a),
		newPingCmd(),
		newPriceCmd(a),
		newWikiCmd(),
	)
	return root
}

func (a *app) store() (*config.UserConfigStore, error) {
	path := a.configPath
	if path == "" {
		p, err := config.UserConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return config.NewUserConfigStore(path), nil
}

// userConfig loads the user config. A missing file yields the defaults.
func (a *app) userConfig() (*config.UserConfigStore, *config.UserConfig, error) {
	store, err := a.store()
	if err != nil {
		return nil, nil, err
	}
	cfg, err := store.Load()
	if err != nil {
		return nil, nil, err
	}
	slog.Debug("Loaded user config", "path", store.Path())
	return store, cfg, nil
}

// upstream builds the price and hiscore clients on first use. Their endpoints
// come from the same environment variables the API server reads.
func (a *app) upstream() (*bootstrap.Clients, error) {
	if a.clients != nil {
		return a.clients, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	a.clients = bootstrap.NewClients(cfg)
	return a.clients, nil
}
