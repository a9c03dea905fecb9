package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/pokedex-pocket/internal/app"
	"github.com/heartmarshall/pokedex-pocket/internal/config"
)

var (
	configFlag   string
	formatFlag   string
	cacheFlag    string
	logLevelFlag string
)

var rootCmd = &cobra.Command{
	Use:   "pokedex",
	Short: "Browse the Pokédex from PokéAPI",
	Long: `pokedex lists, searches and shows Pokémon from PokéAPI.

The full catalog is cached (sqlite by default for the CLI) so repeated
searches do not hit the network until the cache expires.`,
	Version:       app.BuildVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.SetVersionTemplate("pokedex {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config YAML (default: $CONFIG_PATH or ./config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "o", string(FormatText), "Output format (text, json, yaml)")
	rootCmd.PersistentFlags().StringVar(&cacheFlag, "cache", "", "Cache backend (memory, sqlite, redis, postgres); overrides the config")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level (debug, info, warn, error); overrides the config")
}

// commandContext is cancelled on Ctrl-C.
func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(cmd.Context(), os.Interrupt)
}

// flagOverrides holds the flags the user set explicitly. Empty fields leave
// the config alone.
type flagOverrides struct {
	cache    string
	logLevel string
}

func overridesFrom(cmd *cobra.Command) flagOverrides {
	var o flagOverrides
	if cmd.Flags().Changed("cache") {
		o.cache = cacheFlag
	}
	if cmd.Flags().Changed("log-level") {
		o.logLevel = logLevelFlag
	}
	return o
}

// apply copies the overrides into cfg. A config that leaves the cache at the
// in-process default gets sqlite instead, so the catalog survives between
// runs.
func (o flagOverrides) apply(cfg *config.Config) {
	switch {
	case o.cache != "":
		cfg.Cache.Backend = o.cache
	case cfg.Cache.Backend == config.CacheBackendMemory:
		cfg.Cache.Backend = config.CacheBackendSQLite
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path := configFlag
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, err
	}

	overridesFrom(cmd).apply(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return cfg, nil
}

// openPokedex builds the application core for one command run.
func openPokedex(ctx context.Context, cmd *cobra.Command) (*app.Pokedex, *config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	logger := app.NewLogger(cfg.Log)

	px, err := app.NewPokedex(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return px, cfg, nil
}

func outputFormat() (OutputFormat, error) {
	return ParseOutputFormat(formatFlag)
}
