// Package cmd wires the termrpg command line.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"termrpg/assets"
	"termrpg/internal/config"
)

var (
	cfgFile string
	v       = viper.New()
)

var rootCmd = &cobra.Command{
	Use:   config.AppName,
	Short: "A terminal RPG with turn-based combat and skill progression",
	Long: `termrpg drops you beside a campfire in a generated overworld. Walk around,
fight whatever jumps out of the grass and level up seventeen skills.

Running termrpg with no subcommand starts a local game.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return config.Init(v, cfgFile)
	},
	RunE: runPlay,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&cfgFile, "config", "", "config file (default $XDG_CONFIG_HOME/termrpg/config.yaml)")
	f.Int("encounter-chance", 1, "percent chance of a random encounter per step")
	f.Int64("seed", 0, "random seed; 0 picks one from the clock")
	f.String("data-dir", "", "directory with catalog YAML files overriding the built-in ones")

	for key, flag := range map[string]string{
		config.KeyEncounterChance: "encounter-chance",
		config.KeySeed:            "seed",
		config.KeyDataDir:         "data-dir",
	} {
		if err := v.BindPFlag(key, f.Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

// loadSettings reads the merged configuration and the item catalog.
func loadSettings() (config.Config, *assets.Catalog, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return config.Config{}, nil, err
	}
	cat, err := assets.Load(cfg.DataDir)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("load catalog: %w", err)
	}
	return cfg, cat, nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
