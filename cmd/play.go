package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"termrpg/internal/config"
	"termrpg/internal/game"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	RunE:  runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, cat, err := loadSettings()
	if err != nil {
		return err
	}

	// tcell owns the terminal, so logs go to a file.
	logPath, err := logFilePath(cfg)
	if err != nil {
		return err
	}
	logFile, err := openAppend(logPath)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	logger := newLogger(logFile, cfg.LogLevel)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	g, err := game.New(screen, game.Options{
		Config:  cfg,
		Catalog: cat,
		Logger:  logger,
		RunLog:  openRunLog(logger),
	})
	if err != nil {
		return err
	}
	if err := g.Run(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// logFilePath returns log_file, defaulting to termrpg.log in the data home.
func logFilePath(cfg config.Config) (string, error) {
	if cfg.LogFile != "" {
		return cfg.LogFile, nil
	}
	dir, err := config.DataHome()
	if err != nil {
		return "", fmt.Errorf("locate data home: %w", err)
	}
	return filepath.Join(dir, config.AppName+".log"), nil
}

func openAppend(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}

// openRunLog returns the combat history writer, or nil when there is
// nowhere to put it.
func openRunLog(logger *slog.Logger) *game.RunLog {
	path, err := game.DefaultRunLogPath()
	if err != nil {
		logger.Warn("combat history disabled", "error", err)
		return nil
	}
	return game.NewRunLog(path)
}
