// Package config loads game settings through viper.
//
// Precedence, lowest first: defaults, config file, TERMRPG_* environment
// variables, command-line flags bound by the cmd package.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Keys.
const (
	KeyEncounterChance = "encounter_chance"
	KeyWanderDelay     = "wander_delay"
	KeySeed            = "seed"
	KeyMapWidth        = "map_width"
	KeyMapHeight       = "map_height"
	KeyDataDir         = "data_dir"
	KeyLogFile         = "log_file"
	KeyLogLevel        = "log_level"
	KeyPlayerName      = "player_name"
)

// AppName names the config and data directories.
const AppName = "termrpg"

// Config is the validated settings of one run.
type Config struct {
	EncounterChance int
	WanderDelay     time.Duration
	Seed            int64
	MapWidth        int
	MapHeight       int
	DataDir         string
	LogFile         string
	LogLevel        slog.Level
	PlayerName      string
}

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyEncounterChance, 1)
	v.SetDefault(KeyWanderDelay, 500*time.Millisecond)
	v.SetDefault(KeySeed, 0)
	v.SetDefault(KeyMapWidth, 300)
	v.SetDefault(KeyMapHeight, 300)
	v.SetDefault(KeyDataDir, "")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyPlayerName, "Adventurer")
}

// Init prepares v: defaults, environment binding and the config file.
// An explicit cfgFile must exist; the default location is optional.
func Init(v *viper.Viper, cfgFile string) error {
	SetDefaults(v)
	v.SetEnvPrefix(strings.ToUpper(AppName))
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", cfgFile, err)
		}
		return nil
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, AppName))
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}

// Load reads and validates the settings held by v.
func Load(v *viper.Viper) (Config, error) {
	c := Config{
		EncounterChance: v.GetInt(KeyEncounterChance),
		WanderDelay:     v.GetDuration(KeyWanderDelay),
		Seed:            v.GetInt64(KeySeed),
		MapWidth:        v.GetInt(KeyMapWidth),
		MapHeight:       v.GetInt(KeyMapHeight),
		DataDir:         v.GetString(KeyDataDir),
		LogFile:         v.GetString(KeyLogFile),
		PlayerName:      v.GetString(KeyPlayerName),
	}

	var errs []error
	if c.EncounterChance < 0 || c.EncounterChance > 100 {
		errs = append(errs, fmt.Errorf("%s must be within 0..100, got %d", KeyEncounterChance, c.EncounterChance))
	}
	if c.WanderDelay < 0 {
		errs = append(errs, fmt.Errorf("%s must not be negative", KeyWanderDelay))
	}
	if c.MapWidth < 16 || c.MapHeight < 16 {
		errs = append(errs, fmt.Errorf("map must be at least 16x16, got %dx%d", c.MapWidth, c.MapHeight))
	}
	if err := c.LogLevel.UnmarshalText([]byte(v.GetString(KeyLogLevel))); err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", KeyLogLevel, err))
	}
	if strings.TrimSpace(c.PlayerName) == "" {
		c.PlayerName = "Adventurer"
	}
	if err := errors.Join(errs...); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c, nil
}

// DataHome returns the directory for logs and history:
// $XDG_DATA_HOME/termrpg, defaulting to ~/.local/share/termrpg.
func DataHome() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, AppName), nil
}
