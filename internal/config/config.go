package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	DataPath string        `mapstructure:"data_path"`
	Grid     GridConfig    `mapstructure:"grid"`
	Advice   AdviceConfig  `mapstructure:"advice"`
	Rewards  RewardsConfig `mapstructure:"rewards"`
	Logging  LoggingConfig `mapstructure:"logging"`
}

type GridConfig struct {
	OriginHour   int `mapstructure:"origin_hour"`
	EndHour      int `mapstructure:"end_hour"`
	HourHeightPx int `mapstructure:"hour_height_px"`
}

type AdviceConfig struct {
	Endpoint       string `mapstructure:"endpoint"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type RewardsConfig struct {
	RevertDelaySeconds int `mapstructure:"revert_delay_seconds"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration from the given YAML file (or the default
// location when path is empty), with built-in defaults and PT_* environment
// overrides. A missing config file is not an error; everything has a
// default.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("data_path", "")
	v.SetDefault("grid.origin_hour", 6)
	v.SetDefault("grid.end_hour", 23)
	v.SetDefault("grid.hour_height_px", 60)
	v.SetDefault("advice.endpoint", "")
	v.SetDefault("advice.timeout_seconds", 10)
	v.SetDefault("rewards.revert_delay_seconds", 3)
	v.SetDefault("logging.level", "warn")

	v.SetEnvPrefix("PT")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	} else if home, err := os.UserHomeDir(); err == nil {
		v.SetConfigFile(filepath.Join(home, ".gamify-timesheet.yaml"))
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !os.IsNotExist(err) {
				return nil, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}
