package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/hamed0406/statuscheck/internal/logging"
)

// Config covers the ambient settings only. The checker's target is a
// constant and deliberately not a key here.
type Config struct {
	LogDir        string `mapstructure:"log_dir"`        // logs directory
	LogLevel      string `mapstructure:"log_level"`      // debug|info|warn|error
	StatusbinAddr string `mapstructure:"statusbin_addr"` // e.g. "127.0.0.1:8080" or ":8080" (Docker)
}

func FromEnv() (Config, error) {
	_ = godotenv.Load(".env")

	v := viper.New()
	v.SetDefault("log_dir", "logs")
	v.SetDefault("log_level", "info")
	v.SetDefault("statusbin_addr", "127.0.0.1:8080")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	return cfg, nil
}
