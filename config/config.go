package config

import (
	"fmt"
	"log/slog"
	"strings"

	env "github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration values. The reply delay and the canned
// strings are fixed and intentionally absent.
type Config struct {
	// Logging
	LogFile  string `env:"TURBOMATE_LOG_FILE,default=/tmp/turbomate.log" validate:"required"`
	LogLevel string `env:"TURBOMATE_LOG_LEVEL,default=INFO" validate:"oneof=DEBUG INFO WARN WARNING ERROR"`

	// UI
	Detailed  bool   `env:"TURBOMATE_DETAILED,default=false"`
	AltScreen bool   `env:"TURBOMATE_ALT_SCREEN,default=true"`
	UserLabel string `env:"TURBOMATE_USER_LABEL,default=AD" validate:"len=2"`
}

var validate = validator.New()

// Load reads a .env file from the working directory if one exists, then the
// process environment. Variables already set win over the file.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnviron()
}

// FromEnviron decodes and validates the process environment only.
func FromEnviron() (Config, error) {
	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode environment: %w", err)
	}
	cfg.LogLevel = strings.ToUpper(strings.TrimSpace(cfg.LogLevel))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Level maps LogLevel to a slog level, defaulting to info.
func (c Config) Level() slog.Level {
	return ParseLogLevel(c.LogLevel)
}

func ParseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
