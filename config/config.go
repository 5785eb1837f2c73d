package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds all application configuration
type Config struct {
	Env            string `mapstructure:"APP_ENV" validate:"required"`
	Port           string `mapstructure:"PORT" validate:"required"`
	DBDriver       string `mapstructure:"DB_DRIVER" validate:"required,oneof=sqlite postgres"`
	DBDSN          string `mapstructure:"DB_DSN" validate:"required"`
	DBMaxOpenConns int    `mapstructure:"DB_MAX_OPEN_CONNS" validate:"gte=0"`
	DBMaxIdleConns int    `mapstructure:"DB_MAX_IDLE_CONNS" validate:"gte=0"`
	LogLevel       string `mapstructure:"LOG_LEVEL" validate:"required"`
	LogFormat      string `mapstructure:"LOG_FORMAT" validate:"required,oneof=json console"`
}

var keys = []string{
	"APP_ENV",
	"PORT",
	"DB_DRIVER",
	"DB_DSN",
	"DB_MAX_OPEN_CONNS",
	"DB_MAX_IDLE_CONNS",
	"LOG_LEVEL",
	"LOG_FORMAT",
}

// Load reads configuration from the environment, after loading a .env file
// from the working directory when one exists.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env file: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DB_DRIVER", DriverSQLite)
	v.SetDefault("DB_DSN", "catalog.db")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}
