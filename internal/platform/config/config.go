package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	IsProduction  bool
	EnableDBCheck bool

	// Reconciliation window for the recalculation job. Zero values leave
	// the corresponding bound open.
	RecalcStart time.Time
	RecalcEnd   time.Time
}

const recalcDateLayout = "2006-01-02"

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("RECALC_START", "")
	viper.SetDefault("RECALC_END", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	var err error
	cfg.RecalcStart, err = parseRecalcDate(viper.GetString("RECALC_START"))
	if err != nil {
		return nil, fmt.Errorf("invalid RECALC_START: %w", err)
	}
	cfg.RecalcEnd, err = parseRecalcDate(viper.GetString("RECALC_END"))
	if err != nil {
		return nil, fmt.Errorf("invalid RECALC_END: %w", err)
	}

	return cfg, nil
}

func parseRecalcDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return time.Parse(recalcDateLayout, value)
}
