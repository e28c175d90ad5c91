package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// EquityAccountCode is the chart code of the Owner's Equity account the
	// auto-balancer writes corrections against.
	EquityAccountCode string
	// AdjustmentAccountCode is the chart code of the expense account that
	// takes the offset leg of a correction.
	AdjustmentAccountCode string

	// RateLimit is a ulule/limiter formatted rate, e.g. "60-M".
	RateLimit string
}

// LoadConfig loads configuration from environment variables and a .env file
// if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("EQUITY_ACCOUNT_CODE", "3000")
	viper.SetDefault("ADJUSTMENT_ACCOUNT_CODE", "5999")
	viper.SetDefault("RATE_LIMIT", "60-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EquityAccountCode = viper.GetString("EQUITY_ACCOUNT_CODE")
	cfg.AdjustmentAccountCode = viper.GetString("ADJUSTMENT_ACCOUNT_CODE")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	return cfg, nil
}
