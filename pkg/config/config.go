// Package config loads optional currency definitions from the environment and
// from a YAML file, and registers them into a currency registry. It lets a
// deployment extend the built-in currency set without code changes.
package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the library's environment-driven settings.
type Config struct {
	// CurrencyFile is the path to a YAML file with extra currency definitions.
	// Empty means only the built-in currencies are available.
	CurrencyFile string
}

// Load reads configuration from environment variables and a .env file if present.
// Environment variables override .env values.
func Load() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("MONEYKIT_CURRENCY_FILE", "")
	viper.AutomaticEnv()

	cfg := &Config{
		CurrencyFile: viper.GetString("MONEYKIT_CURRENCY_FILE"),
	}
	if cfg.CurrencyFile == "" {
		log.Println("MONEYKIT_CURRENCY_FILE not set, using built-in currencies only.")
	}
	return cfg, nil
}
