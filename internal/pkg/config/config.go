package config

import (
	"errors"
	"time"

	"github.com/maplecrest/canscore/internal/pkg/constants"
	"github.com/spf13/viper"
)

type Config struct {
	ListenAddr  string
	DatabaseDSN string

	RoundsJSONURL string
	RoundsPageURL string
	FetchTimeout  time.Duration

	AllowedOrigins []string
	LogLevel       string
}

// Load reads an optional config.yaml plus the environment into viper and
// returns the typed snapshot. The admin secret stays inside viper, where the
// auth middleware reads it.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	viper.SetDefault("listen_addr", ":8080")
	viper.SetDefault("rounds_json_url", "https://www.canada.ca/content/dam/ircc/documents/json/ee_rounds_123_en.json")
	viper.SetDefault("rounds_page_url", "https://www.canada.ca/en/immigration-refugees-citizenship/corporate/mandate/policies-operational-instructions-agreements/ministerial-instructions/express-entry-rounds.html")
	viper.SetDefault("fetch_timeout", "10s")
	viper.SetDefault("allowed_origins", []string{"http://localhost:3000"})
	viper.SetDefault("log_level", "info")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{
		ListenAddr:     viper.GetString("listen_addr"),
		DatabaseDSN:    viper.GetString("database_dsn"),
		RoundsJSONURL:  viper.GetString("rounds_json_url"),
		RoundsPageURL:  viper.GetString("rounds_page_url"),
		FetchTimeout:   viper.GetDuration("fetch_timeout"),
		AllowedOrigins: viper.GetStringSlice("allowed_origins"),
		LogLevel:       viper.GetString("log_level"),
	}

	if viper.GetString(constants.ViperSecretKey) == "" {
		viper.Set(constants.ViperSecretKey, "change-me")
	}

	return cfg, nil
}
