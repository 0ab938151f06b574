package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	// Seed administrator account, re-created fresh on every run
	AdminName     string
	AdminEmail    string
	AdminPassword string

	// Session
	SessionTTLMinutes int // 0 means sessions never expire

	// Logging
	LogLevel string
}

// Load loads configuration from environment variables and .env file
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Load .env file if it exists (ignore if not found)
	_ = viper.ReadInConfig()

	viper.SetDefault("ADMIN_NAME", "Administrator")
	viper.SetDefault("ADMIN_EMAIL", "admin@email.com")
	viper.SetDefault("ADMIN_PASSWORD", "root")
	viper.SetDefault("SESSION_TTL_MINUTES", 0)
	viper.SetDefault("LOG_LEVEL", "info")

	config := &Config{
		AdminName:         viper.GetString("ADMIN_NAME"),
		AdminEmail:        viper.GetString("ADMIN_EMAIL"),
		AdminPassword:     viper.GetString("ADMIN_PASSWORD"),
		SessionTTLMinutes: viper.GetInt("SESSION_TTL_MINUTES"),
		LogLevel:          viper.GetString("LOG_LEVEL"),
	}

	if config.AdminEmail == "" {
		return nil, fmt.Errorf("ADMIN_EMAIL must not be empty")
	}
	if config.AdminPassword == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD must not be empty")
	}
	if config.SessionTTLMinutes < 0 {
		return nil, fmt.Errorf("SESSION_TTL_MINUTES must not be negative")
	}

	return config, nil
}
