package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration, read from the environment
// with a .env file as a convenience during development.
type Config struct {
	Port         string
	DatabaseURL  string
	ImageDir     string
	AllowOrigins []string
	LogLevel     string
	FetchTimeout time.Duration
}

// Load reads configuration from the environment. DATABASE_URL is the only
// required setting; everything else has a sensible default.
func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("port", "8080")
	v.SetDefault("image_dir", "images")
	v.SetDefault("log_level", "info")
	v.SetDefault("fetch_timeout", 30*time.Second)
	v.SetDefault("allow_origins", "http://localhost:3000")
	v.AutomaticEnv()

	cfg := &Config{
		Port:         v.GetString("port"),
		DatabaseURL:  v.GetString("database_url"),
		ImageDir:     v.GetString("image_dir"),
		AllowOrigins: strings.Split(v.GetString("allow_origins"), ","),
		LogLevel:     v.GetString("log_level"),
		FetchTimeout: v.GetDuration("fetch_timeout"),
	}
	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}
	return cfg, nil
}
