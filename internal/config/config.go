// Package config loads all runtime configuration once at process start.
// Values come from config.yaml, environment variables and an optional .env
// file; the resulting Config struct is passed into constructors explicitly.
package config

import (
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds everything the fetch and load pipelines need.
type Config struct {
	// API credentials for the RapidAPI cricket endpoints. An empty key is
	// not a startup error: fetches will simply fail authentication and be
	// logged as retry failures.
	APIKey  string
	APIHost string

	// CacheDir is where raw API responses are persisted, one JSON file per
	// cache key. WarningsLog is the append-only warnings file.
	CacheDir    string
	WarningsLog string

	// AllowedCountries limits which teams have their full rosters fetched.
	// Cost control for the per-player endpoints, not a correctness rule.
	AllowedCountries []string

	DB DBConfig
}

// DBConfig selects and parameterizes the relational sink.
type DBConfig struct {
	// Driver is "sqlite" or "postgres".
	Driver string
	// File is the SQLite database path (sqlite driver only).
	File string
	// Server settings (postgres driver only).
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}

// DSN returns the connection string for the configured driver.
func (d DBConfig) DSN() string {
	if d.Driver == "sqlite" {
		return d.File
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		d.Host, d.Port, d.User, d.Password, d.Name)
}

// Load reads configuration from config.yaml, the environment and .env.
// Missing config file is fine; defaults cover everything except API
// credentials.
func Load() (*Config, error) {
	// .env first so viper's AutomaticEnv sees its values.
	if err := godotenv.Load(); err == nil {
		slog.Debug("Loaded environment from .env")
	}

	setDefaults()

	viper.AutomaticEnv()
	for key, env := range map[string]string{
		"api.key":     "API_KEY",
		"api.host":    "API_HOST",
		"db.host":     "DB_HOST",
		"db.port":     "DB_PORT",
		"db.user":     "DB_USER",
		"db.password": "DB_PASSWORD",
		"db.name":     "DB_NAME",
	} {
		if err := viper.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return &Config{
		APIKey:           viper.GetString("api.key"),
		APIHost:          viper.GetString("api.host"),
		CacheDir:         viper.GetString("cache.dir"),
		WarningsLog:      viper.GetString("logs.warnings"),
		AllowedCountries: viper.GetStringSlice("fetch.allowedcountries"),
		DB: DBConfig{
			Driver:   viper.GetString("db.driver"),
			File:     viper.GetString("db.file"),
			Host:     viper.GetString("db.host"),
			Port:     viper.GetInt("db.port"),
			User:     viper.GetString("db.user"),
			Password: viper.GetString("db.password"),
			Name:     viper.GetString("db.name"),
		},
	}, nil
}

func setDefaults() {
	viper.SetDefault("cache.dir", "./cache")
	viper.SetDefault("logs.warnings", "./logs/fetch_warnings.log")
	viper.SetDefault("fetch.allowedcountries", []string{
		"India", "Australia", "England", "Pakistan", "South Africa",
		"New Zealand", "Sri Lanka", "West Indies", "Bangladesh", "Afghanistan",
	})
	viper.SetDefault("db.driver", "sqlite")
	viper.SetDefault("db.file", "./cricket.db")
	viper.SetDefault("db.host", "localhost")
	viper.SetDefault("db.port", 5432)
	viper.SetDefault("db.user", "root")
	viper.SetDefault("db.password", "")
	viper.SetDefault("db.name", "cricket_db")
}
