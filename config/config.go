package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Scheduling engine
	Scheduling SchedulingConfig

	// External calendar
	GoogleCalendar GoogleCalendarConfig

	// API access
	Auth AuthConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// SchedulingConfig tunes the decision engine.
type SchedulingConfig struct {
	// Timezone is the fallback IANA zone when a user has no preference.
	Timezone string

	// MaxSuggestions caps the ranked suggestions per scheduling request.
	MaxSuggestions int

	// SnapshotTTLSeconds controls how long cached calendar snapshots
	// stay valid.
	SnapshotTTLSeconds int

	// HorizonDays is how far ahead availability is fetched by default.
	HorizonDays int
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

// AuthConfig guards the HTTP API.
type AuthConfig struct {
	APIKey          string
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Scheduling engine
	cfg.Scheduling.Timezone = viper.GetString("scheduling.timezone")
	cfg.Scheduling.MaxSuggestions = viper.GetInt("scheduling.max_suggestions")
	cfg.Scheduling.SnapshotTTLSeconds = viper.GetInt("scheduling.snapshot_ttl_seconds")
	cfg.Scheduling.HorizonDays = viper.GetInt("scheduling.horizon_days")

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// API access
	cfg.Auth.APIKey = viper.GetString("auth.api_key")
	if apiKey := viper.GetString("api_key"); apiKey != "" {
		cfg.Auth.APIKey = apiKey
	}
	cfg.Auth.RateLimitPerMin = viper.GetInt("auth.rate_limit_per_min")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.Scheduling.MaxSuggestions <= 0 {
		return fmt.Errorf("scheduling.max_suggestions must be positive")
	}
	if cfg.Scheduling.HorizonDays <= 0 {
		return fmt.Errorf("scheduling.horizon_days must be positive")
	}
	if cfg.Auth.RateLimitPerMin <= 0 {
		return fmt.Errorf("auth.rate_limit_per_min must be positive")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("scheduling.timezone", "UTC")
	viper.SetDefault("scheduling.max_suggestions", 5)
	viper.SetDefault("scheduling.snapshot_ttl_seconds", 300)
	viper.SetDefault("scheduling.horizon_days", 7)

	viper.SetDefault("google_calendar.calendar_id", "primary")

	viper.SetDefault("auth.rate_limit_per_min", 120)
}
