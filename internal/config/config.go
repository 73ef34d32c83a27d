// Package config loads and validates process configuration.
package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/viper"

	"github.com/sevigo/job-warden/internal/logger"
)

// DefaultNotifyTimes are the local wall-clock times at which the daily
// failure scan fires. The exact set is part of the bot's contract with its
// operator and is only overridden through warden.yml.
var DefaultNotifyTimes = []string{
	"07:45", "08:30", "09:30", "11:00", "12:00",
	"13:00", "15:00", "18:00", "20:00", "23:30",
}

// Config holds the application's configuration values.
type Config struct {
	BotToken        string
	ChatID          int64
	DatabricksHost  string
	DatabricksToken string
	OperatorEmail   string
	Timezone        string
	ServerPort      string
	NotifyTimes     []string
	Logging         logger.Config
}

// Location resolves the configured operator time zone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// LoadConfig reads configuration from environment variables and a .env file,
// sets sensible defaults, and validates required fields. It uses the Viper
// library to handle configuration loading and precedence.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")

	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("LOG_OUTPUT", "stdout")
	v.SetDefault("TIMEZONE", "Asia/Kolkata")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			slog.Debug("no .env file loaded", "error", err)
		}
	}

	required := []string{
		"BOT_TOKEN",
		"CHAT_ID",
		"DATABRICKS_HOST",
		"DATABRICKS_TOKEN",
		"OPERATOR_EMAIL",
	}
	for _, key := range required {
		if v.GetString(key) == "" {
			return nil, fmt.Errorf("%s must be set", key)
		}
	}

	cfg := &Config{
		BotToken:        v.GetString("BOT_TOKEN"),
		ChatID:          v.GetInt64("CHAT_ID"),
		DatabricksHost:  v.GetString("DATABRICKS_HOST"),
		DatabricksToken: v.GetString("DATABRICKS_TOKEN"),
		OperatorEmail:   v.GetString("OPERATOR_EMAIL"),
		Timezone:        v.GetString("TIMEZONE"),
		ServerPort:      v.GetString("SERVER_PORT"),
		NotifyTimes:     DefaultNotifyTimes,
		Logging: logger.Config{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
			Output: v.GetString("LOG_OUTPUT"),
		},
	}

	if cfg.ChatID == 0 {
		return nil, fmt.Errorf("CHAT_ID must be a non-zero integer")
	}
	if _, err := cfg.Location(); err != nil {
		return nil, err
	}

	schedule, err := LoadScheduleFile(v.GetString("WARDEN_CONFIG"))
	if err != nil {
		return nil, err
	}
	if len(schedule.NotifyTimes) > 0 {
		cfg.NotifyTimes = schedule.NotifyTimes
	}

	return cfg, nil
}
