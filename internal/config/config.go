package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/i474232898/telescope-weather/internal/logger"
	"github.com/i474232898/telescope-weather/internal/weather"
)

var validate = validator.New()

type AppConfig struct {
	Port string `validate:"required,numeric"`

	// Series lengths of the conditions payload.
	ForecastDays    int `validate:"min=1,max=14"`
	HourlySlots     int `validate:"min=1,max=24"`
	HistoricalYears int `validate:"min=1,max=20"`
	SavedHoursBack  int `validate:"min=1,max=48"`

	// MonitorInterval controls how often the conditions monitor logs every location (0 = disabled).
	MonitorInterval time.Duration `validate:"min=0"`

	LogLevel    string `validate:"oneof=panic fatal error warn warning info debug trace"`
	CORSOrigins string `validate:"required"`
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		logger.Infof("no .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.Port = getenvDefault("PORT", "5000")

	defaults := weather.DefaultOptions()
	cfg.ForecastDays = getenvInt("FORECAST_DAYS", defaults.ForecastDays)
	cfg.HourlySlots = getenvInt("HOURLY_SLOTS", defaults.HourlySlots)
	cfg.HistoricalYears = getenvInt("HISTORICAL_YEARS", defaults.HistoricalYears)
	cfg.SavedHoursBack = getenvInt("SAVED_HOURS_BACK", defaults.SavedHoursBack)

	intervalStr := getenvDefault("MONITOR_INTERVAL", "0")
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		return nil, fmt.Errorf("invalid MONITOR_INTERVAL: %w", err)
	}
	cfg.MonitorInterval = interval

	cfg.LogLevel = strings.ToLower(getenvDefault("LOG_LEVEL", "info"))
	cfg.CORSOrigins = getenvDefault("CORS_ORIGINS", "*")

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Options returns the series lengths for weather.NewService.
func (c *AppConfig) Options() weather.Options {
	return weather.Options{
		ForecastDays:    c.ForecastDays,
		HourlySlots:     c.HourlySlots,
		HistoricalYears: c.HistoricalYears,
		SavedHoursBack:  c.SavedHoursBack,
	}
}

// Addr is the listen address on all interfaces.
func (c *AppConfig) Addr() string {
	return "0.0.0.0:" + c.Port
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
