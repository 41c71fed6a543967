package util

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	TimetableDir     string        `validate:"required"`
	ProfileDir       string        `validate:"required"`
	Timezone         string        `validate:"required"`
	APIPort          int           `validate:"gt=0,lt=65536"`
	APITimeout       time.Duration `validate:"gt=0"`
	UseRateLimit     bool
	RateLimitRPS     float64 `validate:"gt=0"`
	RateLimitBurst   int     `validate:"gt=0"`
	ProfileCacheSize int     `validate:"gt=0"`
	ExtractWorkers   int     `validate:"gt=0"`
}

func setDefaults() {
	viper.SetDefault("TIMETABLE_DIR", "./data/timetable")
	viper.SetDefault("PROFILE_DIR", "./data/profiles")
	viper.SetDefault("TIMEZONE", "Europe/Zurich")
	viper.SetDefault("API_PORT", 6060)
	viper.SetDefault("API_TIMEOUT", "30s")
	viper.SetDefault("HTTP_SERVER_READ_TIMEOUT", "10s")
	viper.SetDefault("HTTP_SERVER_WRITE_TIMEOUT", "10s")
	viper.SetDefault("HTTP_SERVER_IDLE_TIMEOUT", "60s")
	viper.SetDefault("HTTP_SERVER_READ_HEADER_TIMEOUT", "5s")
	viper.SetDefault("USE_RATE_LIMIT", false)
	viper.SetDefault("RATE_LIMIT_RPS", 20.0)
	viper.SetDefault("RATE_LIMIT_BURST", 40)
	viper.SetDefault("PROFILE_CACHE_SIZE", 64)
	viper.SetDefault("EXTRACT_WORKERS", 4)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_MAX_SIZE_MB", 100)
	viper.SetDefault("LOG_MAX_BACKUPS", 3)
	viper.SetDefault("LOG_MAX_AGE_DAYS", 28)
}

// ReadConfig loads ./data/config.yaml (optional) on top of .env and the process environment.
func ReadConfig() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	setDefaults()
	viper.AutomaticEnv()
	viper.SetConfigName("config")
	viper.AddConfigPath("./data/")

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}

func LoadConfig() (Config, error) {
	setDefaults()
	cfg := Config{
		TimetableDir:     viper.GetString("TIMETABLE_DIR"),
		ProfileDir:       viper.GetString("PROFILE_DIR"),
		Timezone:         viper.GetString("TIMEZONE"),
		APIPort:          viper.GetInt("API_PORT"),
		APITimeout:       viper.GetDuration("API_TIMEOUT"),
		UseRateLimit:     viper.GetBool("USE_RATE_LIMIT"),
		RateLimitRPS:     viper.GetFloat64("RATE_LIMIT_RPS"),
		RateLimitBurst:   viper.GetInt("RATE_LIMIT_BURST"),
		ProfileCacheSize: viper.GetInt("PROFILE_CACHE_SIZE"),
		ExtractWorkers:   viper.GetInt("EXTRACT_WORKERS"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, WrapErrorf(err, ErrBadParamInput, "invalid configuration")
	}
	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return Config{}, WrapErrorf(err, ErrBadParamInput, "invalid TIMEZONE %q", cfg.Timezone)
	}
	return cfg, nil
}
