package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceName   string `validate:"required"`
	ServerAddress string `validate:"required"`

	Env         string
	LogLevel    string
	HTTPTimeout int32 `validate:"gt=0"`

	GeocodingAPIURL  string `validate:"required,url"`
	ForecastAPIURL   string `validate:"required,url"`
	IPLocationAPIURL string `validate:"required,url"`
}

func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "weather-report")

	v.SetDefault("SERVER_ADDRESS", "127.0.0.1:3000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_TIMEOUT", 10)
	v.SetDefault("GEOCODING_API_URL", "https://geocoding-api.open-meteo.com/v1/search")
	v.SetDefault("FORECAST_API_URL", "https://api.open-meteo.com/v1/forecast")
	v.SetDefault("IP_LOCATION_API_URL", "https://ipinfo.io/json")

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Debug().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	config := &Config{
		ServiceName:      v.GetString("SERVICE_NAME"),
		ServerAddress:    v.GetString("SERVER_ADDRESS"),
		Env:              v.GetString("ENV"),
		LogLevel:         v.GetString("LOG_LEVEL"),
		HTTPTimeout:      v.GetInt32("HTTP_TIMEOUT"),
		GeocodingAPIURL:  v.GetString("GEOCODING_API_URL"),
		ForecastAPIURL:   v.GetString("FORECAST_API_URL"),
		IPLocationAPIURL: v.GetString("IP_LOCATION_API_URL"),
	}

	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}
