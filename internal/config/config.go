package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	DBSource           string `mapstructure:"DB_SOURCE"`
	ServerAddress      string `mapstructure:"SERVER_ADDRESS"`
	MaxMoviesPerSearch int    `mapstructure:"MAX_MOVIES_PER_SEARCH"`
	SearchCacheSize    int    `mapstructure:"SEARCH_CACHE_SIZE"`
	GeocodeEndpoint    string `mapstructure:"GEOCODE_ENDPOINT"`
	GeocodeAPIKey      string `mapstructure:"GEOCODE_API_KEY"`
	GeocodeCity        string `mapstructure:"GEOCODE_CITY"`
	LogLevel           string `mapstructure:"LOG_LEVEL"`
	LogFile            string `mapstructure:"LOG_FILE"`
}

// LoadConfig reads app.env from path. Environment variables take precedence
// over the file, and a missing file is not an error.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("DB_SOURCE", "")
	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	v.SetDefault("MAX_MOVIES_PER_SEARCH", 20)
	v.SetDefault("SEARCH_CACHE_SIZE", 10)
	v.SetDefault("GEOCODE_ENDPOINT", "https://maps.googleapis.com/maps/api/geocode/json")
	v.SetDefault("GEOCODE_API_KEY", "")
	v.SetDefault("GEOCODE_CITY", "san francisco")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE", "")

	v.AutomaticEnv()

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("config: failed to read config: %w", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("config: failed to decode config: %w", err)
	}

	if config.MaxMoviesPerSearch <= 0 {
		return config, fmt.Errorf("config: MAX_MOVIES_PER_SEARCH must be positive, got %d", config.MaxMoviesPerSearch)
	}
	if config.SearchCacheSize <= 0 {
		return config, fmt.Errorf("config: SEARCH_CACHE_SIZE must be positive, got %d", config.SearchCacheSize)
	}

	return config, nil
}
