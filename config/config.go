package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`

	// Shopping session lifetime in minutes.
	SessionTTLMin int `mapstructure:"SESSION_TTL_MIN"`

	// Currency substituted when the upstream response omits one.
	DefaultCurrency string `mapstructure:"DEFAULT_CURRENCY"`

	// Identifier prefixes observed on upstream refs. A-la-carte items
	// reference journeys as JourneyRefPrefix+NNN while flight offers
	// reference segments as SegmentRefPrefix+NNN with the same numeric suffix.
	JourneyRefPrefix string `mapstructure:"JOURNEY_REF_PREFIX"`
	SegmentRefPrefix string `mapstructure:"SEGMENT_REF_PREFIX"`

	// Row spread applied per segment index during seat auto-assignment.
	SeatRowOffset int `mapstructure:"SEAT_ROW_OFFSET"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("SESSION_TTL_MIN", 30)
	viper.SetDefault("DEFAULT_CURRENCY", "AUD")
	viper.SetDefault("JOURNEY_REF_PREFIX", "fl")
	viper.SetDefault("SEGMENT_REF_PREFIX", "seg")
	viper.SetDefault("SEAT_ROW_OFFSET", 4)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
