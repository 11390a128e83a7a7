package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisSweepDB  int    `mapstructure:"REDIS_SWEEP_DB"`

	// Business timezone for all civil date and weekday math. The scheduler
	// must never depend on the process-local zone.
	BusinessTimezone string `mapstructure:"BUSINESS_TIMEZONE"`

	// Appointment durations in minutes, keyed by appointment type. Types not
	// listed fall back to DefaultDurationMin.
	DurationsByType    map[string]int `mapstructure:"DURATIONS_BY_TYPE"`
	DefaultDurationMin int            `mapstructure:"DEFAULT_DURATION_MIN"`

	// Sectors eligible for automatic distribution: the general pool and the
	// narrower pool used for upgrade appointments.
	DistributionSectors []string `mapstructure:"DISTRIBUTION_SECTORS"`
	UpgradeSectors      []string `mapstructure:"UPGRADE_SECTORS"`
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
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_SWEEP_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "agendly")
	viper.SetDefault("BUSINESS_TIMEZONE", "America/Sao_Paulo")
	viper.SetDefault("DEFAULT_DURATION_MIN", 30)
	viper.SetDefault("DURATIONS_BY_TYPE", map[string]int{
		"closing": 45,
		"upgrade": 45,
	})
	viper.SetDefault("DISTRIBUTION_SECTORS", []string{"sales", "success"})
	viper.SetDefault("UPGRADE_SECTORS", []string{"success"})

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
