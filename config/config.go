package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Storage. STORE_BACKEND is "mongo" or "memory".
	StoreBackend string `mapstructure:"STORE_BACKEND"`
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Booking and availability behaviour.
	BookingLockTTLSeconds int    `mapstructure:"BOOKING_LOCK_TTL_SECONDS"`
	ReminderLeadMinutes   int    `mapstructure:"REMINDER_LEAD_MINUTES"`
	Timezone              string `mapstructure:"TIMEZONE"`
	HidePastWindows       bool   `mapstructure:"HIDE_PAST_WINDOWS"`
	MaxRangeDays          int    `mapstructure:"MAX_RANGE_DAYS"`
	UpcomingPreviewCount  int    `mapstructure:"UPCOMING_PREVIEW_COUNT"`
	MigrationCron         string `mapstructure:"MIGRATION_CRON"`
}

var AppConfig Config

func setDefaults() {
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	viper.SetDefault("STORE_BACKEND", "mongo")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "clubbook")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("BOOKING_LOCK_TTL_SECONDS", 10)
	viper.SetDefault("REMINDER_LEAD_MINUTES", 24*60)
	viper.SetDefault("TIMEZONE", "UTC")
	viper.SetDefault("HIDE_PAST_WINDOWS", true)
	viper.SetDefault("MAX_RANGE_DAYS", 31)
	viper.SetDefault("UPCOMING_PREVIEW_COUNT", 4)
	viper.SetDefault("MIGRATION_CRON", "@daily")
}

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	setDefaults()

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

// Location returns the configured club timezone, falling back to UTC.
func Location() *time.Location {
	loc, err := time.LoadLocation(AppConfig.Timezone)
	if err != nil || AppConfig.Timezone == "" {
		return time.UTC
	}
	return loc
}

func BookingLockTTL() time.Duration {
	return time.Duration(AppConfig.BookingLockTTLSeconds) * time.Second
}

func ReminderLead() time.Duration {
	return time.Duration(AppConfig.ReminderLeadMinutes) * time.Minute
}
