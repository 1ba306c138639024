package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`

	// Gemini API key for meeting-intent extraction.
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`

	// Directory holding per-participant Google OAuth token files.
	KeysDirectory string `mapstructure:"KEYS_DIRECTORY"`

	// Scheduling defaults. Working hours are local to the configured offset.
	DefaultMeetingDuration int  `mapstructure:"DEFAULT_MEETING_DURATION"`
	CalendarLookupDays     int  `mapstructure:"CALENDAR_LOOKUP_DAYS"`
	WorkingHoursStart      int  `mapstructure:"WORKING_HOURS_START"`
	WorkingHoursEnd        int  `mapstructure:"WORKING_HOURS_END"`
	TZOffsetHours          int  `mapstructure:"TZ_OFFSET_HOURS"`
	TZOffsetMinutes        int  `mapstructure:"TZ_OFFSET_MINUTES"`
	IncludeWeekends        bool `mapstructure:"INCLUDE_WEEKENDS"`

	// TTL in seconds for cached calendar fetches.
	CalendarCacheTTL int `mapstructure:"CALENDAR_CACHE_TTL"`
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
	viper.SetDefault("APP_PORT", "5000")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("KEYS_DIRECTORY", "Keys")
	viper.SetDefault("DEFAULT_MEETING_DURATION", 30)
	viper.SetDefault("CALENDAR_LOOKUP_DAYS", 30)
	viper.SetDefault("WORKING_HOURS_START", 9)
	viper.SetDefault("WORKING_HOURS_END", 17)
	viper.SetDefault("TZ_OFFSET_HOURS", 5)
	viper.SetDefault("TZ_OFFSET_MINUTES", 30)
	viper.SetDefault("INCLUDE_WEEKENDS", true)
	viper.SetDefault("CALENDAR_CACHE_TTL", 300)

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
