package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Campus timetable specifics
	LMS            LMSConfig
	SQLite         SQLiteConfig
	Inference      InferenceConfig
	GoogleCalendar GoogleCalendarConfig
	RateLimit      RateLimitConfig
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

type LMSConfig struct {
	BaseURL         string
	AccessToken     string
	CacheTTLMinutes int
}

type SQLiteConfig struct {
	Path string
}

type InferenceConfig struct {
	StartToleranceMinutes int
	Timezone              string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
	Timezone        string
}

type RateLimitConfig struct {
	PerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
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

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.LMS.BaseURL = viper.GetString("lms.base_url")
	cfg.LMS.AccessToken = viper.GetString("lms.access_token")
	cfg.LMS.CacheTTLMinutes = viper.GetInt("lms.cache_ttl_minutes")
	if lmsURL := viper.GetString("lms_base_url"); lmsURL != "" {
		cfg.LMS.BaseURL = lmsURL
	}
	if lmsToken := viper.GetString("lms_access_token"); lmsToken != "" {
		cfg.LMS.AccessToken = lmsToken
	}

	cfg.SQLite.Path = viper.GetString("sqlite.path")

	cfg.Inference.StartToleranceMinutes = viper.GetInt("inference.start_tolerance_minutes")
	cfg.Inference.Timezone = viper.GetString("inference.timezone")

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.Timezone = viper.GetString("google_calendar.timezone")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	if cfg.LMS.BaseURL == "" {
		return nil, fmt.Errorf("lms.base_url is required")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("lms.cache_ttl_minutes", 15)
	viper.SetDefault("sqlite.path", "campus-timetable.db")
	viper.SetDefault("inference.start_tolerance_minutes", 20)
	viper.SetDefault("inference.timezone", "UTC")
	viper.SetDefault("google_calendar.timezone", "UTC")
	viper.SetDefault("rate_limit.per_min", 120)
}
