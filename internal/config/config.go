package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Geocoder GeocoderConfig
	Feed     FeedConfig
	HTTP     HTTPConfig
	App      AppConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int
	GinMode string // debug, release, test
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// GeocoderConfig points at the postal code lookup dataset
type GeocoderConfig struct {
	BaseURL string
	Dataset string
}

// FeedConfig points at the wildfire incident feed
type FeedConfig struct {
	BaseURL string
}

// HTTPConfig holds outbound HTTP client settings shared by all providers
type HTTPConfig struct {
	Timeout   time.Duration
	UserAgent string
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	SupportedCountry string // ISO 3166-1 alpha-2
}

const (
	DefaultGeocoderURL     = "https://public.opendatasoft.com/api/records/1.0/search/"
	DefaultGeocoderDataset = "georef-united-states-of-america-zc-point"
	DefaultFeedURL         = "https://services3.arcgis.com/T4QMspbfLg3qTGWY/arcgis/rest/services/Current_WildlandFire_Locations/FeatureServer/0/query"
)

// Load reads configuration from a .env file, a config file and environment variables
func Load() (*Config, error) {
	// A missing .env is fine, anything else is not
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.fire-monitor")

	setDefaults(v)

	v.SetEnvPrefix("FIRE_MONITOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.App.SupportedCountry = strings.ToUpper(strings.TrimSpace(cfg.App.SupportedCountry))

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("geocoder.baseurl", DefaultGeocoderURL)
	v.SetDefault("geocoder.dataset", DefaultGeocoderDataset)
	v.SetDefault("feed.baseurl", DefaultFeedURL)
	v.SetDefault("http.timeout", 15*time.Second)
	v.SetDefault("http.useragent", "fire-monitor/1.0")
	v.SetDefault("app.supportedcountry", "US")
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
