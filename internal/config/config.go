package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	ErrMissingEnvironmentVariables = errors.New("missing required environment variables")
	ErrUnknownFlagsBackend         = errors.New("unknown flags backend")
)

// Flag store backends.
const (
	FlagsBackendMemory   = "memory"
	FlagsBackendPostgres = "postgres"
	FlagsBackendRedis    = "redis"
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string `mapstructure:"env"`               // current application environment (local, dev, production etc)
	TelegramAPIToken string `mapstructure:"-"`                 // Telegram API token loaded from environment
	DuasJSONPath     string `mapstructure:"duas_json_path"`    // path to JSON file with duas
	DetailsJSONPath  string `mapstructure:"details_json_path"` // path to JSON file with per-name details
	Quiz             Quiz   `mapstructure:"quiz"`              // quiz configuration section
	Flags            Flags  `mapstructure:"flags"`             // tutorial flag storage section
	DB               DB     `mapstructure:"database"`          // database configuration section
	Redis            Redis  `mapstructure:"redis"`             // redis configuration section
	HTTP             HTTP   `mapstructure:"http"`              // health server section
}

// Quiz contains quiz generation parameters.
type Quiz struct {
	QuestionCount int `mapstructure:"question_count"` // questions per batch
}

// Flags selects where tutorial flags are persisted.
type Flags struct {
	Backend string `mapstructure:"backend"` // memory, postgres or redis
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// Redis contains redis connection parameters.
type Redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"-"`
	DB       int    `mapstructure:"db"`
}

// HTTP contains the health server address. Empty disables the server.
type HTTP struct {
	Addr string `mapstructure:"addr"`
}

// Load reads configuration from .env, config files and environment variables.
func Load() (*Config, error) {
	// Populate the environment from .env when the file exists.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("duas_json_path", "assets/data/duas.json")
	v.SetDefault("details_json_path", "assets/data/divine_names.json")
	v.SetDefault("quiz.question_count", 10)
	v.SetDefault("flags.backend", FlagsBackendMemory)
	v.SetDefault("database.max_connections", 20)
	v.SetDefault("database.max_conn_lifetime", "30s")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("http.addr", ":8080")

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("redis_password", "REDIS_PASSWORD")
	_ = v.BindEnv("redis.addr", "REDIS_ADDR")
	_ = v.BindEnv("flags.backend", "FLAGS_BACKEND")
	_ = v.BindEnv("http.addr", "HTTP_ADDR")
	_ = v.BindEnv("env", "APP_ENV")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Load sensitive values from environment variables.
	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	if cfg.TelegramAPIToken == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	cfg.DB.URL = v.GetString("database_url")
	cfg.Redis.Password = v.GetString("redis_password")

	switch cfg.Flags.Backend {
	case FlagsBackendMemory, FlagsBackendRedis:
	case FlagsBackendPostgres:
		if cfg.DB.URL == "" {
			return nil, ErrMissingEnvironmentVariables
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFlagsBackend, cfg.Flags.Backend)
	}

	return &cfg, nil
}
