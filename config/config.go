package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// Filter extractor strategies
const (
	ExtractorKeyword = "keyword"
	ExtractorLLM     = "llm"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	LLM      LLMConfig      `mapstructure:"llm"`
	Matching MatchingConfig `mapstructure:"matching"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// CatalogConfig holds the product catalog location
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

// LLMConfig holds chat-completion API configuration
type LLMConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
}

// MatchingConfig holds product matching configuration
type MatchingConfig struct {
	Extractor  string `mapstructure:"extractor"` // "keyword" or "llm"
	MaxResults int    `mapstructure:"max_results"`
	Debug      bool   `mapstructure:"debug"`
}

// LoggingConfig holds logger configuration
type LoggingConfig struct {
	Level string `mapstructure:"level"` // empty means the environment default
}

// Load loads configuration from .env, environment variables and config files
func Load() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/kbeaute/")

	// Environment variable settings; server.port is read from KBEAUTE_SERVER_PORT
	v.SetEnvPrefix("KBEAUTE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The API key has no default, so it must be bound explicitly
	if err := v.BindEnv("llm.api_key", "KBEAUTE_LLM_API_KEY", "OPENAI_API_KEY"); err != nil {
		return nil, fmt.Errorf("bind llm api key: %w", err)
	}

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// loadEnvFile loads .env from the working directory if present.
// Variables already set in the environment win.
func loadEnvFile() error {
	if err := godotenv.Load(".env"); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading .env file: %w", err)
	}
	return nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Catalog defaults
	v.SetDefault("catalog.path", "products.jsonl")

	// LLM defaults
	v.SetDefault("llm.base_url", "https://api.openai.com/v1")
	v.SetDefault("llm.model", "gpt-4-turbo")

	// Matching defaults
	v.SetDefault("matching.extractor", ExtractorKeyword)
	v.SetDefault("matching.max_results", 3)
	v.SetDefault("matching.debug", false)

	// Logging defaults
	v.SetDefault("logging.level", "")
}

// validate validates the configuration
func validate(config *Config) error {
	switch config.Server.Environment {
	case "development", "test", "production":
	default:
		return fmt.Errorf("environment must be 'development', 'test' or 'production', got: %s", config.Server.Environment)
	}

	if strings.TrimSpace(config.Catalog.Path) == "" {
		return fmt.Errorf("catalog path is required (set KBEAUTE_CATALOG_PATH)")
	}

	if config.Matching.Extractor != ExtractorKeyword && config.Matching.Extractor != ExtractorLLM {
		return fmt.Errorf("matching extractor must be 'keyword' or 'llm', got: %s", config.Matching.Extractor)
	}

	if config.Matching.MaxResults < 1 {
		return fmt.Errorf("matching max_results must be at least 1, got: %d", config.Matching.MaxResults)
	}

	if config.Logging.Level != "" {
		if _, err := zapcore.ParseLevel(config.Logging.Level); err != nil {
			return fmt.Errorf("invalid log level %q: %w", config.Logging.Level, err)
		}
	}

	return nil
}
