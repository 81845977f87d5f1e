package config

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	pkgRetry "github.com/charole/auto-ux-backend/internal/pkg/retry"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	// Server configuration
	ServerAddr         string        `env:"SERVER_ADDR,notEmpty"`
	ServerReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"15s"`
	ServerWriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"60s"`
	RequestTimeout     time.Duration `env:"REQUEST_TIMEOUT" envDefault:"60s"`
	AllowedOrigins     []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	// Database configuration
	DatabaseURL         string               `env:"DATABASE_URL,notEmpty"`
	DBMaxConns          int                  `env:"DB_MAX_CONNS" envDefault:"25"`
	DBMinConns          int                  `env:"DB_MIN_CONNS" envDefault:"2"`
	DBMaxConnLifetime   time.Duration        `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`
	DBMaxConnIdleTime   time.Duration        `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"30m"`
	DBHealthCheckPeriod time.Duration        `env:"DB_HEALTH_CHECK_PERIOD" envDefault:"1m"`
	DBConnectRetry      pkgRetry.RetryConfig `envPrefix:"DB_CONNECT_RETRY_"`
	RunMigrations       bool                 `env:"RUN_MIGRATIONS" envDefault:"true"`

	// Generation service configuration
	LLMConnectorCfg LLMConnectorConfig `envPrefix:"LLM_"`

	// Pipeline configuration
	PipelineCfg PipelineConfig `envPrefix:"PIPELINE_"`

	// Catalog read cache
	CatalogCacheCfg CatalogCacheConfig `envPrefix:"CATALOG_CACHE_"`

	// Logging configuration
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Mock configuration
	EnableMocks bool `env:"ENABLE_MOCKS" envDefault:"false"`

	// Environment (set from flag, not from env var)
	Environment string
}

type LLMConnectorConfig struct {
	HTTPClientConfig
	CompletionsEndpoint string  `env:"COMPLETIONS_ENDPOINT" envDefault:"/chat/completions"`
	Model               string  `env:"MODEL" envDefault:"gpt-3.5-turbo"`
	Temperature         float64 `env:"TEMPERATURE" envDefault:"0.7"`
	MaxTokens           int     `env:"MAX_TOKENS" envDefault:"2000"`
}

type HTTPClientConfig struct {
	RequestTimeout        time.Duration `env:"TIMEOUT" envDefault:"60s"`
	ConnTimeout           time.Duration `env:"CONN_TIMEOUT" envDefault:"10s"`
	KeepAlive             time.Duration `env:"KEEP_ALIVE" envDefault:"90s"`
	IdleConnTimeout       time.Duration `env:"IDLE_CONN_TIMEOUT" envDefault:"90s"`
	ResponseHeaderTimeout time.Duration `env:"RESPONSE_HEADER_TIMEOUT" envDefault:"45s"`
	TLSHandshakeTimeout   time.Duration `env:"TLS_HANDSHAKE_TIMEOUT" envDefault:"10s"`
	MaxIdleConnsPerHost   int           `env:"MAX_IDLE_CONNS_PER_HOST" envDefault:"10"`
	MaxResponseBytes      int64         `env:"MAX_RESPONSE_BYTES" envDefault:"4194304"`
	Token                 string        `env:"TOKEN"`
	Url                   string        `env:"SERVICE_URL" envDefault:"https://api.openai.com/v1"`
}

// PipelineConfig bounds the UI generation pipeline
type PipelineConfig struct {
	GenerationTimeout time.Duration `env:"GENERATION_TIMEOUT" envDefault:"30s"`
	SearchBudget      int           `env:"SEARCH_PAYLOAD_BUDGET" envDefault:"15000"`
	GenericBudget     int           `env:"GENERIC_PAYLOAD_BUDGET" envDefault:"5000"`
	PopularLimit      int           `env:"POPULAR_LIMIT" envDefault:"5"`
	FAQLimit          int           `env:"FAQ_LIMIT" envDefault:"15"`
	TestimonialLimit  int           `env:"TESTIMONIAL_LIMIT" envDefault:"10"`
	SmartProductLimit int           `env:"SMART_PRODUCT_LIMIT" envDefault:"5"`
}

type CatalogCacheConfig struct {
	TTL             time.Duration `env:"TTL" envDefault:"1h"`
	CleanupInterval time.Duration `env:"CLEANUP_INTERVAL" envDefault:"10m"`
}

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	envFile := getEnvFile(*envFlag)
	// Try to load env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.Environment = *envFlag
	cfg.DBConnectRetry.ApplyDefaults()

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	var errors []string

	// Validate Database configuration
	if cfg.DBMaxConns < 1 || cfg.DBMaxConns > 200 {
		errors = append(errors, fmt.Sprintf("DB_MAX_CONNS must be between 1 and 200, got %d", cfg.DBMaxConns))
	}

	if cfg.DBMinConns < 0 || cfg.DBMinConns > cfg.DBMaxConns {
		errors = append(errors, fmt.Sprintf("DB_MIN_CONNS must be between 0 and DB_MAX_CONNS(%d), got %d", cfg.DBMaxConns, cfg.DBMinConns))
	}

	// Validate generation configuration
	if cfg.LLMConnectorCfg.Temperature < 0 || cfg.LLMConnectorCfg.Temperature > 2 {
		errors = append(errors, fmt.Sprintf("LLM_TEMPERATURE must be between 0 and 2, got %.2f", cfg.LLMConnectorCfg.Temperature))
	}

	if cfg.LLMConnectorCfg.MaxTokens < 1 {
		errors = append(errors, fmt.Sprintf("LLM_MAX_TOKENS must be positive, got %d", cfg.LLMConnectorCfg.MaxTokens))
	}

	// Validate pipeline configuration
	if cfg.PipelineCfg.GenerationTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("PIPELINE_GENERATION_TIMEOUT must be positive, got %s", cfg.PipelineCfg.GenerationTimeout))
	}

	if cfg.PipelineCfg.SearchBudget < 100 || cfg.PipelineCfg.GenericBudget < 100 {
		errors = append(errors, fmt.Sprintf("payload budgets must be at least 100 characters, got search=%d generic=%d",
			cfg.PipelineCfg.SearchBudget, cfg.PipelineCfg.GenericBudget))
	}

	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errors = append(errors, fmt.Sprintf("LOG_LEVEL must be one of debug, info, warn, error, got %q", cfg.LogLevel))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation errors:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
