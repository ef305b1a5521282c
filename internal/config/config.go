package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	EngineMemory = "memory"
	EngineSQLite = "sqlite"

	OutputText = "text"
	OutputMIME = "mime"

	DefaultTicketsPath = "TypeScript_Source_Data.json"
)

var (
	ErrUnknownEngine = errors.New("unknown aggregation engine")
	ErrUnknownOutput = errors.New("unknown output format")
)

// Config holds all configuration for the application.
type Config struct {
	AppEnv            string
	LogLevel          string
	TicketsPath       string
	AggregationEngine string
	DBDriver          string
	DBPath            string
	StrictParsing     bool
	OutputFormat      string
	MailFrom          string
	MailTo            []string
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() *Config {
	strict, err := strconv.ParseBool(getEnv("STRICT_PARSING", "false"))
	if err != nil {
		strict = false
	}

	return &Config{
		AppEnv:            getEnv("APP_ENV", "development"),
		LogLevel:          getEnv("LOG_LEVEL", ""),
		TicketsPath:       getEnv("TICKETS_PATH", DefaultTicketsPath),
		AggregationEngine: strings.ToLower(getEnv("AGGREGATION_ENGINE", EngineMemory)),
		DBDriver:          getEnv("DB_DRIVER", "sqlite3"),
		DBPath:            getEnv("DB_PATH", ":memory:"),
		StrictParsing:     strict,
		OutputFormat:      strings.ToLower(getEnv("OUTPUT_FORMAT", OutputText)),
		MailFrom:          getEnv("MAIL_FROM", "reports@example.com"),
		MailTo:            splitList(getEnv("MAIL_TO", "team-leads@example.com")),
	}
}

// Validate rejects engine and output values the application cannot serve.
func (c *Config) Validate() error {
	switch c.AggregationEngine {
	case EngineMemory, EngineSQLite:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEngine, c.AggregationEngine)
	}
	switch c.OutputFormat {
	case OutputText, OutputMIME:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOutput, c.OutputFormat)
	}
	return nil
}

// NewLogger creates a new Zap logger based on the config. Both flavours write to stderr.
func NewLogger(cfg *Config) (*zap.Logger, error) {
	zcfg := zap.NewDevelopmentConfig()
	if cfg.AppEnv == "production" {
		zcfg = zap.NewProductionConfig()
	}

	if cfg.LogLevel != "" {
		level, err := zapcore.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
		}
		zcfg.Level = zap.NewAtomicLevelAt(level)
	}

	return zcfg.Build()
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
