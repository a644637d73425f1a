package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Ledger    LedgerConfig
	OCR       OCRConfig
	Mailchimp MailchimpConfig
	Pipeline  PipelineConfig
	Metrics   MetricsConfig
}

// LedgerConfig holds idempotency-ledger configuration
type LedgerConfig struct {
	Driver      string // "sqlite" | "postgres" | "redis" | "memory"
	DSN         string
	DialTimeout time.Duration
}

// OCRConfig holds OCR-related configuration
type OCRConfig struct {
	TessdataDir      string
	Language         string
	Pdftotext        string
	Pdftoppm         string
	HeicConverter    string
	ArtifactCacheDir string
	DPI              int
}

// MailchimpConfig holds mailing-list upsert configuration
type MailchimpConfig struct {
	APIKey       string
	ServerPrefix string
	ListID       string
	Tag          string
	Timeout      time.Duration
}

// PipelineConfig holds processing configuration
type PipelineConfig struct {
	Workers        int
	QueueSize      int
	ProcessTimeout time.Duration
	WatchDebounce  time.Duration
}

// MetricsConfig holds the metrics endpoint configuration
type MetricsConfig struct {
	Addr string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Ledger: LedgerConfig{
			Driver:      getEnv("LEDGER_DRIVER", "sqlite"),
			DSN:         getEnv("LEDGER_DSN", "file:cardscan.db"),
			DialTimeout: getEnvAsDuration("LEDGER_DIAL_TIMEOUT", 3*time.Second),
		},
		OCR: OCRConfig{
			TessdataDir:      getEnv("TESSDATA_PREFIX", ""),
			Language:         getEnv("OCR_LANG", "eng"),
			Pdftotext:        getEnv("PDFTOTEXT", "pdftotext"),
			Pdftoppm:         getEnv("PDFTOPPM", "pdftoppm"),
			HeicConverter:    getEnv("HEIC_CONVERTER", "magick"),
			ArtifactCacheDir: getEnv("ARTIFACT_CACHE_DIR", "./tmp"),
			DPI:              getEnvAsInt("OCR_DPI", 300),
		},
		Mailchimp: MailchimpConfig{
			APIKey:       getEnv("MAILCHIMP_API_KEY", ""),
			ServerPrefix: getEnv("MAILCHIMP_SERVER_PREFIX", ""),
			ListID:       getEnv("MAILCHIMP_LIST_ID", ""),
			Tag:          getEnv("MAILCHIMP_TAG", "Referral Source"),
			Timeout:      getEnvAsDuration("MAILCHIMP_TIMEOUT", 30*time.Second),
		},
		Pipeline: PipelineConfig{
			Workers:        getEnvAsInt("PIPELINE_WORKERS", 4),
			QueueSize:      getEnvAsInt("PIPELINE_QUEUE_SIZE", 256),
			ProcessTimeout: getEnvAsDuration("PIPELINE_PROCESS_TIMEOUT", 3*time.Minute),
			WatchDebounce:  getEnvAsDuration("WATCH_DEBOUNCE", 2*time.Second),
		},
		Metrics: MetricsConfig{
			Addr: getEnv("METRICS_ADDR", ":9091"),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration.
// Mailchimp settings are checked separately by callers that upsert, since
// the batch tool can run extraction-only without them.
func (c *Config) Validate() error {
	switch c.Ledger.Driver {
	case "sqlite", "postgres", "redis", "memory":
	default:
		return NewAppError("CONFIG_ERROR", "LEDGER_DRIVER must be sqlite, postgres, redis or memory", ErrInvalidInput)
	}
	if c.Ledger.Driver != "memory" && c.Ledger.DSN == "" {
		return NewAppError("CONFIG_ERROR", "LEDGER_DSN is required", ErrInvalidInput)
	}
	return nil
}

// ValidateMailchimp checks the settings required for upserting contacts.
func (c *Config) ValidateMailchimp() error {
	if c.Mailchimp.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "MAILCHIMP_API_KEY is required", ErrInvalidInput)
	}
	if c.Mailchimp.ServerPrefix == "" {
		return NewAppError("CONFIG_ERROR", "MAILCHIMP_SERVER_PREFIX is required", ErrInvalidInput)
	}
	if c.Mailchimp.ListID == "" {
		return NewAppError("CONFIG_ERROR", "MAILCHIMP_LIST_ID is required", ErrInvalidInput)
	}
	return nil
}
