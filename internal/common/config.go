package common

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	OCR    OCRConfig
	Batch  BatchConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Addr          string
	ScanTimeout   time.Duration
	MaxUploadSize int64
}

// OCRConfig holds text-acquisition configuration.
type OCRConfig struct {
	Pdftotext string
	Tesseract string
	Language  string
	MaxPages  int
	TempDir   string
}

// BatchConfig holds batch-scan configuration.
type BatchConfig struct {
	Workers    int
	QueueSize  int
	JobTimeout time.Duration
	ExportPath string
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:          getEnv("HTTP_ADDR", ":8080"),
			ScanTimeout:   getEnvAsDuration("SCAN_TIMEOUT", 2*time.Minute),
			MaxUploadSize: int64(getEnvAsInt("MAX_UPLOAD_BYTES", 32<<20)),
		},
		OCR: OCRConfig{
			Pdftotext: getEnv("PDFTOTEXT_BIN", "pdftotext"),
			Tesseract: getEnv("TESSERACT_BIN", "tesseract"),
			Language:  getEnv("OCR_LANG", "eng"),
			MaxPages:  getEnvAsInt("PDF_MAX_PAGES", 3),
			TempDir:   getEnv("SCAN_TMP_DIR", ""),
		},
		Batch: BatchConfig{
			Workers:    getEnvAsInt("BATCH_WORKERS", 4),
			QueueSize:  getEnvAsInt("BATCH_QUEUE_SIZE", 256),
			JobTimeout: getEnvAsDuration("BATCH_JOB_TIMEOUT", 3*time.Minute),
			ExportPath: getEnv("BATCH_EXPORT_PATH", "scan-results.xlsx"),
		},
	}
}

// Validate checks the loaded configuration.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("HTTP_ADDR is required")
	}
	if c.OCR.MaxPages <= 0 {
		return fmt.Errorf("PDF_MAX_PAGES must be positive")
	}
	if c.Batch.Workers <= 0 {
		return fmt.Errorf("BATCH_WORKERS must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing.
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
