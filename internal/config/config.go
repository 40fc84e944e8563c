// Package config loads server configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/jonathan/resume-portfolio/internal/analysis"
	"github.com/jonathan/resume-portfolio/internal/llm"
)

// Config holds everything the serve command needs. DATABASE_URL and
// GEMINI_API_KEY are required; the rest has defaults.
type Config struct {
	Port            int
	DatabaseURL     string
	GeminiAPIKey    string
	GeminiModel     string
	AnalysisTimeout time.Duration
}

// Load reads configuration from environment variables and validates it.
// It reads PORT (default 8080), DATABASE_URL, GEMINI_API_KEY, GEMINI_MODEL
// and ANALYSIS_TIMEOUT_SECONDS.
func Load() (*Config, error) {
	cfg := &Config{
		Port:            8080,
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		GeminiModel:     os.Getenv("GEMINI_MODEL"),
		AnalysisTimeout: analysis.DefaultTimeout,
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %v", err)
		}
		cfg.Port = port
	}
	if timeoutStr := os.Getenv("ANALYSIS_TIMEOUT_SECONDS"); timeoutStr != "" {
		seconds, err := strconv.Atoi(timeoutStr)
		if err != nil {
			return nil, fmt.Errorf("invalid ANALYSIS_TIMEOUT_SECONDS: %v", err)
		}
		cfg.AnalysisTimeout = time.Duration(seconds) * time.Second
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalize validates the configuration and fills derived defaults.
func (c *Config) normalize() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required but not set")
	}
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required but not set")
	}
	if c.GeminiModel == "" {
		c.GeminiModel = llm.DefaultModel
	}
	if c.AnalysisTimeout <= 0 {
		return fmt.Errorf("ANALYSIS_TIMEOUT_SECONDS must be positive")
	}
	return nil
}
