// Package config loads service configuration from the environment.
// Credentials for the external APIs are injected explicitly through these
// structs; no other package reads the environment directly.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// App holds everything the server and CLI jobs need to talk to their
// collaborators: the database, the Naver shopping search API, and the
// Gemini text-generation API.
type App struct {
	DatabaseURL       string
	NaverClientID     string
	NaverClientSecret string
	GeminiAPIKey      string
	GeminiModel       string
	ChatTimeout       time.Duration
}

// NewApp reads the application configuration from environment variables.
// DATABASE_URL, NAVER_CLIENT_ID, and NAVER_CLIENT_SECRET are required.
// GEMINI_API_KEY is optional; without it the chatbot endpoint is disabled.
func NewApp() (*App, error) {
	cfg := &App{
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		NaverClientID:     os.Getenv("NAVER_CLIENT_ID"),
		NaverClientSecret: os.Getenv("NAVER_CLIENT_SECRET"),
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		GeminiModel:       os.Getenv("GEMINI_MODEL"),
		ChatTimeout:       30 * time.Second,
	}

	if timeoutStr := os.Getenv("CHAT_TIMEOUT_SECONDS"); timeoutStr != "" {
		seconds, err := strconv.Atoi(timeoutStr)
		if err != nil {
			return nil, fmt.Errorf("invalid CHAT_TIMEOUT_SECONDS: %v", err)
		}
		cfg.ChatTimeout = time.Duration(seconds) * time.Second
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalize validates the configuration.
func (c *App) normalize() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required but not set")
	}
	if c.NaverClientID == "" || c.NaverClientSecret == "" {
		return fmt.Errorf("NAVER_CLIENT_ID and NAVER_CLIENT_SECRET are required but not set")
	}
	if c.ChatTimeout < time.Second {
		return fmt.Errorf("CHAT_TIMEOUT_SECONDS must be at least 1, got: %s", c.ChatTimeout)
	}
	return nil
}
