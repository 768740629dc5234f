// Package config loads the client configuration: defaults, then an
// optional yaml file, then environment variables (with .env support).
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// SubmitPolicy decides what happens when the user submits while a chat
// request is already in flight.
type SubmitPolicy string

const (
	// SubmitBlock drops submits until the pending reply arrives.
	SubmitBlock SubmitPolicy = "block"
	// SubmitRace allows overlapping requests; replies apply in arrival
	// order, last one wins.
	SubmitRace SubmitPolicy = "race"
)

// Config is the client configuration.
type Config struct {
	BackendURL     string        `yaml:"backend_url"`
	AgentID        string        `yaml:"agent_id"`
	Theme          string        `yaml:"theme"`
	SubmitPolicy   SubmitPolicy  `yaml:"submit_policy"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	MockPort       int           `yaml:"mock_port"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		BackendURL:     "http://localhost:8000",
		AgentID:        "tutor",
		Theme:          "manduvi",
		SubmitPolicy:   SubmitBlock,
		RequestTimeout: 60 * time.Second,
		MockPort:       8000,
	}
}

// Load builds the configuration. A missing file is not an error; a
// present but unreadable one is.
func Load(path string) (*Config, error) {
	// Populate the process env from .env first, if one exists.
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("read config file: %w", err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("MENTOR_BACKEND_URL"); v != "" {
		c.BackendURL = v
	}
	if v := os.Getenv("MENTOR_AGENT_ID"); v != "" {
		c.AgentID = v
	}
	if v := os.Getenv("MENTOR_THEME"); v != "" {
		c.Theme = v
	}
	if v := os.Getenv("MENTOR_SUBMIT_POLICY"); v != "" {
		c.SubmitPolicy = SubmitPolicy(v)
	}
	if v := os.Getenv("MENTOR_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.RequestTimeout = d
		}
	}
	if v := os.Getenv("MENTOR_MOCK_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.MockPort = port
		}
	}
}

func (c *Config) validate() error {
	if c.BackendURL == "" {
		return fmt.Errorf("backend_url must not be empty")
	}
	switch c.SubmitPolicy {
	case SubmitBlock, SubmitRace:
	default:
		return fmt.Errorf("submit_policy must be %q or %q, got %q", SubmitBlock, SubmitRace, c.SubmitPolicy)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be positive")
	}
	return nil
}
