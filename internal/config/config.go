// Package config loads the orchestrator configuration and the base LLM
// prompt. The config file is JSON5 and is created with defaults when
// absent; environment variables overlay file values.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/titanous/json5"
)

// Connection policies (see the fleet admission queue).
const (
	PolicyQueued     = 0
	PolicyAggressive = 1
)

// TelemetryConfig enables OTLP trace export.
type TelemetryConfig struct {
	Enabled     bool   `json:"enabled"`
	Endpoint    string `json:"endpoint"`
	ServiceName string `json:"service_name"`
	Insecure    bool   `json:"insecure"`
}

// Config is the orchestrator configuration.
type Config struct {
	APIPort          int    `json:"api_port"`
	ConnectionPolicy int    `json:"connection_policy"`
	MessageEncoding  string `json:"message_encoding"`

	DBPath           string `json:"db_path"`
	WebArchive       string `json:"web_archive"`
	PromptPath       string `json:"prompt_path"`
	ObjectNamesPath  string `json:"object_names_path"`
	QueryIntervalSec int    `json:"query_interval_sec"`
	QuerySchedule    string `json:"query_schedule,omitempty"`
	QueryTimeoutMs   int    `json:"query_timeout_ms"`
	RateLimitRPM     int    `json:"rate_limit_rpm"`

	Telemetry TelemetryConfig `json:"telemetry"`
}

// Default returns a Config with the stock values.
func Default() *Config {
	return &Config{
		APIPort:          7070,
		ConnectionPolicy: PolicyQueued,
		MessageEncoding:  "GBK",
		DBPath:           "data/botmaster.db",
		WebArchive:       "data/dist.zip",
		PromptPath:       "data/prompt.md",
		ObjectNamesPath:  "data/objects.txt",
		QueryIntervalSec: 30,
		QueryTimeoutMs:   5000,
		RateLimitRPM:     120,
		Telemetry: TelemetryConfig{
			ServiceName: "botmaster",
		},
	}
}

// Load reads the config file, creating it with defaults when missing, then
// applies env overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if err := Save(path, cfg); err != nil {
				return nil, fmt.Errorf("create default config: %w", err)
			}
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := json5.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the config as formatted JSON.
func Save(path string, cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o600)
}

func (c *Config) applyEnvOverrides() {
	envStr := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	envInt := func(key string, dst *int) {
		if v := os.Getenv(key); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				*dst = n
			}
		}
	}

	envInt("BOTMASTER_API_PORT", &c.APIPort)
	envInt("BOTMASTER_CONNECTION_POLICY", &c.ConnectionPolicy)
	envStr("BOTMASTER_MESSAGE_ENCODING", &c.MessageEncoding)
	envStr("BOTMASTER_DB_PATH", &c.DBPath)
	envStr("BOTMASTER_PROMPT_PATH", &c.PromptPath)
	envStr("BOTMASTER_WEB_ARCHIVE", &c.WebArchive)
	envStr("BOTMASTER_TELEMETRY_ENDPOINT", &c.Telemetry.Endpoint)
	envStr("BOTMASTER_TELEMETRY_SERVICE_NAME", &c.Telemetry.ServiceName)
	if v := os.Getenv("BOTMASTER_TELEMETRY_ENABLED"); v != "" {
		c.Telemetry.Enabled = v == "true" || v == "1"
	}
}
