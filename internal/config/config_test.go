package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIPort != 7070 || cfg.ConnectionPolicy != PolicyQueued || cfg.MessageEncoding != "GBK" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("default config not written: %v", err)
	}
}

func TestLoadParsesJSON5(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		// comments are allowed
		api_port: 9090,
		connection_policy: 1,
		message_encoding: "UTF-8",
	}`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIPort != 9090 || cfg.ConnectionPolicy != PolicyAggressive || cfg.MessageEncoding != "UTF-8" {
		t.Errorf("parsed config = %+v", cfg)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("BOTMASTER_API_PORT", "8081")
	t.Setenv("BOTMASTER_MESSAGE_ENCODING", "UTF-8")

	cfg, err := Load(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIPort != 8081 || cfg.MessageEncoding != "UTF-8" {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
}
