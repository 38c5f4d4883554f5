package validator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigMergesDefaults(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "validator.yml")

	raw := strings.Join([]string{
		"network: hoodi",
		"ssh:",
		"  host: node.example.com",
		"  user: ops",
		"  password: secret",
	}, "\n")

	if err := os.WriteFile(configFile, []byte(raw), 0o600); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(configFile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if config.Network != "hoodi" {
		t.Errorf("expected network hoodi, got %q", config.Network)
	}
	if config.DataDir != "ethereum" {
		t.Errorf("expected default data dir, got %q", config.DataDir)
	}
	if config.Clients.Execution != "geth" || config.Clients.Consensus != "prysm" {
		t.Errorf("expected default clients, got %+v", config.Clients)
	}
	if config.SSH.Host != "node.example.com" {
		t.Errorf("expected host from file, got %q", config.SSH.Host)
	}

	if err := config.Verify(); err != nil {
		t.Errorf("expected valid config, got: %v", err)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestConfigVerify(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(config *Config)
		valid  bool
	}{
		{
			name:   "defaults with node",
			mutate: func(config *Config) {},
			valid:  true,
		},
		{
			name: "unsupported network",
			mutate: func(config *Config) {
				config.Network = "ropsten"
			},
		},
		{
			name: "no node",
			mutate: func(config *Config) {
				config.SSH.Host = ""
			},
		},
		{
			name: "unimplemented execution client",
			mutate: func(config *Config) {
				config.Clients.Execution = "nethermind"
			},
		},
		{
			name: "unimplemented consensus client",
			mutate: func(config *Config) {
				config.Clients.Consensus = "lighthouse"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			config.SSH.Host = "node.example.com"
			tt.mutate(config)

			err := config.Verify()
			if tt.valid && err != nil {
				t.Errorf("expected valid config, got: %v", err)
			}
			if !tt.valid && err == nil {
				t.Error("expected verification to fail")
			}
		})
	}
}
