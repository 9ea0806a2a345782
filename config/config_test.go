package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Resolver.BasePackage != "std_msgs" {
		t.Errorf("BasePackage = %q, want std_msgs", cfg.Resolver.BasePackage)
	}
	if cfg.Server.Addr() != "127.0.0.1:8080" {
		t.Errorf("Addr() = %q, want 127.0.0.1:8080", cfg.Server.Addr())
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "varmsg.yaml")
	content := `
resolver:
  search_paths:
    - /opt/ros/share
  base_package: my_msgs
server:
  host: 0.0.0.0
  port: 9090
  read_timeout: 5s
database:
  driver: memory
logging:
  level: debug
  format: json
metrics:
  enabled: false
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(cfg.Resolver.SearchPaths) != 1 || cfg.Resolver.SearchPaths[0] != "/opt/ros/share" {
		t.Errorf("SearchPaths = %v", cfg.Resolver.SearchPaths)
	}
	if cfg.Resolver.BasePackage != "my_msgs" {
		t.Errorf("BasePackage = %q, want my_msgs", cfg.Resolver.BasePackage)
	}
	if cfg.Server.Addr() != "0.0.0.0:9090" {
		t.Errorf("Addr() = %q, want 0.0.0.0:9090", cfg.Server.Addr())
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("ReadTimeout = %v, want 5s", cfg.Server.ReadTimeout)
	}
	// Unset file fields keep their defaults.
	if cfg.Server.WriteTimeout != 30*time.Second {
		t.Errorf("WriteTimeout = %v, want the default 30s", cfg.Server.WriteTimeout)
	}
	if cfg.Database.Driver != "memory" {
		t.Errorf("Driver = %q, want memory", cfg.Database.Driver)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Format = %q, want json", cfg.Logging.Format)
	}
	if cfg.Metrics.Enabled {
		t.Error("Metrics.Enabled = true, want false")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() of a missing file should fail")
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "varmsg.yaml")
	if err := os.WriteFile(path, []byte("resolver: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load() of invalid YAML should fail")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvSearchPaths, "/a"+string(os.PathListSeparator)+"/b")
	t.Setenv(EnvBasePackage, "env_msgs")
	t.Setenv(EnvServerPort, "7070")
	t.Setenv(EnvLogLevel, "warn")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv() error = %v", err)
	}

	if len(cfg.Resolver.SearchPaths) != 2 {
		t.Errorf("SearchPaths = %v, want two entries", cfg.Resolver.SearchPaths)
	}
	if cfg.Resolver.BasePackage != "env_msgs" {
		t.Errorf("BasePackage = %q, want env_msgs", cfg.Resolver.BasePackage)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("Port = %d, want 7070", cfg.Server.Port)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Level = %q, want warn", cfg.Logging.Level)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "varmsg.yaml")
	if err := os.WriteFile(path, []byte("resolver:\n  base_package: file_msgs\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvBasePackage, "env_msgs")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Resolver.BasePackage != "env_msgs" {
		t.Errorf("BasePackage = %q, want the env override", cfg.Resolver.BasePackage)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"port out of range", func(c *Config) { c.Server.Port = 70000 }, "out of range"},
		{"unknown driver", func(c *Config) { c.Database.Driver = "postgres" }, "unknown database driver"},
		{"sqlite without dsn", func(c *Config) { c.Database.DSN = "" }, "requires a dsn"},
		{"unknown log format", func(c *Config) { c.Logging.Format = "xml" }, "unknown log format"},
		{"empty base package", func(c *Config) { c.Resolver.BasePackage = "" }, "base package"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}
