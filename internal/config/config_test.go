package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gravitas-games/hexboard/board"
	"github.com/gravitas-games/hexboard/layout"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "boardgen.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  host: "127.0.0.1"
  port: 9090
auth:
  secret: "hunter2"
  issuer: "boardgen"
redis:
  address: "localhost:6379"
  ttl_minutes: 5
generate:
  max_attempts: 250
  board: "56"
  use_frame: true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Host != "127.0.0.1" || cfg.Server.Port != 9090 {
		t.Fatalf("server config = %+v", cfg.Server)
	}
	if cfg.Auth.Secret != "hunter2" || cfg.Auth.Issuer != "boardgen" {
		t.Fatalf("auth config = %+v", cfg.Auth)
	}
	if cfg.Redis.Address != "localhost:6379" {
		t.Fatalf("redis config = %+v", cfg.Redis)
	}
	if cfg.Redis.TTL() != 5*time.Minute {
		t.Fatalf("redis TTL = %v", cfg.Redis.TTL())
	}
	if cfg.Generate.MaxAttempts != 250 || cfg.Generate.Board != "56" || !cfg.Generate.UseFrame {
		t.Fatalf("generate config = %+v", cfg.Generate)
	}
	// Unset fields still get defaults.
	if cfg.Redis.KeyPrefix != "boardgen:" {
		t.Fatalf("key prefix = %q", cfg.Redis.KeyPrefix)
	}
	if cfg.Generate.MaxSample != 1000 {
		t.Fatalf("max sample = %d", cfg.Generate.MaxSample)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("Load of a missing file succeeded")
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := writeConfig(t, "server: [not a mapping")
	if _, err := Load(path); err == nil {
		t.Fatalf("Load of invalid YAML succeeded")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Server.Host != "0.0.0.0" || cfg.Server.Port != 8080 {
		t.Fatalf("server defaults = %+v", cfg.Server)
	}
	if cfg.Auth.Secret != "" {
		t.Fatalf("auth enabled by default")
	}
	if cfg.Redis.Address != "" {
		t.Fatalf("redis enabled by default")
	}
	if cfg.Generate.MaxAttempts != layout.DefaultMaxAttempts {
		t.Fatalf("max attempts default = %d", cfg.Generate.MaxAttempts)
	}
	if cfg.Generate.Board != "standard" {
		t.Fatalf("board default = %q", cfg.Generate.Board)
	}
	if cfg.Tables != nil {
		t.Fatalf("tables override set by default")
	}
}

func TestTablesOverride(t *testing.T) {
	path := writeConfig(t, `
tables:
  ports: [wool, wool, wool, wool, wool, wool, wool, wool, wool]
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Tables == nil {
		t.Fatalf("tables override not parsed")
	}

	tables, err := cfg.Tables.Tables(board.Standard())
	if err != nil {
		t.Fatalf("Tables: %v", err)
	}
	if len(tables.Ports) != 9 {
		t.Fatalf("port bag has %d entries", len(tables.Ports))
	}
	for _, r := range tables.Ports {
		if r != board.Wool {
			t.Fatalf("port override not applied: %v", tables.Ports)
		}
	}
	// Untouched sections keep the base tables.
	if len(tables.Terrain) != 19 {
		t.Fatalf("terrain bag has %d entries", len(tables.Terrain))
	}
}

func TestTablesOverrideErrors(t *testing.T) {
	tc := &TablesConfig{Terrain: []string{"swamp"}}
	if _, err := tc.Tables(board.Standard()); err == nil {
		t.Fatalf("unknown terrain accepted")
	}
	tc = &TablesConfig{Ports: []string{"plutonium"}}
	if _, err := tc.Tables(board.Standard()); err == nil {
		t.Fatalf("unknown resource accepted")
	}
}
