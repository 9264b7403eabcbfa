package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gravitas-games/hexboard/board"
	"github.com/gravitas-games/hexboard/layout"
)

// Config holds all boardgen service configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Auth     AuthConfig     `yaml:"auth"`
	Redis    RedisConfig    `yaml:"redis"`
	Generate GenerateConfig `yaml:"generate"`
	Tables   *TablesConfig  `yaml:"tables,omitempty"`
}

// ServerConfig holds server-specific settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// AuthConfig holds JWT authentication settings. An empty secret disables
// authentication.
type AuthConfig struct {
	Secret string `yaml:"secret"`
	Issuer string `yaml:"issuer"`
}

// RedisConfig holds Redis cache settings. An empty address disables the
// board cache.
type RedisConfig struct {
	Address   string `yaml:"address"`
	Password  string `yaml:"password"`
	DB        int    `yaml:"db"`
	KeyPrefix string `yaml:"key_prefix"`
	TTLMins   int    `yaml:"ttl_minutes"`
}

// TTL returns the cache entry lifetime.
func (r RedisConfig) TTL() time.Duration {
	return time.Duration(r.TTLMins) * time.Minute
}

// GenerateConfig holds generation defaults
type GenerateConfig struct {
	MaxAttempts int    `yaml:"max_attempts"`
	MaxSample   int    `yaml:"max_sample"` // per-request board count cap
	Board       string `yaml:"board"`      // "standard" or "56"
	UseFrame    bool   `yaml:"use_frame"`
}

// TablesConfig optionally overrides the built-in symbol tables.
type TablesConfig struct {
	Terrain         []string `yaml:"terrain"`
	BeginnerNumbers []int    `yaml:"beginner_numbers"`
	StandardNumbers []int    `yaml:"standard_numbers"`
	Ports           []string `yaml:"ports"`
}

// Tables converts the override into engine tables, falling back to the
// base tables for any section left empty.
func (tc *TablesConfig) Tables(base board.Tables) (board.Tables, error) {
	out := base
	if len(tc.Terrain) > 0 {
		out.Terrain = make([]board.Terrain, 0, len(tc.Terrain))
		for _, s := range tc.Terrain {
			t, err := board.ParseTerrain(s)
			if err != nil {
				return board.Tables{}, fmt.Errorf("tables.terrain: %w", err)
			}
			out.Terrain = append(out.Terrain, t)
		}
	}
	if len(tc.BeginnerNumbers) > 0 {
		out.BeginnerNumbers = tc.BeginnerNumbers
	}
	if len(tc.StandardNumbers) > 0 {
		out.StandardNumbers = tc.StandardNumbers
	}
	if len(tc.Ports) > 0 {
		out.Ports = make([]board.Resource, 0, len(tc.Ports))
		for _, s := range tc.Ports {
			r, err := board.ParseResource(s)
			if err != nil {
				return board.Tables{}, fmt.Errorf("tables.ports: %w", err)
			}
			out.Ports = append(out.Ports, r)
		}
	}
	return out, nil
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// Default returns a configuration with every default applied, used when no
// config file is supplied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults sets defaults if not provided
func applyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Redis.KeyPrefix == "" {
		cfg.Redis.KeyPrefix = "boardgen:"
	}
	if cfg.Redis.TTLMins == 0 {
		cfg.Redis.TTLMins = 60
	}
	if cfg.Generate.MaxAttempts == 0 {
		cfg.Generate.MaxAttempts = layout.DefaultMaxAttempts
	}
	if cfg.Generate.MaxSample == 0 {
		cfg.Generate.MaxSample = 1000
	}
	if cfg.Generate.Board == "" {
		cfg.Generate.Board = "standard"
	}
}
