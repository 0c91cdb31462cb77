package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
)

// Config controls where and how the document snapshot is persisted.
// Resolution order: defaults, then an optional YAML file, then environment
// variables (a .env file is honored when present).
type Config struct {
	DataPath string `yaml:"data_path" env:"MOMENTUM_DATA_PATH"`
	Backend  string `yaml:"backend" env:"MOMENTUM_BACKEND"`
}

// Load builds the effective configuration. The YAML file is looked up at
// $MOMENTUM_CONFIG, then ./momentum.yaml, then ~/.momentum.yaml; all are
// optional.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{Backend: BackendSQLite}

	if path := configFilePath(); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	switch cfg.Backend {
	case BackendSQLite, BackendFile:
	default:
		return nil, fmt.Errorf("unknown backend %q (want %s or %s)", cfg.Backend, BackendSQLite, BackendFile)
	}

	if cfg.DataPath == "" {
		path, err := defaultDataPath(cfg.Backend)
		if err != nil {
			return nil, err
		}
		cfg.DataPath = path
	}
	return cfg, nil
}

func configFilePath() string {
	if path := os.Getenv("MOMENTUM_CONFIG"); path != "" {
		return path
	}
	if _, err := os.Stat("momentum.yaml"); err == nil {
		return "momentum.yaml"
	}
	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ".momentum.yaml")
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func defaultDataPath(backend string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	if backend == BackendFile {
		return filepath.Join(home, ".momentum.json"), nil
	}
	return filepath.Join(home, ".momentum.db"), nil
}
