package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Rules struct {
		Tags    []string `yaml:"tags"`
		Include []string `yaml:"include"`
		Exclude []string `yaml:"exclude"`
	} `yaml:"rules"`
	Files struct {
		Exclude []string `yaml:"exclude"`
	} `yaml:"files"`
	Output         string `yaml:"output"`          // pretty or json
	MaxDiagnostics int    `yaml:"max_diagnostics"` // 0 means unlimited
}

// Default returns the configuration used when no file is present: the
// recommended rule set, pretty output.
func Default() *Config {
	cfg := &Config{Output: "pretty"}
	return cfg
}

// Load reads the configuration from path. A missing file is not an error and
// yields the defaults. Environment variables override file values.
func Load(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	cfg := Default()

	// 2. Load YAML config
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnv(cfg)
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.Output == "" {
		cfg.Output = "pretty"
	}

	// 3. Override with Environment Variables if present
	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if out := os.Getenv("TSLINT_OUTPUT"); out != "" {
		cfg.Output = out
	}
	if tags := os.Getenv("TSLINT_TAGS"); tags != "" {
		cfg.Rules.Tags = strings.Split(tags, ",")
	}
}
