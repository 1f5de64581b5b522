package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the travelcore configuration.
type Config struct {
	Logging    LoggingConfig    `yaml:"logging"`
	Retrieval  RetrievalConfig  `yaml:"retrieval"`
	Classifier ClassifierConfig `yaml:"classifier"`
	Policy     PolicyConfig     `yaml:"policy"`
	Catalog    CatalogConfig    `yaml:"catalog"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// RetrievalConfig holds retrieval scoring settings.
type RetrievalConfig struct {
	TopK      int     `yaml:"top_k"`
	Threshold float64 `yaml:"threshold"`
}

// ClassifierConfig holds intent classifier settings.
type ClassifierConfig struct {
	MinConfidence float64 `yaml:"min_confidence"`
}

// PolicyConfig holds booking-rule settings.
type PolicyConfig struct {
	AdvanceDays    int      `yaml:"advance_days"`
	LastMinuteDays int      `yaml:"last_minute_days"`
	EligibleRoutes []string `yaml:"eligible_routes"` // "Origin-Destination" pairs
}

// CatalogConfig holds catalog file settings.
type CatalogConfig struct {
	Path string `yaml:"path"`
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics.
func MustLoad(env string) Config {
	cfg, err := Load(env)
	if err != nil {
		panic(err)
	}
	return cfg
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.Retrieval.TopK <= 0 {
		c.Retrieval.TopK = 3
	}
	if c.Retrieval.Threshold <= 0 {
		c.Retrieval.Threshold = 0.2
	}
	if c.Classifier.MinConfidence <= 0 {
		c.Classifier.MinConfidence = 0.15
	}
	if c.Policy.AdvanceDays <= 0 {
		c.Policy.AdvanceDays = 7
	}
	if c.Policy.LastMinuteDays <= 0 {
		c.Policy.LastMinuteDays = 2
	}
	if c.Catalog.Path == "" {
		c.Catalog.Path = "data/catalog.yaml"
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.Retrieval.Threshold < 0 || c.Retrieval.Threshold > 1 {
		return fmt.Errorf("retrieval.threshold must be between 0 and 1, got %g", c.Retrieval.Threshold)
	}
	if c.Classifier.MinConfidence < 0 || c.Classifier.MinConfidence > 1 {
		return fmt.Errorf("classifier.min_confidence must be between 0 and 1, got %g", c.Classifier.MinConfidence)
	}
	if c.Policy.LastMinuteDays > c.Policy.AdvanceDays {
		return fmt.Errorf(
			"policy.last_minute_days (%d) must not exceed policy.advance_days (%d)",
			c.Policy.LastMinuteDays, c.Policy.AdvanceDays,
		)
	}
	for _, route := range c.Policy.EligibleRoutes {
		if !strings.Contains(route, "-") {
			return fmt.Errorf("policy.eligible_routes entry %q must be \"Origin-Destination\"", route)
		}
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
