// Package config provides loading and parsing of NeuroScan configuration
// files. Configuration covers the graph store connection, the narrative
// model, the classifier weights, and local storage for uploads and reports.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration for an analysis deployment.
type Config struct {
	// Graph configures the knowledge store connection.
	Graph GraphConfig `yaml:"graph"`

	// LLM configures the narrative generator.
	LLM LLMConfig `yaml:"llm"`

	// Model configures the image classifier.
	Model ModelConfig `yaml:"model"`

	// Storage configures local upload and report directories.
	Storage StorageConfig `yaml:"storage"`

	// Queue configures the optional analysis job queue.
	Queue QueueConfig `yaml:"queue,omitempty"`
}

// GraphConfig carries the knowledge store connection settings.
type GraphConfig struct {
	URI      string `yaml:"uri"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Database string `yaml:"database,omitempty"`
}

// LLMConfig carries the narrative generator settings.
type LLMConfig struct {
	// Model is the provider model identifier.
	Model string `yaml:"model"`

	// Temperature is the sampling temperature for both narrative calls.
	Temperature float64 `yaml:"temperature"`

	// APIKey authenticates against the provider. Usually supplied via
	// environment rather than the file.
	APIKey string `yaml:"api_key,omitempty"`
}

// ModelConfig carries the classifier settings.
type ModelConfig struct {
	// Path is the location of the classifier weights.
	Path string `yaml:"path"`
}

// StorageConfig carries local file storage settings.
type StorageConfig struct {
	// UploadDir is where incoming MRI images are stored.
	UploadDir string `yaml:"upload_dir"`

	// ReportsDir is where finished reports are written.
	ReportsDir string `yaml:"reports_dir"`

	// AllowedExtensions lists acceptable image file extensions
	// (lower-case, without the dot).
	AllowedExtensions []string `yaml:"allowed_extensions"`

	// MaxUploadBytes caps the size of an uploaded image.
	MaxUploadBytes int64 `yaml:"max_upload_bytes"`
}

// QueueConfig carries the analysis job queue settings.
type QueueConfig struct {
	// RedisURL is the redis connection string. Empty disables the queue.
	RedisURL string `yaml:"redis_url,omitempty"`
}

// Default returns the configuration used when no file is provided, matching
// a local single-node deployment.
func Default() Config {
	return Config{
		Graph: GraphConfig{
			URI:      "bolt://localhost:7687",
			Username: "neo4j",
		},
		LLM: LLMConfig{
			Model:       "llama-3.3-70b-versatile",
			Temperature: 0.7,
		},
		Model: ModelConfig{
			Path: "models/best_modelVGG19_brain_tumor.keras",
		},
		Storage: StorageConfig{
			UploadDir:         "uploads",
			ReportsDir:        "reports",
			AllowedExtensions: []string{"png", "jpg", "jpeg"},
			MaxUploadBytes:    16 << 20,
		},
	}
}

// Load reads a YAML configuration file, fills in defaults for absent fields,
// applies environment overrides, and validates the result. An empty path
// skips the file and uses defaults plus environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyEnv applies the environment overrides honored by deployments:
// NEO4J_URI, NEO4J_USERNAME, NEO4J_PASSWORD, GROQ_API_KEY, REDIS_URL.
func (c *Config) applyEnv() {
	if v := os.Getenv("NEO4J_URI"); v != "" {
		c.Graph.URI = v
	}
	if v := os.Getenv("NEO4J_USERNAME"); v != "" {
		c.Graph.Username = v
	}
	if v := os.Getenv("NEO4J_PASSWORD"); v != "" {
		c.Graph.Password = v
	}
	if v := os.Getenv("GROQ_API_KEY"); v != "" {
		c.LLM.APIKey = v
	}
	if v := os.Getenv("REDIS_URL"); v != "" {
		c.Queue.RedisURL = v
	}
}

// Validate checks that the configuration is complete enough to start.
func (c *Config) Validate() error {
	if c.Graph.URI == "" {
		return fmt.Errorf("graph.uri is required")
	}
	if c.Graph.Username == "" {
		return fmt.Errorf("graph.username is required")
	}
	if c.LLM.Model == "" {
		return fmt.Errorf("llm.model is required")
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature %v outside [0, 2]", c.LLM.Temperature)
	}
	if c.Model.Path == "" {
		return fmt.Errorf("model.path is required")
	}
	if c.Storage.MaxUploadBytes <= 0 {
		return fmt.Errorf("storage.max_upload_bytes must be positive")
	}
	if len(c.Storage.AllowedExtensions) == 0 {
		return fmt.Errorf("storage.allowed_extensions must not be empty")
	}
	return nil
}

// AllowedFile reports whether the file name carries one of the allowed image
// extensions. Comparison is case-insensitive.
func (s StorageConfig) AllowedFile(name string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	if ext == "" {
		return false
	}
	for _, allowed := range s.AllowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
