// Package config loads service configuration from a YAML file with
// environment-variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/poiesic/yojana/ai"
	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Storage  StorageConfig  `yaml:"storage"`
	AI       AIConfig       `yaml:"ai"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	Seed     SeedConfig     `yaml:"seed"`
	Logging  LoggingConfig  `yaml:"logging"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"readTimeout"`
	WriteTimeout    time.Duration `yaml:"writeTimeout"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
}

// StorageConfig locates the scheme corpus.
type StorageConfig struct {
	Path     string `yaml:"path"`
	InMemory bool   `yaml:"inMemory"`
}

// AIConfig holds the model endpoints. See ai.Config.
type AIConfig struct {
	Host            string        `yaml:"host"`
	EmbeddingHost   string        `yaml:"embeddingHost"`
	GenerationHost  string        `yaml:"generationHost"`
	EmbeddingModel  string        `yaml:"embeddingModel"`
	GenerationModel string        `yaml:"generationModel"`
	APIKey          string        `yaml:"apiKey"`
	Temperature     float64       `yaml:"temperature"`
	CallTimeout     time.Duration `yaml:"callTimeout"`
}

// PipelineConfig controls per-query behaviour.
type PipelineConfig struct {
	Timeout        time.Duration `yaml:"timeout"`
	CandidateLimit int           `yaml:"candidateLimit"`
}

// SeedConfig controls corpus seeding and re-embedding.
type SeedConfig struct {
	BatchSize int `yaml:"batchSize"`
	Workers   int `yaml:"workers"`
}

// LoggingConfig controls structured logging level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig toggles the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Load reads a YAML config file (if provided) and applies environment-variable
// overrides. Missing values keep their defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	aiDefaults := ai.DefaultConfig()
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    45 * time.Second,
			ShutdownTimeout: 15 * time.Second,
		},
		Storage: StorageConfig{
			Path: "yojana.db",
		},
		AI: AIConfig{
			Host:            aiDefaults.EmbeddingHost,
			EmbeddingModel:  aiDefaults.EmbeddingModel,
			GenerationModel: aiDefaults.GenerationModel,
			APIKey:          aiDefaults.APIKey,
			Temperature:     aiDefaults.Temperature,
			CallTimeout:     20 * time.Second,
		},
		Pipeline: PipelineConfig{
			Timeout:        30 * time.Second,
			CandidateLimit: 20,
		},
		Seed: SeedConfig{
			BatchSize: 32,
			Workers:   4,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
	}
}

// Validate rejects values no component can run with.
func (c *Config) Validate() error {
	if c.Storage.Path == "" && !c.Storage.InMemory {
		return errors.New("config: storage.path is required unless storage.inMemory is set")
	}
	if c.Pipeline.Timeout < 0 {
		return errors.New("config: pipeline.timeout cannot be negative")
	}
	if c.Seed.BatchSize <= 0 {
		return errors.New("config: seed.batchSize must be positive")
	}
	if c.Seed.Workers <= 0 {
		return errors.New("config: seed.workers must be positive")
	}
	return nil
}

// AIConfig converts the file settings into an ai.Config. Specific hosts win
// over the shared host.
func (c *Config) AIConfig() *ai.Config {
	opts := []ai.ConfigOption{
		ai.WithHost(c.AI.Host),
		ai.WithEmbeddingModel(c.AI.EmbeddingModel),
		ai.WithGenerationModel(c.AI.GenerationModel),
		ai.WithAPIKey(c.AI.APIKey),
		ai.WithTemperature(c.AI.Temperature),
		ai.WithCallTimeout(c.AI.CallTimeout),
	}
	if c.AI.EmbeddingHost != "" {
		opts = append(opts, ai.WithEmbeddingHost(c.AI.EmbeddingHost))
	}
	if c.AI.GenerationHost != "" {
		opts = append(opts, ai.WithGenerationHost(c.AI.GenerationHost))
	}
	return ai.NewConfig(opts...)
}

// applyEnvOverrides reads YOJANA_* environment variables and overrides the
// corresponding config fields. Unparseable values are ignored.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("YOJANA_SERVER_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("YOJANA_STORAGE_PATH"); v != "" {
		cfg.Storage.Path = v
	}
	if v := os.Getenv("YOJANA_AI_HOST"); v != "" {
		cfg.AI.Host = v
	}
	if v := os.Getenv("YOJANA_AI_EMBEDDING_HOST"); v != "" {
		cfg.AI.EmbeddingHost = v
	}
	if v := os.Getenv("YOJANA_AI_GENERATION_HOST"); v != "" {
		cfg.AI.GenerationHost = v
	}
	if v := os.Getenv("YOJANA_AI_EMBEDDING_MODEL"); v != "" {
		cfg.AI.EmbeddingModel = v
	}
	if v := os.Getenv("YOJANA_AI_GENERATION_MODEL"); v != "" {
		cfg.AI.GenerationModel = v
	}
	if v := os.Getenv("YOJANA_AI_API_KEY"); v != "" {
		cfg.AI.APIKey = v
	}
	if v := os.Getenv("YOJANA_AI_TEMPERATURE"); v != "" {
		if t, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.AI.Temperature = t
		}
	}
	if v := os.Getenv("YOJANA_PIPELINE_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Pipeline.Timeout = d
		}
	}
	if v := os.Getenv("YOJANA_PIPELINE_CANDIDATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Pipeline.CandidateLimit = n
		}
	}
	if v := os.Getenv("YOJANA_LOGGING_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("YOJANA_LOGGING_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("YOJANA_METRICS_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Metrics.Enabled = b
		}
	}
}
