package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v6"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"

	defaultPort      = 2333
	defaultEnv       = "development"
	defaultNamespace = "development"

	// defaultCommentMaxLength is the local guard threshold for the moderation
	// client; comments longer than this are rejected without an external call.
	defaultCommentMaxLength = 1000
)

// FeedbackMode selects which feedback request shape a deployment accepts.
type FeedbackMode string

const (
	// FeedbackModeStandalone accepts self-contained submissions carrying an
	// explicit expected classification.
	FeedbackModeStandalone FeedbackMode = "standalone"
	// FeedbackModeReference accepts votes referencing a prior moderation
	// result by its response id.
	FeedbackModeReference FeedbackMode = "reference"
)

// S3Options configures the blob store backing moderation and feedback records.
type S3Options struct {
	Bucket          string `env:"S3_BUCKET"            yaml:"bucket"`
	Region          string `env:"S3_REGION"            yaml:"region"`
	Endpoint        string `env:"S3_ENDPOINT"          yaml:"endpoint"`
	AccessKeyID     string `env:"S3_ACCESS_KEY_ID"     yaml:"access_key_id"`
	SecretAccessKey string `env:"S3_SECRET_ACCESS_KEY" yaml:"secret_access_key"`
}

// Config holds all runtime configuration. It is read once at process start
// and treated as immutable afterwards; components receive the values they
// need at construction time.
type Config struct {
	Port int    `env:"PORT"    yaml:"port"`
	Env  string `env:"APP_ENV" yaml:"env"` // "development" | "production"

	// APIKey is both the inbound bearer secret and the token used against
	// the upstream wall API.
	APIKey string `env:"API_KEY" yaml:"api_key"`
	APIURL string `env:"API_URL" yaml:"api_url"`

	OpenAIAPIKey       string `env:"OPENAI_API_KEY"       yaml:"openai_api_key"`
	ModerationPromptID string `env:"MODERATION_PROMPT_ID" yaml:"moderation_prompt_id"`
	CommentMaxLength   int    `env:"COMMENT_MAX_LENGTH"   yaml:"comment_max_length"`

	Namespace    string       `env:"BLOB_NAMESPACE" yaml:"namespace"`
	FeedbackMode FeedbackMode `env:"FEEDBACK_MODE"  yaml:"feedback_mode"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," yaml:"allowed_origins"`

	S3 S3Options `yaml:"s3"`
}

// Load builds the configuration: optional YAML file first, environment
// variables on top, fixed fallbacks last. A missing config file is not an
// error; an unreadable or malformed one is.
func Load(configPath string) (*Config, error) {
	cfg := &Config{}

	path := strings.TrimSpace(configPath)
	if path == "" {
		path = DefaultConfigPath
	}
	content, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %q: %w", path, err)
		}
	case os.IsNotExist(err):
		// env-only deployment
	default:
		return nil, fmt.Errorf("read config file %q: %w", path, err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	applyDefaults(cfg)

	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d, expected 1-65535", cfg.Port)
	}
	switch cfg.FeedbackMode {
	case FeedbackModeStandalone, FeedbackModeReference:
	default:
		return nil, fmt.Errorf("invalid feedback_mode %q, expected %q or %q",
			cfg.FeedbackMode, FeedbackModeStandalone, FeedbackModeReference)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Port == 0 {
		cfg.Port = defaultPort
	}
	if cfg.Env == "" {
		cfg.Env = defaultEnv
	}
	if cfg.Namespace == "" {
		cfg.Namespace = defaultNamespace
	}
	if cfg.CommentMaxLength == 0 {
		cfg.CommentMaxLength = defaultCommentMaxLength
	}
	if cfg.FeedbackMode == "" {
		cfg.FeedbackMode = FeedbackModeStandalone
	}
}

// IsDev reports whether the service runs in development mode, which disables
// request authorization.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}
