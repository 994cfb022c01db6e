// Package config handles configuration loading and validation for probar.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Spell-correction providers.
const (
	ProviderGroq   = "groq"
	ProviderGemini = "gemini"
	ProviderNone   = "none"
)

// Credential environment variables, one per provider.
const (
	EnvGroqAPIKey   = "GROQ_API_KEY"
	EnvGeminiAPIKey = "GEMINI_API_KEY"
)

// Namespace directory names inside the workspace.
const (
	DefinitionsDirName = "definitions"
	ExecutionsDirName  = "executions"
)

// DefaultConfigName is the config file looked up inside the workspace.
const DefaultConfigName = "probar.yaml"

// Config holds the application configuration.
type Config struct {
	Theme     string         `yaml:"theme"`
	LegacyDir string         `yaml:"legacy_dir"` // extra directory scanned for executions
	Defaults  DefaultsConfig `yaml:"defaults"`
	Status    StatusConfig   `yaml:"status"`
	Spelling  SpellingConfig `yaml:"spelling"`
	Report    ReportConfig   `yaml:"report"`
	Workspace string         `yaml:"-"` // set by caller, not from config file
}

// DefaultsConfig holds pre-filled prompt values.
type DefaultsConfig struct {
	Version string `yaml:"version"`
}

// StatusConfig controls parsing of status labels picked during prompts.
type StatusConfig struct {
	// Strict makes an unrecognized status label a validation error instead
	// of resolving it to Pending.
	Strict bool `yaml:"strict"`
}

// SpellingConfig configures the spell-correction gateway.
type SpellingConfig struct {
	Provider string        `yaml:"provider"` // groq, gemini or none
	Model    string        `yaml:"model"`
	BaseURL  string        `yaml:"base_url"` // groq only
	Timeout  time.Duration `yaml:"timeout"`
	APIKey   string        `yaml:"-"` // resolved from the environment
}

// ReportConfig configures Markdown report handling.
type ReportConfig struct {
	Preview bool   `yaml:"preview"` // render new reports in the terminal
	Style   string `yaml:"style"`   // glamour style: auto, dark, light, notty
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Theme:     "tokyo-night",
		LegacyDir: "tests",
		Defaults: DefaultsConfig{
			Version: "1.0.0",
		},
		Spelling: SpellingConfig{
			Provider: ProviderGroq,
			Timeout:  30 * time.Second,
		},
		Report: ReportConfig{
			Style: "auto",
		},
	}
}

// Load reads configuration from the given path and sets the workspace.
// If configPath is empty or doesn't exist, returns defaults with the provided workspace.
func Load(configPath, workspace string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// defaults only
		case err != nil:
			return nil, fmt.Errorf("read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.Workspace = workspace
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
	if c.Spelling.Provider == "" {
		c.Spelling.Provider = defaults.Spelling.Provider
	}
	c.Spelling.Provider = strings.ToLower(c.Spelling.Provider)
	if c.Spelling.Timeout == 0 {
		c.Spelling.Timeout = defaults.Spelling.Timeout
	}
	if c.Report.Style == "" {
		c.Report.Style = defaults.Report.Style
	}

	switch c.Spelling.Provider {
	case ProviderGroq:
		if c.Spelling.Model == "" {
			c.Spelling.Model = "llama3-8b-8192"
		}
		if c.Spelling.BaseURL == "" {
			c.Spelling.BaseURL = "https://api.groq.com/openai/v1"
		}
	case ProviderGemini:
		if c.Spelling.Model == "" {
			c.Spelling.Model = "gemini-2.0-flash"
		}
	}
	c.Spelling.BaseURL = strings.TrimRight(c.Spelling.BaseURL, "/")
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Workspace == "" {
		return fmt.Errorf("workspace cannot be empty")
	}

	switch c.Spelling.Provider {
	case ProviderGroq, ProviderGemini, ProviderNone:
	default:
		return fmt.Errorf("spelling.provider %q is invalid (use groq, gemini or none)", c.Spelling.Provider)
	}

	if c.Spelling.Timeout < 0 {
		return fmt.Errorf("spelling.timeout cannot be negative")
	}

	return nil
}

// APIKeyEnv returns the environment variable holding the credential for the
// configured provider, or "" when the provider needs none.
func (c *Config) APIKeyEnv() string {
	switch c.Spelling.Provider {
	case ProviderGroq:
		return EnvGroqAPIKey
	case ProviderGemini:
		return EnvGeminiAPIKey
	default:
		return ""
	}
}

// ApplyEnv resolves credentials from env. It is the only place where
// environment values enter the configuration.
func (c *Config) ApplyEnv(env map[string]string) {
	if name := c.APIKeyEnv(); name != "" {
		c.Spelling.APIKey = strings.TrimSpace(env[name])
	}
}

// LoadEnv returns the process environment merged over the variables found in
// <workspace>/.env. Process values win, matching godotenv.Load semantics. A
// malformed .env file is reported but the process environment is still
// returned.
func LoadEnv(workspace string, environ []string) (map[string]string, error) {
	env := map[string]string{}

	var readErr error
	dotenv := filepath.Join(workspace, ".env")
	if _, err := os.Stat(dotenv); err == nil {
		vals, err := godotenv.Read(dotenv)
		if err != nil {
			readErr = fmt.Errorf("read %s: %w", dotenv, err)
		}
		for k, v := range vals {
			env[k] = v
		}
	}

	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}

	return env, readErr
}

// DefinitionsDir returns the definitions namespace directory.
func (c *Config) DefinitionsDir() string {
	return filepath.Join(c.Workspace, DefinitionsDirName)
}

// ExecutionsDir returns the executions namespace directory.
func (c *Config) ExecutionsDir() string {
	return filepath.Join(c.Workspace, ExecutionsDirName)
}

// LegacyExecutionsDir returns the legacy directory scanned for executions,
// or "" when disabled.
func (c *Config) LegacyExecutionsDir() string {
	if c.LegacyDir == "" {
		return ""
	}
	if filepath.IsAbs(c.LegacyDir) {
		return c.LegacyDir
	}
	return filepath.Join(c.Workspace, c.LegacyDir)
}
