package config

import (
	"fmt"
	"net/url"
	"os"
	"slices"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/probar/internal/core/styles"
)

var reportStyles = []string{"auto", "dark", "light", "notty", "dracula", "tokyo-night", "pink", "ascii"}

// ValidateDeep performs comprehensive validation of the configuration
// including file accessibility and provider settings. The configPath
// argument specifies the config file location to validate (empty string
// skips config file check). This calls Validate() first for basic
// structural validation.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		c.validateFileAccess(configPath),
		criterio.Run("theme", c.Theme, validTheme),
		criterio.Run("report.style", c.Report.Style, validReportStyle),
		c.validateSpelling(),
	)
}

// Warnings returns non-fatal configuration issues, such as a missing
// credential for the configured provider.
func (c *Config) Warnings() []string {
	var warnings []string
	if name := c.APIKeyEnv(); name != "" && c.Spelling.APIKey == "" {
		warnings = append(warnings, fmt.Sprintf("%s is not set: spelling correction will keep the original text", name))
	}
	return warnings
}

// validateFileAccess checks the config file and workspace directories.
func (c *Config) validateFileAccess(configPath string) error {
	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("workspace", c.Workspace, isDirectoryOrNotExist),
		criterio.Run("definitions", c.DefinitionsDir(), isDirectoryOrNotExist),
		criterio.Run("executions", c.ExecutionsDir(), isDirectoryOrNotExist),
	)
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

func (c *Config) validateSpelling() error {
	var errs criterio.FieldErrorsBuilder

	if c.Spelling.Provider == ProviderGroq {
		u, err := url.Parse(c.Spelling.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			errs = errs.Append("spelling.base_url", fmt.Errorf("invalid URL %q", c.Spelling.BaseURL))
		}
	}

	if c.Spelling.Provider != ProviderNone && c.Spelling.Model == "" {
		errs = errs.Append("spelling.model", fmt.Errorf("model is required for provider %q", c.Spelling.Provider))
	}

	return errs.ToError()
}

func validTheme(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %v)", name, styles.ThemeNames())
	}
	return nil
}

func validReportStyle(name string) error {
	if !slices.Contains(reportStyles, name) {
		return fmt.Errorf("unknown style %q (available: %v)", name, reportStyles)
	}
	return nil
}

// isDirectoryOrNotExist validates that path is a directory or doesn't exist.
func isDirectoryOrNotExist(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}
	return nil
}
