package commands

import (
	"path/filepath"

	"github.com/colonyops/probar/internal/core/config"
	"github.com/colonyops/probar/internal/lifecycle"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	Workspace  string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// Service runs the test-case workflows
	Service *lifecycle.Service
}

// ResolveConfigPath returns the config file to load: the explicit path when
// set, otherwise probar.yaml inside the workspace.
func (f *Flags) ResolveConfigPath() string {
	if f.ConfigPath != "" {
		return f.ConfigPath
	}
	return filepath.Join(f.Workspace, config.DefaultConfigName)
}
