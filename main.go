package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/probar/internal/commands"
	"github.com/colonyops/probar/internal/core/config"
	"github.com/colonyops/probar/internal/core/logging"
	"github.com/colonyops/probar/internal/core/styles"
	"github.com/colonyops/probar/internal/lifecycle"
	"github.com/colonyops/probar/internal/printer"
	"github.com/colonyops/probar/internal/prompt"
	"github.com/colonyops/probar/internal/spelling"
	"github.com/colonyops/probar/internal/store/csvfile"
	"github.com/colonyops/probar/pkg/logutils"
	"github.com/colonyops/probar/pkg/utils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, init() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var (
		logCloser  func()
		consoleLog = &utils.DeferredWriter{}
	)

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "probar",
		Usage:     "Author, execute and track manual test cases",
		UsageText: "probar [global options] command [command options]",
		Description: `probar keeps manual test cases as CSV definitions and records every run as a
timestamped CSV and Markdown execution report.

Run 'probar' with no arguments to open the interactive menu.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "workspace",
				Aliases:     []string{"w"},
				Usage:       "directory holding definitions/ and executions/",
				Sources:     cli.EnvVars("PROBAR_WORKSPACE"),
				Value:       ".",
				Destination: &flags.Workspace,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file (defaults to <workspace>/probar.yaml)",
				Sources:     cli.EnvVars("PROBAR_CONFIG"),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("PROBAR_LOG_LEVEL"),
				Value:       "warn",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (logs go to stderr when empty)",
				Sources:     cli.EnvVars("PROBAR_LOG_FILE"),
				Destination: &flags.LogFile,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// Console logs are held until exit so they never interleave with prompts
			logger, closer, err := logutils.NewWith(flags.LogLevel, flags.LogFile, consoleLog)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Load(flags.ResolveConfigPath(), flags.Workspace)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}

			env, err := config.LoadEnv(cfg.Workspace, os.Environ())
			if err != nil {
				log.Warn().Err(err).Msg("failed to read .env file")
			}
			cfg.ApplyEnv(env)
			flags.Config = cfg

			// Apply configured theme (validation ensures name is valid)
			palette, _ := styles.GetPalette(cfg.Theme)
			styles.SetTheme(palette)

			repo := csvfile.FromConfig(cfg, logging.Component("csvfile"))
			if err := repo.EnsureNamespaces(); err != nil {
				return ctx, err
			}

			corrector := spelling.New(cfg.Spelling, cfg.APIKeyEnv(), logging.Component("spelling"))
			flags.Service = lifecycle.New(cfg, repo, prompt.NewHuh(os.Stdin), corrector, logging.Component("lifecycle"))

			return printer.NewContext(ctx, printer.New(os.Stdout)), nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return consoleLog.Flush(os.Stderr)
		},
	}

	app = commands.NewCreateCmd(flags).Register(app)
	app = commands.NewModifyCmd(flags).Register(app)
	app = commands.NewExecuteCmd(flags).Register(app)
	app = commands.NewListCmd(flags).Register(app)
	app = commands.NewReportCmd(flags).Register(app)
	app = commands.NewConfigValidateCmd(flags).Register(app)
	app = commands.NewMenuCmd(flags).Register(app)

	exitCode := 0
	runErr := app.Run(ctx, os.Args)
	_ = consoleLog.Flush(os.Stderr)
	if runErr != nil {
		fmt.Fprintln(os.Stderr, runErr.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
