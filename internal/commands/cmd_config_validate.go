package commands

import (
	"context"
	"errors"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/probar/internal/printer"
	"github.com/colonyops/probar/pkg/iojson"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "probar config validate [options]",
				Description: "Validates the configuration file, the workspace directories and the spelling provider settings.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

type validationIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type validationOutput struct {
	Valid    bool              `json:"valid"`
	Errors   []validationIssue `json:"errors,omitempty"`
	Warnings []string          `json:"warnings,omitempty"`
}

func (cmd *ConfigValidateCmd) run(ctx context.Context, c *cli.Command) error {
	cfg := cmd.flags.Config
	out := validationOutput{Warnings: cfg.Warnings()}

	if err := cfg.ValidateDeep(cmd.flags.ResolveConfigPath()); err != nil {
		var fieldErrs criterio.FieldErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		for _, fe := range fieldErrs {
			out.Errors = append(out.Errors, validationIssue{Field: fe.Field, Message: fe.Err.Error()})
		}
	}
	out.Valid = len(out.Errors) == 0

	if cmd.format == "json" {
		if err := iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, out); err != nil {
			return err
		}
		if !out.Valid {
			return cli.Exit("", 1)
		}
		return nil
	}

	p := printer.Ctx(ctx)
	for _, w := range out.Warnings {
		p.Warnf("%s", w)
	}
	for _, e := range out.Errors {
		p.Errorf("%s: %s", e.Field, e.Message)
	}

	p.Printf("")
	if out.Valid {
		p.Successf("Configuration is valid")
		return nil
	}

	p.Errorf("%d error(s) found", len(out.Errors))
	return cli.Exit("", 1)
}
