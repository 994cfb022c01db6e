package commands

import (
	"context"

	"github.com/urfave/cli/v3"
)

type ReportCmd struct {
	flags *Flags

	// flags
	file    string
	preview bool
}

// NewReportCmd creates a new report command
func NewReportCmd(flags *Flags) *ReportCmd {
	return &ReportCmd{flags: flags}
}

// Register adds the report command to the application
func (cmd *ReportCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "report",
		Usage:     "Regenerate the Markdown report of a test file",
		UsageText: "probar report --file <path> [--preview]",
		Flags: []cli.Flag{
			fileFlag(&cmd.file),
			&cli.BoolFlag{
				Name:        "preview",
				Usage:       "render the report in the terminal",
				Destination: &cmd.preview,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ReportCmd) run(ctx context.Context, c *cli.Command) error {
	return cmd.flags.Service.Report(ctx, cmd.file, cmd.preview || cmd.flags.Config.Report.Preview)
}
