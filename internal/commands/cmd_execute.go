package commands

import (
	"context"

	"github.com/urfave/cli/v3"
)

type ExecuteCmd struct {
	flags *Flags

	// flags
	file string
}

// NewExecuteCmd creates a new execute command
func NewExecuteCmd(flags *Flags) *ExecuteCmd {
	return &ExecuteCmd{flags: flags}
}

// Register adds the execute command to the application
func (cmd *ExecuteCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "execute",
		Usage:     "Execute the test cases of a file",
		UsageText: "probar execute --file <path>",
		Description: `Asks for the result, observations and evidence of every case and writes a
new timestamped CSV and Markdown pair under executions/.

The file may be a definition or a previous execution.`,
		Flags: []cli.Flag{
			fileFlag(&cmd.file),
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ExecuteCmd) run(ctx context.Context, c *cli.Command) error {
	return cmd.flags.Service.Execute(ctx, cmd.file)
}

func fileFlag(dest *string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "file",
		Aliases:     []string{"f"},
		Usage:       "path to a definition or execution CSV file",
		Required:    true,
		Destination: dest,
	}
}
