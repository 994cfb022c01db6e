package commands

import (
	"context"

	"github.com/urfave/cli/v3"
)

type ModifyCmd struct {
	flags *Flags

	// flags
	file string
}

// NewModifyCmd creates a new modify command
func NewModifyCmd(flags *Flags) *ModifyCmd {
	return &ModifyCmd{flags: flags}
}

// Register adds the modify command to the application
func (cmd *ModifyCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "modify",
		Usage:       "Modify one field of a test case",
		UsageText:   "probar modify --file <path>",
		Description: "Rewrites the CSV in place and regenerates its Markdown report.",
		Flags: []cli.Flag{
			fileFlag(&cmd.file),
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ModifyCmd) run(ctx context.Context, c *cli.Command) error {
	return cmd.flags.Service.Modify(ctx, cmd.file)
}
