package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// MenuCmd runs the interactive menu. It is the root action when no
// subcommand is given.
type MenuCmd struct {
	flags *Flags
}

// NewMenuCmd creates a new menu command
func NewMenuCmd(flags *Flags) *MenuCmd {
	return &MenuCmd{flags: flags}
}

// Register sets the menu as the default action of app
func (cmd *MenuCmd) Register(app *cli.Command) *cli.Command {
	app.Action = cmd.run
	return app
}

func (cmd *MenuCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() > 0 {
		return fmt.Errorf("unknown command %q. Run 'probar --help' for usage", c.Args().First())
	}
	return cmd.flags.Service.Menu(ctx)
}
