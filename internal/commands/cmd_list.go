package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/probar/pkg/iojson"
)

type ListCmd struct {
	flags *Flags

	// flags
	jsonOutput bool
}

// NewListCmd creates a new list command
func NewListCmd(flags *Flags) *ListCmd {
	return &ListCmd{flags: flags}
}

// Register adds the list command to the application
func (cmd *ListCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "list",
		Aliases:   []string{"ls"},
		Usage:     "List definition and execution files",
		UsageText: "probar list [--json]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as a single JSON document",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ListCmd) run(ctx context.Context, c *cli.Command) error {
	if !cmd.jsonOutput {
		return cmd.flags.Service.List(ctx)
	}

	listing, err := cmd.flags.Service.Listing(ctx)
	if err != nil {
		return err
	}
	return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, listing)
}
