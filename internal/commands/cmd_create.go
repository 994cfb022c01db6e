package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/probar/internal/lifecycle"
)

type CreateCmd struct {
	flags *Flags

	// flags
	testType string
	name     string
}

// NewCreateCmd creates a new create command
func NewCreateCmd(flags *Flags) *CreateCmd {
	return &CreateCmd{flags: flags}
}

// Register adds the create command to the application
func (cmd *CreateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "create",
		Usage:     "Create a test case definition",
		UsageText: "probar create --test-type <smoke|regression|functional> [--name <name>]",
		Description: `Prompts for the test version, ticket numbers and one description per case,
then saves the definition to definitions/<type>[-<name>].csv.

Type FIN as a description to finish entering cases.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "test-type",
				Aliases:     []string{"t"},
				Usage:       "test type (smoke, regression, functional)",
				Required:    true,
				Destination: &cmd.testType,
			},
			&cli.StringFlag{
				Name:        "name",
				Aliases:     []string{"n"},
				Usage:       "name appended to the test type in the file name",
				Destination: &cmd.name,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *CreateCmd) run(ctx context.Context, c *cli.Command) error {
	return cmd.flags.Service.Create(ctx, lifecycle.CreateOptions{
		TestType: cmd.testType,
		Name:     cmd.name,
	})
}
