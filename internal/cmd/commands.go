package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/obsmeta/internal/cmd/base"
	"github.com/hashicorp-forge/obsmeta/internal/cmd/commands/deletecmd"
	"github.com/hashicorp-forge/obsmeta/internal/cmd/commands/fetch"
	"github.com/hashicorp-forge/obsmeta/internal/cmd/commands/publish"
	"github.com/hashicorp-forge/obsmeta/internal/cmd/commands/render"
	"github.com/hashicorp-forge/obsmeta/internal/cmd/commands/version"
)

// Commands is the mapping of all available obsmeta commands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	b := base.NewCommand(log, ui)

	Commands = map[string]cli.CommandFactory{
		"delete": func() (cli.Command, error) {
			return &deletecmd.Command{Command: b}, nil
		},
		"fetch": func() (cli.Command, error) {
			return &fetch.Command{Command: b}, nil
		},
		"publish": func() (cli.Command, error) {
			return &publish.Command{Command: b}, nil
		},
		"render": func() (cli.Command, error) {
			return &render.Command{Command: b}, nil
		},
		"version": func() (cli.Command, error) {
			return &version.Command{Command: b}, nil
		},
	}
}
