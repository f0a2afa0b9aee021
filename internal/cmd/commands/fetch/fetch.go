package fetch

import (
	"flag"
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/hashicorp-forge/obsmeta/internal/cmd/base"
	"github.com/hashicorp-forge/obsmeta/pkg/document"
	"github.com/hashicorp-forge/obsmeta/pkg/meta"
	"github.com/hashicorp-forge/obsmeta/pkg/obs"
)

type Command struct {
	*base.Command

	flagConfig  base.ConfigFlags
	flagProject string
	flagPackage string
}

func (c *Command) Synopsis() string {
	return "Fetch and print the remote meta of a project or package"
}

func (c *Command) Help() string {
	return `Usage: obsmeta fetch -project <name> [-package <name>] [options]

  Reads the meta document the build service holds for a project or package,
  decodes it and prints it re-encoded. Elements obsmeta does not manage are
  dropped from the output.` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("fetch", flag.ContinueOnError))

	c.flagConfig.Register(f)
	f.StringVar(
		&c.flagProject, "project", "",
		"(Required) Project to fetch",
	)
	f.StringVar(
		&c.flagPackage, "package", "",
		"Fetch this package of the project instead of the project",
	)

	return f
}

func (c *Command) Run(args []string) int {
	ui := c.UI

	f := c.Flags()
	if err := f.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	if c.flagProject == "" {
		ui.Error("project flag is required")
		return 1
	}

	cfg, err := c.LoadConfig(&c.flagConfig)
	if err != nil {
		ui.Error(fmt.Sprintf("error loading definitions: %v", err))
		return 1
	}

	client, err := c.NewClient(cfg, &c.flagConfig)
	if err != nil {
		ui.Error(fmt.Sprintf("error creating API client: %v", err))
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	var el *etree.Element
	if c.flagPackage == "" {
		prj, err := meta.FetchProject(ctx, client, c.flagProject)
		if err != nil {
			ui.Error(describe(err))
			return 1
		}
		el = prj.Meta()
	} else {
		pkg, err := meta.FetchPackage(ctx, client, c.flagProject, c.flagPackage)
		if err != nil {
			ui.Error(describe(err))
			return 1
		}
		el = pkg.Meta()
	}

	data, err := document.MarshalIndent(el, 2)
	if err != nil {
		ui.Error(fmt.Sprintf("error encoding document: %v", err))
		return 1
	}

	ui.Output(strings.TrimRight(string(data), "\n"))
	return 0
}

func describe(err error) string {
	if obs.IsNotFound(err) {
		return fmt.Sprintf("not found: %v", err)
	}
	return fmt.Sprintf("error fetching meta: %v", err)
}
