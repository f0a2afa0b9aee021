package deletecmd

import (
	"flag"
	"fmt"

	"github.com/hashicorp-forge/obsmeta/internal/cmd/base"
	"github.com/hashicorp-forge/obsmeta/pkg/meta"
)

type Command struct {
	*base.Command

	flagConfig  base.ConfigFlags
	flagProject string
	flagPackage string
	flagForce   bool
}

func (c *Command) Synopsis() string {
	return "Delete a project or package from the build service"
}

func (c *Command) Help() string {
	return `Usage: obsmeta delete -project <name> [-package <name>] [-force] [options]

  Deletes a project, or a single package when -package is given. With
  -force the service deletes the resource even if other projects still
  depend on it.` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("delete", flag.ContinueOnError))

	c.flagConfig.Register(f)
	f.StringVar(
		&c.flagProject, "project", "",
		"(Required) Project to delete, or the project holding -package",
	)
	f.StringVar(
		&c.flagPackage, "package", "",
		"Delete only this package",
	)
	f.BoolVar(
		&c.flagForce, "force", false,
		"Delete even when other resources depend on it.",
	)

	return f
}

func (c *Command) Run(args []string) int {
	logger, ui := c.Log, c.UI

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

	target := c.flagProject
	var pkg meta.Ref
	if c.flagPackage != "" {
		pkg = meta.Name(c.flagPackage)
		target += "/" + c.flagPackage
	}

	logger.Debug("deleting", "target", target, "force", c.flagForce)
	if err := meta.Delete(ctx, client, meta.Name(c.flagProject), pkg, c.flagForce); err != nil {
		ui.Error(fmt.Sprintf("error deleting %s: %v", target, err))
		return 1
	}

	ui.Output(fmt.Sprintf("deleted %s", target))
	return 0
}
