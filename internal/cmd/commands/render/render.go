package render

import (
	"flag"
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/hashicorp-forge/obsmeta/internal/cmd/base"
	"github.com/hashicorp-forge/obsmeta/pkg/document"
)

type Command struct {
	*base.Command

	flagConfig  base.ConfigFlags
	flagProject string
	flagPackage string
}

func (c *Command) Synopsis() string {
	return "Print the meta document of a defined project or package"
}

func (c *Command) Help() string {
	return `Usage: obsmeta render -project <name> [-package <name>] [options]

  Renders the meta document that publish would send for a project, or for
  one of its packages, without contacting the build service.` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("render", flag.ContinueOnError))

	f.StringVar(
		&c.flagConfig.Config, "config", "",
		"[OBSMETA_CONFIG] Path to the definitions file (.hcl, .json, .yaml)",
	)
	f.StringVar(
		&c.flagProject, "project", "",
		"(Required) Project to render",
	)
	f.StringVar(
		&c.flagPackage, "package", "",
		"Render this package of the project instead of the project",
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

	def, err := cfg.GetProject(c.flagProject)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	var el *etree.Element
	if c.flagPackage == "" {
		prj := def.Project()
		if err := prj.Validate(); err != nil {
			ui.Error(fmt.Sprintf("invalid project %s: %v", prj.Name, err))
			return 1
		}
		el = prj.Meta()
	} else {
		pkgDef, err := def.GetPackage(c.flagPackage)
		if err != nil {
			ui.Error(err.Error())
			return 1
		}
		pkg := pkgDef.Package()
		if err := pkg.Validate(); err != nil {
			ui.Error(fmt.Sprintf("invalid package %s: %v", pkg.Name, err))
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
