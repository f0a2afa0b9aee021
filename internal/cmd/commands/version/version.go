package version

import (
	"github.com/hashicorp-forge/obsmeta/internal/cmd/base"
	"github.com/hashicorp-forge/obsmeta/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the obsmeta version"
}

func (c *Command) Help() string {
	return `Usage: obsmeta version

  Prints the version of this binary.`
}

func (c *Command) Run(args []string) int {
	c.UI.Output("obsmeta " + version.FullVersion())
	return 0
}
