package publish

import (
	"context"
	"flag"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/hashicorp-forge/obsmeta/internal/cmd/base"
	"github.com/hashicorp-forge/obsmeta/pkg/meta"
	"github.com/hashicorp-forge/obsmeta/pkg/projectconfig"
)

type Command struct {
	*base.Command

	flagConfig      base.ConfigFlags
	flagProject     string
	flagConcurrency int
	flagDryRun      bool
}

func (c *Command) Synopsis() string {
	return "Publish project and package metadata to the build service"
}

func (c *Command) Help() string {
	return `Usage: obsmeta publish [options]

  Validates every definition, then publishes each project's meta followed by
  the meta of its packages. Packages of a project are published
  concurrently once the project itself has been accepted.

  The API password is read from the OBS_PASSWORD environment variable.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("publish", flag.ContinueOnError))

	c.flagConfig.Register(f)
	f.StringVar(
		&c.flagProject, "project", "",
		"Publish only this project and its packages",
	)
	f.IntVar(
		&c.flagConcurrency, "concurrency", 4,
		"Maximum number of package requests in flight per project.",
	)
	f.BoolVar(
		&c.flagDryRun, "dry-run", false,
		"Only print what would be published without making requests.",
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

	if c.flagConcurrency < 1 {
		ui.Error("concurrency must be at least 1")
		return 1
	}

	cfg, err := c.LoadConfig(&c.flagConfig)
	if err != nil {
		ui.Error(fmt.Sprintf("error loading definitions: %v", err))
		return 1
	}

	if err := cfg.Validate(); err != nil {
		ui.Error(fmt.Sprintf("invalid definitions: %v", err))
		return 1
	}

	defs := cfg.Projects
	if c.flagProject != "" {
		def, err := cfg.GetProject(c.flagProject)
		if err != nil {
			ui.Error(err.Error())
			return 1
		}
		defs = []*projectconfig.ProjectDef{def}
	}

	if c.flagDryRun {
		for _, def := range defs {
			ui.Output(fmt.Sprintf("would publish project %s", def.Name))
			for _, pkg := range def.Packages {
				ui.Output(fmt.Sprintf("would publish package %s/%s", def.Name, pkg.Name))
			}
		}
		return 0
	}

	client, err := c.NewClient(cfg, &c.flagConfig)
	if err != nil {
		ui.Error(fmt.Sprintf("error creating API client: %v", err))
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	for _, def := range defs {
		if err := c.publishProject(ctx, client, def); err != nil {
			ui.Error(err.Error())
			return 1
		}
	}

	logger.Info("publish complete", "projects", len(defs))
	return 0
}

// publishProject sends the project meta, then its packages concurrently.
// The first package failure cancels the packages still pending.
func (c *Command) publishProject(ctx context.Context, r meta.Requester, def *projectconfig.ProjectDef) error {
	prj := def.Project()

	if err := meta.SendMeta(ctx, r, meta.ProjectMeta{Project: prj}); err != nil {
		return fmt.Errorf("error publishing project %s: %w", prj.Name, err)
	}
	c.UI.Output(fmt.Sprintf("published project %s", prj.Name))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.flagConcurrency)

	for _, pkg := range def.MetaPackages() {
		pkg := pkg
		g.Go(func() error {
			if err := meta.SendMeta(gctx, r, meta.PackageMeta{Project: prj, Package: pkg}); err != nil {
				return fmt.Errorf("error publishing package %s/%s: %w", prj.Name, pkg.Name, err)
			}
			c.UI.Output(fmt.Sprintf("published package %s/%s", prj.Name, pkg.Name))
			return nil
		})
	}

	return g.Wait()
}
