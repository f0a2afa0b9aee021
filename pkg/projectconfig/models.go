package projectconfig

import (
	"fmt"
	"time"

	"github.com/hashicorp-forge/obsmeta/pkg/meta"
	"github.com/hashicorp-forge/obsmeta/pkg/obs"
)

// Config represents a definitions file: API settings plus the projects to
// manage on the build service.
type Config struct {
	API      *APIConfig    `hcl:"api,block" yaml:"api"`
	Projects []*ProjectDef `hcl:"project,block" yaml:"project"`
}

// APIConfig holds the non-secret client settings. The password is never
// read from a definitions file.
type APIConfig struct {
	URL        string `hcl:"url,optional" yaml:"url"`
	Username   string `hcl:"username,optional" yaml:"username"`
	Timeout    string `hcl:"timeout,optional" yaml:"timeout"`
	MaxRetries *int   `hcl:"max_retries,optional" yaml:"max_retries"`
	RetryDelay string `hcl:"retry_delay,optional" yaml:"retry_delay"`
	TLSVerify  *bool  `hcl:"tls_verify,optional" yaml:"tls_verify"`
}

// ProjectDef represents a single project definition
type ProjectDef struct {
	Name        string           `hcl:"name,label" yaml:"name"`
	Title       string           `hcl:"title" yaml:"title"`
	Description string           `hcl:"description,optional" yaml:"description"`
	Persons     []*PersonDef     `hcl:"person,block" yaml:"person"`
	Repos       []*RepositoryDef `hcl:"repository,block" yaml:"repository"`
	Packages    []*PackageDef    `hcl:"package,block" yaml:"package"`
}

// PersonDef grants a user a role. Role defaults to maintainer.
type PersonDef struct {
	UserID string `hcl:"userid,label" yaml:"userid"`
	Role   string `hcl:"role,optional" yaml:"role"`
}

// RepositoryDef represents a build repository of a project
type RepositoryDef struct {
	Name  string     `hcl:"name,label" yaml:"name"`
	Paths []*PathDef `hcl:"path,block" yaml:"path"`
	Arch  []string   `hcl:"arch,optional" yaml:"arch"`
}

// PathDef links a repository to a repository of another project
type PathDef struct {
	Project    string `hcl:"project" yaml:"project"`
	Repository string `hcl:"repository" yaml:"repository"`
}

// PackageDef represents a package inside a project
type PackageDef struct {
	Name        string `hcl:"name,label" yaml:"name"`
	Title       string `hcl:"title" yaml:"title"`
	Description string `hcl:"description,optional" yaml:"description"`
	SCMSync     string `hcl:"scmsync,optional" yaml:"scmsync"`
}

// GetProject returns a project definition by name
func (c *Config) GetProject(name string) (*ProjectDef, error) {
	for _, p := range c.Projects {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("project not found: %s", name)
}

// ProjectNames returns the defined project names in file order
func (c *Config) ProjectNames() []string {
	names := make([]string, 0, len(c.Projects))
	for _, p := range c.Projects {
		names = append(names, p.Name)
	}
	return names
}

// MetaProjects converts every project definition to its entity, in file
// order.
func (c *Config) MetaProjects() []meta.Project {
	out := make([]meta.Project, 0, len(c.Projects))
	for _, p := range c.Projects {
		out = append(out, p.Project())
	}
	return out
}

// MetaPackages returns the package entities of the named project.
func (c *Config) MetaPackages(project string) ([]meta.Package, error) {
	p, err := c.GetProject(project)
	if err != nil {
		return nil, err
	}
	return p.MetaPackages(), nil
}

// ClientConfig builds the API client configuration, starting from
// obs.DefaultConfig and applying every setting present in the api block.
func (c *Config) ClientConfig() (*obs.Config, error) {
	cfg := obs.DefaultConfig()
	if c.API == nil {
		return cfg, nil
	}

	cfg.BaseURL = c.API.URL
	cfg.Username = c.API.Username
	if c.API.TLSVerify != nil {
		tlsVerify := *c.API.TLSVerify
		cfg.TLSVerify = &tlsVerify
	}
	if c.API.MaxRetries != nil {
		cfg.MaxRetries = *c.API.MaxRetries
	}

	if c.API.Timeout != "" {
		d, err := time.ParseDuration(c.API.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid api timeout: %w", err)
		}
		cfg.Timeout = d
	}
	if c.API.RetryDelay != "" {
		d, err := time.ParseDuration(c.API.RetryDelay)
		if err != nil {
			return nil, fmt.Errorf("invalid api retry_delay: %w", err)
		}
		cfg.RetryDelay = d
	}

	return cfg, nil
}

// Project converts the definition to a meta.Project. Packages are not part
// of the project document; see MetaPackages.
func (p *ProjectDef) Project() meta.Project {
	prj := meta.Project{
		Name:        p.Name,
		Title:       p.Title,
		Description: p.Description,
	}
	for _, d := range p.Persons {
		prj.Person = append(prj.Person, d.Person())
	}
	for _, d := range p.Repos {
		prj.Repository = append(prj.Repository, d.Repository())
	}
	return prj
}

// MetaPackages converts the project's package definitions, in file order.
func (p *ProjectDef) MetaPackages() []meta.Package {
	out := make([]meta.Package, 0, len(p.Packages))
	for _, d := range p.Packages {
		out = append(out, d.Package())
	}
	return out
}

// GetPackage returns a package definition by name
func (p *ProjectDef) GetPackage(name string) (*PackageDef, error) {
	for _, pkg := range p.Packages {
		if pkg.Name == name {
			return pkg, nil
		}
	}
	return nil, fmt.Errorf("package not found in project %s: %s", p.Name, name)
}

// Person converts the definition. The role is carried as written so that
// validation can report unknown values.
func (d *PersonDef) Person() meta.Person {
	p := meta.NewPerson(d.UserID)
	if d.Role != "" {
		p.Role = meta.Role(d.Role)
	}
	return p
}

func (d *RepositoryDef) Repository() meta.Repository {
	r := meta.Repository{Name: d.Name}
	for _, p := range d.Paths {
		r.Path = append(r.Path, meta.PathEntry{Project: p.Project, Repository: p.Repository})
	}
	if len(d.Arch) > 0 {
		r.Arch = append([]string(nil), d.Arch...)
	}
	return r
}

func (d *PackageDef) Package() meta.Package {
	return meta.Package{
		Name:        d.Name,
		Title:       d.Title,
		Description: d.Description,
		SCMSync:     d.SCMSync,
	}
}
