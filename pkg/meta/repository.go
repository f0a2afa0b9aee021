package meta

import (
	"github.com/beevik/etree"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/hashicorp-forge/obsmeta/pkg/document"
)

// PathEntry points a repository at another project's repository to build
// against.
type PathEntry struct {
	Project    string `json:"project"`
	Repository string `json:"repository"`
}

var pathSchema = document.NewSchema("path",
	document.Attr("project", func(p *PathEntry) *string { return &p.Project }),
	document.Attr("repository", func(p *PathEntry) *string { return &p.Repository }),
)

// Meta returns the path entry's document.
func (p PathEntry) Meta() *etree.Element {
	return pathSchema.Encode(p)
}

// DecodePathEntry converts a path element back into a PathEntry.
func DecodePathEntry(el *etree.Element) (PathEntry, error) {
	return pathSchema.Decode(el)
}

// Validate checks the path entry's invariants.
func (p PathEntry) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Project, validation.Required, xmlText),
		validation.Field(&p.Repository, validation.Required, xmlText),
	)
}

// Repository is a build target of a project. Path and Arch are nil when
// absent; a nil list produces no elements.
type Repository struct {
	Name string      `json:"name"`
	Path []PathEntry `json:"path,omitempty"`
	Arch []string    `json:"arch,omitempty"`
}

var repositorySchema = document.NewSchema("repository",
	document.Attr("name", func(r *Repository) *string { return &r.Name }),
	document.Elements(pathSchema, func(r *Repository) *[]PathEntry { return &r.Path }),
	document.TextList("arch", func(r *Repository) *[]string { return &r.Arch }),
)

// Meta returns the repository's document.
func (r Repository) Meta() *etree.Element {
	return repositorySchema.Encode(r)
}

// DecodeRepository converts a repository element back into a Repository.
func DecodeRepository(el *etree.Element) (Repository, error) {
	return repositorySchema.Decode(el)
}

// Validate checks the repository's invariants, including its path entries.
func (r Repository) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, xmlText),
		validation.Field(&r.Path),
		validation.Field(&r.Arch, validation.Each(validation.Required, xmlText)),
	)
}
