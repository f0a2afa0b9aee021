package meta

import (
	"regexp"

	"github.com/beevik/etree"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/hashicorp-forge/obsmeta/pkg/document"
)

// nameRE matches project and package names the service accepts. Names are
// used verbatim as route segments, so '/' and whitespace are excluded.
var nameRE = regexp.MustCompile(`^[A-Za-z0-9_][A-Za-z0-9_.+:-]*$`)

// xmlText rejects strings a meta document cannot carry unchanged.
var xmlText = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return nil
	}
	return document.CheckText(s)
})

// Project is a build service project. Description defaults to empty and is
// always emitted; Person and Repository are omitted when nil.
type Project struct {
	Name        string       `json:"name"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Person      []Person     `json:"person,omitempty"`
	Repository  []Repository `json:"repository,omitempty"`
}

var projectSchema = document.NewSchema("project",
	document.Attr("name", func(p *Project) *string { return &p.Name }),
	document.Text("title", func(p *Project) *string { return &p.Title }),
	document.TextOrEmpty("description", func(p *Project) *string { return &p.Description }),
	document.Elements(personSchema, func(p *Project) *[]Person { return &p.Person }),
	document.Elements(repositorySchema, func(p *Project) *[]Repository { return &p.Repository }),
)

// Meta returns the project's _meta document.
func (p Project) Meta() *etree.Element {
	return projectSchema.Encode(p)
}

// DecodeProject converts a project element back into a Project.
func DecodeProject(el *etree.Element) (Project, error) {
	return projectSchema.Decode(el)
}

// UnmarshalProject parses a project _meta document.
func UnmarshalProject(data []byte) (Project, error) {
	return projectSchema.Unmarshal(data)
}

// RefName implements Ref.
func (p Project) RefName() string {
	return p.Name
}

// Validate checks the project's invariants, including nested people and
// repositories.
func (p Project) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required, validation.Match(nameRE)),
		validation.Field(&p.Title, xmlText),
		validation.Field(&p.Description, xmlText),
		validation.Field(&p.Person),
		validation.Field(&p.Repository),
	)
}
