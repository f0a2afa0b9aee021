package meta

import (
	"github.com/beevik/etree"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/hashicorp-forge/obsmeta/pkg/document"
)

// Package is a build service package. It is always addressed together with
// the name of the project that owns it.
type Package struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	// SCMSync is the source-control URL the service syncs sources from.
	// Empty means unset.
	SCMSync string `json:"scmsync,omitempty"`
}

// packageSchema is the meta view: title and description are always present,
// scmsync only when set.
var packageSchema = document.NewSchema("package",
	document.Attr("name", func(p *Package) *string { return &p.Name }),
	document.Text("title", func(p *Package) *string { return &p.Title }),
	document.TextOrEmpty("description", func(p *Package) *string { return &p.Description }),
	document.OptionalText("scmsync", func(p *Package) *string { return &p.SCMSync }),
)

// Meta returns the package's _meta document.
func (p Package) Meta() *etree.Element {
	return packageSchema.Encode(p)
}

// DecodePackage converts a package element back into a Package.
func DecodePackage(el *etree.Element) (Package, error) {
	return packageSchema.Decode(el)
}

// UnmarshalPackage parses a package _meta document.
func UnmarshalPackage(data []byte) (Package, error) {
	return packageSchema.Unmarshal(data)
}

// RefName implements Ref.
func (p Package) RefName() string {
	return p.Name
}

// Validate checks the package's invariants.
func (p Package) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required, validation.Match(nameRE)),
		validation.Field(&p.Title, xmlText),
		validation.Field(&p.Description, xmlText),
		validation.Field(&p.SCMSync, xmlText),
	)
}
