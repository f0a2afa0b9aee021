package meta

import (
	"fmt"

	"github.com/beevik/etree"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/hashicorp-forge/obsmeta/pkg/document"
)

// Role is the role a person holds in a project.
type Role string

const (
	RoleBugowner   Role = "bugowner"
	RoleMaintainer Role = "maintainer"
	RoleReader     Role = "reader"
)

// ParseRole converts a role token into a Role.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleBugowner, RoleMaintainer, RoleReader:
		return r, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Person grants a user a role in a project.
type Person struct {
	UserID string `json:"userid"`
	Role   Role   `json:"role"`
}

var personSchema = document.NewSchema("person",
	document.Attr("userid", func(p *Person) *string { return &p.UserID }),
	document.EnumAttr("role", func(p *Person) *Role { return &p.Role }, ParseRole, RoleMaintainer),
)

// NewPerson returns a Person with the default maintainer role.
func NewPerson(userID string) Person {
	return Person{UserID: userID, Role: RoleMaintainer}
}

// Meta returns the person's document.
func (p Person) Meta() *etree.Element {
	return personSchema.Encode(p)
}

// DecodePerson converts a person element back into a Person. A missing role
// attribute decodes to RoleMaintainer.
func DecodePerson(el *etree.Element) (Person, error) {
	return personSchema.Decode(el)
}

// Validate checks the person's invariants.
func (p Person) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.UserID, validation.Required, xmlText),
		validation.Field(&p.Role, validation.Required,
			validation.In(RoleBugowner, RoleMaintainer, RoleReader)),
	)
}
