package meta

import (
	"context"
	"fmt"

	"github.com/hashicorp-forge/obsmeta/pkg/obs"
)

// Requester performs an authenticated API request. *obs.Client implements
// it; any error it returns is passed through unchanged.
type Requester interface {
	APIRequest(ctx context.Context, route, method string, payload []byte, params map[string]string) (*obs.Response, error)
}

var _ Requester = (*obs.Client)(nil)

// Ref names a project or package: a Project, a Package, or a bare Name.
type Ref interface {
	RefName() string
}

// Name is a bare project or package name.
type Name string

// RefName implements Ref.
func (n Name) RefName() string {
	return string(n)
}

// Compile-time checks
var (
	_ Ref = Name("")
	_ Ref = Project{}
	_ Ref = Package{}
)

// ContractViolation is the panic value raised when an operation is called
// with arguments no caller should ever produce. It is a programming error,
// not a runtime condition, and is never returned as an error.
type ContractViolation struct {
	Op     string
	Reason string
}

func (c ContractViolation) Error() string {
	return fmt.Sprintf("meta: %s: %s", c.Op, c.Reason)
}

func projectRoute(project string) string {
	return "/source/" + project
}

func packageRoute(project, pkg string) string {
	return "/source/" + project + "/" + pkg
}
