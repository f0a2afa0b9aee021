package meta

import (
	"context"
	"net/http"
)

// Delete removes a project, or a package when pkg is non-nil, by sending
// DELETE /source/{project}/[{package}]. With force the request carries
// force=1, which lets the service delete resources other projects still
// depend on.
//
// Errors from r are returned unchanged; deleting a resource that is already
// gone surfaces the service's not-found error. A nil or unnamed project, or
// a non-nil package without a name, panics with ContractViolation.
func Delete(ctx context.Context, r Requester, prj Ref, pkg Ref, force bool) error {
	if prj == nil {
		panic(ContractViolation{Op: "delete", Reason: "project is required"})
	}
	requireName("delete", "project", prj.RefName())

	route := projectRoute(prj.RefName()) + "/"
	if pkg != nil {
		requireName("delete", "package", pkg.RefName())
		route += pkg.RefName()
	}

	var params map[string]string
	if force {
		params = map[string]string{"force": "1"}
	}

	_, err := r.APIRequest(ctx, route, http.MethodDelete, nil, params)
	return err
}
