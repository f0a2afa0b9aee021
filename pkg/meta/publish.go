package meta

import (
	"context"
	"fmt"
	"net/http"

	"github.com/beevik/etree"

	"github.com/hashicorp-forge/obsmeta/pkg/document"
)

// PublishRequest selects what SendMeta publishes. The set of
// implementations is closed: ProjectMeta, PackageMeta, RawProjectMeta and
// RawPackageMeta.
type PublishRequest interface {
	publishRequest()
}

// ProjectMeta publishes a project's own metadata.
type ProjectMeta struct {
	Project Project
}

// PackageMeta publishes the meta view of a package inside Project.
type PackageMeta struct {
	Project Project
	Package Package
}

// RawProjectMeta publishes a caller-supplied project document verbatim,
// e.g. one fetched from the service and edited in place.
type RawProjectMeta struct {
	ProjectName string
	Document    *etree.Element
}

// RawPackageMeta publishes a caller-supplied package document verbatim.
type RawPackageMeta struct {
	ProjectName string
	PackageName string
	Document    *etree.Element
}

func (ProjectMeta) publishRequest()    {}
func (PackageMeta) publishRequest()    {}
func (RawProjectMeta) publishRequest() {}
func (RawPackageMeta) publishRequest() {}

// SendMeta PUTs the document selected by req to its _meta route:
//
//	ProjectMeta, RawProjectMeta: /source/{project}/_meta
//	PackageMeta, RawPackageMeta: /source/{project}/{package}/_meta
//
// Errors from r are returned unchanged. A nil request, an empty name or a
// raw request without a document panics with ContractViolation.
func SendMeta(ctx context.Context, r Requester, req PublishRequest) error {
	route, doc := resolvePublish(req)

	payload, err := document.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal %s document: %w", doc.Tag, err)
	}

	_, err = r.APIRequest(ctx, route+"/_meta", http.MethodPut, payload, nil)
	return err
}

// resolvePublish maps a request to its route (without /_meta) and document.
func resolvePublish(req PublishRequest) (string, *etree.Element) {
	switch req := req.(type) {
	case ProjectMeta:
		requireName("send_meta", "project", req.Project.Name)
		return projectRoute(req.Project.Name), req.Project.Meta()

	case PackageMeta:
		requireName("send_meta", "project", req.Project.Name)
		requireName("send_meta", "package", req.Package.Name)
		return packageRoute(req.Project.Name, req.Package.Name), req.Package.Meta()

	case RawProjectMeta:
		requireName("send_meta", "project", req.ProjectName)
		requireDocument("send_meta", req.Document)
		return projectRoute(req.ProjectName), req.Document

	case RawPackageMeta:
		requireName("send_meta", "project", req.ProjectName)
		requireName("send_meta", "package", req.PackageName)
		requireDocument("send_meta", req.Document)
		return packageRoute(req.ProjectName, req.PackageName), req.Document
	}

	panic(ContractViolation{
		Op:     "send_meta",
		Reason: fmt.Sprintf("invalid parameter combination: %T", req),
	})
}

func requireName(op, kind, name string) {
	if name == "" {
		panic(ContractViolation{Op: op, Reason: kind + " name is required"})
	}
}

func requireDocument(op string, doc *etree.Element) {
	if doc == nil {
		panic(ContractViolation{Op: op, Reason: "document is required"})
	}
}
