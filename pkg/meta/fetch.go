package meta

import (
	"context"
	"net/http"
)

// FetchProject reads /source/{name}/_meta and decodes it. Transport errors
// are returned unchanged; a document that does not match the project shape
// yields a *document.MappingError.
func FetchProject(ctx context.Context, r Requester, name string) (Project, error) {
	requireName("fetch", "project", name)

	resp, err := r.APIRequest(ctx, projectRoute(name)+"/_meta", http.MethodGet, nil, nil)
	if err != nil {
		return Project{}, err
	}
	return UnmarshalProject(resp.Body)
}

// FetchPackage reads /source/{project}/{name}/_meta and decodes it.
func FetchPackage(ctx context.Context, r Requester, project, name string) (Package, error) {
	requireName("fetch", "project", project)
	requireName("fetch", "package", name)

	resp, err := r.APIRequest(ctx, packageRoute(project, name)+"/_meta", http.MethodGet, nil, nil)
	if err != nil {
		return Package{}, err
	}
	return UnmarshalPackage(resp.Body)
}
