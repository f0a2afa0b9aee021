package meta

import (
	"context"
	"sync"

	"github.com/hashicorp-forge/obsmeta/pkg/obs"
)

// recordedRequest is one call seen by fakeRequester.
type recordedRequest struct {
	Route   string
	Method  string
	Payload string
	Params  map[string]string
}

// fakeRequester records calls and replies with a fixed response or error.
type fakeRequester struct {
	mu       sync.Mutex
	requests []recordedRequest

	body []byte
	err  error
}

func (f *fakeRequester) APIRequest(
	ctx context.Context,
	route, method string,
	payload []byte,
	params map[string]string,
) (*obs.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.requests = append(f.requests, recordedRequest{
		Route:   route,
		Method:  method,
		Payload: string(payload),
		Params:  params,
	})
	if f.err != nil {
		return nil, f.err
	}
	return &obs.Response{StatusCode: 200, Body: f.body}, nil
}

func (f *fakeRequester) only() recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.requests) != 1 {
		panic("expected exactly one request")
	}
	return f.requests[0]
}
