package obs

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
)

// Response is a completed API response with its body fully read.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Client performs authenticated requests against the build service API.
// It is safe for concurrent use.
type Client struct {
	config *Config
	client *http.Client
	logger hclog.Logger
}

// NewClient creates a new API client from a copy of cfg with defaults
// applied; cfg itself is not modified. A nil logger discards output.
func NewClient(cfg *Config, logger hclog.Logger) (*Client, error) {
	c := *cfg
	defaults := DefaultConfig()
	if c.TLSVerify == nil {
		c.TLSVerify = defaults.TLSVerify
	}
	if c.Timeout == 0 {
		c.Timeout = defaults.Timeout
	}
	if c.RetryDelay == 0 {
		c.RetryDelay = defaults.RetryDelay
	}
	if c.UserAgent == "" {
		c.UserAgent = defaults.UserAgent
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid API client config: %w", err)
	}

	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &Client{
		config: &c,
		client: c.NewHTTPClient(),
		logger: logger.Named("obs"),
	}, nil
}

// APIRequest sends method to route (e.g. "/source/home:alice/_meta") with an
// optional XML payload and query params. Network errors and 5xx responses
// are retried up to MaxRetries times; any other non-2xx status is returned
// immediately as an *APIError.
func (c *Client) APIRequest(
	ctx context.Context,
	route, method string,
	payload []byte,
	params map[string]string,
) (*Response, error) {
	endpoint, err := c.buildURL(route, params)
	if err != nil {
		return nil, err
	}

	requestID := uuid.NewString()
	logger := c.logger.With("method", method, "route", route, "request_id", requestID)

	var resp *Response
	operation := func() error {
		var body io.Reader
		if payload != nil {
			body = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
		}

		req.SetBasicAuth(c.config.Username, c.config.Password)
		req.Header.Set("Accept", "application/xml")
		req.Header.Set("User-Agent", c.config.UserAgent)
		req.Header.Set("X-Request-ID", requestID)
		if payload != nil {
			req.Header.Set("Content-Type", "application/xml")
		}

		httpResp, err := c.client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			return fmt.Errorf("request failed: %w", err)
		}
		defer httpResp.Body.Close()

		respBody, err := io.ReadAll(httpResp.Body)
		if err != nil {
			return fmt.Errorf("failed to read response: %w", err)
		}

		if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
			apiErr := newAPIError(method, route, httpResp.StatusCode, respBody)
			if httpResp.StatusCode >= 500 {
				return apiErr
			}
			return backoff.Permanent(apiErr)
		}

		resp = &Response{
			StatusCode: httpResp.StatusCode,
			Header:     httpResp.Header,
			Body:       respBody,
		}
		return nil
	}

	notify := func(err error, wait time.Duration) {
		logger.Warn("retrying request", "error", err, "wait", wait)
	}

	logger.Debug("sending request", "payload_bytes", len(payload))
	if err := backoff.RetryNotify(operation, c.newBackOff(ctx), notify); err != nil {
		logger.Debug("request failed", "error", err)
		return nil, err
	}
	logger.Debug("request completed", "status", resp.StatusCode)

	return resp, nil
}

func (c *Client) newBackOff(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.config.RetryDelay
	b.MaxElapsedTime = 0

	return backoff.WithContext(
		backoff.WithMaxRetries(b, uint64(c.config.MaxRetries)),
		ctx,
	)
}

// buildURL joins the base URL and route and encodes params as a query string
func (c *Client) buildURL(route string, params map[string]string) (string, error) {
	if !strings.HasPrefix(route, "/") {
		return "", fmt.Errorf("route must start with '/', got: %q", route)
	}

	u, err := url.Parse(strings.TrimSuffix(c.config.BaseURL, "/") + route)
	if err != nil {
		return "", fmt.Errorf("invalid route %q: %w", route, err)
	}

	if len(params) > 0 {
		q := u.Query()
		for k, v := range params {
			q.Set(k, v)
		}
		u.RawQuery = q.Encode()
	}

	return u.String(), nil
}
