package obs

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Config configures a Client. Zero durations and an empty UserAgent are
// replaced by DefaultConfig values in NewClient; projectconfig builds one
// from the api block of a definitions file.
type Config struct {
	BaseURL  string `json:"baseUrl"`
	Username string `json:"username"`
	Password string `json:"-"`

	// TLSVerify nil means verify.
	TLSVerify *bool `json:"tlsVerify,omitempty"`

	// Timeout bounds one HTTP attempt, not the retry sequence.
	Timeout time.Duration `json:"timeout,omitempty"`

	// MaxRetries counts retries after the first attempt. Only network
	// errors and 5xx responses are retried.
	MaxRetries int           `json:"maxRetries,omitempty"`
	RetryDelay time.Duration `json:"retryDelay,omitempty"`

	UserAgent string `json:"userAgent,omitempty"`
}

// DefaultConfig returns the settings used for anything a Config leaves
// unset: 30s per attempt, 3 retries starting at 1s, TLS verification on.
func DefaultConfig() *Config {
	tlsVerify := true
	return &Config{
		TLSVerify:  &tlsVerify,
		Timeout:    30 * time.Second,
		MaxRetries: 3,
		RetryDelay: time.Second,
		UserAgent:  "obsmeta",
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("url is required")
	}
	u, err := url.Parse(c.BaseURL)
	switch {
	case err != nil:
		return fmt.Errorf("invalid url: %w", err)
	case u.Scheme != "http" && u.Scheme != "https":
		return fmt.Errorf("url must use http or https scheme, got: %s", u.Scheme)
	case u.Host == "":
		return fmt.Errorf("url %q has no host", c.BaseURL)
	}

	switch {
	case c.Username == "":
		return fmt.Errorf("username is required")
	case c.Timeout <= 0:
		return fmt.Errorf("timeout must be positive, got: %v", c.Timeout)
	case c.MaxRetries < 0:
		return fmt.Errorf("max_retries must be non-negative, got: %d", c.MaxRetries)
	case c.RetryDelay < 0:
		return fmt.Errorf("retry_delay must be non-negative, got: %v", c.RetryDelay)
	}
	return nil
}

// NewHTTPClient returns an HTTP client built on a clone of the default
// transport, so proxy environment variables apply. TLS verification is
// skipped only when TLSVerify is explicitly false.
func (c *Config) NewHTTPClient() *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConnsPerHost = 10

	if c.TLSVerify != nil && !*c.TLSVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return &http.Client{Timeout: c.Timeout, Transport: transport}
}
