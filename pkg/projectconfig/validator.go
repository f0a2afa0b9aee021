package projectconfig

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the whole configuration and returns every problem found,
// aggregated in a *multierror.Error. It checks the api block, each entity's
// own rules, and name uniqueness of projects and of packages per project.
func (c *Config) Validate() error {
	var result *multierror.Error

	if _, err := c.ClientConfig(); err != nil {
		result = multierror.Append(result, &ValidationError{Field: "api", Message: err.Error()})
	}
	if c.API != nil && c.API.MaxRetries != nil && *c.API.MaxRetries < 0 {
		result = multierror.Append(result, &ValidationError{
			Field:   "api.max_retries",
			Message: "must be non-negative",
		})
	}

	projects := make(map[string]bool, len(c.Projects))
	for _, p := range c.Projects {
		field := fmt.Sprintf("project %q", p.Name)

		if projects[p.Name] {
			result = multierror.Append(result, &ValidationError{Field: field, Message: "duplicate project"})
		}
		projects[p.Name] = true

		if err := p.Project().Validate(); err != nil {
			result = multierror.Append(result, &ValidationError{Field: field, Message: err.Error()})
		}

		packages := make(map[string]bool, len(p.Packages))
		for _, d := range p.Packages {
			pkgField := fmt.Sprintf("%s package %q", field, d.Name)

			if packages[d.Name] {
				result = multierror.Append(result, &ValidationError{Field: pkgField, Message: "duplicate package"})
			}
			packages[d.Name] = true

			if err := d.Package().Validate(); err != nil {
				result = multierror.Append(result, &ValidationError{Field: pkgField, Message: err.Error()})
			}
		}
	}

	return result.ErrorOrNil()
}
