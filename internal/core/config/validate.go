package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"
)

// Validate checks that the configuration is structurally valid. An empty
// base URL is allowed here; it only becomes an error when an outbound
// call is attempted.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("api.base_url", c.API.BaseURL, validBaseURL),
		c.validateNumbers(),
		c.validateIncludePatterns(),
	)
}

func (c *Config) validateNumbers() error {
	var errs criterio.FieldErrorsBuilder
	if c.API.Timeout < 0 {
		errs = errs.Append("api.timeout", fmt.Errorf("must not be negative"))
	}
	if c.GitHub.InstallationID < 0 {
		errs = errs.Append("github.installation_id", fmt.Errorf("must not be negative"))
	}
	return errs.ToError()
}

func (c *Config) validateIncludePatterns() error {
	var errs criterio.FieldErrorsBuilder
	for i, pattern := range c.GitHub.Include {
		field := fmt.Sprintf("github.include[%d]", i)
		if strings.TrimSpace(pattern) == "" {
			errs = errs.Append(field, fmt.Errorf("pattern is empty"))
			continue
		}
		if !doublestar.ValidatePattern(pattern) {
			errs = errs.Append(field, fmt.Errorf("invalid glob pattern"))
		}
	}
	return errs.ToError()
}

func validBaseURL(raw string) error {
	if raw == "" {
		return nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("not a valid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("must use http or https")
	}
	return nil
}
