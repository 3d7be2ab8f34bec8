package dockerhubutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
)

// Default endpoints and organization, matching the values the published pin
// scripts were generated against.
const (
	DefaultEndpointV1   = "https://registry.hub.docker.com/v1"
	DefaultEndpointV2   = "https://hub.docker.com/v2"
	DefaultOrganization = "senzing"
)

// Config carries the aggregate configuration for one run. It is built once
// by the command layer (flags > environment > defaults) and passed by value
// into the client and resolver; nothing mutates it afterwards.
type Config struct {
	// EndpointV1 is the base URL of the v1 API surface (tag listing).
	EndpointV1 string

	// EndpointV2 is the base URL of the v2 API surface (repository listing).
	EndpointV2 string

	// Organization is the default Docker Hub organization for repositories
	// that do not carry their own override.
	Organization string

	// Username and Password are optional Docker Hub credentials. Password is
	// redacted from configuration dumps unless debug is enabled.
	Username string
	Password string

	// AuthToken, when set, is attached to every request as
	// "Authorization: JWT <token>".
	AuthToken string

	// RepositoriesFile overrides the embedded repository table.
	RepositoriesFile string

	// SleepSeconds is the duration for the sleep subcommand; zero or
	// negative sleeps indefinitely.
	SleepSeconds int

	// Debug raises the log level and disables redaction.
	Debug bool

	// Strict makes the client surface non-200 responses as errors instead
	// of empty data.
	Strict bool

	// Ordering selects how the newest tag is chosen.
	Ordering Ordering
}

// DefaultConfig returns a Config populated with the default endpoints and
// organization.
func DefaultConfig() Config {
	return Config{
		EndpointV1:   DefaultEndpointV1,
		EndpointV2:   DefaultEndpointV2,
		Organization: DefaultOrganization,
	}
}

// Validate checks the aggregate configuration and reports every problem
// found, joined into a single error.
func (c Config) Validate() error {
	var errs []error

	if err := checkEndpoint("dockerhub-api-endpoint-v1", c.EndpointV1); err != nil {
		errs = append(errs, err)
	}
	if err := checkEndpoint("dockerhub-api-endpoint-v2", c.EndpointV2); err != nil {
		errs = append(errs, err)
	}
	if c.Organization == "" {
		errs = append(errs, errors.New("dockerhub-organization must not be empty"))
	}

	return errors.Join(errs...)
}

func checkEndpoint(name, value string) error {
	u, err := url.Parse(value)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("%s is not an absolute URL: %q", name, value)
	}

	return nil
}

// JSON renders the configuration as a JSON object with sorted keys for the
// entry/exit log lines. Unless redaction is disabled, the password and auth
// token are replaced with a fixed marker.
func (c Config) JSON(redact bool) string {
	password, token := c.Password, c.AuthToken
	if redact {
		if password != "" {
			password = "<redacted>"
		}
		if token != "" {
			token = "<redacted>"
		}
	}

	// A map, not the struct, so keys come out sorted.
	m := map[string]any{
		"dockerhub_api_endpoint_v1": c.EndpointV1,
		"dockerhub_api_endpoint_v2": c.EndpointV2,
		"dockerhub_organization":    c.Organization,
		"dockerhub_username":        c.Username,
		"dockerhub_password":        password,
		"dockerhub_auth_token":      token,
		"repositories_file":         c.RepositoriesFile,
		"sleep_time_in_seconds":     c.SleepSeconds,
		"debug":                     c.Debug,
		"strict_http":               c.Strict,
		"ordering":                  c.Ordering.String(),
	}

	b, err := json.Marshal(m)
	if err != nil {
		return "{}"
	}

	return string(b)
}
