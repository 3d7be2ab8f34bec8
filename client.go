package dockerhubutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Client is a thin wrapper over the Docker Hub HTTP API. It covers the two
// surfaces this tool needs: the v1 tag listing and the v2 repository
// listing.
//
// No retries and no timeout beyond the transport defaults: a hung call
// hangs the run, cancellation comes from the caller's context.
type Client struct {
	// HTTPClient may be replaced in tests. Nil means http.DefaultClient.
	HTTPClient *http.Client

	endpointV1 string
	endpointV2 string
	authToken  string
	strict     bool
	log        *zap.Logger
}

// NewClient returns a client configured from cfg.
func NewClient(cfg Config, log *zap.Logger) *Client {
	return &Client{
		endpointV1: strings.TrimRight(cfg.EndpointV1, "/"),
		endpointV2: strings.TrimRight(cfg.EndpointV2, "/"),
		authToken:  cfg.AuthToken,
		strict:     cfg.Strict,
		log:        log,
	}
}

// Do performs one API request and returns the raw JSON body.
//
// Method must be GET or POST; anything else is ErrInvalidMethod. A non-nil
// body is serialized as JSON with sorted keys and two-space indentation.
// Only a 200 response yields data: any other status returns (nil, nil) in
// the default mode, so callers must treat nil as "no data", not "confirmed
// absent". In strict mode a non-200 is ErrUnexpectedStatus instead.
func (c *Client) Do(ctx context.Context, method, rawURL string, body any) (json.RawMessage, error) {
	if method != http.MethodGet && method != http.MethodPost {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMethod, method)
	}

	var reader io.Reader
	if body != nil {
		// Map keys are marshaled sorted, keeping request bodies stable.
		b, err := json.MarshalIndent(body, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if c.authToken != "" {
		req.Header.Set("Authorization", "JWT "+c.authToken)
	}

	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn("Docker Hub API returned a non-success status",
			MessageID(331),
			zap.String("url", rawURL),
			zap.String("status", resp.Status),
		)
		if c.strict {
			return nil, fmt.Errorf("%w: %s from %s", ErrUnexpectedStatus, resp.Status, rawURL)
		}

		return nil, nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	return json.RawMessage(data), nil
}

// Tag is one element of the v1 tag listing.
type Tag struct {
	Layer string `json:"layer"`
	Name  string `json:"name"`
}

// Repository is one element of the v2 repository listing.
type Repository struct {
	Name        string `json:"name"`
	Namespace   string `json:"namespace"`
	Description string `json:"description"`
	IsPrivate   bool   `json:"is_private"`
	PullCount   int64  `json:"pull_count"`
	StarCount   int64  `json:"star_count"`
	LastUpdated string `json:"last_updated"`
}

// RepositoryPage is one page of the v2 repository listing.
type RepositoryPage struct {
	Count    int          `json:"count"`
	Next     string       `json:"next"`
	Previous string       `json:"previous"`
	Results  []Repository `json:"results"`
}

// ListRepositories fetches one page of the organization's repositories from
// the v2 API. An empty page is returned when the API yields no data.
func (c *Client) ListRepositories(ctx context.Context, organization string) (*RepositoryPage, error) {
	url := fmt.Sprintf("%s/repositories/%s/", c.endpointV2, organization)

	raw, err := c.Do(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return &RepositoryPage{}, nil
	}

	var page RepositoryPage
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, fmt.Errorf("decode repository listing for %s: %w", organization, err)
	}

	return &page, nil
}

// ListRepositoryTags fetches the repository's tags from the v1 API. A nil
// slice is returned when the API yields no data.
func (c *Client) ListRepositoryTags(ctx context.Context, organization, repository string) ([]Tag, error) {
	url := fmt.Sprintf("%s/repositories/%s/%s/tags", c.endpointV1, organization, repository)

	raw, err := c.Do(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var tags []Tag
	if err := json.Unmarshal(raw, &tags); err != nil {
		return nil, fmt.Errorf("decode tag listing for %s/%s: %w", organization, repository, err)
	}

	return tags, nil
}
