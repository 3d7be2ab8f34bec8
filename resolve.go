package dockerhubutil

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// RepositoryEntry describes one repository to pin.
type RepositoryEntry struct {
	// Name is the repository name within its organization.
	Name string

	// EnvironmentVariable is the shell variable the version is exported as.
	EnvironmentVariable string

	// Version, when set, is used verbatim and no registry call is made.
	Version string

	// Organization overrides the configured default when set.
	Organization string
}

// placeholderTags are non-version tags excluded from latest-version
// selection.
var placeholderTags = []string{"latest", "experimental"}

// FindLatestVersion picks the newest tag from names under the given
// ordering, after removing each placeholder tag.
//
// Each placeholder is removed at most once, mirroring the single-removal
// behavior the published pin scripts were generated with; Docker Hub never
// returns a duplicate tag name, so nothing observable hinges on it.
// Returns ErrNoTags when no candidates remain.
func FindLatestVersion(names []string, ordering Ordering) (string, error) {
	candidates := append([]string(nil), names...)
	for _, p := range placeholderTags {
		candidates = removeFirst(candidates, p)
	}

	if len(candidates) == 0 {
		return "", ErrNoTags
	}

	return ordering.Latest(candidates), nil
}

// removeFirst drops the first occurrence of s, preserving order.
func removeFirst(in []string, s string) []string {
	for i, v := range in {
		if v == s {
			return append(in[:i:i], in[i+1:]...)
		}
	}

	return in
}

// Resolver turns a repository table into sorted shell export lines.
type Resolver struct {
	client       *Client
	organization string
	ordering     Ordering
	log          *zap.Logger
}

// NewResolver returns a resolver using client for unpinned entries and the
// configured default organization and ordering.
func NewResolver(client *Client, cfg Config, log *zap.Logger) *Resolver {
	return &Resolver{
		client:       client,
		organization: cfg.Organization,
		ordering:     cfg.Ordering,
		log:          log,
	}
}

// LatestVersions resolves every entry to one "export NAME=VALUE" line and
// returns the lines sorted lexicographically.
//
// Entries are resolved strictly one at a time. The context is checked
// between entries, so an interrupt stops the run at the next repository
// boundary; any failure aborts the whole run with no partial result.
func (r *Resolver) LatestVersions(ctx context.Context, entries []RepositoryEntry) ([]string, error) {
	result := make([]string, 0, len(entries))

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		organization := entry.Organization
		if organization == "" {
			organization = r.organization
		}

		version := entry.Version
		if version == "" {
			tags, err := r.client.ListRepositoryTags(ctx, organization, entry.Name)
			if err != nil {
				return nil, err
			}

			names := make([]string, 0, len(tags))
			for _, t := range tags {
				names = append(names, t.Name)
			}

			version, err = FindLatestVersion(names, r.ordering)
			if err != nil {
				return nil, fmt.Errorf("repository %s/%s: %w", organization, entry.Name, err)
			}

			r.log.Debug("resolved repository from the registry",
				MessageID(901),
				zap.String("repository", organization+"/"+entry.Name),
				zap.String("version", version),
				zap.Int("tags", len(names)),
			)
		} else {
			r.log.Debug("using pinned version",
				MessageID(902),
				zap.String("repository", entry.Name),
				zap.String("version", version),
			)
		}

		result = append(result, fmt.Sprintf("export %s=%s", entry.EnvironmentVariable, version))
	}

	sort.Strings(result)

	return result, nil
}
