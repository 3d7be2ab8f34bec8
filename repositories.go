package dockerhubutil

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// The default repository table, shipped with the binary.
//
//go:embed repositories.yaml
var defaultRepositories []byte

// repositoryFile is the YAML shape of a repository table.
type repositoryFile struct {
	Repositories map[string]repositoryRecord `yaml:"repositories"`
}

type repositoryRecord struct {
	EnvironmentVariable string `yaml:"environment-variable"`
	Version             string `yaml:"version"`
	Organization        string `yaml:"organization"`
}

// LoadRepositories reads a repository table from path, or the embedded
// default table when path is empty. Entries come back sorted by repository
// name so runs are deterministic.
func LoadRepositories(path string) ([]RepositoryEntry, error) {
	data := defaultRepositories
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read repository table: %w", err)
		}
	}

	var file repositoryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse repository table: %w", err)
	}
	if len(file.Repositories) == 0 {
		return nil, fmt.Errorf("repository table is empty")
	}

	entries := make([]RepositoryEntry, 0, len(file.Repositories))
	for name, rec := range file.Repositories {
		if rec.EnvironmentVariable == "" {
			return nil, fmt.Errorf("repository %q has no environment-variable", name)
		}

		entries = append(entries, RepositoryEntry{
			Name:                name,
			EnvironmentVariable: rec.EnvironmentVariable,
			Version:             rec.Version,
			Organization:        rec.Organization,
		})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })

	return entries, nil
}
