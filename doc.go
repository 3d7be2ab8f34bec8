/*
Package dockerhubutil discovers the latest versions of Docker Hub repositories
and renders them as shell export statements.

The package is split into two small pieces:

 1. Client talks to the Docker Hub HTTP API: the v1 surface for listing
    repository tags and the v2 surface for listing an organization's
    repositories. An optional auth token is attached as a JWT authorization
    header.
 2. Resolver walks a table of repositories, skips the network for entries
    with a pinned version, filters placeholder tags ("latest",
    "experimental") from the rest, picks the newest remaining tag, and
    returns sorted "export NAME=VALUE" lines.

Tag ordering notes:
  - The default ordering is a plain lexicographic maximum over tag strings,
    so "1.2" beats "1.10". This matches the historical behavior and is
    relied upon by existing pin scripts.
  - OrderingSemver is an opt-in fix that compares tags by SemVer precedence
    instead; tags that do not parse as SemVer only win when no tag parses.

Usage example:

	cfg := dockerhubutil.DefaultConfig()
	log := dockerhubutil.NewLogger(cfg.Debug)

	entries, err := dockerhubutil.LoadRepositories("")
	if err != nil {
		// ...
	}

	resolver := dockerhubutil.NewResolver(dockerhubutil.NewClient(cfg, log), cfg, log)
	lines, err := resolver.LatestVersions(context.Background(), entries)
	if err != nil {
		// ...
	}

	fmt.Print(dockerhubutil.RenderScript(lines, "1.1.0", time.Now()))
*/
package dockerhubutil
