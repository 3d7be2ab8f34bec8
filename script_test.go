package dockerhubutil

import (
	"strings"
	"testing"
	"time"
)

func TestRenderScript(t *testing.T) {
	t.Parallel()

	assignments := []string{
		"export SENZING_DOCKER_IMAGE_VERSION_G2LOADER=1.2",
		"export SENZING_DOCKER_IMAGE_VERSION_POSTGRES=11.6",
	}
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	got := RenderScript(assignments, "1.1.0", now)

	want := "#!/usr/bin/env bash\n" +
		"\n" +
		"# Generated on 2026-08-30 by https://github.com/senzing-garage/dockerhub-util version: 1.1.0\n" +
		"\n" +
		"export SENZING_DOCKER_IMAGE_VERSION_G2LOADER=1.2\n" +
		"export SENZING_DOCKER_IMAGE_VERSION_POSTGRES=11.6\n"
	if got != want {
		t.Fatalf("script:\n%q\nwant:\n%q", got, want)
	}
}

func TestRenderScript_NoAssignments(t *testing.T) {
	t.Parallel()

	got := RenderScript(nil, "1.1.0", time.Now())

	if !strings.HasPrefix(got, "#!/usr/bin/env bash\n") {
		t.Fatalf("missing shebang: %q", got)
	}
	if !strings.HasSuffix(got, "\n") {
		t.Fatalf("missing trailing newline: %q", got)
	}
}
