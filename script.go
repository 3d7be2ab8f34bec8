package dockerhubutil

import (
	"fmt"
	"strings"
	"time"
)

// RenderScript assembles the generated shell script: a shebang, a
// generated-by comment, and the export lines in the order given.
func RenderScript(assignments []string, version string, now time.Time) string {
	var b strings.Builder

	b.WriteString("#!/usr/bin/env bash\n\n")
	fmt.Fprintf(&b,
		"# Generated on %s by https://github.com/senzing-garage/dockerhub-util version: %s\n\n",
		now.Format("2006-01-02"), version)

	for _, line := range assignments {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	return b.String()
}
