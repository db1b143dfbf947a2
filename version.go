// Package quill holds the build metadata shared by the quill packages.
package quill

import (
	_ "embed"
	"regexp"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version returns the editor version in SemVer format (without `v`). It is
// what the welcome banner shows.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// UserAgent is the `-version` output: program name and tagged version.
func UserAgent() string {
	return "quill v" + Version()
}

// IsSemver reports whether v matches SemVer 2.0.0.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}
