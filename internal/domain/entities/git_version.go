package entities

import (
	"strings"

	"golang.org/x/mod/semver"
)

// MinimumScopedStashVersion is the first git release accepting pathspecs on "git stash push".
const MinimumScopedStashVersion = "v2.13.0"

// ParseGitVersion turns the output of "git --version" into a semver string
// ("git version 2.39.3 (Apple Git-146)" -> "v2.39.3"). It returns an empty
// string when no version can be recognized.
func ParseGitVersion(output string) string {
	fields := strings.Fields(output)
	if len(fields) < 3 || fields[0] != "git" || fields[1] != "version" { //nolint:mnd // "git version X"
		return ""
	}

	parts := strings.Split(fields[2], ".")
	if len(parts) > 3 { //nolint:mnd // major.minor.patch, drop vendor suffixes like ".windows.1"
		parts = parts[:3]
	}

	version := "v" + strings.Join(parts, ".")
	if !semver.IsValid(version) {
		return ""
	}
	return semver.Canonical(version)
}

// SupportsScopedStash reports whether the given semver git version can push
// a stash limited to specific paths.
func SupportsScopedStash(version string) bool {
	if !semver.IsValid(version) {
		return false
	}
	return semver.Compare(version, MinimumScopedStashVersion) >= 0
}

// DoctorReport summarizes the environment gitrevert runs in.
type DoctorReport struct {
	GitVersion           string
	ScopedStashSupported bool
	RepositoryRoot       string // Empty when the directory is not inside a repository
}
