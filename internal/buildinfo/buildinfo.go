// Package buildinfo carries the version, commit and date injected with
// ldflags and renders them for the version command.
package buildinfo

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Info describes the running binary.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	// Release is false for development and pre-release builds.
	Release bool `json:"release"`
}

// New normalizes version and returns the build info. A version that parses
// as semver (with or without a leading "v") is rendered canonically, so
// "v1.2" becomes "1.2.0". Anything else, such as "dev", is kept as is.
func New(version, commit, date string) Info {
	return Info{
		Version: Normalize(version),
		Commit:  commit,
		Date:    date,
		Release: IsRelease(version),
	}
}

// Normalize returns the canonical semver form of version, or version
// unchanged when it is not a semantic version.
func Normalize(version string) string {
	v, err := parseSemver(version)
	if err != nil {
		return version
	}
	return v.String()
}

// IsRelease reports whether version is a semver release without a
// pre-release suffix.
func IsRelease(version string) bool {
	v, err := parseSemver(version)
	if err != nil {
		return false
	}
	return v.Prerelease() == ""
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(version, "v"))
}
