// Package sprig holds the module version. The widgets live in the buffer,
// input, listbox, logview and focus packages.
package sprig

import (
	_ "embed"
	"regexp"
	"strconv"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version returns the sprig version string in SemVer format (without `v`).
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns the git tag form of Version (with leading `v`).
func VersionTag() string {
	return "v" + Version()
}

// IsSemver reports whether v matches SemVer 2.0.0.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}

// Compatible reports whether files written by sprig version v can be read by
// this version: the major versions match, and below 1.0.0 the minor versions
// match too.
func Compatible(v string) bool {
	major, minor, ok := release(v)
	if !ok {
		return false
	}
	curMajor, curMinor, ok := release(Version())
	if !ok || major != curMajor {
		return false
	}
	return major > 0 || minor == curMinor
}

func release(v string) (major, minor int, ok bool) {
	m := semverRE.FindStringSubmatch(strings.TrimSpace(v))
	if m == nil {
		return 0, 0, false
	}
	major, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, 0, false
	}
	minor, err = strconv.Atoi(m[2])
	if err != nil {
		return 0, 0, false
	}
	return major, minor, true
}
