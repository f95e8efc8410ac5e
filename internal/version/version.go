// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package version provides a single location to house the version information
// for bloomtool.
package version

import (
	"fmt"
	"regexp"
	"runtime/debug"
	"strconv"
)

// semverRE is a regular expression used to parse a semantic version string into
// its constituent parts.
var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)` +
	`(?:-((?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*)(?:\.(?:0|[1-9]\d*|\d*` +
	`[a-zA-Z-][0-9a-zA-Z-]*))*))?(?:\+([0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*))?$`)

var (
	// Version is the application version per the semantic versioning 2.0.0
	// spec (https://semver.org/).
	//
	// It is defined as a variable so it can be overridden during the build
	// process with:
	// '-ldflags "-X github.com/decred/bloom/internal/version.Version=fullsemver"'
	// if needed.
	//
	// It MUST be a full semantic version or the package will panic at
	// runtime.
	Version = "1.0.0-pre"

	// NOTE: The following values are set via init by parsing the above Version
	// string.

	// These fields are the individual semantic version components that define
	// the application version.
	Major         uint
	Minor         uint
	Patch         uint
	PreRelease    string
	BuildMetadata string
)

// semVer houses the parsed components of a semantic version string.
type semVer struct {
	major, minor, patch uint
	preRelease, build   string
}

// parseSemVer parses the semver components from the provided string.
func parseSemVer(s string) (semVer, error) {
	m := semverRE.FindStringSubmatch(s)
	if m == nil {
		return semVer{}, fmt.Errorf("malformed version string %q: does not "+
			"conform to semver specification", s)
	}

	var nums [3]uint
	for i, name := range []string{"major", "minor", "patch"} {
		val, err := strconv.ParseUint(m[i+1], 10, 0)
		if err != nil {
			return semVer{}, fmt.Errorf("malformed semver %s: %w", name, err)
		}
		nums[i] = uint(val)
	}
	return semVer{
		major:      nums[0],
		minor:      nums[1],
		patch:      nums[2],
		preRelease: m[4],
		build:      m[5],
	}, nil
}

// vcsCommitID returns the abbreviated VCS revision the binary was built from,
// if known.
func vcsCommitID() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	var vcs, revision string
	for _, bs := range bi.Settings {
		switch bs.Key {
		case "vcs":
			vcs = bs.Value
		case "vcs.revision":
			revision = bs.Value
		}
	}
	if vcs == "git" && len(revision) > 9 {
		revision = revision[:9]
	}
	return revision
}

// withCommit returns the version string with the provided VCS commit appended
// as build metadata when the version does not already carry build metadata.
func withCommit(v semVer, version, commit string) (string, string) {
	if v.build != "" || commit == "" {
		return version, v.build
	}
	return version + "+" + commit, commit
}

func init() {
	v, err := parseSemVer(Version)
	if err != nil {
		panic(err)
	}
	Major, Minor, Patch, PreRelease = v.major, v.minor, v.patch, v.preRelease
	Version, BuildMetadata = withCommit(v, Version, vcsCommitID())
}

// String returns the application version as a properly formed string per the
// semantic versioning 2.0.0 spec (https://semver.org/).
func String() string {
	return Version
}
