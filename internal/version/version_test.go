// Copyright (c) 2021-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package version

import "testing"

// TestSemVerParsing ensures parsing a semantic version string works as
// expected.
func TestSemVerParsing(t *testing.T) {
	tests := []struct {
		ver     string // semantic version string to parse
		want    semVer // expected components
		invalid bool   // expected error
	}{{
		ver:  "0.0.4",
		want: semVer{patch: 4},
	}, {
		ver:  "1.2.3",
		want: semVer{major: 1, minor: 2, patch: 3},
	}, {
		ver:  "1.1.2-prerelease+meta",
		want: semVer{1, 1, 2, "prerelease", "meta"},
	}, {
		ver:  "1.0.0-alpha.beta.1",
		want: semVer{major: 1, preRelease: "alpha.beta.1"},
	}, {
		ver:  "1.0.0-pre",
		want: semVer{major: 1, preRelease: "pre"},
	}, {
		ver:     "1",
		invalid: true,
	}, {
		ver:     "01.1.1",
		invalid: true,
	}, {
		ver:     "1.2.3-0123",
		invalid: true,
	}, {
		ver:     "1.2.3+meta!",
		invalid: true,
	}, {
		ver:     "99999999999999999999999.0.0",
		invalid: true,
	}}

	for _, test := range tests {
		got, err := parseSemVer(test.ver)
		if test.invalid != (err != nil) {
			t.Errorf("%q: unexpected err -- got %v, want invalid %v", test.ver,
				err, test.invalid)
			continue
		}
		if err != nil {
			continue
		}
		if got != test.want {
			t.Errorf("%q: unexpected components -- got %+v, want %+v",
				test.ver, got, test.want)
			continue
		}
	}
}

// TestWithCommit ensures the VCS commit is only appended as build metadata when
// the version does not already specify any.
func TestWithCommit(t *testing.T) {
	tests := []struct {
		name      string // test description
		version   string // version string
		commit    string // VCS commit
		want      string // expected version string
		wantBuild string // expected build metadata
	}{{
		name:      "no commit",
		version:   "1.0.0-pre",
		want:      "1.0.0-pre",
		wantBuild: "",
	}, {
		name:      "commit appended",
		version:   "1.0.0-pre",
		commit:    "abcdef012",
		want:      "1.0.0-pre+abcdef012",
		wantBuild: "abcdef012",
	}, {
		name:      "existing build metadata kept",
		version:   "1.0.0+release.local",
		commit:    "abcdef012",
		want:      "1.0.0+release.local",
		wantBuild: "release.local",
	}}

	for _, test := range tests {
		v, err := parseSemVer(test.version)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", test.name, err)
			continue
		}
		got, build := withCommit(v, test.version, test.commit)
		if got != test.want || build != test.wantBuild {
			t.Errorf("%q: got (%q, %q), want (%q, %q)", test.name, got, build,
				test.want, test.wantBuild)
			continue
		}
	}

	if String() != Version {
		t.Fatalf("String() %q does not match Version %q", String(), Version)
	}
}
