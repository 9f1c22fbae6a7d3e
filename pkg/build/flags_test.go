// SPDX-License-Identifier: MIT
package build

import (
	"os"
	"strings"
	"testing"
)

var (
	origName    string
	origTime    string
	origCommit  string
	origVersion string
	origUuid    string
	origFlags   ldFlags
)

func TestMain(m *testing.M) {
	origName = buildName
	origTime = buildTime
	origCommit = buildCommit
	origVersion = buildVersion
	origUuid = buildUuid
	if buildFlags != nil {
		origFlags = *buildFlags
	}

	exitCode := m.Run()

	buildName = origName
	buildTime = origTime
	buildCommit = origCommit
	buildVersion = origVersion
	buildUuid = origUuid
	if buildFlags != nil {
		*buildFlags = origFlags
	}

	os.Exit(exitCode)
}

func resetFlags() {
	buildFlags = &ldFlags{
		Name:        "generic",
		Description: "Bit manipulation and concurrency walkthroughs",
		Time:        "unknown",
		Commit:      "unknown",
		Version:     "unknown",
		Uuid:        "unknown",
	}
}

func TestInitialize(t *testing.T) {
	tests := []struct {
		name        string
		buildName   string
		buildTime   string
		buildCommit string
		buildVer    string
		buildUuid   string
		wantName    string
		wantVersion string
	}{
		{
			"No flags injected keeps defaults",
			"", "", "", "", "",
			"generic",
			"unknown",
		},
		{
			"Partial injection keeps defaults for the rest",
			"testapp", "", "", "v1.0.0", "",
			"testapp",
			"v1.0.0",
		},
		{
			"Full injection",
			"testapp", "2025-04-13", "abcdef123", "v1.0.0", "b5c9d7e1",
			"testapp",
			"v1.0.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()

			buildName = tt.buildName
			buildTime = tt.buildTime
			buildCommit = tt.buildCommit
			buildVersion = tt.buildVer
			buildUuid = tt.buildUuid

			Initialize()

			if buildFlags.Name != tt.wantName {
				t.Errorf("buildFlags.Name = %v, want %v", buildFlags.Name, tt.wantName)
			}
			if buildFlags.Version != tt.wantVersion {
				t.Errorf("buildFlags.Version = %v, want %v", buildFlags.Version, tt.wantVersion)
			}
		})
	}
}

func TestGetBuildFlags(t *testing.T) {
	expected := ldFlags{
		Name:    "testapp",
		Time:    "2025-04-13",
		Commit:  "abcdef123",
		Version: "v1.0.0",
		Uuid:    "b5c9d7e1",
	}
	buildFlags = &expected

	flags := GetBuildFlags()

	if flags.Name != expected.Name ||
		flags.Time != expected.Time ||
		flags.Commit != expected.Commit ||
		flags.Version != expected.Version ||
		flags.Uuid != expected.Uuid {
		t.Errorf("GetBuildFlags() = %+v, want %+v", flags, expected)
	}
}

func TestSummary(t *testing.T) {
	resetFlags()
	buildName = "testapp"
	buildTime = "2025-04-13"
	buildCommit = "abcdef123"
	buildVersion = "v1.0.0"
	buildUuid = ""
	Initialize()

	got := Summary()
	for _, want := range []string{"testapp", "v1.0.0", "abcdef123", "2025-04-13"} {
		if !strings.Contains(got, want) {
			t.Errorf("Summary() = %q, missing %q", got, want)
		}
	}
}
