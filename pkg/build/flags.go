// SPDX-License-Identifier: MIT
//
// Package build manages build information embedded into the binary at
// compile time with linker flags: application name, build timestamp,
// Git commit, semantic version and a unique build id. Release builds
// inject all of them, for example:
//
//	go build -ldflags "\
//	  -X github.com/nikhiloz/generic/pkg/build.buildName=generic \
//	  -X github.com/nikhiloz/generic/pkg/build.buildVersion=0.3.0 \
//	  -X github.com/nikhiloz/generic/pkg/build.buildCommit=$(git rev-parse --short HEAD) \
//	  -X github.com/nikhiloz/generic/pkg/build.buildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ) \
//	  -X github.com/nikhiloz/generic/pkg/build.buildUuid=$(uuidgen)"
//
// Development builds run without any of them and report "unknown".
package build

import "fmt"

type ldFlags struct {
	Name        string // Application name
	Description string // One-line description for CLI help
	Time        string // Build timestamp
	Commit      string // Git commit hash
	Version     string // Semantic version
	Uuid        string // Unique build identifier
}

// Package-level variables for build information. These are populated
// by -ldflags during compilation. Default values of "unknown" are
// used during development.
var (
	buildName    string
	buildTime    string
	buildCommit  string
	buildVersion string
	buildUuid    string
	buildFlags   = &ldFlags{
		Name:        "generic",
		Description: "Bit manipulation and concurrency walkthroughs",
		Time:        "unknown",
		Commit:      "unknown",
		Version:     "unknown",
		Uuid:        "unknown",
	}
)

// Initialize copies build information from the ldflags variables into
// the buildFlags struct, keeping the "unknown" default for any flag
// the build did not inject. Call once early in program startup.
func Initialize() {
	if buildName != "" {
		buildFlags.Name = buildName
	}
	if buildTime != "" {
		buildFlags.Time = buildTime
	}
	if buildCommit != "" {
		buildFlags.Commit = buildCommit
	}
	if buildVersion != "" {
		buildFlags.Version = buildVersion
	}
	if buildUuid != "" {
		buildFlags.Uuid = buildUuid
	}
}

// GetBuildFlags returns the current build information. Call
// Initialize() first so injected values are visible.
func GetBuildFlags() *ldFlags {
	return buildFlags
}

// Summary renders the build information on one line for --version
// output and startup logging.
func Summary() string {
	return fmt.Sprintf("%s %s (commit %s, built %s)",
		buildFlags.Name, buildFlags.Version, buildFlags.Commit, buildFlags.Time)
}
