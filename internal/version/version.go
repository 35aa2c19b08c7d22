// Package version provides build information for awscmdlet
package version

import "runtime"

// These variables are set via ldflags during build time
var (
	// Version is the semantic version of awscmdlet
	Version = "dev"

	// GitCommit is the git commit SHA
	GitCommit = "unknown"

	// BuildDate is the date when the binary was built
	BuildDate = "unknown"
)

// GetVersion returns the version string
func GetVersion() string {
	if Version == "" {
		return "dev"
	}
	return Version
}

// Info contains all version information
type Info struct {
	Version   string `json:"version" yaml:"version"`
	GitCommit string `json:"gitCommit" yaml:"gitCommit"`
	BuildDate string `json:"buildDate" yaml:"buildDate"`
	GoVersion string `json:"goVersion" yaml:"goVersion"`
}

// GetInfo returns all version information
func GetInfo() Info {
	return Info{
		Version:   GetVersion(),
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
	}
}

// AppID identifies awscmdlet in the SDK user agent.
func AppID() string {
	return "awscmdlet/" + GetVersion()
}
