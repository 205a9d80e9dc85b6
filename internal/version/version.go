package version

import "fmt"

// Build information, injected with -ldflags "-X ..." by the release build.
var (
	// Version is the current version of repopulse
	Version = "dev"

	// Commit is the git commit hash the binary was built from
	Commit = "unknown"

	// Date is the build date
	Date = "unknown"
)

// GetVersion returns the current version
func GetVersion() string {
	if Version == "" {
		return "dev"
	}
	return Version
}

// GetFullVersion returns the version together with commit and build date
func GetFullVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", GetVersion(), Commit, Date)
}
