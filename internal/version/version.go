// Package version exposes build metadata injected at link time.
package version

//nolint:gochecknoglobals // These are overwritten with -ldflags during the release build.
var (
	// Version is the semantic version of the build.
	Version = "0.1.0"
	// Commit is the git commit the binary was built from.
	Commit = "none"
	// BuildTime is the moment the binary was built.
	BuildTime = "unknown"
)

// Short returns only the version number.
func Short() string {
	return Version
}

// Full returns the version, commit and build time in a single line.
func Full() string {
	return "version: " + Version + ", commit: " + Commit + ", built at: " + BuildTime
}
