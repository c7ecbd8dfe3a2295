// Package version holds build metadata injected by the container build.
package version

import "fmt"

// These variables are overridden at build time using -ldflags, for example:
//
//	-X github.com/atlanticdynamic/hellodevops/internal/version.Commit=$COMMIT_SHA
var (
	Version = "dev"
	Commit  = "none"
	Branch  = "unknown"
)

// Info is a snapshot of the build metadata.
type Info struct {
	Version string
	Commit  string
	Branch  string
}

// Get returns the build metadata for this binary.
func Get() Info {
	return Info{
		Version: Version,
		Commit:  Commit,
		Branch:  Branch,
	}
}

// String returns a single-line description suitable for the version command.
func (i Info) String() string {
	return fmt.Sprintf("%s (commit %s, branch %s)", i.Version, i.Commit, i.Branch)
}

// LogAttrs returns the build metadata as slog key/value pairs.
func (i Info) LogAttrs() []any {
	return []any{"version", i.Version, "commit", i.Commit, "branch", i.Branch}
}
