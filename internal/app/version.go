package app

import "fmt"

// Version, Commit and BuildTime are set with -ldflags at build time, e.g.
// -X github.com/heartmarshall/pokedex-pocket/internal/app.Version=1.0.0
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion formats the version for startup logs, /health and the CLI.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
