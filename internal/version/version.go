// Package version carries build metadata injected with -ldflags, e.g.
//
//	go build -ldflags "-X github.com/atlasbanco/website/internal/version.Version=1.2.0"
package version

import "fmt"

var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// Build is the version block reported by /health.
type Build struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildTime string `json:"build_time"`
}

func Current() Build {
	return Build{
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
	}
}

// String renders the build as "1.2.0 (abc1234)".
func (b Build) String() string {
	return fmt.Sprintf("%s (%s)", b.Version, b.GitCommit)
}
