// Package version reports the harmonia build. The variables below are set at
// link time, e.g.
//
//	go build -ldflags "-X github.com/jmylchreest/harmonia/internal/version.Version=1.2.0"
package version

import (
	"fmt"
	"runtime"
)

// Build metadata. Unset values keep their placeholders.
var (
	Version   = "dev"
	Commit    = "unknown"
	Date      = "unknown" // RFC3339
	GoVersion = runtime.Version()
)

// Info is the build metadata in one value, e.g. for JSON output.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetInfo collects the build metadata and the running platform.
func GetInfo() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: GoVersion,
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String is the line printed by "harmonia version". Commit and date are only
// shown when both were supplied at build time.
func String() string {
	info := GetInfo()
	if Commit == "unknown" || Date == "unknown" {
		return fmt.Sprintf("harmonia version %s (%s, %s)", info.Version, info.GoVersion, info.Platform)
	}
	return fmt.Sprintf("harmonia version %s (commit: %s, built: %s, %s, %s)",
		info.Version, shortCommit(info.Commit), info.Date, info.GoVersion, info.Platform)
}

// Short is the bare version, used for --version.
func Short() string {
	return Version
}

func shortCommit(c string) string {
	if len(c) > 8 {
		return c[:8]
	}
	return c
}
