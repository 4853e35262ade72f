package version

import (
	"runtime"

	"github.com/carlmjohnson/versioninfo"
)

// Build information. Populated at build-time via ldflags, with
// debug.BuildInfo fallbacks via versioninfo for plain `go install`.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Short returns a one-line version string for --version output
func Short() string {
	if Version != "dev" {
		return Version
	}
	return versioninfo.Short()
}

// Info returns version information
func Info() map[string]string {
	v := map[string]string{
		"version":    Version,
		"git_commit": GitCommit,
		"build_date": BuildDate,
		"go_version": runtime.Version(),
	}
	if v["git_commit"] == "unknown" {
		v["git_commit"] = versioninfo.Revision
	}
	if v["build_date"] == "unknown" && !versioninfo.LastCommit.IsZero() {
		v["build_date"] = versioninfo.LastCommit.Format("2006-01-02")
	}
	return v
}
