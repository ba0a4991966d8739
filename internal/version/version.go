package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

// These variables can be set at build time via ldflags:
//
//	go build -ldflags="-X github.com/muurk/radioctl/internal/version.Version=v1.2.3 \
//	                   -X github.com/muurk/radioctl/internal/version.Commit=abc123 \
//	                   -X github.com/muurk/radioctl/internal/version.Date=2026-08-25"
//
// If not set, they are populated from Go build info at runtime when
// available, falling back to "dev" values.
var (
	// Version is the semantic version of the application
	Version = ""
	// Commit is the git commit hash
	Commit = ""
	// Date is the build date
	Date = ""
)

// Info bundles the resolved build identity for display.
type Info struct {
	Version string
	Commit  string
	Date    string
}

func init() {
	if Version == "" || Commit == "" || Date == "" {
		populateFromBuildInfo()
	}

	// Final fallback if we still don't have values
	if Version == "" {
		Version = "dev"
	}
	if Commit == "" {
		Commit = "unknown"
	}
	if Date == "" {
		Date = "unknown"
	}
}

// populateFromBuildInfo reads VCS details embedded by the Go toolchain
// when building from a git checkout.
func populateFromBuildInfo() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	var vcsRevision, vcsModified, vcsTime string
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			vcsRevision = setting.Value
		case "vcs.modified":
			vcsModified = setting.Value
		case "vcs.time":
			vcsTime = setting.Value
		}
	}

	if Commit == "" && vcsRevision != "" {
		Commit = shortHash(vcsRevision)
		if vcsModified == "true" {
			Commit += "-dirty"
		}
	}

	if vcsTime != "" {
		if t, err := time.Parse(time.RFC3339, vcsTime); err == nil {
			if Date == "" {
				Date = t.Format("2006-01-02")
			}
			// Build info carries no git tag, so a checkout build gets a
			// dated dev version.
			if Version == "" {
				Version = fmt.Sprintf("dev-%s", t.Format("20060102"))
			}
		}
	}
}

func shortHash(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}

// Get returns the resolved build identity.
func Get() Info {
	return Info{Version: Version, Commit: Commit, Date: Date}
}

// Full returns the full version string including commit
func Full() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}
