// Package version provides build version information for the application.
// This is a separate package to avoid import cycles between cli and filesystem packages.
package version

import (
	"runtime/debug"
)

// Version is the build version string, set by ldflags during build.
// Format: vX.Y.Z or vX.Y.Z-dev for development builds.
var Version = "v1.0.0"

// Commit is the short source revision, set by ldflags during build:
//
//	go build -ldflags "-X github.com/ZanzyTHEbar/uuid-renamer/renamer/version.Commit=$(git rev-parse --short HEAD)"
var Commit = ""

const shortRevisionLen = 7

// Revision returns the short source revision the binary was built from.
// Falls back to the vcs.revision build setting, then to "unknown".
func Revision() string {
	if Commit != "" {
		return Commit
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" && setting.Value != "" {
				return shorten(setting.Value)
			}
		}
	}
	return "unknown"
}

// String returns the version with its extended build identifier, e.g. "v1.0.0 (3f2a9c1)".
func String() string {
	return Version + " (" + Revision() + ")"
}

func shorten(rev string) string {
	if len(rev) > shortRevisionLen {
		return rev[:shortRevisionLen]
	}
	return rev
}
