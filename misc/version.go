// Package misc keeps program identity in a single place.
package misc

import (
	"runtime/debug"
)

const appName = "pptgen"

var (
	version = "dev"
	// set by linker when building release binaries
	gitHash = ""
)

func GetAppName() string {
	return appName
}

// GetVersion returns program version, either set at link time or taken from
// module build information.
func GetVersion() string {
	if version != "dev" {
		return version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return version
}

// GetGitHash returns VCS revision program was built from if known.
func GetGitHash() string {
	if len(gitHash) > 0 {
		return gitHash
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
