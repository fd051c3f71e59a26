// Package misc keeps small helpers describing the program itself.
package misc

import (
	"runtime/debug"
	"sync"
)

const appName = "gridgen"

// set by the linker during release builds
var (
	version = "development"
	gitHash = ""
)

// GetAppName returns short program name used in logs, reports and temp files.
func GetAppName() string {
	return appName
}

// GetVersion returns program version as set during the build.
func GetVersion() string {
	return version
}

var readBuildInfo = sync.OnceValue(func() string {
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return ""
})

// GetGitHash returns VCS revision the program was built from. Linker supplied
// value takes precedence, otherwise we attempt to read build info.
func GetGitHash() string {
	if len(gitHash) != 0 {
		return gitHash
	}
	return readBuildInfo()
}
