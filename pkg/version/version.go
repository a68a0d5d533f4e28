// Package version records build-time version information for the
// rangecurve binary.
package version

import "runtime/debug"

// Build metadata, overridden at link time via -ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

const develVersion = "(devel)"

// InitBinaryVersion fills Version from the embedded module build info when
// it was not set at link time.
func InitBinaryVersion() {
	if Version != "dev" {
		return
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	if v := info.Main.Version; v != "" && v != develVersion {
		Version = v
	}
}
