// Package settings provides build metadata, runtime configuration, and
// context helpers used across the auditexpr CLI and library packages.
package settings

// CliBinaryName is the canonical binary name for this tool.
const CliBinaryName = "auditexpr"

// VersionInformation is populated at build time via ldflags and holds the
// commit hash, semantic version, and build timestamp of the running binary.
var VersionInformation = VersionInfo{
	Commit:       "unknown",
	BuildVersion: "v0.0.0-nightly",
	BuildTime:    "unknown",
}

// VersionInfo holds metadata about the build, including the commit hash,
// build version, and build timestamp.
type VersionInfo struct {
	Commit       string
	BuildVersion string
	BuildTime    string
}

// Run holds configuration settings for a single execution of the CLI.
type Run struct {
	// MinLogLevel is the minimum zap level emitted (negative values enable
	// debug output, matching zapcore.Level semantics).
	MinLogLevel int8

	// StatePath is an optional filter-state document (JSON/YAML/TOML) that
	// seeds the compile command.
	StatePath string

	// FacetsPath is an optional facet payload used to derive catalog
	// common values.
	FacetsPath string

	IsQuiet     bool
	NoColor     bool
	ExitOnError bool
}

// NewCliParams returns a Run populated with the CLI defaults.
func NewCliParams() *Run {
	return &Run{
		MinLogLevel: 0,
		IsQuiet:     false,
		NoColor:     false,
		ExitOnError: true,
	}
}
