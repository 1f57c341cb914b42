// Package settings provides build metadata, per-invocation options, and
// context helpers shared by the lsx CLI and its internal packages.
package settings

// CliBinaryName is the canonical binary name for this tool.
const CliBinaryName = "lsx"

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

// Run holds the resolved options for a single listing. Flags, the config
// file and the embedded defaults have already been merged when a Run is built.
type Run struct {
	MinLogLevel int8
	Directory   string
	ShowSize    bool
	ShowType    bool
	Filter      string
	Strict      bool
	NoColor     bool
	// Width overrides terminal detection when positive.
	Width int
}

// NewCliParams returns the defaults used before flags and config are applied.
func NewCliParams() *Run {
	return &Run{
		MinLogLevel: 0,
		Directory:   ".",
	}
}
