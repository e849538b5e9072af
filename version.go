package gopidgin

// Version information for gopidgin.
// These values can be overridden at build time using ldflags:
//
//	go build -ldflags "-X github.com/ZaguanLabs/gopidgin.GitCommit=$(git rev-parse HEAD)"
const (
	// Name is the application name.
	Name = "gopidgin"

	// Description is a short description of the application.
	Description = "Rule-based English / Hawaiian Pidgin translation engine"

	// Version is the semantic version of the application.
	Version = "0.1.0"

	// Repository is the source code repository URL.
	Repository = "https://github.com/ZaguanLabs/gopidgin"

	// License is the software license.
	License = "MIT"
)

// BuildInfo contains build-time information, set via ldflags.
var (
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// FullVersion returns the version string with the short commit, if known.
func FullVersion() string {
	v := Version
	if GitCommit != "unknown" && GitCommit != "" {
		short := GitCommit
		if len(short) > 7 {
			short = short[:7]
		}
		v += "+" + short
	}
	return v
}
