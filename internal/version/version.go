// Package version holds the build-time version string, overridden at
// link time the usual Go CLI way (-ldflags "-X ...=..."), replacing the
// teacher's git-describe/channel machinery that depended on control plane
// concerns this program doesn't have.
package version

// Version is set via -ldflags at build time; "dev" otherwise.
var Version = "dev"
