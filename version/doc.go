// Package version provides build version information embedding for
// applications shipping the HTTP engine.
//
// Version, git commit, and build time are set at compile time via
// -ldflags, with debug.ReadBuildInfo VCS metadata as the fallback:
//
//	go build -ldflags "-X github.com/kbukum/httpengine/version.Version=1.0.0"
package version
