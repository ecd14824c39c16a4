// Package version exposes the build version shared by all binaries.
package version

// version is overridden at build time via
// -ldflags "-X github.com/MikailBag/simple-game/internal/version.version=...".
var version = "v1.0.0"

func Get() string {
	return version
}
