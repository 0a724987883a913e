// Package env holds build-time metadata injected via -ldflags.
package env

const AppName = "binsight"

var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildTime  = "unknown"
)
