package app

import (
	"fmt"
	"log/slog"
)

// Set at build time, e.g.
//
//	go build -ldflags "-X github.com/heartmarshall/tcpchat/internal/app.Version=1.2.0" ./cmd/server
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns the one-line version string.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}

func buildAttrs() slog.Attr {
	return slog.Group("build",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("built", BuildTime),
	)
}
