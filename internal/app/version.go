package app

import "fmt"

// Version, Commit, and BuildTime are stamped by the release build:
//
//	go build -ldflags "-X github.com/okoshkin/lifelog-backend/internal/app.Version=1.2.0"
//
// A plain `go build` leaves the dev placeholders.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion renders the stamped build info for startup logs and the
// health endpoint.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
