// Package buildinfo holds version information stamped in at link time:
//
//	go build -ldflags "-X github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/spqrnet
package buildinfo

import (
	"fmt"
	"runtime"
)

var (
	// Version is the release tag, "dev" for local builds.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// Info is the JSON form served by the health endpoint.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
}

// Get returns the current build information.
func Get() Info {
	return Info{Version: Version, Commit: Commit, Date: Date, GoVersion: runtime.Version()}
}

// String returns the build information as "key: value" lines.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s\ngo: %s", Version, Commit, Date, runtime.Version())
}

// Template returns the cobra version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
