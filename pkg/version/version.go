// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package version

import (
	"fmt"
	"runtime"
)

// Set at build time with -ldflags "-X github.com/kegmil/catalog-cli/pkg/version.Version=..."
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func GetVersion() string {
	return Version
}

// UserAgent identifies the binary in debug logs
func UserAgent() string {
	return fmt.Sprintf("catalog/%s (%s/%s)", Version, runtime.GOOS, runtime.GOARCH)
}

func GetBuildInfo() string {
	return fmt.Sprintf("Catalog CLI\nVersion: %s\nGit Commit: %s\nBuild Date: %s\nGo Version: %s\nOS/Arch: %s/%s",
		Version,
		GitCommit,
		BuildDate,
		runtime.Version(),
		runtime.GOOS,
		runtime.GOARCH,
	)
}
