package version

import (
	"fmt"
	"runtime"
)

// Set through -ldflags "-X github.com/harlequix/hamfec/version.Version=..."
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
	GoVersion = runtime.Version()
	OsArch    = fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
)
