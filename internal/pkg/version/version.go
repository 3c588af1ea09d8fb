package version

import (
	"fmt"
	"runtime"
)

// 構建時通過 -ldflags "-X" 注入
var (
	Version   = "dev"
	BuildTime = ""
	GoVersion = runtime.Version()
	GitCommit = ""
)

// Short 例如 v1.0.0 (abcdef01)
func Short() string {
	if GitCommit != "" {
		return fmt.Sprintf("v%s (%s)", Version, GitCommit)
	}
	return "v" + Version
}

// Info 多行構建信息
func Info() string {
	return fmt.Sprintf(
		"colorstk v%s\nBuild Time: %s\nGo Version: %s\nGit Commit: %s",
		Version, BuildTime, GoVersion, GitCommit,
	)
}
