// Package version derives the running build's identity from build
// metadata: an -ldflags override wins, then VCS info from
// debug.BuildInfo, then "dev".
package version

import "runtime/debug"

// AppName appears in version strings and user agents.
const AppName = "triggerflow"

// gitCommitOverride is injected via -ldflags for container builds where
// .git is unavailable.
var gitCommitOverride string

// GitCommit is the short commit hash, or "dev" when no build info is
// available (go test, non-git builds).
var GitCommit = resolveCommit()

func resolveCommit() string {
	if gitCommitOverride != "" {
		return short(gitCommitOverride)
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			return short(s.Value)
		}
	}
	return "dev"
}

func short(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}

// Full renders "triggerflow/<commit>" for user agents and logs.
func Full() string {
	return AppName + "/" + GitCommit
}
