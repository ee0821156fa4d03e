package handler

import (
	"net/http"
	"os"
	"runtime"
	"runtime/debug"
	"sync"
)

// VersionInfo describes the running binary and the active catalog
type VersionInfo struct {
	Version        string `json:"version"`
	GoVersion      string `json:"go_version"`
	BuildTime      string `json:"build_time,omitempty"`
	GitCommit      string `json:"git_commit,omitempty"`
	CatalogVersion string `json:"catalog_version,omitempty"`
}

// Overridden with -ldflags "-X .../internal/handler.Version=..."
var (
	Version   = ""
	BuildTime = ""
	GitCommit = ""
)

// buildInfo resolves once: ldflags first, then VERSION from the environment,
// then the VCS stamp the Go toolchain embeds.
var buildInfo = sync.OnceValue(func() VersionInfo {
	info := VersionInfo{
		Version:   Version,
		GoVersion: runtime.Version(),
		BuildTime: BuildTime,
		GitCommit: GitCommit,
	}
	if info.Version == "" {
		info.Version = os.Getenv("VERSION")
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch {
			case s.Key == "vcs.revision" && info.GitCommit == "":
				info.GitCommit = s.Value
			case s.Key == "vcs.time" && info.BuildTime == "":
				info.BuildTime = s.Value
			}
		}
		if info.Version == "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
	}

	if info.Version == "" {
		info.Version = "dev"
	}
	return info
})

// HandleVersion reports build information plus the active catalog version
// @Summary Get version
// @Tags health
// @Produce json
// @Success 200 {object} VersionInfo
// @Router /version [get]
func HandleVersion(catalogs CatalogReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		info := buildInfo()
		if c, err := catalogs.Current(); err == nil {
			info.CatalogVersion = c.Version()
		}
		respondJSON(w, http.StatusOK, info)
	}
}
