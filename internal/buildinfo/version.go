// Package buildinfo reports what build of okc is running.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

// Info describes the running binary.
type Info struct {
	Version   string `json:"version"`
	Revision  string `json:"revision,omitempty"`
	Modified  bool   `json:"modified,omitempty"`
	GoVersion string `json:"goVersion,omitempty"`
}

// Read collects build metadata. It never fails; missing data stays empty
// and Version falls back to "unknown".
func Read() Info {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return Info{Version: "unknown"}
	}
	return fromBuildInfo(info)
}

// Version returns the module version for tagged installs and
// "dev-<hash>[-dirty]" or "dev" otherwise.
func Version() string {
	return Read().Version
}

// UserAgent is the User-Agent header mcgen sends upstream.
func UserAgent() string {
	return "okc/" + Version()
}

func fromBuildInfo(info *debug.BuildInfo) Info {
	out := Info{GoVersion: info.GoVersion}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			out.Revision = setting.Value
		case "vcs.modified":
			out.Modified = setting.Value == "true"
		}
	}

	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		out.Version = info.Main.Version
		return out
	}
	out.Version = devVersion(out.Revision, out.Modified)
	return out
}

func devVersion(revision string, modified bool) string {
	if revision == "" {
		return "dev"
	}
	// Standard short hash length.
	if len(revision) > 12 {
		revision = revision[:12]
	}
	v := fmt.Sprintf("dev-%s", revision)
	if modified {
		v += "-dirty"
	}
	return v
}
