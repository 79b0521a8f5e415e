package version

import (
	"fmt"
	"runtime/debug"
	"strings"
	"time"
)

// module is the identity stamped into default User-Agent strings.
const module = "httpengine"

// Set at build time via -ldflags. Binaries built without stamping fall
// back to the VCS metadata Go embeds in the build info.
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// Info describes the build of the engine embedded in a binary.
type Info struct {
	Version   string    `json:"version"`
	Commit    string    `json:"commit,omitempty"`
	GoVersion string    `json:"go_version,omitempty"`
	BuildDate time.Time `json:"build_date,omitempty"`
	Modified  bool      `json:"modified,omitempty"`
}

// Get resolves the build info, preferring -ldflags values and falling back
// to the VCS settings in debug.ReadBuildInfo.
func Get() Info {
	info := Info{
		Version: Version,
		Commit:  Commit,
	}
	if BuildTime != "" {
		if t, err := time.Parse(time.RFC3339, BuildTime); err == nil {
			info.BuildDate = t
		}
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		info.GoVersion = bi.GoVersion
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if info.Commit == "" {
					info.Commit = shorten(s.Value)
				}
			case "vcs.modified":
				info.Modified = s.Value == "true"
			case "vcs.time":
				if info.BuildDate.IsZero() {
					if t, err := time.Parse(time.RFC3339, s.Value); err == nil {
						info.BuildDate = t
					}
				}
			}
		}
	}
	return info
}

// Release reports whether this is a stamped, unmodified release build.
func (i Info) Release() bool {
	return i.Version != "dev" && !strings.Contains(i.Version, "dirty") && !i.Modified
}

// Short returns the compact form used in logs: "1.2.0+abc1234".
func (i Info) Short() string {
	s := i.Version
	if i.Commit != "" {
		s += "+" + shorten(i.Commit)
	}
	if i.Modified {
		s += "+dirty"
	}
	return s
}

// String returns the long form shown by embedding applications.
func (i Info) String() string {
	s := fmt.Sprintf("%s %s", module, i.Short())
	if !i.BuildDate.IsZero() {
		s += fmt.Sprintf(" (built %s)", i.BuildDate.UTC().Format(time.RFC3339))
	}
	if i.GoVersion != "" {
		s += " " + i.GoVersion
	}
	return s
}

// UserAgent returns the User-Agent value the engine sends when neither the
// engine config nor the request sets one.
func UserAgent() string {
	return module + "/" + Get().Version
}

func shorten(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}
