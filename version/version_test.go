package version

import (
	"strings"
	"testing"
)

func stash() func() {
	v, c, b := Version, Commit, BuildTime
	return func() { Version, Commit, BuildTime = v, c, b }
}

func TestGetStamped(t *testing.T) {
	defer stash()()
	Version = "1.2.0"
	Commit = "abc1234"
	BuildTime = "2025-03-01T12:00:00Z"

	info := Get()
	if info.Version != "1.2.0" {
		t.Errorf("expected version '1.2.0', got %q", info.Version)
	}
	if info.Commit != "abc1234" {
		t.Errorf("expected commit 'abc1234', got %q", info.Commit)
	}
	if info.BuildDate.Year() != 2025 {
		t.Errorf("expected build year 2025, got %d", info.BuildDate.Year())
	}
}

func TestGetUnstamped(t *testing.T) {
	defer stash()()
	Version = "dev"
	Commit = ""
	BuildTime = ""

	info := Get()
	if info.Version != "dev" {
		t.Errorf("expected 'dev', got %q", info.Version)
	}
	if info.GoVersion == "" {
		t.Error("expected Go version from build info")
	}
}

func TestRelease(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want bool
	}{
		{"stamped", Info{Version: "1.0.0"}, true},
		{"dev", Info{Version: "dev"}, false},
		{"dirty version", Info{Version: "1.0.0-dirty"}, false},
		{"modified tree", Info{Version: "1.0.0", Modified: true}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.info.Release(); got != tc.want {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestShort(t *testing.T) {
	if got := (Info{Version: "dev"}).Short(); got != "dev" {
		t.Errorf("expected 'dev', got %q", got)
	}
	if got := (Info{Version: "1.0.0", Commit: "abc1234"}).Short(); got != "1.0.0+abc1234" {
		t.Errorf("expected '1.0.0+abc1234', got %q", got)
	}
	if got := (Info{Version: "1.0.0", Commit: "abcdef0123456789"}).Short(); got != "1.0.0+abcdef0" {
		t.Errorf("expected shortened commit, got %q", got)
	}
	if got := (Info{Version: "1.0.0", Commit: "abc1234", Modified: true}).Short(); got != "1.0.0+abc1234+dirty" {
		t.Errorf("expected dirty marker, got %q", got)
	}
}

func TestStringForm(t *testing.T) {
	defer stash()()
	Version = "1.0.0"
	Commit = "abc1234"
	BuildTime = "2025-03-01T12:00:00Z"

	s := Get().String()
	if !strings.HasPrefix(s, "httpengine 1.0.0+abc1234") {
		t.Errorf("unexpected prefix: %q", s)
	}
	if !strings.Contains(s, "built 2025-03-01") {
		t.Errorf("expected build date, got %q", s)
	}
}

func TestUserAgent(t *testing.T) {
	defer stash()()
	Version = "2.0.0"
	if got := UserAgent(); got != "httpengine/2.0.0" {
		t.Errorf("expected 'httpengine/2.0.0', got %q", got)
	}
}
