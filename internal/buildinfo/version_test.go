package buildinfo

import (
	"runtime/debug"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromBuildInfo(t *testing.T) {
	tests := []struct {
		name string
		info *debug.BuildInfo
		want Info
	}{
		{
			name: "no vcs info",
			info: &debug.BuildInfo{GoVersion: "go1.25.8"},
			want: Info{Version: "dev", GoVersion: "go1.25.8"},
		},
		{
			name: "long revision is truncated",
			info: &debug.BuildInfo{
				Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "abc123def456789"}},
			},
			want: Info{Version: "dev-abc123def456", Revision: "abc123def456789"},
		},
		{
			name: "dirty tree",
			info: &debug.BuildInfo{
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "abc123"},
					{Key: "vcs.modified", Value: "true"},
				},
			},
			want: Info{Version: "dev-abc123-dirty", Revision: "abc123", Modified: true},
		},
		{
			name: "tagged install wins over vcs",
			info: &debug.BuildInfo{
				Main:     debug.Module{Version: "v0.3.1"},
				Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "abc123"}},
			},
			want: Info{Version: "v0.3.1", Revision: "abc123"},
		},
		{
			name: "devel main version",
			info: &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}},
			want: Info{Version: "dev"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fromBuildInfo(tt.info))
		})
	}
}

func TestVersion(t *testing.T) {
	v := Version()
	assert.NotEmpty(t, v)
	assert.True(t,
		strings.HasPrefix(v, "v") || strings.HasPrefix(v, "dev") || v == "unknown",
		"unexpected version %q", v)
	assert.Equal(t, "okc/"+v, UserAgent())
}
