package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo(t *testing.T) {
	tests := []struct {
		name      string
		info      Info
		wantStr   string
		wantShort string
		wantValid bool
	}{
		{
			name:      "dev build",
			info:      Info{CommitHash: "dev", BuildTime: "unknown", Version: "dev"},
			wantStr:   "tyname dev (commit dev, built unknown)",
			wantShort: "dev",
			wantValid: true,
		},
		{
			name:      "tagged build",
			info:      Info{CommitHash: "0123456789abcdef", BuildTime: "2026-10-18", Version: "v0.1.0"},
			wantStr:   "tyname v0.1.0 (commit 0123456789abcdef, built 2026-10-18)",
			wantShort: "0123456",
			wantValid: true,
		},
		{
			name:      "bad tag",
			info:      Info{CommitHash: "abc", Version: "release-one"},
			wantStr:   "tyname release-one (commit abc, built )",
			wantShort: "abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStr, tt.info.String())
			assert.Equal(t, tt.wantShort, tt.info.Short())
			if tt.wantValid {
				assert.NoError(t, tt.info.Valid())
			} else {
				assert.Error(t, tt.info.Valid())
			}
		})
	}
}

func TestGet(t *testing.T) {
	info := Get()
	assert.Equal(t, Version, info.Version)
	assert.NotEmpty(t, info.GoVersion)
	assert.Contains(t, info.Platform, "/")
}
