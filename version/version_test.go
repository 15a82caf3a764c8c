package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/jpoet/errors"
)

func TestGet(t *testing.T) {
	info := Get()
	assert.Equal(t, Version, info.Version)
	assert.True(t, strings.HasPrefix(info.GoVersion, "go"))
	assert.Contains(t, info.Platform, "/")
}

func TestInfoString(t *testing.T) {
	dev := Info{Version: "dev", CommitHash: "abc", BuildTime: "now"}
	assert.Equal(t, "jpoet dev (commit abc, built now)", dev.String())

	tagged := Info{Version: "1.2.3", CommitHash: "abc", BuildTime: "now"}
	assert.Equal(t, "jpoet 1.2.3 (commit abc, built now)", tagged.String())
}

func TestShort(t *testing.T) {
	assert.Equal(t, "0123456", Info{CommitHash: "0123456789"}.Short())
	assert.Equal(t, "dev", Info{CommitHash: "dev"}.Short())
}

func TestCheckConstraint(t *testing.T) {
	tests := []struct {
		name       string
		running    string
		constraint string
		wantErr    bool
	}{
		{"empty constraint", "0.1.0", "", false},
		{"dev build", "dev", ">= 9.0.0", false},
		{"satisfied", "0.3.1", ">= 0.2.0, < 1.0.0", false},
		{"caret", "1.4.0", "^1.2", false},
		{"too old", "0.1.0", ">= 0.2.0", true},
		{"too new", "2.0.0", "< 2.0.0", true},
		{"bad constraint", "1.0.0", ">=> 1", true},
		{"bad version", "one", ">= 1.0.0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckConstraint(tt.running, tt.constraint)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheckConstraintDetails(t *testing.T) {
	err := CheckConstraint("0.1.0", ">= 0.2.0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires jpoet >= 0.2.0, but running 0.1.0")
	assert.NotEmpty(t, errors.GetAllDetails(err))
}
