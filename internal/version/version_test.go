package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetInfo(t *testing.T) {
	info := GetInfo()

	assert.Equal(t, Version, info.Version)
	assert.Equal(t, CUESDKVersion, info.CUESDKVersion)
	assert.True(t, strings.HasPrefix(info.GoVersion, "go"))
}

func TestShort(t *testing.T) {
	assert.Equal(t, strings.TrimPrefix(Version, "v"), Short())
	assert.False(t, strings.HasPrefix(Short(), "v"))
}

func TestInfoString(t *testing.T) {
	s := GetInfo().String()

	assert.Contains(t, s, "velac:")
	assert.Contains(t, s, Version)
	assert.Contains(t, s, CUESDKVersion)
}
