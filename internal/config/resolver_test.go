package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveFlagWins(t *testing.T) {
	t.Setenv("VELAC_TEST_TARGET", "c17")

	got := Resolve(ResolveOptions{
		Key:         "target",
		FlagValue:   "c23",
		EnvVar:      "VELAC_TEST_TARGET",
		ConfigValue: "c11",
		Default:     "c99",
	})

	assert.Equal(t, "c23", got.Value)
	assert.Equal(t, SourceFlag, got.Source)
	assert.Equal(t, "c17", got.Shadowed[SourceEnv])
	assert.Equal(t, "c11", got.Shadowed[SourceConfig])
	assert.Equal(t, "c99", got.Shadowed[SourceDefault])
}

func TestResolveEnvBeatsConfig(t *testing.T) {
	t.Setenv("VELAC_TEST_TARGET", "c17")

	got := Resolve(ResolveOptions{
		Key:         "target",
		EnvVar:      "VELAC_TEST_TARGET",
		ConfigValue: "c11",
		Default:     "c99",
	})

	assert.Equal(t, "c17", got.Value)
	assert.Equal(t, SourceEnv, got.Source)
	assert.Equal(t, "c11", got.Shadowed[SourceConfig])
	assert.NotContains(t, got.Shadowed, SourceFlag)
}

func TestResolveConfigBeatsDefault(t *testing.T) {
	got := Resolve(ResolveOptions{
		Key:         "target",
		ConfigValue: "c11",
		Default:     "c99",
	})

	assert.Equal(t, "c11", got.Value)
	assert.Equal(t, SourceConfig, got.Source)
	assert.Equal(t, "c99", got.Shadowed[SourceDefault])
}

func TestResolveDefault(t *testing.T) {
	got := Resolve(ResolveOptions{
		Key:     "target",
		Default: "c99",
	})

	assert.Equal(t, "c99", got.Value)
	assert.Equal(t, SourceDefault, got.Source)
	assert.Empty(t, got.Shadowed)
}

func TestResolveNothingSet(t *testing.T) {
	got := Resolve(ResolveOptions{Key: "output"})

	assert.Empty(t, got.Value)
	assert.Empty(t, string(got.Source))
}
