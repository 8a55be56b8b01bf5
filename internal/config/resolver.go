package config

import (
	"os"

	"github.com/velalang/velac/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates the value came from a command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates the value came from an environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates the value came from the config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates the value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolveOptions describes one configuration value and its candidates
// from each source.
type ResolveOptions struct {
	// Key names the value for logging.
	Key string
	// FlagValue is the flag value (empty if not set).
	FlagValue string
	// EnvVar is the environment variable consulted (empty to skip).
	EnvVar string
	// ConfigValue is the value from the config file (empty if not set).
	ConfigValue string
	// Default is the built-in fallback (may be empty).
	Default string
}

// ResolvedValue is the outcome of resolving one configuration value.
type ResolvedValue struct {
	// Key names the value.
	Key string
	// Value is the resolved value.
	Value string
	// Source indicates where the value came from.
	Source ConfigSource
	// Shadowed contains values overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// Resolve picks a configuration value using precedence:
// (1) flag, (2) environment, (3) config file, (4) default.
// Lower-precedence values that were set are recorded in Shadowed.
func Resolve(opts ResolveOptions) ResolvedValue {
	result := ResolvedValue{
		Key:      opts.Key,
		Shadowed: make(map[ConfigSource]string),
	}

	envValue := ""
	if opts.EnvVar != "" {
		envValue = os.Getenv(opts.EnvVar)
	}

	candidates := []struct {
		source ConfigSource
		value  string
	}{
		{SourceFlag, opts.FlagValue},
		{SourceEnv, envValue},
		{SourceConfig, opts.ConfigValue},
		{SourceDefault, opts.Default},
	}

	for _, c := range candidates {
		if c.value == "" {
			continue
		}
		if result.Source == "" {
			result.Value = c.value
			result.Source = c.source
		} else {
			result.Shadowed[c.source] = c.value
		}
	}

	return result
}

// LogResolvedValues logs configuration resolution at debug level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
