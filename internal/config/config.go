// Package config provides configuration loading and management.
package config

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: false. Override with --timestamps flag.
	Timestamps *bool `json:"timestamps,omitempty" yaml:"timestamps,omitempty"`
}

// Config represents the velac user configuration.
// Loaded from ~/.config/velac/config.yaml; environment variables
// override file values.
type Config struct {
	// Output is the default output directory for generated C sources,
	// relative to the project root. Overrides the project manifest.
	// Env: VELAC_OUTPUT
	Output string `json:"output,omitempty" yaml:"output,omitempty"`

	// Target selects the code generation toolchain.
	// Env: VELAC_TARGET, Default: "c99"
	Target string `json:"target,omitempty" yaml:"target,omitempty"`

	// Provenance stamps every generated file with the compiler
	// version. Disable per build with --no-prefix.
	// Env: VELAC_PROVENANCE, Default: true
	Provenance *bool `json:"provenance,omitempty" yaml:"provenance,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `json:"log,omitempty" yaml:"log,omitempty"`
}

// DefaultTarget is the toolchain used when neither flags, environment,
// nor config select one.
const DefaultTarget = "c99"

// DefaultConfig returns a Config with all default values populated.
// Used by `velac config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		Target: DefaultTarget,
	}
}

// WithDefaults returns a copy of the config with unset fields filled
// in from the defaults.
func (c *Config) WithDefaults() *Config {
	out := *c
	if out.Target == "" {
		out.Target = DefaultTarget
	}
	return &out
}

// ProvenanceEnabled reports the provenance setting, defaulting to
// true when unset.
func (c *Config) ProvenanceEnabled() bool {
	return c.Provenance == nil || *c.Provenance
}

// TimestampsEnabled reports the log timestamp setting, defaulting to
// false when unset.
func (c *Config) TimestampsEnabled() bool {
	return c.Log.Timestamps != nil && *c.Log.Timestamps
}
