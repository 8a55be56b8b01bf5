package build

import (
	"time"

	"github.com/velalang/velac/internal/modname"
)

// RebuildPolicy governs freshness for modules that have no physical source
// file, such as synthesized builtins.
type RebuildPolicy string

const (
	// RebuildAlways marks the module stale in every session.
	RebuildAlways RebuildPolicy = "always"

	// RebuildNever marks the module stale only when its outputs are
	// missing.
	RebuildNever RebuildPolicy = "never"
)

// ParsePolicy validates a policy string from a manifest.
func ParsePolicy(s string) (RebuildPolicy, error) {
	switch p := RebuildPolicy(s); p {
	case RebuildAlways, RebuildNever:
		return p, nil
	}
	return "", &InvalidPolicyError{Value: s}
}

// InputSpec describes where one module's input comes from: a source file
// path, or a rebuild policy for modules with no physical source. Exactly
// one of the two is set. Specs are established once, before a session
// starts, and never change afterwards.
type InputSpec struct {
	// Source is the path of the module's .vela file.
	Source string

	// Policy is set instead of Source for policy-backed modules.
	Policy RebuildPolicy
}

// IsPolicy reports whether the spec is policy-backed.
func (s InputSpec) IsPolicy() bool { return s.Policy != "" }

// InputStamp is the result of an input-timestamp query. For policy-backed
// modules Policy is set and the times are meaningless. For file-backed
// modules Known reports whether the source file existed; a missing source
// is not an error, its stamp is simply unknown.
type InputStamp struct {
	Policy  RebuildPolicy
	ModTime time.Time
	Known   bool
}

// Warning is a non-fatal condition noted during a session. Warnings never
// abort processing.
type Warning struct {
	// Module the warning is attributed to.
	Module modname.Name

	// Message is the rendered warning text.
	Message string
}
