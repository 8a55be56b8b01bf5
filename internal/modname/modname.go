// Package modname defines dotted Vela module names and their deterministic
// mapping to filesystem paths. Name handling is pure: nothing in this package
// touches the filesystem.
package modname

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Name is a dotted hierarchical module name, e.g. "Data.List".
type Name string

// Parse validates s as a module name. Each dot-separated segment must start
// with a letter or underscore and continue with letters, digits, or
// underscores.
func Parse(s string) (Name, error) {
	if s == "" {
		return "", fmt.Errorf("module name is empty")
	}
	for _, seg := range strings.Split(s, ".") {
		if err := checkSegment(seg); err != nil {
			return "", fmt.Errorf("invalid module name %q: %w", s, err)
		}
	}
	return Name(s), nil
}

// checkSegment validates a single name segment.
func checkSegment(seg string) error {
	if seg == "" {
		return fmt.Errorf("empty segment")
	}
	for i, r := range seg {
		switch {
		case r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
		case r >= '0' && r <= '9':
			if i == 0 {
				return fmt.Errorf("segment %q starts with a digit", seg)
			}
		default:
			return fmt.Errorf("segment %q contains %q", seg, r)
		}
	}
	return nil
}

// String returns the dotted form.
func (n Name) String() string { return string(n) }

// Segments returns the dot-separated components in order.
func (n Name) Segments() []string { return strings.Split(string(n), ".") }

// Base returns the last segment, used as the generated file basename.
// "Data.List" -> "List".
func (n Name) Base() string {
	s := string(n)
	if i := strings.LastIndexByte(s, '.'); i >= 0 {
		return s[i+1:]
	}
	return s
}

// RelDir returns the module's directory path relative to an output root,
// with every segment becoming one directory level: "Data.List" -> "Data/List".
func (n Name) RelDir() string {
	return filepath.Join(n.Segments()...)
}

// FromRelPath derives a module name from a source path relative to a source
// root: "Data/List.vela" -> "Data.List". The file extension, if any, is
// stripped. The derived name is validated like Parse.
func FromRelPath(rel string) (Name, error) {
	clean := filepath.ToSlash(filepath.Clean(rel))
	if clean == "." || clean == "" {
		return "", fmt.Errorf("source path is empty")
	}
	if strings.HasPrefix(clean, "../") {
		return "", fmt.Errorf("source path %q escapes the source root", rel)
	}
	ext := filepath.Ext(clean)
	clean = strings.TrimSuffix(clean, ext)
	return Parse(strings.ReplaceAll(clean, "/", "."))
}
