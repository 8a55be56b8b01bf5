package build

import (
	"fmt"

	"github.com/velalang/velac/internal/modname"
)

// Every filesystem failure in this package is translated into one of the
// typed errors below before it escapes; no raw I/O error leaves the
// package. Each error names the path or module it is attributed to.

// CannotReadFileError indicates a required file could not be opened or
// read.
type CannotReadFileError struct {
	// Path of the file that failed to read.
	Path string

	// Err is the underlying I/O error.
	Err error
}

func (e *CannotReadFileError) Error() string {
	return fmt.Sprintf("cannot read file %q", e.Path)
}

func (e *CannotReadFileError) Unwrap() error { return e.Err }

// CannotWriteFileError indicates a write, or the directory creation it
// needed, failed.
type CannotWriteFileError struct {
	// Path of the file that failed to write.
	Path string

	// Err is the underlying I/O error.
	Err error
}

func (e *CannotWriteFileError) Error() string {
	return fmt.Sprintf("cannot write file %q", e.Path)
}

func (e *CannotWriteFileError) Unwrap() error { return e.Err }

// CannotGetFileInfoError indicates a metadata query failed for a reason
// other than the file not existing. Plain non-existence is never reported
// through this error.
type CannotGetFileInfoError struct {
	// Path of the file whose metadata query failed.
	Path string

	// Err is the underlying stat error.
	Err error
}

func (e *CannotGetFileInfoError) Error() string {
	return fmt.Sprintf("cannot get file info for %q", e.Path)
}

func (e *CannotGetFileInfoError) Unwrap() error { return e.Err }

// MissingForeignModuleError indicates a module that declares foreign
// bindings has no hand-written foreign header next to its source.
type MissingForeignModuleError struct {
	// Module that declared the foreign bindings.
	Module modname.Name

	// Header is the expected foreign header path, when one could be
	// derived.
	Header string
}

func (e *MissingForeignModuleError) Error() string {
	if e.Header == "" {
		return fmt.Sprintf("module %q declares foreign bindings but has no source to pair them with", e.Module)
	}
	return fmt.Sprintf("module %q declares foreign bindings but %q does not exist", e.Module, e.Header)
}

// InvalidPolicyError indicates a manifest named an unknown rebuild policy.
type InvalidPolicyError struct {
	// Value is the rejected policy string.
	Value string
}

func (e *InvalidPolicyError) Error() string {
	return fmt.Sprintf("invalid rebuild policy %q: must be %q or %q", e.Value, RebuildAlways, RebuildNever)
}
