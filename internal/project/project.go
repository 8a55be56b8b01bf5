// Package project loads Vela project manifests and discovers the modules a
// build session will process. A project is a directory with a vela.cue
// manifest at its root; module sources live in the manifest's source
// directories and map to dotted module names by their relative paths.
package project

import (
	"path/filepath"

	"github.com/velalang/velac/internal/build"
	"github.com/velalang/velac/internal/modname"
)

// ManifestFile is the fixed manifest basename at the project root.
const ManifestFile = "vela.cue"

// DefaultOutput is the output root used when the manifest does not name
// one.
const DefaultOutput = "output"

// Manifest is the parsed vela.cue project file.
type Manifest struct {
	// Name of the project. Required.
	Name string

	// Output is the output root; relative paths resolve against the
	// project directory. Defaults to DefaultOutput.
	Output string

	// Sources are the directories scanned recursively for .vela files.
	// Defaults to ["src"].
	Sources []string

	// Modules are explicit entries that override discovery: either a
	// source path or a rebuild policy per module.
	Modules map[modname.Name]build.InputSpec
}

// Project is a loaded manifest tied to its directory.
type Project struct {
	Manifest Manifest

	// Dir is the absolute project directory.
	Dir string
}

// OutputDir resolves the manifest's output root against the project
// directory.
func (p *Project) OutputDir() string {
	return p.resolve(p.Manifest.Output)
}

func (p *Project) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(p.Dir, path)
}
