package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"

	"github.com/velalang/velac/internal/build"
	"github.com/velalang/velac/internal/modname"
)

var (
	// ErrProjectNotFound is returned when the directory has no manifest.
	ErrProjectNotFound = errors.New("project not found")
	// ErrInvalidManifest is returned when the manifest fails validation.
	ErrInvalidManifest = errors.New("invalid manifest")
)

// Loader loads Vela project manifests.
type Loader struct {
	ctx *cue.Context
}

// NewLoader creates a Loader with a fresh CUE context.
func NewLoader() *Loader {
	return &Loader{ctx: cuecontext.New()}
}

// Load reads and validates the manifest in dir.
func (l *Loader) Load(dir string) (*Project, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving project path: %w", err)
	}

	manifestPath := filepath.Join(absDir, ManifestFile)
	if _, err := os.Stat(manifestPath); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: no %s in %s", ErrProjectNotFound, ManifestFile, absDir)
		}
		return nil, fmt.Errorf("statting %s: %w", manifestPath, err)
	}

	instances := load.Instances([]string{ManifestFile}, &load.Config{Dir: absDir})
	if len(instances) == 0 {
		return nil, fmt.Errorf("%w: no CUE instances found in %s", ErrProjectNotFound, absDir)
	}
	inst := instances[0]
	if inst.Err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, inst.Err)
	}

	value := l.ctx.BuildInstance(inst)
	if value.Err() != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, value.Err())
	}

	manifest, err := extractManifest(value)
	if err != nil {
		return nil, err
	}
	return &Project{Manifest: manifest, Dir: absDir}, nil
}

// extractManifest pulls the manifest fields out of a built CUE value.
func extractManifest(v cue.Value) (Manifest, error) {
	manifest := Manifest{
		Output:  DefaultOutput,
		Sources: []string{"src"},
	}

	// Extract name (required)
	nameField := v.LookupPath(cue.ParsePath("name"))
	if !nameField.Exists() {
		return manifest, fmt.Errorf("%w: missing required field 'name'", ErrInvalidManifest)
	}
	name, err := nameField.String()
	if err != nil {
		return manifest, fmt.Errorf("%w: invalid name field: %v", ErrInvalidManifest, err)
	}
	if name == "" {
		return manifest, fmt.Errorf("%w: field 'name' is empty", ErrInvalidManifest)
	}
	manifest.Name = name

	// Extract output (optional)
	if outField := v.LookupPath(cue.ParsePath("output")); outField.Exists() {
		out, err := outField.String()
		if err != nil {
			return manifest, fmt.Errorf("%w: invalid output field: %v", ErrInvalidManifest, err)
		}
		manifest.Output = out
	}

	// Extract sources (optional)
	if srcField := v.LookupPath(cue.ParsePath("sources")); srcField.Exists() {
		var sources []string
		if err := srcField.Decode(&sources); err != nil {
			return manifest, fmt.Errorf("%w: invalid sources field: %v", ErrInvalidManifest, err)
		}
		manifest.Sources = sources
	}

	// Extract explicit modules (optional)
	modsField := v.LookupPath(cue.ParsePath("modules"))
	if !modsField.Exists() {
		return manifest, nil
	}
	manifest.Modules = make(map[modname.Name]build.InputSpec)
	iter, err := modsField.Fields()
	if err != nil {
		return manifest, fmt.Errorf("%w: invalid modules field: %v", ErrInvalidManifest, err)
	}
	for iter.Next() {
		label := iter.Selector().Unquoted()
		name, err := modname.Parse(label)
		if err != nil {
			return manifest, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
		}
		spec, err := extractInputSpec(name, iter.Value())
		if err != nil {
			return manifest, err
		}
		manifest.Modules[name] = spec
	}
	return manifest, nil
}

// extractInputSpec reads one explicit module entry: exactly one of
// 'source' and 'rebuild' must be set.
func extractInputSpec(name modname.Name, v cue.Value) (build.InputSpec, error) {
	srcField := v.LookupPath(cue.ParsePath("source"))
	rebuildField := v.LookupPath(cue.ParsePath("rebuild"))

	switch {
	case srcField.Exists() && rebuildField.Exists():
		return build.InputSpec{}, fmt.Errorf("%w: module %q sets both 'source' and 'rebuild'", ErrInvalidManifest, name)
	case srcField.Exists():
		src, err := srcField.String()
		if err != nil {
			return build.InputSpec{}, fmt.Errorf("%w: module %q: invalid source: %v", ErrInvalidManifest, name, err)
		}
		return build.InputSpec{Source: src}, nil
	case rebuildField.Exists():
		raw, err := rebuildField.String()
		if err != nil {
			return build.InputSpec{}, fmt.Errorf("%w: module %q: invalid rebuild: %v", ErrInvalidManifest, name, err)
		}
		policy, err := build.ParsePolicy(raw)
		if err != nil {
			return build.InputSpec{}, fmt.Errorf("%w: module %q: %v", ErrInvalidManifest, name, err)
		}
		return build.InputSpec{Policy: policy}, nil
	default:
		return build.InputSpec{}, fmt.Errorf("%w: module %q sets neither 'source' nor 'rebuild'", ErrInvalidManifest, name)
	}
}
