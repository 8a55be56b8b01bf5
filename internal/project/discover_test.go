package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velalang/velac/internal/build"
	"github.com/velalang/velac/internal/modname"
)

func testProject(t *testing.T, sources ...string) *Project {
	t.Helper()
	if len(sources) == 0 {
		sources = []string{"src"}
	}
	return &Project{
		Manifest: Manifest{Name: "test", Output: DefaultOutput, Sources: sources},
		Dir:      t.TempDir(),
	}
}

func addSource(t *testing.T, p *Project, rel string) string {
	t.Helper()
	path := filepath.Join(p.Dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("module"), 0o644))
	return path
}

func TestDiscoverNested(t *testing.T) {
	p := testProject(t)
	mainPath := addSource(t, p, filepath.Join("src", "Main.vela"))
	listPath := addSource(t, p, filepath.Join("src", "Data", "List.vela"))

	inputs, err := p.Discover()
	require.NoError(t, err)

	assert.Equal(t, []modname.Name{"Data.List", "Main"}, inputs.Order)
	assert.Equal(t, build.InputSpec{Source: listPath}, inputs.Specs[modname.Name("Data.List")])
	assert.Equal(t, build.InputSpec{Source: mainPath}, inputs.Specs[modname.Name("Main")])
}

func TestDiscoverIgnoresOtherFiles(t *testing.T) {
	p := testProject(t)
	addSource(t, p, filepath.Join("src", "Main.vela"))
	addSource(t, p, filepath.Join("src", "notes.txt"))
	addSource(t, p, filepath.Join("src", "Main.h"))
	addSource(t, p, filepath.Join("src", "Main.c"))

	inputs, err := p.Discover()
	require.NoError(t, err)
	assert.Equal(t, []modname.Name{"Main"}, inputs.Order)
}

func TestDiscoverDuplicateModule(t *testing.T) {
	p := testProject(t, "a", "b")
	addSource(t, p, filepath.Join("a", "Data", "List.vela"))
	addSource(t, p, filepath.Join("b", "Data", "List.vela"))

	_, err := p.Discover()
	require.ErrorIs(t, err, ErrInvalidManifest)
	assert.Contains(t, err.Error(), "Data.List")
}

func TestDiscoverExplicitOverride(t *testing.T) {
	p := testProject(t)
	addSource(t, p, filepath.Join("src", "Main.vela"))
	p.Manifest.Modules = map[modname.Name]build.InputSpec{
		"Main": {Policy: build.RebuildAlways},
	}

	inputs, err := p.Discover()
	require.NoError(t, err)
	assert.Equal(t, build.InputSpec{Policy: build.RebuildAlways}, inputs.Specs[modname.Name("Main")])
}

func TestDiscoverExplicitRelativeSource(t *testing.T) {
	p := testProject(t)
	p.Manifest.Modules = map[modname.Name]build.InputSpec{
		"Vendored": {Source: filepath.Join("ffi", "Vendored.vela")},
	}

	inputs, err := p.Discover()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(p.Dir, "ffi", "Vendored.vela"), inputs.Specs[modname.Name("Vendored")].Source)
}

func TestDiscoverMissingSourceDir(t *testing.T) {
	p := testProject(t, "src", "extra")
	addSource(t, p, filepath.Join("src", "Main.vela"))

	inputs, err := p.Discover()
	require.NoError(t, err)
	assert.Equal(t, []modname.Name{"Main"}, inputs.Order)
}

func TestDiscoverInvalidName(t *testing.T) {
	p := testProject(t)
	addSource(t, p, filepath.Join("src", "my-mod.vela"))

	_, err := p.Discover()
	assert.ErrorIs(t, err, ErrInvalidManifest)
}

func TestDiscoverEmptyProject(t *testing.T) {
	p := testProject(t)

	inputs, err := p.Discover()
	require.NoError(t, err)
	assert.Empty(t, inputs.Order)
	assert.Empty(t, inputs.Specs)
}
