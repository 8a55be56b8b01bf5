package build

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/velalang/velac/internal/codegen"
	"github.com/velalang/velac/internal/modname"
)

type fakeModule struct {
	name    modname.Name
	foreign []string
}

func (m *fakeModule) Name() modname.Name { return m.name }
func (m *fakeModule) Foreign() []string  { return m.foreign }

// fakeCompiler produces one unit per module with canned foreign
// declarations and externs, and records every call.
type fakeCompiler struct {
	foreign map[modname.Name][]string
	fail    map[modname.Name]error
	calls   []modname.Name
}

func (c *fakeCompiler) Compile(_ context.Context, name modname.Name, _ string) (*codegen.Unit, error) {
	c.calls = append(c.calls, name)
	if err := c.fail[name]; err != nil {
		return nil, err
	}
	return &codegen.Unit{
		Module:  &fakeModule{name: name, foreign: c.foreign[name]},
		Externs: []byte(`{"module":"` + name.String() + `","version":1}` + "\n"),
	}, nil
}

// fakeGenerator emits a fixed header/source pair derived from the module
// name, consuming one synthesized name so the supply is exercised.
type fakeGenerator struct {
	noMarker bool
	fail     error
}

func (g *fakeGenerator) Generate(_ context.Context, mod codegen.Module, _ codegen.Environment, names *codegen.NameSupply) ([]codegen.Decl, error) {
	if g.fail != nil {
		return nil, g.fail
	}
	if g.noMarker {
		return []codegen.Decl{codegen.Raw{Text: "int x;"}}, nil
	}
	base := mod.Name().Base()
	tmp := names.Fresh("lit")
	return []codegen.Decl{
		codegen.Include{Path: "runtime/vela.h"},
		codegen.Raw{Text: "extern const vela_value *" + base + "_main;"},
		codegen.SourceMarker,
		codegen.Include{Path: base + ".h"},
		codegen.Raw{Text: "static const vela_value *" + tmp + ";"},
		codegen.Raw{Text: "const vela_value *" + base + "_main = 0;"},
	}, nil
}

func fakeToolchain(gen *fakeGenerator, comp *fakeCompiler) *codegen.Toolchain {
	return &codegen.Toolchain{Compiler: comp, Generator: gen}
}

// eventLog records progress events for assertions.
type eventLog struct {
	events []Progress
}

func (l *eventLog) Progress(p Progress) { l.events = append(l.events, p) }

func (l *eventLog) count(ev Event, path string) int {
	n := 0
	for _, e := range l.events {
		if e.Event == ev && (path == "" || e.Path == path) {
			n++
		}
	}
	return n
}

func (l *eventLog) saw(ev Event, module modname.Name) bool {
	for _, e := range l.events {
		if e.Event == ev && e.Module == module {
			return true
		}
	}
	return false
}

func testOptions(root string) Options {
	return Options{
		OutputDir:   root,
		ToolName:    "velac",
		ToolVersion: "0.0.0-test",
	}
}

func writeTestFile(t *testing.T, dir, rel, content string) string {
	t.Helper()
	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func mustName(t *testing.T, s string) modname.Name {
	t.Helper()
	name, err := modname.Parse(s)
	require.NoError(t, err)
	return name
}
