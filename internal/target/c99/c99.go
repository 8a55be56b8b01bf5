// Package c99 implements the bootstrap C99 toolchain. It compiles
// Vela modules at declaration level: the module header, imports,
// foreign bindings, and top-level binding names are parsed and lowered
// to a linkable C skeleton; expression bodies are not yet translated.
package c99

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/velalang/velac/internal/codegen"
	"github.com/velalang/velac/internal/modname"
)

// Target is the name this toolchain registers under.
const Target = "c99"

func init() {
	codegen.Register(Target, &codegen.Toolchain{
		Compiler:  &Compiler{},
		Generator: &Generator{},
	})
}

// identRe matches Vela binding identifiers, which double as C symbol
// fragments.
var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Env is the compile-time environment the compiler hands to the
// generator: the module's surface in declaration order.
type Env struct {
	// Binds are the top-level def and let binding names.
	Binds []string

	// Imports are the modules named by import declarations.
	Imports []modname.Name
}

// module carries the compiled module identity and its foreign surface.
type module struct {
	name    modname.Name
	foreign []string
}

func (m *module) Name() modname.Name { return m.name }
func (m *module) Foreign() []string  { return m.foreign }

// externs is the serialized module interface consumed by later build
// stages and the linker driver.
type externs struct {
	Module  string   `json:"module"`
	Version int      `json:"version"`
	Imports []string `json:"imports,omitempty"`
	Exports []string `json:"exports,omitempty"`
	Foreign []string `json:"foreign,omitempty"`
}

// Compiler parses Vela sources at declaration level.
type Compiler struct{}

// Compile reads and parses the module source. An empty source path
// denotes an intrinsic module with no declarations of its own, used
// for policy-driven modules the full compiler provides internally.
func (c *Compiler) Compile(ctx context.Context, name modname.Name, source string) (*codegen.Unit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mod := &module{name: name}
	env := &Env{}

	if source != "" {
		data, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", source, err)
		}
		if err := parse(source, data, mod, env); err != nil {
			return nil, err
		}
	}

	blob, err := marshalExterns(mod, env)
	if err != nil {
		return nil, err
	}

	return &codegen.Unit{Module: mod, Env: env, Externs: blob}, nil
}

// parse scans the source line by line. Only unindented declaration
// heads are interpreted; indented lines are expression bodies, which
// this bootstrap stage does not translate.
func parse(source string, data []byte, mod *module, env *Env) error {
	seen := make(map[string]int)
	sawModule := false

	sc := bufio.NewScanner(bytes.NewReader(data))
	lineno := 0
	for sc.Scan() {
		lineno++
		line := sc.Text()

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if line[0] == ' ' || line[0] == '\t' {
			continue
		}

		fields := strings.Fields(trimmed)
		switch fields[0] {
		case "module":
			if len(fields) < 2 {
				return fmt.Errorf("%s:%d: module declaration missing a name", source, lineno)
			}
			declared, err := modname.Parse(fields[1])
			if err != nil {
				return fmt.Errorf("%s:%d: %w", source, lineno, err)
			}
			if declared != mod.name {
				return fmt.Errorf("%s:%d: module header declares %q, expected %q", source, lineno, declared, mod.name)
			}
			sawModule = true

		case "import":
			if !sawModule {
				return fmt.Errorf("%s:%d: declaration before module header", source, lineno)
			}
			if len(fields) < 2 {
				return fmt.Errorf("%s:%d: import missing a module name", source, lineno)
			}
			imp, err := modname.Parse(fields[1])
			if err != nil {
				return fmt.Errorf("%s:%d: %w", source, lineno, err)
			}
			env.Imports = append(env.Imports, imp)

		case "foreign":
			if !sawModule {
				return fmt.Errorf("%s:%d: declaration before module header", source, lineno)
			}
			name, err := bindingName(source, lineno, fields)
			if err != nil {
				return err
			}
			if prev, dup := seen[name]; dup {
				return fmt.Errorf("%s:%d: duplicate binding %q (first declared on line %d)", source, lineno, name, prev)
			}
			seen[name] = lineno
			mod.foreign = append(mod.foreign, name)

		case "def", "let":
			if !sawModule {
				return fmt.Errorf("%s:%d: declaration before module header", source, lineno)
			}
			name, err := bindingName(source, lineno, fields)
			if err != nil {
				return err
			}
			if prev, dup := seen[name]; dup {
				return fmt.Errorf("%s:%d: duplicate binding %q (first declared on line %d)", source, lineno, name, prev)
			}
			seen[name] = lineno
			env.Binds = append(env.Binds, name)

		default:
			return fmt.Errorf("%s:%d: unsupported declaration %q", source, lineno, fields[0])
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", source, err)
	}

	if !sawModule {
		return fmt.Errorf("%s: missing module header", source)
	}
	return nil
}

// bindingName extracts and validates the identifier of a def, let, or
// foreign declaration.
func bindingName(source string, lineno int, fields []string) (string, error) {
	if len(fields) < 2 {
		return "", fmt.Errorf("%s:%d: %s declaration missing a name", source, lineno, fields[0])
	}
	name := fields[1]
	if !identRe.MatchString(name) {
		return "", fmt.Errorf("%s:%d: invalid binding name %q", source, lineno, name)
	}
	return name, nil
}

func marshalExterns(mod *module, env *Env) ([]byte, error) {
	ext := externs{
		Module:  mod.name.String(),
		Version: 1,
		Exports: env.Binds,
		Foreign: mod.foreign,
	}
	for _, imp := range env.Imports {
		ext.Imports = append(ext.Imports, imp.String())
	}

	blob, err := json.MarshalIndent(ext, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding externs for %q: %w", mod.name, err)
	}
	return append(blob, '\n'), nil
}
