package c99

import (
	"context"
	"fmt"
	"strings"

	"github.com/velalang/velac/internal/codegen"
	"github.com/velalang/velac/internal/modname"
)

// Generator lowers a compiled module to C declarations. Elements
// before the marker form the header, elements after it the source.
type Generator struct{}

// Generate emits the C skeleton for the module: an include-guarded
// header with one extern per binding, and a source file defining the
// bindings and the module init function. The name supply is unused at
// this stage; nothing is freshened until expression bodies are
// lowered.
func (g *Generator) Generate(ctx context.Context, mod codegen.Module, env codegen.Environment, names *codegen.NameSupply) ([]codegen.Decl, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, ok := env.(*Env)
	if !ok {
		return nil, fmt.Errorf("unexpected environment type %T for module %q", env, mod.Name())
	}

	name := mod.Name()
	prefix := cPrefix(name)
	guard := "VELA_" + strings.ToUpper(prefix) + "_H"

	var decls []codegen.Decl

	decls = append(decls,
		codegen.Comment{Text: fmt.Sprintf("Declarations for module %s.", name)},
		codegen.Raw{Text: "#ifndef " + guard + "\n#define " + guard},
		codegen.Include{Path: "runtime/vela.h"},
	)
	if ext := externDecls(prefix, info.Binds, mod.Foreign()); ext != "" {
		decls = append(decls, codegen.Raw{Text: ext})
	}
	decls = append(decls,
		codegen.Raw{Text: "void " + prefix + "__init(void);"},
		codegen.Raw{Text: "#endif /* " + guard + " */"},
	)

	decls = append(decls, codegen.SourceMarker)

	decls = append(decls,
		codegen.Comment{Text: fmt.Sprintf("Definitions for module %s.", name)},
		codegen.Include{Path: name.Base() + ".h"},
	)
	if defs := bindingDefs(prefix, info.Binds); defs != "" {
		decls = append(decls, codegen.Raw{Text: defs})
	}
	if imports := importDecls(info.Imports); imports != "" {
		decls = append(decls, codegen.Raw{Text: imports})
	}
	decls = append(decls, codegen.Raw{Text: initFunc(prefix, info)})

	return decls, nil
}

// cPrefix mangles a dotted module name into a C symbol prefix:
// "Data.List" -> "Data_List".
func cPrefix(name modname.Name) string {
	return strings.ReplaceAll(name.String(), ".", "_")
}

func externDecls(prefix string, binds, foreign []string) string {
	var b strings.Builder
	for _, bind := range binds {
		fmt.Fprintf(&b, "extern const vela_value *%s_%s;\n", prefix, bind)
	}
	for _, f := range foreign {
		fmt.Fprintf(&b, "extern const vela_value *%s_%s;\n", prefix, f)
	}
	return strings.TrimRight(b.String(), "\n")
}

func bindingDefs(prefix string, binds []string) string {
	var b strings.Builder
	for _, bind := range binds {
		fmt.Fprintf(&b, "const vela_value *%s_%s;\n", prefix, bind)
	}
	return strings.TrimRight(b.String(), "\n")
}

func importDecls(imports []modname.Name) string {
	var b strings.Builder
	for _, imp := range imports {
		fmt.Fprintf(&b, "void %s__init(void);\n", cPrefix(imp))
	}
	return strings.TrimRight(b.String(), "\n")
}

// initFunc renders the idempotent module initializer. Imported modules
// are initialized first, then every binding is seeded with the unit
// value until expression lowering lands.
func initFunc(prefix string, info *Env) string {
	var b strings.Builder
	fmt.Fprintf(&b, "void %s__init(void) {\n", prefix)
	b.WriteString("\tstatic int initialized;\n")
	b.WriteString("\tif (initialized) {\n\t\treturn;\n\t}\n")
	b.WriteString("\tinitialized = 1;\n")
	for _, imp := range info.Imports {
		fmt.Fprintf(&b, "\t%s__init();\n", cPrefix(imp))
	}
	for _, bind := range info.Binds {
		fmt.Fprintf(&b, "\t%s_%s = vela_unit();\n", prefix, bind)
	}
	b.WriteString("}")
	return b.String()
}
