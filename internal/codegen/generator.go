// Package codegen defines the seam between the build orchestrator and an
// external compiler pipeline: the compiled-module surface, the generated
// output element kinds with their header/source split, the fresh-name
// supply, and a registry of target toolchains. Nothing in this package
// touches the filesystem.
package codegen

import (
	"context"

	"github.com/velalang/velac/internal/modname"
)

// Environment is the compiled type and value information a generator
// consumes. The orchestrator passes it through untouched.
type Environment = any

// Module is the compiled form of one Vela module as handed to codegen.
type Module interface {
	// Name returns the module's dotted name.
	Name() modname.Name

	// Foreign lists the identifiers the module declares as foreign
	// bindings. An empty result means the module needs no foreign
	// pairing. Whether a module declares foreign bindings is fixed in
	// its compiled form and never changes within a session.
	Foreign() []string
}

// Unit is the product of compiling one module: the compiled form, its
// resolved environment, and the serialized externs describing its public
// interface. Externs are opaque bytes and are persisted verbatim.
type Unit struct {
	Module  Module
	Env     Environment
	Externs []byte
}

// Compiler runs the front half of the pipeline for one module. For a
// policy-backed module with no physical source file, source is empty.
type Compiler interface {
	Compile(ctx context.Context, name modname.Name, source string) (*Unit, error)
}

// Generator lowers and translates a compiled module into output elements,
// consuming names from the supply. The returned stream must contain a
// SourceMarker separating header declarations from source declarations.
type Generator interface {
	Generate(ctx context.Context, mod Module, env Environment, names *NameSupply) ([]Decl, error)
}

// Toolchain bundles the compiler and generator for one target language.
type Toolchain struct {
	Compiler  Compiler
	Generator Generator
}
