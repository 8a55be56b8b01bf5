package build

import (
	"context"
	"time"

	"github.com/velalang/velac/internal/codegen"
	"github.com/velalang/velac/internal/modname"
)

// Actions is the per-module capability bundle handed to a build driver:
// timestamp queries, externs access, codegen, and progress. It is
// implemented here and consumed by Session, or by any external scheduler
// that brings its own module ordering.
type Actions interface {
	// InputTimestamp reports the module's input stamp: its rebuild
	// policy, or the modification time of its source file.
	InputTimestamp(name modname.Name) (InputStamp, error)

	// OutputTimestamp reports when the module's output was last fully
	// written. ok is false when either required output file is missing.
	OutputTimestamp(name modname.Name) (time.Time, bool, error)

	// ReadExterns returns the module's externs path and contents.
	ReadExterns(name modname.Name) (path string, data []byte, err error)

	// Codegen generates and writes the module's artifacts.
	Codegen(ctx context.Context, unit *codegen.Unit, names *codegen.NameSupply) error

	// Progress emits one informational event.
	Progress(p Progress)
}

type actions struct {
	ctx   *Context
	specs map[modname.Name]InputSpec
	gen   codegen.Generator
}

// NewActions binds the capability bundle to a build context, the session's
// immutable input specs, and a generator.
func NewActions(ctx *Context, specs map[modname.Name]InputSpec, gen codegen.Generator) Actions {
	return &actions{ctx: ctx, specs: specs, gen: gen}
}

func (a *actions) Progress(p Progress) { a.ctx.progress(p) }
