package build

import (
	"context"
	"fmt"
	"time"

	"github.com/velalang/velac/internal/codegen"
	"github.com/velalang/velac/internal/modname"
)

// Status classifies the outcome of one module in a session.
type Status string

const (
	// StatusCompiled means the module was stale and rebuilt.
	StatusCompiled Status = "compiled"

	// StatusFresh means the module's outputs were up to date and nothing
	// was done.
	StatusFresh Status = "fresh"

	// StatusFailed means the module's build aborted with an error.
	StatusFailed Status = "failed"
)

// ModuleResult records the outcome of one module.
type ModuleResult struct {
	Name     modname.Name
	Status   Status
	Err      error
	Duration time.Duration
}

// SessionResult collects per-module outcomes and the session's warnings.
type SessionResult struct {
	Modules  []ModuleResult
	Warnings []Warning
}

// Failed reports whether any module failed.
func (r *SessionResult) Failed() bool {
	for _, m := range r.Modules {
		if m.Status == StatusFailed {
			return true
		}
	}
	return false
}

// Counts returns how many modules were compiled, fresh, and failed.
func (r *SessionResult) Counts() (compiled, fresh, failed int) {
	for _, m := range r.Modules {
		switch m.Status {
		case StatusCompiled:
			compiled++
		case StatusFresh:
			fresh++
		case StatusFailed:
			failed++
		}
	}
	return compiled, fresh, failed
}

// Session drives one full build: it walks the module list in the given
// order, skips fresh modules, and compiles stale ones. One module's
// failure is recorded in the result and the session moves on; it never
// aborts the remaining modules. Modules are processed one at a time;
// callers wanting parallelism must schedule Actions themselves and
// serialize first-build scaffold creation.
type Session struct {
	ctx     *Context
	tc      *codegen.Toolchain
	specs   map[modname.Name]InputSpec
	order   []modname.Name
	actions Actions
}

// NewSession assembles a session over the given input specs. order fixes
// which modules build and in what sequence; every name in it must have a
// spec.
func NewSession(ctx *Context, tc *codegen.Toolchain, specs map[modname.Name]InputSpec, order []modname.Name) *Session {
	return &Session{
		ctx:     ctx,
		tc:      tc,
		specs:   specs,
		order:   order,
		actions: NewActions(ctx, specs, tc.Generator),
	}
}

// Actions exposes the session's capability bundle.
func (s *Session) Actions() Actions { return s.actions }

// Run builds every module in order and returns the collected result.
func (s *Session) Run(ctx context.Context) *SessionResult {
	res := &SessionResult{}
	for _, name := range s.order {
		start := time.Now()
		status, err := s.buildOne(ctx, name)
		res.Modules = append(res.Modules, ModuleResult{
			Name:     name,
			Status:   status,
			Err:      err,
			Duration: time.Since(start),
		})
	}
	res.Warnings = s.ctx.Diagnostics.Warnings()
	return res
}

func (s *Session) buildOne(ctx context.Context, name modname.Name) (Status, error) {
	fresh, err := s.isFresh(name)
	if err != nil {
		return StatusFailed, err
	}
	if fresh {
		s.actions.Progress(Progress{Event: EventSkipping, Module: name})
		return StatusFresh, nil
	}

	s.actions.Progress(Progress{Event: EventCompiling, Module: name})
	unit, err := s.tc.Compiler.Compile(ctx, name, s.specs[name].Source)
	if err != nil {
		return StatusFailed, fmt.Errorf("compiling %q: %w", name, err)
	}
	var names codegen.NameSupply
	if err := s.actions.Codegen(ctx, unit, &names); err != nil {
		return StatusFailed, err
	}
	return StatusCompiled, nil
}

// isFresh decides whether the module's outputs are up to date. A missing
// output stamp is always stale. Policy "always" is always stale and
// policy "never" is fresh whenever outputs exist. A file-backed module is
// fresh only when its source is strictly older than the output stamp; an
// unknown input stamp is stale.
func (s *Session) isFresh(name modname.Name) (bool, error) {
	in, err := s.actions.InputTimestamp(name)
	if err != nil {
		return false, err
	}
	outTime, outOK, err := s.actions.OutputTimestamp(name)
	if err != nil {
		return false, err
	}
	if !outOK {
		return false, nil
	}
	switch in.Policy {
	case RebuildAlways:
		return false, nil
	case RebuildNever:
		return true, nil
	}
	if !in.Known {
		return false, nil
	}
	return in.ModTime.Before(outTime), nil
}
