package build

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/velalang/velac/internal/codegen"
	"github.com/velalang/velac/internal/modname"
	"github.com/velalang/velac/internal/scaffold"
)

// Codegen generates and writes one module's artifacts: it runs the
// generator, splits its output into header and source segments, prints
// each, and writes source, header, and externs under the output root. It
// then materializes the runtime scaffold if the output root lacks it and
// pairs foreign files for modules that declare foreign bindings.
//
// A failure aborts the module but performs no rollback; files already
// written stay in place.
func (a *actions) Codegen(ctx context.Context, unit *codegen.Unit, names *codegen.NameSupply) error {
	name := unit.Module.Name()
	arts := ArtifactsFor(a.ctx.Options.OutputDir, name)

	decls, err := a.gen.Generate(ctx, unit.Module, unit.Env, names)
	if err != nil {
		return fmt.Errorf("generating %q: %w", name, err)
	}
	headerDecls, sourceDecls, ok := codegen.Split(decls)
	if !ok {
		return fmt.Errorf("generator emitted no header/source marker for %q", name)
	}

	source := a.withProvenance(codegen.Print(sourceDecls))
	header := a.withProvenance(codegen.Print(headerDecls))

	if err := a.ctx.writeFile(name, arts.Source, []byte(source)); err != nil {
		return err
	}
	if err := a.ctx.writeFile(name, arts.Header, []byte(header)); err != nil {
		return err
	}
	if err := a.ctx.writeFile(name, arts.Externs, unit.Externs); err != nil {
		return err
	}

	if err := a.ensureScaffold(name); err != nil {
		return err
	}

	if len(unit.Module.Foreign()) > 0 {
		return a.pairForeign(name, arts)
	}
	a.warnUnusedForeign(name)
	return nil
}

// withProvenance prepends the generated-by comment line when enabled.
func (a *actions) withProvenance(body string) string {
	if !a.ctx.Options.Provenance {
		return body
	}
	return fmt.Sprintf("// Generated by %s version %s\n%s",
		a.ctx.Options.ToolName, a.ctx.Options.ToolVersion, body)
}

// ensureScaffold writes the bundled runtime files and build-script stub on
// the first build into an output root. The probe is the marker directory:
// when it exists the whole step is skipped, so the scaffold is written at
// most once per output root.
func (a *actions) ensureScaffold(name modname.Name) error {
	root := a.ctx.Options.OutputDir
	if scaffold.Present(root) {
		if _, ok, _ := a.ctx.statMtime(filepath.Join(root, scaffold.BuildScript)); !ok {
			a.ctx.Diagnostics.Warn(name,
				"output root has a %s directory but no %s; restore the file or remove the directory to rebuild the scaffold",
				scaffold.MarkerDir, scaffold.BuildScript)
		}
		return nil
	}
	files, err := scaffold.Files()
	if err != nil {
		return fmt.Errorf("loading scaffold assets: %w", err)
	}
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f.Rel))
		if err := a.ctx.writeFile(name, path, f.Content); err != nil {
			return err
		}
	}
	return nil
}

// warnUnusedForeign notes a hand-written foreign header sitting next to a
// module that declares no foreign bindings. The probe is best effort.
func (a *actions) warnUnusedForeign(name modname.Name) {
	spec, ok := a.specs[name]
	if !ok || spec.IsPolicy() {
		return
	}
	header, _ := ForeignInputs(spec.Source)
	if _, exists, _ := a.ctx.statMtime(header); exists {
		a.ctx.Diagnostics.Warn(name,
			"foreign header %q exists but the module declares no foreign bindings", header)
	}
}
