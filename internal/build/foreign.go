package build

import "github.com/velalang/velac/internal/modname"

// pairForeign copies the module's hand-written foreign files to sibling
// paths next to its generated output. The foreign header is mandatory and
// its absence fails the module before anything is written; the foreign
// source is optional and copied only when present. Copies are verbatim.
func (a *actions) pairForeign(name modname.Name, arts ArtifactSet) error {
	spec, ok := a.specs[name]
	if !ok || spec.IsPolicy() {
		return &MissingForeignModuleError{Module: name}
	}
	inHeader, inSource := ForeignInputs(spec.Source)

	_, exists, err := a.ctx.statMtime(inHeader)
	if err != nil {
		return err
	}
	if !exists {
		return &MissingForeignModuleError{Module: name, Header: inHeader}
	}

	data, err := a.ctx.readFile(name, inHeader)
	if err != nil {
		return err
	}
	if err := a.ctx.writeFile(name, arts.ForeignHeader(), data); err != nil {
		return err
	}

	_, exists, err = a.ctx.statMtime(inSource)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}
	data, err = a.ctx.readFile(name, inSource)
	if err != nil {
		return err
	}
	return a.ctx.writeFile(name, arts.ForeignSource(), data)
}
