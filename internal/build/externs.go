package build

import "github.com/velalang/velac/internal/modname"

// ReadExterns returns the fixed externs location for name and its
// contents, read verbatim. A missing or unreadable file surfaces as a
// CannotReadFileError; callers asking for externs require them to exist.
// Externs are written by Codegen as an unconditional overwrite.
func (a *actions) ReadExterns(name modname.Name) (string, []byte, error) {
	path := ArtifactsFor(a.ctx.Options.OutputDir, name).Externs
	data, err := a.ctx.readFile(name, path)
	if err != nil {
		return "", nil, err
	}
	return path, data, nil
}
