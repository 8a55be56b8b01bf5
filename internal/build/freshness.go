package build

import (
	"fmt"
	"time"

	"github.com/velalang/velac/internal/modname"
)

// InputTimestamp reports the freshness input for one module. Policy-backed
// modules return their policy verbatim; what the policy means is the
// driver's business. File-backed modules return the source file's
// modification time, or an unknown stamp when the file does not exist.
func (a *actions) InputTimestamp(name modname.Name) (InputStamp, error) {
	spec, ok := a.specs[name]
	if !ok {
		return InputStamp{}, fmt.Errorf("no input spec for module %q", name)
	}
	if spec.IsPolicy() {
		return InputStamp{Policy: spec.Policy}, nil
	}
	mtime, exists, err := a.ctx.statMtime(spec.Source)
	if err != nil {
		return InputStamp{}, err
	}
	if !exists {
		return InputStamp{}, nil
	}
	return InputStamp{ModTime: mtime, Known: true}, nil
}

// OutputTimestamp reports when the module's output was last fully written:
// the earlier of the generated-source and externs modification times. The
// generated header is excluded from the stamp. If either consulted file is
// missing, ok is false and the module counts as stale.
func (a *actions) OutputTimestamp(name modname.Name) (time.Time, bool, error) {
	arts := ArtifactsFor(a.ctx.Options.OutputDir, name)

	srcTime, srcOK, err := a.ctx.statMtime(arts.Source)
	if err != nil {
		return time.Time{}, false, err
	}
	extTime, extOK, err := a.ctx.statMtime(arts.Externs)
	if err != nil {
		return time.Time{}, false, err
	}
	if !srcOK || !extOK {
		return time.Time{}, false, nil
	}
	if extTime.Before(srcTime) {
		return extTime, true, nil
	}
	return srcTime, true, nil
}
