package build

import (
	"path/filepath"
	"strings"

	"github.com/velalang/velac/internal/modname"
)

const (
	// SourceExt and HeaderExt are the extensions of generated C files and
	// of the hand-written foreign files that pair with them.
	SourceExt = ".c"
	HeaderExt = ".h"

	// ExternsFile is the fixed basename of a module's serialized
	// interface description.
	ExternsFile = "externs.json"

	// VelaExt is the extension of Vela source files.
	VelaExt = ".vela"

	// foreignSuffix is inserted before the extension of copied foreign
	// files: Bar.h becomes Bar_ffi.h.
	foreignSuffix = "_ffi"
)

// ArtifactSet holds the output locations for one module. The paths are a
// pure function of the output root and the module name, so no two modules
// ever collide. An ArtifactSet is always derived, never stored.
type ArtifactSet struct {
	// Dir is the module's own directory under the output root.
	Dir string

	// Source, Header, and Externs are the generated files inside Dir.
	Source  string
	Header  string
	Externs string
}

// ArtifactsFor derives the artifact locations for module name under root.
// Module A.B.C maps to root/A/B/C with basename C.
func ArtifactsFor(root string, name modname.Name) ArtifactSet {
	dir := filepath.Join(root, name.RelDir())
	base := name.Base()
	return ArtifactSet{
		Dir:     dir,
		Source:  filepath.Join(dir, base+SourceExt),
		Header:  filepath.Join(dir, base+HeaderExt),
		Externs: filepath.Join(dir, ExternsFile),
	}
}

// ForeignHeader returns the sibling path the module's foreign header is
// copied to.
func (a ArtifactSet) ForeignHeader() string {
	return insertSuffix(a.Header, foreignSuffix)
}

// ForeignSource returns the sibling path the module's foreign source is
// copied to.
func (a ArtifactSet) ForeignSource() string {
	return insertSuffix(a.Source, foreignSuffix)
}

func insertSuffix(path, suffix string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + suffix + ext
}

// ForeignInputs derives where a module's hand-written foreign files are
// expected: the input source path with its extension replaced by the
// header and source extensions.
func ForeignInputs(inputSource string) (header, source string) {
	base := strings.TrimSuffix(inputSource, filepath.Ext(inputSource))
	return base + HeaderExt, base + SourceExt
}
