// Package scaffold bundles the fixed runtime-support files written once into
// every output tree: the support headers under runtime/ and the build-script
// stub at the output root. Contents are compiled into the binary and copied
// out verbatim; the build driver performs the actual writes so they share
// its progress reporting and error translation.
package scaffold

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed assets
var assetsFS embed.FS

const (
	// MarkerDir is the subdirectory probed to decide whether an output
	// root already carries the scaffold.
	MarkerDir = "runtime"

	// BuildScript is the build-script stub written at the output root.
	BuildScript = "Makefile"
)

// File is one bundled scaffold file. Rel is its slash-separated path
// relative to the output root.
type File struct {
	Rel     string
	Content []byte
}

// Files returns the bundled scaffold files in lexical order of their
// relative paths: the build-script stub at the root plus the support
// headers under MarkerDir.
func Files() ([]File, error) {
	var files []File
	err := fs.WalkDir(assetsFS, "assets", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		content, err := assetsFS.ReadFile(path)
		if err != nil {
			return err
		}
		files = append(files, File{
			Rel:     strings.TrimPrefix(path, "assets/"),
			Content: content,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// Present reports whether root already carries the scaffold, judged solely
// by the marker directory's existence. The probe-then-write sequence is not
// atomic; concurrent first builds sharing an output root must serialize
// scaffold creation themselves.
func Present(root string) bool {
	info, err := os.Stat(filepath.Join(root, MarkerDir))
	return err == nil && info.IsDir()
}
