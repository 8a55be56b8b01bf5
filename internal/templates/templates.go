// Package templates provides the embedded starter project for
// velac init.
package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

//go:embed all:project
var projectFS embed.FS

// templateRoot is the directory inside the embedded filesystem that
// holds the starter project.
const templateRoot = "project"

// TemplateData contains data for template rendering.
type TemplateData struct {
	// ProjectName is the name written into the manifest.
	ProjectName string

	// Output is the output directory for generated C sources.
	Output string
}

// Render writes the starter project into targetDir, substituting data
// into each template. File names lose their .tmpl suffix. Returns the
// relative paths of the files created.
func Render(targetDir string, data TemplateData) ([]string, error) {
	var created []string

	err := fs.WalkDir(projectFS, templateRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(templateRoot, path)
		if err != nil {
			return err
		}
		if relPath == "." {
			return nil
		}

		targetPath := filepath.Join(targetDir, relPath)

		if d.IsDir() {
			return os.MkdirAll(targetPath, 0o755)
		}

		content, err := fs.ReadFile(projectFS, path)
		if err != nil {
			return fmt.Errorf("reading template %s: %w", path, err)
		}

		targetPath = strings.TrimSuffix(targetPath, ".tmpl")
		if err := os.MkdirAll(filepath.Dir(targetPath), 0o755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", targetPath, err)
		}

		tmpl, err := template.New(filepath.Base(path)).Parse(string(content))
		if err != nil {
			return fmt.Errorf("parsing template %s: %w", path, err)
		}

		f, err := os.Create(targetPath)
		if err != nil {
			return fmt.Errorf("creating file %s: %w", targetPath, err)
		}
		defer f.Close()

		if err := tmpl.Execute(f, data); err != nil {
			return fmt.Errorf("executing template %s: %w", path, err)
		}

		created = append(created, strings.TrimSuffix(relPath, ".tmpl"))
		return nil
	})

	return created, err
}

// ListFiles returns the relative paths of all files in the starter
// project, with .tmpl suffixes removed.
func ListFiles() ([]string, error) {
	var files []string

	err := fs.WalkDir(projectFS, templateRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(templateRoot, path)
		if err != nil {
			return err
		}

		files = append(files, strings.TrimSuffix(relPath, ".tmpl"))
		return nil
	})

	return files, err
}

// FileDescriptions maps starter files to the short descriptions shown
// in the init file tree.
func FileDescriptions() map[string]string {
	return map[string]string{
		"vela.cue":      "project manifest",
		"src/Main.vela": "entry module",
		".gitignore":    "ignores generated output",
	}
}
