package project

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/velalang/velac/internal/build"
	"github.com/velalang/velac/internal/modname"
)

// Inputs is the session input derived from a project: the immutable spec
// map plus a deterministic build order.
type Inputs struct {
	Specs map[modname.Name]build.InputSpec
	Order []modname.Name
}

// Discover walks the manifest's source directories and assembles one
// InputSpec per module. A source directory that does not exist contributes
// nothing; two sources mapping to the same module name is an error.
// Explicit manifest modules override discovered ones. The resulting order
// is sorted by module name.
func (p *Project) Discover() (*Inputs, error) {
	specs := make(map[modname.Name]build.InputSpec)
	origin := make(map[modname.Name]string)

	for _, srcDir := range p.Manifest.Sources {
		root := p.resolve(srcDir)
		if _, err := os.Stat(root); os.IsNotExist(err) {
			continue
		}
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || filepath.Ext(path) != build.VelaExt {
				return nil
			}
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			name, err := modname.FromRelPath(rel)
			if err != nil {
				return fmt.Errorf("%w: source %s: %v", ErrInvalidManifest, path, err)
			}
			if prev, dup := origin[name]; dup {
				return fmt.Errorf("%w: module %q defined by both %s and %s", ErrInvalidManifest, name, prev, path)
			}
			origin[name] = path
			specs[name] = build.InputSpec{Source: path}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	for name, spec := range p.Manifest.Modules {
		if spec.Source != "" {
			spec.Source = p.resolve(spec.Source)
		}
		specs[name] = spec
	}

	order := make([]modname.Name, 0, len(specs))
	for name := range specs {
		order = append(order, name)
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	return &Inputs{Specs: specs, Order: order}, nil
}
