package output

import (
	"sort"
	"strings"
)

// RenderFileTree renders files created under a directory as a tree,
// with an optional dim description per file. Used by init to show the
// generated project layout.
//
//	myproject/
//	├── src/Main.vela    entry module
//	└── vela.cue         project manifest
func RenderFileTree(root string, files map[string]string) string {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	width := 0
	for _, name := range names {
		if len(name) > width {
			width = len(name)
		}
	}

	var b strings.Builder
	b.WriteString(StyleBold.Render(root+"/") + "\n")
	for i, name := range names {
		branch := "├── "
		if i == len(names)-1 {
			branch = "└── "
		}
		b.WriteString(StyleDim.Render(branch) + name)
		if desc := files[name]; desc != "" {
			b.WriteString(strings.Repeat(" ", width-len(name)+4))
			b.WriteString(StyleDim.Render(desc))
		}
		b.WriteString("\n")
	}
	return b.String()
}
