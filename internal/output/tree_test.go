package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderFileTree(t *testing.T) {
	out := RenderFileTree("myproject", map[string]string{
		"vela.cue":      "project manifest",
		"src/Main.vela": "entry module",
	})

	assert.Contains(t, out, "myproject/")
	assert.Contains(t, out, "├── src/Main.vela")
	assert.Contains(t, out, "└── vela.cue")
	assert.Contains(t, out, "project manifest")
	assert.Contains(t, out, "entry module")
}

func TestRenderFileTreeSorted(t *testing.T) {
	out := RenderFileTree("p", map[string]string{
		"b.vela": "",
		"a.vela": "",
		"c.vela": "",
	})

	ai := strings.Index(out, "a.vela")
	bi := strings.Index(out, "b.vela")
	ci := strings.Index(out, "c.vela")
	assert.Less(t, ai, bi)
	assert.Less(t, bi, ci)
	assert.Contains(t, out, "└── c.vela")
}

func TestRenderFileTreeEmpty(t *testing.T) {
	out := RenderFileTree("empty", nil)
	assert.Contains(t, out, "empty/")
	assert.Equal(t, 1, strings.Count(out, "\n"))
}
