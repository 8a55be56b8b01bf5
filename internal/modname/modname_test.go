package modname

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"single segment", "Main", false},
		{"two segments", "Data.List", false},
		{"deep hierarchy", "Control.Monad.State.Trans", false},
		{"underscore segment", "_internal.Impl", false},
		{"digits after first char", "Vec2.Ops3", false},
		{"empty", "", true},
		{"trailing dot", "Data.", true},
		{"leading dot", ".Data", true},
		{"double dot", "Data..List", true},
		{"digit-leading segment", "Data.2List", true},
		{"hyphen", "my-module", true},
		{"path separator", "Data/List", true},
		{"space", "Data List", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, got.String())
		})
	}
}

func TestBase(t *testing.T) {
	tests := []struct {
		input Name
		want  string
	}{
		{"Main", "Main"},
		{"Data.List", "List"},
		{"Foo.Bar.Baz", "Baz"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.input.Base(), "Base(%q)", tt.input)
	}
}

func TestRelDir(t *testing.T) {
	tests := []struct {
		input Name
		want  string
	}{
		{"Main", "Main"},
		{"Data.List", filepath.Join("Data", "List")},
		{"Foo.Bar.Baz", filepath.Join("Foo", "Bar", "Baz")},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.input.RelDir(), "RelDir(%q)", tt.input)
	}
}

func TestSegments(t *testing.T) {
	assert.Equal(t, []string{"Data", "List"}, Name("Data.List").Segments())
	assert.Equal(t, []string{"Main"}, Name("Main").Segments())
}

func TestFromRelPath(t *testing.T) {
	tests := []struct {
		name    string
		rel     string
		want    Name
		wantErr bool
	}{
		{"flat file", "Main.vela", "Main", false},
		{"nested file", "Data/List.vela", "Data.List", false},
		{"deep nesting", "Control/Monad/State.vela", "Control.Monad.State", false},
		{"no extension", "Data/List", "Data.List", false},
		{"redundant separators", "Data//List.vela", "Data.List", false},
		{"empty", "", "", true},
		{"escapes root", "../Other.vela", "", true},
		{"invalid segment", "Data/my-list.vela", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromRelPath(tt.rel)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Round trip: a name rendered to a path and back is unchanged.
func TestPathRoundTrip(t *testing.T) {
	for _, n := range []Name{"Main", "Data.List", "Foo.Bar.Baz"} {
		rel := n.RelDir() + ".vela"
		back, err := FromRelPath(rel)
		require.NoError(t, err)
		assert.Equal(t, n, back)
	}
}
