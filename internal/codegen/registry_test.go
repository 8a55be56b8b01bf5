package codegen

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velalang/velac/internal/modname"
)

type nopCompiler struct{}

func (nopCompiler) Compile(ctx context.Context, name modname.Name, source string) (*Unit, error) {
	return &Unit{}, nil
}

type nopGenerator struct{}

func (nopGenerator) Generate(ctx context.Context, mod Module, env Environment, names *NameSupply) ([]Decl, error) {
	return []Decl{SourceMarker}, nil
}

func testToolchain() *Toolchain {
	return &Toolchain{Compiler: nopCompiler{}, Generator: nopGenerator{}}
}

func TestRegisterLookup(t *testing.T) {
	tc := testToolchain()
	Register("test-c99", tc)

	got, ok := Lookup("test-c99")
	require.True(t, ok)
	assert.Same(t, tc, got)

	_, ok = Lookup("test-unknown")
	assert.False(t, ok)
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", testToolchain())
	assert.Panics(t, func() {
		Register("test-dup", testToolchain())
	})
}

func TestRegisterIncompletePanics(t *testing.T) {
	assert.Panics(t, func() {
		Register("test-nil", nil)
	})
	assert.Panics(t, func() {
		Register("test-half", &Toolchain{Compiler: nopCompiler{}})
	})
}

func TestTargetsSorted(t *testing.T) {
	Register("test-zz", testToolchain())
	Register("test-aa", testToolchain())

	targets := Targets()
	require.GreaterOrEqual(t, len(targets), 2)
	assert.IsIncreasing(t, targets)
}
