package output

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatModuleLine(t *testing.T) {
	line := FormatModuleLine("Data.List", StatusCompiled)
	assert.Contains(t, line, "m:")
	assert.Contains(t, line, "Data.List")
	assert.Contains(t, line, "compiled")
}

func TestFormatModuleLineAlignment(t *testing.T) {
	// Same status, different name lengths: statuses land in the
	// same column.
	a := FormatModuleLine("Main", StatusCompiled)
	b := FormatModuleLine("Data.List", StatusCompiled)
	assert.Equal(t, strings.Index(a, "compiled"), strings.Index(b, "compiled"))
}

func TestFormatModuleLineLongName(t *testing.T) {
	name := "Data.Collections.Persistent.FingerTree"
	line := FormatModuleLine(name, StatusFresh)
	assert.Contains(t, line, name)
	assert.Contains(t, line, "fresh")
}

func TestFormatCheckmark(t *testing.T) {
	out := FormatCheckmark("built 3 modules")
	assert.Contains(t, out, "✔")
	assert.Contains(t, out, "built 3 modules")
}

func TestFormatWarning(t *testing.T) {
	out := FormatWarning("unused foreign header")
	assert.Contains(t, out, "⚠")
	assert.Contains(t, out, "unused foreign header")
}

func TestFormatErrorLine(t *testing.T) {
	out := FormatErrorLine("build failed")
	assert.Contains(t, out, "✗")
	assert.Contains(t, out, "build failed")
}

func TestStatusStyleUnknownIsPlain(t *testing.T) {
	// Unknown statuses render unstyled rather than panicking.
	out := StatusStyle("bogus").Render("bogus")
	assert.Contains(t, out, "bogus")
}

func TestRunWithSpinnerNoTTY(t *testing.T) {
	// Tests run without a terminal, so fn executes directly.
	ran := false
	err := RunWithSpinner("compiling", func() error {
		ran = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, ran)

	wantErr := errors.New("compile failed")
	err = RunWithSpinner("compiling", func() error { return wantErr })
	assert.ErrorIs(t, err, wantErr)
}
