package codegen

import (
	"fmt"
	"strings"
)

// Decl is one element of a generated compilation unit. The set of element
// kinds is closed; generators compose output from the kinds below.
type Decl interface {
	// text renders the element as target-language source.
	text() string
}

// Include is a C preprocessor include directive.
type Include struct {
	Path   string
	System bool
}

func (d Include) text() string {
	if d.System {
		return fmt.Sprintf("#include <%s>", d.Path)
	}
	return fmt.Sprintf("#include \"%s\"", d.Path)
}

// Comment is a line comment. Multi-line text renders one comment line per
// input line.
type Comment struct {
	Text string
}

func (d Comment) text() string {
	lines := strings.Split(d.Text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight("// "+l, " ")
	}
	return strings.Join(lines, "\n")
}

// Raw is a verbatim chunk of target-language text.
type Raw struct {
	Text string
}

func (d Raw) text() string { return d.Text }

type marker struct{}

func (marker) text() string { return "" }

// SourceMarker is the sentinel a generator places in its output stream to
// separate header declarations from source declarations: everything before
// it belongs to the header file, everything after it to the source file.
// Placing the marker is part of the generator contract, not something the
// printer discovers.
var SourceMarker Decl = marker{}
