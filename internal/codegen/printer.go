package codegen

import "strings"

// Split partitions a generator's output stream at the first SourceMarker.
// It returns the header segment, the source segment, and whether a marker
// was found. A stream without a marker violates the generator contract and
// must not be written out.
func Split(decls []Decl) (header, source []Decl, ok bool) {
	for i, d := range decls {
		if _, m := d.(marker); m {
			return decls[:i], decls[i+1:], true
		}
	}
	return nil, nil, false
}

// Print renders a segment as a compilation unit: elements separated by one
// blank line, with a trailing newline. Markers render nothing. Printing is
// deterministic; identical input yields identical text.
func Print(decls []Decl) string {
	var b strings.Builder
	first := true
	for _, d := range decls {
		if _, m := d.(marker); m {
			continue
		}
		if !first {
			b.WriteByte('\n')
		}
		first = false
		b.WriteString(d.text())
		b.WriteByte('\n')
	}
	return b.String()
}
