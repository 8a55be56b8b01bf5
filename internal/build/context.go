// Package build is the incremental-build orchestrator of the Vela
// compiler. Given per-module input specs it decides whether a module's
// generated output is up to date, runs the registered toolchain when it is
// not, and materializes generated source, header, and externs files into a
// deterministic output layout, together with foreign-file pairing and a
// one-time runtime scaffold.
//
// The package defines no internal concurrency: it is invoked once per
// module, synchronously, by a driver such as Session. Every filesystem
// operation goes through Context helpers so that a progress event is
// emitted before each read and write and every failure surfaces as one of
// the typed errors in errors.go.
package build

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/velalang/velac/internal/modname"
)

// Options configures one build session.
type Options struct {
	// OutputDir is the output root all artifacts land under.
	OutputDir string

	// Provenance enables the generated-by comment line at the top of
	// generated source and header files.
	Provenance bool

	// ToolName and ToolVersion feed the provenance line.
	ToolName    string
	ToolVersion string
}

// Event enumerates progress event kinds.
type Event string

const (
	EventCompiling   Event = "compiling"
	EventSkipping    Event = "skipping"
	EventReadingFile Event = "reading"
	EventWritingFile Event = "writing"
)

// Progress is one informational event. Events are emitted before the
// operation they describe and never affect control flow.
type Progress struct {
	Event  Event
	Module modname.Name
	Path   string
}

// ProgressSink receives progress events.
type ProgressSink interface {
	Progress(p Progress)
}

// ProgressFunc adapts a plain function to a ProgressSink.
type ProgressFunc func(Progress)

func (f ProgressFunc) Progress(p Progress) { f(p) }

// Diagnostics accumulates non-fatal warnings across a session. It is safe
// for concurrent use; insertion order is preserved per module.
type Diagnostics struct {
	mu       sync.Mutex
	warnings []Warning
}

// Warn records one warning attributed to module.
func (d *Diagnostics) Warn(module modname.Name, format string, args ...any) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.warnings = append(d.warnings, Warning{
		Module:  module,
		Message: fmt.Sprintf(format, args...),
	})
}

// Warnings returns a copy of the accumulated warnings.
func (d *Diagnostics) Warnings() []Warning {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]Warning, len(d.warnings))
	copy(out, d.warnings)
	return out
}

// Context threads configuration, diagnostics, and progress reporting
// through every build operation.
type Context struct {
	Options     Options
	Diagnostics *Diagnostics

	sink ProgressSink
}

// NewContext returns a ready Context. sink may be nil to discard progress.
func NewContext(opts Options, sink ProgressSink) *Context {
	return &Context{
		Options:     opts,
		Diagnostics: &Diagnostics{},
		sink:        sink,
	}
}

func (c *Context) progress(p Progress) {
	if c.sink != nil {
		c.sink.Progress(p)
	}
}

func (c *Context) event(e Event, module modname.Name, path string) {
	c.progress(Progress{Event: e, Module: module, Path: path})
}

// readFile reads path on behalf of module, announcing the read first.
func (c *Context) readFile(module modname.Name, path string) ([]byte, error) {
	c.event(EventReadingFile, module, path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &CannotReadFileError{Path: path, Err: err}
	}
	return data, nil
}

// writeFile writes data to path on behalf of module, creating parent
// directories and announcing the write first.
func (c *Context) writeFile(module modname.Name, path string, data []byte) error {
	c.event(EventWritingFile, module, path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &CannotWriteFileError{Path: path, Err: err}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &CannotWriteFileError{Path: path, Err: err}
	}
	return nil
}

// statMtime returns path's modification time. A missing file is reported
// through ok, never as an error; existence of queried targets is expected
// to vary.
func (c *Context) statMtime(path string) (mtime time.Time, ok bool, err error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, &CannotGetFileInfoError{Path: path, Err: err}
	}
	return info.ModTime(), true, nil
}
