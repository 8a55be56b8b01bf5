package codegen

import (
	"fmt"
	"sort"
	"sync"
)

var (
	regMu    sync.RWMutex
	registry = make(map[string]*Toolchain)
)

// Register makes a toolchain available under the given target name, e.g.
// "c". It panics if the toolchain is incomplete or the target is already
// registered, mirroring how database/sql registers drivers.
func Register(target string, tc *Toolchain) {
	if tc == nil || tc.Compiler == nil || tc.Generator == nil {
		panic("codegen: Register with incomplete toolchain")
	}
	regMu.Lock()
	defer regMu.Unlock()
	if _, dup := registry[target]; dup {
		panic(fmt.Sprintf("codegen: Register called twice for target %q", target))
	}
	registry[target] = tc
}

// Lookup returns the toolchain registered for target.
func Lookup(target string) (*Toolchain, bool) {
	regMu.RLock()
	defer regMu.RUnlock()
	tc, ok := registry[target]
	return tc, ok
}

// Targets lists the registered target names in sorted order.
func Targets() []string {
	regMu.RLock()
	defer regMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
