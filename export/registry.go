package export

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownFormat is returned by Exporter.Save for a format name that was
// never registered.
var ErrUnknownFormat = errors.New("export: unknown format")

// SaveFunc exports the page behind e as a file named name. An empty name
// means the format's default.
type SaveFunc func(e *Exporter, name string) error

// Registry state - protected by mutex for thread-safe access.
var (
	registryMu sync.RWMutex
	formats    = make(map[string]SaveFunc)
)

func init() {
	RegisterFormat("png", func(e *Exporter, name string) error { return <-e.SavePNG(name) })
	RegisterFormat("svg", (*Exporter).SaveSVG)
	RegisterFormat("dxf", (*Exporter).SaveDXF)
	RegisterFormat("pdf", (*Exporter).SavePDF)
}

// RegisterFormat makes an export format available by name, following the
// database/sql driver pattern:
//
//	func init() {
//	    export.RegisterFormat("gcode", saveGCode)
//	}
//
// RegisterFormat panics if save is nil or if name is already registered.
func RegisterFormat(name string, save SaveFunc) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if save == nil {
		panic("export: RegisterFormat save func is nil")
	}
	if _, dup := formats[name]; dup {
		panic("export: RegisterFormat called twice for " + name)
	}
	formats[name] = save
}

// UnregisterFormat removes a format from the registry.
// If the format is not registered, this is a no-op.
func UnregisterFormat(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(formats, name)
}

// Formats returns the registered format names, sorted.
func Formats() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether a format with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := formats[name]
	return ok
}

func lookupFormat(name string) (SaveFunc, error) {
	registryMu.RLock()
	save, ok := formats[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q (forgotten import?)", ErrUnknownFormat, name)
	}
	return save, nil
}
