package sketches

import (
	"fmt"
	"sort"
	"sync"

	"github.com/penplot/sketchbook"
)

// Factory creates a fresh sketch. Sketches carry animation state, so
// every caller gets its own instance.
type Factory func() *sketchbook.Sketch

// Registry state - protected by mutex for thread-safe access.
var (
	registryMu sync.RWMutex
	factories  = make(map[string]Factory)
)

// Register makes a sketch available by name. It is typically called from
// init(). Register panics if factory is nil or name is already taken.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("sketches: Register factory is nil")
	}
	if _, dup := factories[name]; dup {
		panic("sketches: Register called twice for " + name)
	}
	factories[name] = factory
}

// Unregister removes a sketch from the registry.
// If the sketch is not registered, this is a no-op.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// New creates the named sketch.
func New(name string) (*sketchbook.Sketch, error) {
	registryMu.RLock()
	factory, ok := factories[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("sketches: unknown sketch %q", name)
	}
	return factory(), nil
}

// Must creates the named sketch, panicking on error.
func Must(name string) *sketchbook.Sketch {
	s, err := New(name)
	if err != nil {
		panic(err)
	}
	return s
}

// Names returns the registered sketch names, sorted.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered sketches.
func Count() int {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return len(factories)
}
