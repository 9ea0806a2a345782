// Package memory provides in-memory implementations of storage and
// resolution ports, used in tests and for cacheless runs.
package memory

import "sync"

// Locator implements ports.PackageLocator with a fixed package map.
type Locator struct {
	mu    sync.RWMutex
	paths map[string]string
}

// NewLocator creates a locator from a package → path map.
func NewLocator(paths map[string]string) *Locator {
	cp := make(map[string]string, len(paths))
	for k, v := range paths {
		cp[k] = v
	}
	return &Locator{paths: cp}
}

// Add maps a package name to a path.
func (l *Locator) Add(pkg, path string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.paths[pkg] = path
}

// Locate returns the mapped path for a package.
func (l *Locator) Locate(pkg string) (string, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	path, ok := l.paths[pkg]
	return path, ok
}
