// Package rospack locates message packages on disk.
// A package named p resolves to the first directory <root>/p under the
// configured search roots.
package rospack

import (
	"os"
	"path/filepath"
	"strings"
)

// EnvSearchPath is the environment variable consulted when no search roots
// are configured. It holds a list of roots separated by the OS path list
// separator.
const EnvSearchPath = "ROS_PACKAGE_PATH"

// Locator implements ports.PackageLocator over a list of search roots.
type Locator struct {
	roots []string
}

// New creates a locator. When no roots are given, roots are taken from
// EnvSearchPath.
func New(roots []string) *Locator {
	if len(roots) == 0 {
		roots = splitEnvPath(os.Getenv(EnvSearchPath))
	}
	return &Locator{roots: roots}
}

// Roots returns the configured search roots.
func (l *Locator) Roots() []string {
	return l.roots
}

// Locate returns the root directory of a package, searching the configured
// roots in order. A package must be a directory; nothing below it is
// inspected here.
func (l *Locator) Locate(pkg string) (string, bool) {
	if pkg == "" || strings.ContainsAny(pkg, `/\`) {
		return "", false
	}
	for _, root := range l.roots {
		candidate := filepath.Join(root, pkg)
		info, err := os.Stat(candidate)
		if err == nil && info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}

func splitEnvPath(env string) []string {
	var roots []string
	for _, p := range filepath.SplitList(env) {
		if p != "" {
			roots = append(roots, p)
		}
	}
	return roots
}
