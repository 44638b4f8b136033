// Package registry keeps the list of modules that have been generated,
// the only state that survives between runs.
package registry

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/toyz/proxygen/internal/errors"
)

// DefaultFile is the registry file name used when none is configured.
const DefaultFile = "proxygen.generated.json"

// document is the on-disk shape of the registry.
type document struct {
	Generated []string `json:"generated"`
}

// ModuleRegistry tracks generated module names. Names are kept unique and
// listed in sorted order.
type ModuleRegistry struct {
	path  string
	names map[string]bool
	mu    sync.RWMutex
}

// NewModuleRegistry creates an in-memory registry
func NewModuleRegistry(names ...string) *ModuleRegistry {
	registry := &ModuleRegistry{names: make(map[string]bool)}
	for _, name := range names {
		registry.Add(name)
	}
	return registry
}

// Open loads the registry stored at path. A missing file yields an empty
// registry that is created on the first Save.
func Open(path string) (*ModuleRegistry, error) {
	registry := NewModuleRegistry()
	registry.path = path

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return registry, nil
	}
	if err != nil {
		return nil, errors.WrapFileSystemError("read", path, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapFileSystemError("parse", path, err).
			WithSuggestion("Delete the file to start with an empty registry")
	}
	for _, name := range doc.Generated {
		registry.Add(name)
	}
	return registry, nil
}

// Path returns the backing file, or "" for an in-memory registry
func (r *ModuleRegistry) Path() string {
	return r.path
}

// Add records name and reports whether it was new
func (r *ModuleRegistry) Add(name string) bool {
	if name == "" {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.names[name] {
		return false
	}
	r.names[name] = true
	return true
}

// Record adds name and saves the registry when it is file backed.
func (r *ModuleRegistry) Record(name string) error {
	r.Add(name)
	if r.path == "" {
		return nil
	}
	return r.Save()
}

// Has checks if name has been generated
func (r *ModuleRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.names[name]
}

// List returns all generated module names, sorted
func (r *ModuleRegistry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.names))
	for name := range r.names {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Size returns the number of generated modules
func (r *ModuleRegistry) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.names)
}

// Save writes the registry to its backing file
func (r *ModuleRegistry) Save() error {
	if r.path == "" {
		return errors.New(errors.FileSystemErrorCode, "registry has no backing file")
	}

	data, err := json.MarshalIndent(document{Generated: r.List()}, "", "  ")
	if err != nil {
		return errors.WrapFileSystemError("encode", r.path, err)
	}

	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.WrapFileSystemError("create directory for", r.path, err)
		}
	}
	if err := os.WriteFile(r.path, append(data, '\n'), 0644); err != nil {
		return errors.WrapFileSystemError("write", r.path, err)
	}
	return nil
}
