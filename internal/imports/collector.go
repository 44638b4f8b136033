// Package imports collects the import statements of a generated file.
package imports

import (
	"path"
	"sort"

	"github.com/toyz/proxygen/internal/models"
)

// Collector handles import deduplication for one generated file
type Collector struct {
	owner   string // path of the file the imports belong to
	imports map[models.ImportKey]*models.Import
}

// NewCollector creates a new collector for the file at owner
func NewCollector(owner string) *Collector {
	return &Collector{
		owner:   owner,
		imports: make(map[models.ImportKey]*models.Import),
	}
}

// Add merges imp into the collector. Imports of the owning file itself and
// imports without specifiers are skipped.
func (c *Collector) Add(imp *models.Import) {
	if imp == nil || len(imp.Specifiers) == 0 || c.isSelf(imp.Path) {
		return
	}

	if existing, ok := c.imports[imp.Key()]; ok {
		existing.Merge(imp)
		return
	}
	c.imports[imp.Key()] = imp.Clone()
}

// Imports returns the collected imports sorted by path, then keyword
func (c *Collector) Imports() []*models.Import {
	out := make([]*models.Import, 0, len(c.imports))
	for _, imp := range c.imports {
		out = append(out, imp.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Path != out[j].Path {
			return out[i].Path < out[j].Path
		}
		return out[i].Keyword < out[j].Keyword
	})
	return out
}

// isSelf checks if path points at the owning file. Relative paths
// resolving to the same directory and file name ("./models" from a models
// file) are self imports.
func (c *Collector) isSelf(importPath string) bool {
	if c.owner == "" {
		return false
	}
	return importPath == "./"+path.Base(c.owner)
}
