package cli

import (
	"os"
	"path/filepath"

	"github.com/toyz/proxygen/internal/errors"
	"github.com/toyz/proxygen/internal/registry"
)

// Cleaner removes the state left by previous runs
type Cleaner struct {
	config *Config
}

// NewCleaner creates a new cleaner
func NewCleaner(cfg *Config) *Cleaner {
	return &Cleaner{config: cfg}
}

// Clean removes the dump of every module listed in the registry, then the
// registry itself, and returns the removed files.
func (c *Cleaner) Clean() ([]string, error) {
	var removedFiles []string

	modules, err := registry.Open(c.config.RegistryFile)
	if err != nil {
		return nil, err
	}

	if c.config.DumpDir != "" {
		for _, name := range modules.List() {
			dump := filepath.Join(c.config.DumpDir, name+".json")
			if err := removeFile(dump, &removedFiles); err != nil {
				return removedFiles, err
			}
		}
	}

	if err := removeFile(c.config.RegistryFile, &removedFiles); err != nil {
		return removedFiles, err
	}
	return removedFiles, nil
}

// removeFile deletes path when it exists
func removeFile(path string, removedFiles *[]string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.WrapFileSystemError("check", path, err)
	}

	if err := os.Remove(path); err != nil {
		return errors.WrapFileSystemError("remove", path, err)
	}

	*removedFiles = append(*removedFiles, path)
	return nil
}
