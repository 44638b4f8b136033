package registry

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/proxygen/internal/errors"
)

func TestModuleRegistry_AddSortsAndDeduplicates(t *testing.T) {
	registry := NewModuleRegistry("identity", "app")

	assert.True(t, registry.Add("account"))
	assert.False(t, registry.Add("app"))
	assert.False(t, registry.Add(""))

	assert.Equal(t, []string{"account", "app", "identity"}, registry.List())
	assert.Equal(t, 3, registry.Size())
	assert.True(t, registry.Has("identity"))
	assert.False(t, registry.Has("billing"))
}

func TestModuleRegistry_OpenMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "generated.json")

	registry, err := Open(path)
	require.NoError(t, err)
	assert.Empty(t, registry.List())
	assert.Equal(t, path, registry.Path())
}

func TestModuleRegistry_SaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "generated.json")

	registry, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, registry.Record("identity"))
	require.NoError(t, registry.Record("app"))
	require.NoError(t, registry.Record("app"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"generated": ["app", "identity"]}`, string(data))

	reloaded, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"app", "identity"}, reloaded.List())
}

func TestModuleRegistry_OpenCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "generated.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := Open(path)
	require.Error(t, err)
	assert.Equal(t, errors.FileSystemErrorCode, errors.CodeOf(err))
}

func TestModuleRegistry_InMemory(t *testing.T) {
	registry := NewModuleRegistry()

	require.NoError(t, registry.Record("app"))
	assert.Equal(t, []string{"app"}, registry.List())
	assert.Error(t, registry.Save())
}

func TestModuleRegistry_ThreadSafety(t *testing.T) {
	registry := NewModuleRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			registry.Add([]string{"a", "b", "c"}[i%3])
			registry.List()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, []string{"a", "b", "c"}, registry.List())
}
