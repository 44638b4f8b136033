package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/proxygen/internal/errors"
	"github.com/toyz/proxygen/internal/models"
)

func TestLoadFile(t *testing.T) {
	def, err := LoadFile(filepath.Join("testdata", "minimal.json"))
	require.NoError(t, err)

	require.Contains(t, def.Modules, "app")
	controller := def.Modules["app"].Controllers["Acme.Books.BookController"]
	action := controller.Actions["GetAsyncById"]
	assert.Equal(t, "GET", action.HTTPMethod)
	assert.Equal(t, models.BindingSourcePath, action.Parameters[0].BindingSourceID)

	dto, ok := def.Types.Lookup("Acme.Books.BookDto")
	require.True(t, ok)
	assert.Equal(t, "Name", dto.Properties[0].Name)
}

func TestLoadFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFile(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.Equal(t, errors.FileSystemErrorCode, errors.CodeOf(err))

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte("{"), 0644))
	_, err = LoadFile(broken)
	require.Error(t, err)
	assert.Equal(t, errors.SourceErrorCode, errors.CodeOf(err))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		document string
		contains []string
	}{
		{
			name:     "missing registries",
			document: `{}`,
			contains: []string{"APIDefinition.modules", "APIDefinition.types"},
		},
		{
			name: "invalid action",
			document: `{"types": {}, "modules": {"app": {"rootPath": "app", "remoteServiceName": "Default",
				"controllers": {"c": {"controllerName": "C", "type": "Acme.CController",
				"actions": {"a": {"uniqueName": "A", "httpMethod": "FETCH", "url": ""}}}}}}}`,
			contains: []string{
				"modules[app].controllers[c].actions[a].httpMethod",
				"modules[app].controllers[c].actions[a].url",
			},
		},
		{
			name: "invalid property",
			document: `{"modules": {}, "types": {"Acme.Dto": {"properties": [{"name": "", "type": "System.String", "typeSimple": "string"}]}}}`,
			contains: []string{"types[Acme.Dto].properties[0].name"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := Decode(strings.NewReader(tt.document))
			require.NoError(t, err)

			err = Validate(def)
			require.Error(t, err)
			assert.Equal(t, errors.ValidationErrorCode, errors.CodeOf(err))
			for _, s := range tt.contains {
				assert.Contains(t, err.Error(), s)
			}
		})
	}

	assert.Error(t, Validate(nil))
}

func TestClient_Fetch(t *testing.T) {
	fixture, err := os.ReadFile(filepath.Join("testdata", "minimal.json"))
	require.NoError(t, err)

	var gotPath, gotQuery, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("includeTypes")
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(fixture)
	}))
	defer server.Close()

	def, err := NewClient(server.URL + "/").Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, DefinitionPath, gotPath)
	assert.Equal(t, "true", gotQuery)
	assert.Equal(t, "application/json", gotAccept)
	assert.Contains(t, def.Modules, "app")
}

func TestClient_FetchErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := NewClient(server.URL).Fetch(context.Background())
	require.Error(t, err)
	assert.Equal(t, errors.SourceErrorCode, errors.CodeOf(err))
	assert.Contains(t, err.Error(), "500")

	_, err = NewClient("localhost:44300").Fetch(context.Background())
	require.Error(t, err)
	assert.Equal(t, errors.SourceErrorCode, errors.CodeOf(err))
}

func TestClient_FetchHonorsContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(server.URL).Fetch(ctx)
	require.Error(t, err)
}

func TestClient_Endpoint(t *testing.T) {
	endpoint, err := NewClient("https://api.example.com/root").Endpoint()
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/root/api/abp/api-definition?includeTypes=true", endpoint)
}

func TestLoaders(t *testing.T) {
	var _ Loader = FileLoader{}
	var _ Loader = &Client{}

	def, err := FileLoader{Path: filepath.Join("testdata", "minimal.json")}.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, def.Modules, 1)
}
