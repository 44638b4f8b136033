// Package source obtains the API description: from a JSON file or from a
// running backend.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/gorilla/schema"

	"github.com/toyz/proxygen/internal/errors"
	"github.com/toyz/proxygen/internal/models"
	"github.com/toyz/proxygen/internal/utils"
)

// DefinitionPath is the backend endpoint serving the API description.
const DefinitionPath = "/api/abp/api-definition"

// DefaultTimeout bounds a fetch when the caller's context has no deadline.
const DefaultTimeout = 30 * time.Second

var (
	structValidator = utils.NewStructValidator()
	queryEncoder    = schema.NewEncoder()
)

// DefinitionQuery is the query string sent with a fetch.
type DefinitionQuery struct {
	IncludeTypes bool `schema:"includeTypes"`
}

// Loader obtains an API description
type Loader interface {
	Load(ctx context.Context) (*models.APIDefinition, error)
}

// Decode reads a JSON API description from r.
func Decode(r io.Reader) (*models.APIDefinition, error) {
	var def models.APIDefinition
	if err := json.NewDecoder(r).Decode(&def); err != nil {
		return nil, err
	}
	return &def, nil
}

// Validate checks the structural shape of def.
func Validate(def *models.APIDefinition) error {
	if def == nil {
		return errors.RegistryMissing("modules")
	}
	return structValidator.Validate(def)
}

// FileLoader loads the description from a JSON file
type FileLoader struct {
	Path string
}

// Load implements Loader
func (l FileLoader) Load(_ context.Context) (*models.APIDefinition, error) {
	return LoadFile(l.Path)
}

// LoadFile reads and validates the description stored at path.
func LoadFile(path string) (*models.APIDefinition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapFileSystemError("open", path, err)
	}
	defer f.Close()

	def, err := Decode(f)
	if err != nil {
		return nil, errors.WrapSourceError("decode", path, err)
	}
	if err := Validate(def); err != nil {
		return nil, errors.WrapSourceError("validate", path, err)
	}
	return def, nil
}

// Client fetches the description from a backend
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client for the backend at baseURL
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// Load implements Loader
func (c *Client) Load(ctx context.Context) (*models.APIDefinition, error) {
	return c.Fetch(ctx)
}

// Endpoint returns the description URL, type information included.
func (c *Client) Endpoint() (string, error) {
	base, err := url.Parse(strings.TrimSpace(c.BaseURL))
	if err != nil {
		return "", err
	}
	if base.Scheme == "" || base.Host == "" {
		return "", fmt.Errorf("base url %q must be absolute", c.BaseURL)
	}

	query := url.Values{}
	if err := queryEncoder.Encode(DefinitionQuery{IncludeTypes: true}, query); err != nil {
		return "", err
	}

	base.Path = strings.TrimSuffix(base.Path, "/") + DefinitionPath
	base.RawQuery = query.Encode()
	return base.String(), nil
}

// Fetch downloads and validates the description.
func (c *Client) Fetch(ctx context.Context) (*models.APIDefinition, error) {
	endpoint, err := c.Endpoint()
	if err != nil {
		return nil, errors.WrapSourceError("resolve", c.BaseURL, err).
			WithSuggestion("Pass the backend root URL, for example https://localhost:44300")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.WrapSourceError("fetch", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")

	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.WrapSourceError("fetch", endpoint, err).
			WithSuggestion("Make sure the backend is running and reachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.WrapSourceError("fetch", endpoint, fmt.Errorf("unexpected status %s", resp.Status)).
			WithContext("status", resp.StatusCode)
	}

	def, err := Decode(resp.Body)
	if err != nil {
		return nil, errors.WrapSourceError("decode", endpoint, err)
	}
	if err := Validate(def); err != nil {
		return nil, errors.WrapSourceError("validate", endpoint, err)
	}
	return def, nil
}
