package cli

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/toyz/proxygen/internal/errors"
	"github.com/toyz/proxygen/internal/generator"
	"github.com/toyz/proxygen/internal/models"
	"github.com/toyz/proxygen/internal/registry"
	"github.com/toyz/proxygen/internal/source"
	"github.com/toyz/proxygen/internal/utils"
)

// DefaultConfigFile is read when no config path is given
const DefaultConfigFile = "proxygen.yaml"

var configValidator = utils.NewStructValidator()

// Config holds the configuration for a generation run
type Config struct {
	// Source is the path of a JSON API description
	Source string `yaml:"source" validate:"required_without=URL,excluded_with=URL"`

	// URL is the root URL of a running backend to fetch the description from
	URL string `yaml:"url" validate:"omitempty,url"`

	// RootNamespace is stripped from every namespace
	RootNamespace string `yaml:"rootNamespace"`

	// Modules lists the modules to generate
	Modules []string `yaml:"modules" validate:"required_without=All,dive,required"`

	// All generates every module of the description
	All bool `yaml:"all"`

	// RegistryFile keeps the names of generated modules between runs
	RegistryFile string `yaml:"registryFile" validate:"required"`

	// Transport is the value import added to every service
	Transport TransportConfig `yaml:"transport"`

	// DumpDir receives one JSON document per generated module when set
	DumpDir string `yaml:"dumpDir"`

	// Verbose enables detailed logging and error reporting
	Verbose bool `yaml:"verbose"`
}

// TransportConfig names the import that performs requests
type TransportConfig struct {
	Path       string   `yaml:"path" validate:"required"`
	Specifiers []string `yaml:"specifiers" validate:"min=1,dive,required"`
}

// DefaultConfig returns the configuration used when no file is present
func DefaultConfig() *Config {
	return &Config{
		RegistryFile: registry.DefaultFile,
		Transport: TransportConfig{
			Path:       generator.DefaultTransportPath,
			Specifiers: []string{generator.DefaultTransportSpecifier},
		},
	}
}

// LoadConfig reads the YAML file at path over the defaults. An empty path
// reads DefaultConfigFile, which may be absent.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, errors.WrapFileSystemError("read", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.WrapConfigurationError(path, "parse", err).
			WithSuggestion("Check the YAML syntax of the config file")
	}
	return cfg, nil
}

// Validate checks that the configuration describes a runnable generation
func (c *Config) Validate() error {
	if err := configValidator.Validate(c); err != nil {
		return errors.WrapConfigurationError("proxygen", "validate", err).
			WithSuggestions(
				"Set exactly one of source or url",
				"List modules or set all: true",
			)
	}
	return nil
}

// Loader returns the collaborator that obtains the API description
func (c *Config) Loader() source.Loader {
	if c.URL != "" {
		return source.NewClient(c.URL)
	}
	return source.FileLoader{Path: c.Source}
}

// TransportImport returns the configured transport as a value import
func (c *Config) TransportImport() *models.Import {
	return models.NewImport(c.Transport.Path, models.ImportKeywordValue).
		AddSpecifiers(c.Transport.Specifiers...)
}
