package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/toyz/proxygen/internal/errors"
	"github.com/toyz/proxygen/internal/generator"
	"github.com/toyz/proxygen/internal/models"
	"github.com/toyz/proxygen/internal/registry"
	"github.com/toyz/proxygen/internal/source"
	"github.com/toyz/proxygen/internal/utils"
)

// Generator coordinates a CLI generation run
type Generator struct {
	config      *Config
	loader      source.Loader
	diagnostics *utils.DiagnosticSystem
	summary     GenerationSummary
}

// GenerationSummary contains information about the generation process
type GenerationSummary struct {
	RunID            string
	ModulesGenerated int
	Modules          []string
	Services         int
	Methods          int
	Interfaces       int
	Enums            int
	RegistryFile     string
	DumpedFiles      []string
	Duration         time.Duration
}

// Dump is the JSON document written per module to the dump directory
type Dump struct {
	RunID  string                  `json:"runId"`
	Module *models.GeneratedModule `json:"module"`
}

// NewGenerator creates a generator for cfg. A nil diagnostics system
// reports at Info level.
func NewGenerator(cfg *Config, diagnostics *utils.DiagnosticSystem) *Generator {
	if diagnostics == nil {
		diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticInfo)
	}
	return &Generator{
		config:      cfg,
		loader:      cfg.Loader(),
		diagnostics: diagnostics,
	}
}

// SetLoader replaces the collaborator that obtains the API description
func (g *Generator) SetLoader(loader source.Loader) {
	g.loader = loader
}

// GetSummary returns the summary of the last run
func (g *Generator) GetSummary() GenerationSummary {
	return g.summary
}

// Run loads the API description, generates the configured modules and
// records each completed module in the registry. Modules completed before
// a failure stay recorded and dumped.
func (g *Generator) Run(ctx context.Context) error {
	started := time.Now()
	g.summary = GenerationSummary{
		RunID:        uuid.NewString(),
		RegistryFile: g.config.RegistryFile,
	}
	defer func() {
		g.summary.Duration = time.Since(started)
	}()

	g.diagnostics.Debug("Run %s", g.summary.RunID)

	if err := g.config.Validate(); err != nil {
		return err
	}

	g.diagnostics.StartProgress("Loading API description")
	def, err := g.loader.Load(ctx)
	if err != nil {
		g.diagnostics.EndProgress(false, "")
		return err
	}
	g.diagnostics.EndProgress(true, pluralize(len(def.Modules), "module"))

	modules, err := registry.Open(g.config.RegistryFile)
	if err != nil {
		return err
	}
	g.diagnostics.Verbose("Registry %s lists %d generated modules", g.config.RegistryFile, modules.Size())

	names := g.config.Modules
	if g.config.All {
		names = generator.ModuleNames(def)
	}
	for _, name := range names {
		if modules.Has(name) {
			g.diagnostics.Verbose("Module %s was generated before and will be regenerated", name)
		}
	}

	gen := generator.NewGenerator(generator.Options{
		RootNamespace: g.config.RootNamespace,
		Transport:     g.config.TransportImport(),
		Reporter:      g.diagnostics,
	})

	g.diagnostics.StartProgress("Generating modules")
	results, genErr := gen.GenerateAll(def, names, modules)
	g.diagnostics.EndProgress(genErr == nil, pluralize(len(results), "module"))

	for _, module := range results {
		g.collect(module)
		if g.config.DumpDir == "" {
			continue
		}
		file, err := g.dump(module)
		if err != nil {
			return err
		}
		g.summary.DumpedFiles = append(g.summary.DumpedFiles, file)
	}

	return genErr
}

func (g *Generator) collect(module *models.GeneratedModule) {
	g.summary.ModulesGenerated++
	g.summary.Modules = append(g.summary.Modules, module.Name)
	g.summary.Services += len(module.Services)
	g.summary.Methods += module.MethodCount()
	g.summary.Interfaces += module.InterfaceCount()
	g.summary.Enums += len(module.Enums)
}

// dump writes module as JSON into the dump directory and returns the path
func (g *Generator) dump(module *models.GeneratedModule) (string, error) {
	if err := os.MkdirAll(g.config.DumpDir, 0755); err != nil {
		return "", errors.WrapFileSystemError("create directory", g.config.DumpDir, err)
	}

	path := filepath.Join(g.config.DumpDir, module.Name+".json")
	data, err := json.MarshalIndent(Dump{RunID: g.summary.RunID, Module: module}, "", "  ")
	if err != nil {
		return "", errors.WrapFileSystemError("encode", path, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return "", errors.WrapFileSystemError("write", path, err)
	}

	g.diagnostics.Debug("Wrote %s", path)
	return path, nil
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}
