package generator

import (
	"sort"

	"github.com/toyz/proxygen/internal/errors"
	"github.com/toyz/proxygen/internal/models"
)

// Default transport import of generated services.
const (
	DefaultTransportPath      = "@abp/ng.core"
	DefaultTransportSpecifier = "RestService"
)

// Options configures a Generator
type Options struct {
	// RootNamespace is stripped from every namespace.
	RootNamespace string
	// Transport is the value import added to every service. Nil means the
	// default transport.
	Transport *models.Import
	// Reporter receives progress output. Nil means silent.
	Reporter Reporter
}

// Generator implements the ModuleGenerator interface
type Generator struct {
	root      string
	transport *models.Import
	reporter  Reporter
}

// NewGenerator creates a new generator instance
func NewGenerator(opts Options) *Generator {
	transport := opts.Transport
	if transport == nil {
		transport = DefaultTransport()
	}
	reporter := opts.Reporter
	if reporter == nil {
		reporter = silentReporter{}
	}
	return &Generator{
		root:      opts.RootNamespace,
		transport: transport,
		reporter:  reporter,
	}
}

// DefaultTransport returns the default transport import.
func DefaultTransport() *models.Import {
	return models.NewImport(DefaultTransportPath, models.ImportKeywordValue).
		AddSpecifiers(DefaultTransportSpecifier)
}

// GenerateModule generates the services, models and enums of module name
func (g *Generator) GenerateModule(def *models.APIDefinition, name string) (*models.GeneratedModule, error) {
	if def == nil || def.Modules == nil {
		return nil, errors.RegistryMissing("modules")
	}
	if def.Types == nil {
		return nil, errors.RegistryMissing("types")
	}
	module, ok := def.Modules[name]
	if !ok {
		return nil, errors.ModuleNotFound(name, sortedKeys(def.Modules))
	}

	g.reporter.Verbose("Generating module %s (%d controllers)", name, len(module.Controllers))

	mb := newModelBuilder(g.root, def.Types)
	sb := newServiceBuilder(mb, g.transport)

	result := &models.GeneratedModule{
		Name:              name,
		RootPath:          module.RootPath,
		RemoteServiceName: module.RemoteServiceName,
		Services:          make([]*models.Service, 0, len(module.Controllers)),
		Enums:             make([]*models.EnumDescriptor, 0),
	}

	for _, key := range sortedKeys(module.Controllers) {
		service, err := sb.buildService(module.Controllers[key], module.RemoteServiceName)
		if err != nil {
			return nil, errors.WrapModuleError(name, err)
		}
		g.reporter.Debug("Service %s: %d methods", service.Name, len(service.Methods))
		result.Services = append(result.Services, service)
	}

	refs := sb.touchedRefs()
	g.reporter.Debug("Collected %d type references", len(refs))
	result.Models = mb.buildModels(refs)

	var importGroups [][]*models.Import
	for _, service := range result.Services {
		importGroups = append(importGroups, service.Imports)
	}
	for _, model := range result.Models {
		importGroups = append(importGroups, model.Imports)
	}
	for _, ref := range enumRefs(def.Types, importGroups...) {
		enum, err := buildEnum(g.root, def.Types, ref)
		if err != nil {
			return nil, errors.WrapModuleError(name, err)
		}
		result.Enums = append(result.Enums, enum)
	}

	g.reporter.Verbose("Module %s: %d services, %d interfaces, %d enums",
		name, len(result.Services), result.InterfaceCount(), len(result.Enums))
	return result, nil
}

// GenerateAll generates every module in names, in sorted order, recording
// each one as soon as it completes. The first failure stops the run; modules
// recorded before it stay recorded.
func (g *Generator) GenerateAll(def *models.APIDefinition, names []string, recorder Recorder) ([]*models.GeneratedModule, error) {
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)

	results := make([]*models.GeneratedModule, 0, len(sorted))
	for i, name := range sorted {
		if i > 0 && name == sorted[i-1] {
			continue
		}

		module, err := g.GenerateModule(def, name)
		if err != nil {
			return results, err
		}
		if recorder != nil {
			if err := recorder.Record(name); err != nil {
				return results, err
			}
		}
		results = append(results, module)
	}
	return results, nil
}

// ModuleNames returns the sorted names of every module in def.
func ModuleNames(def *models.APIDefinition) []string {
	if def == nil {
		return nil
	}
	return sortedKeys(def.Modules)
}
