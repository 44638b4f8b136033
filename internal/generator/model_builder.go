package generator

import (
	"sort"
	"strconv"
	"strings"

	"github.com/toyz/proxygen/internal/generics"
	"github.com/toyz/proxygen/internal/imports"
	"github.com/toyz/proxygen/internal/models"
	"github.com/toyz/proxygen/internal/namespace"
	"github.com/toyz/proxygen/internal/typemap"
	"github.com/toyz/proxygen/internal/utils"
)

// NameValueRef is the source reference of the framework's generic
// name/value pair.
const NameValueRef = "Volo.Abp.NameValue"

// nameValueInterface is shared by every model referencing NameValueRef.
var nameValueInterface = &models.Interface{
	Identifier: "NameValue<T = string>",
	Namespace:  "Volo.Abp",
	Ref:        NameValueRef + "<T0>",
	Properties: []*models.Property{
		{Name: "name", Type: typemap.String},
		{Name: "value", Type: "T"},
	},
}

func isNameValue(ref string) bool {
	return typemap.StripGenerics(ref) == NameValueRef
}

// modelBuilder builds interfaces and models from the type registry.
type modelBuilder struct {
	root  string
	types models.TypeRegistry
}

func newModelBuilder(root string, types models.TypeRegistry) *modelBuilder {
	return &modelBuilder{root: root, types: types}
}

// buildInterface builds the interface of ref. Unknown refs report false.
func (b *modelBuilder) buildInterface(ref string) (*models.Interface, bool) {
	def, ok := b.types.Lookup(ref)
	if !ok {
		return nil, false
	}

	iface := &models.Interface{
		Identifier: identifier(ref, def.GenericArguments),
		Namespace:  namespace.Parse(b.root, ref),
		Ref:        ref,
		Properties: make([]*models.Property, 0, len(def.Properties)),
	}
	if def.BaseType != "" {
		iface.Base = typemap.AdaptAnnotation(def.BaseType)
	}

	for _, prop := range def.Properties {
		iface.Properties = append(iface.Properties, buildProperty(prop))
	}
	return iface, true
}

func buildProperty(prop models.PropertyDefinition) *models.Property {
	name := prop.JSONName
	if name == "" {
		name = utils.CamelCase(prop.Name)
	}

	adapted := typemap.Adapt(prop.TypeSimple)
	property := &models.Property{
		Name: utils.QuoteIfNeeded(name),
		Type: typemap.NormalizeTypeAnnotations(adapted),
		Refs: typemap.ExtractRefs(prop.Type),
	}
	if strings.HasSuffix(adapted, typemap.NullableMarker) {
		property.Optional = models.Optional
	}
	return property
}

// identifier renders the client name of ref with its declared generic
// arguments substituted for the positional placeholders.
func identifier(ref string, args []string) string {
	return generics.Parse(ref).Format(func(data string) string {
		if i, ok := placeholderIndex(data); ok && i < len(args) {
			return args[i]
		}
		return typemap.Simplify(data)
	})
}

func placeholderIndex(data string) (int, bool) {
	if len(data) < 2 || data[0] != 'T' {
		return 0, false
	}
	i, err := strconv.Atoi(data[1:])
	if err != nil {
		return 0, false
	}
	return i, true
}

// collectInterfaces folds refs into the interfaces they require: every
// known, non-enum ref, the refs of its properties and the refs of its base
// type. Each ref is visited once, so diamond and cyclic graphs terminate.
func (b *modelBuilder) collectInterfaces(refs []string) []*models.Interface {
	var (
		result  []*models.Interface
		visited = make(map[string]bool)
		queue   = append([]string(nil), refs...)
	)

	for len(queue) > 0 {
		ref := queue[0]
		queue = queue[1:]
		if visited[ref] {
			continue
		}
		visited[ref] = true

		if b.types.IsEnum(ref) {
			continue
		}
		iface, ok := b.buildInterface(ref)
		if !ok {
			continue
		}
		result = append(result, iface)

		for _, prop := range iface.Properties {
			queue = append(queue, prop.Refs...)
		}
		if def, _ := b.types.Lookup(ref); def.BaseType != "" {
			queue = append(queue, typemap.ExtractRefs(def.BaseType)...)
		}
	}
	return result
}

// groupInterfaces routes interfaces into one model per namespace, sorted
// by identifier. Identifiers already present in a model are skipped and the
// name/value pair is replaced by its shared instance, grouped under the
// namespace its ref parses to.
func (b *modelBuilder) groupInterfaces(interfaces []*models.Interface) []*models.Model {
	sorted := append([]*models.Interface(nil), interfaces...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Identifier < sorted[j].Identifier
	})

	var (
		result []*models.Model
		byNs   = make(map[string]*models.Model)
	)
	for _, iface := range sorted {
		ns := iface.Namespace
		if isNameValue(iface.Ref) {
			// grouped where importers resolve it under the current root
			iface = nameValueInterface
			ns = namespace.Parse(b.root, NameValueRef)
		}

		model, ok := byNs[ns]
		if !ok {
			model = models.NewModel(ns, namespace.ModelPath(ns))
			byNs[ns] = model
			result = append(result, model)
		}
		model.AddInterface(iface)
	}
	return result
}

// resolveImports fills the imports of a model: enum refs always get an
// enum import and other refs are imported when they live in another
// namespace.
func (b *modelBuilder) resolveImports(model *models.Model) {
	collector := imports.NewCollector(model.Path)
	add := func(ref string) {
		if !b.types.IsEnum(ref) && namespace.Parse(b.root, ref) == model.Namespace {
			return
		}
		collector.Add(b.refImport(model.Namespace, ref))
	}

	for _, iface := range model.Interfaces {
		if def, ok := b.types.Lookup(iface.Ref); ok && def.BaseType != "" {
			for _, ref := range typemap.ExtractRefs(def.BaseType) {
				add(ref)
			}
		}
		for _, prop := range iface.Properties {
			for _, ref := range prop.Refs {
				add(ref)
			}
		}
	}
	model.Imports = collector.Imports()
}

// refImport returns the type import of ref seen from namespace from, or nil
// when ref is not in the registry.
func (b *modelBuilder) refImport(from, ref string) *models.Import {
	if _, ok := b.types.Lookup(ref); !ok {
		return nil
	}

	ns := namespace.Parse(b.root, ref)
	name := typemap.Simplify(typemap.StripGenerics(ref))
	path := namespace.ModelImportPath(from, ns)
	if b.types.IsEnum(ref) {
		path = namespace.EnumImportPath(from, ns, name)
	}
	return models.NewImport(path, models.ImportKeywordType).
		AddRefs(ref).
		AddSpecifiers(name)
}

// buildModels collects, groups and resolves the models required by refs.
func (b *modelBuilder) buildModels(refs []string) []*models.Model {
	result := b.groupInterfaces(b.collectInterfaces(refs))
	for _, model := range result {
		b.resolveImports(model)
	}
	return result
}
