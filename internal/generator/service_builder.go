package generator

import (
	"sort"
	"strconv"
	"strings"

	"github.com/toyz/proxygen/internal/imports"
	"github.com/toyz/proxygen/internal/models"
	"github.com/toyz/proxygen/internal/namespace"
	"github.com/toyz/proxygen/internal/typemap"
	"github.com/toyz/proxygen/internal/utils"
)

// asyncSuffix is stripped from action names.
const asyncSuffix = "Async"

// serviceBuilder maps controllers to services and records every registry
// type the services touch.
type serviceBuilder struct {
	models    *modelBuilder
	transport *models.Import
	touched   map[string]bool
}

func newServiceBuilder(mb *modelBuilder, transport *models.Import) *serviceBuilder {
	return &serviceBuilder{
		models:    mb,
		transport: transport,
		touched:   make(map[string]bool),
	}
}

// buildService maps one controller to its service. Actions are processed in
// key order.
func (b *serviceBuilder) buildService(controller models.ControllerDefinition, apiName string) (*models.Service, error) {
	ns := namespace.Parse(b.models.root, controller.Type)
	service := &models.Service{
		Namespace: ns,
		Name:      controller.ControllerName + "Service",
		Path:      namespace.ServicePath(ns, controller.ControllerName),
		APIName:   apiName,
		Methods:   make([]*models.Method, 0, len(controller.Actions)),
	}

	collector := imports.NewCollector(service.Path)
	collector.Add(b.transport)

	for _, key := range sortedKeys(controller.Actions) {
		action := controller.Actions[key]
		method, err := b.buildMethod(action)
		if err != nil {
			return nil, err
		}
		service.Methods = append(service.Methods, method)

		for _, ref := range b.actionRefs(action) {
			collector.Add(b.models.refImport(ns, ref))
		}
	}

	service.Imports = collector.Imports()
	return service, nil
}

func (b *serviceBuilder) buildMethod(action models.ActionDefinition) (*models.Method, error) {
	returnType := typemap.AdaptAnnotation(action.ReturnValue.TypeSimple)
	if returnType == "" {
		returnType = typemap.Void
	}

	signature := &models.Signature{
		Name:       utils.CamelCase(strings.TrimSuffix(action.UniqueName, asyncSuffix)),
		Parameters: make([]*models.Property, 0, len(action.ParametersOnMethod)),
		ReturnType: returnType,
	}
	for _, param := range action.ParametersOnMethod {
		signature.Parameters = append(signature.Parameters, buildParameter(param))
	}

	body, err := models.NewBody(action.UniqueName, action.HTTPMethod, action.URL, returnType)
	if err != nil {
		return nil, err
	}
	for _, param := range action.Parameters {
		if err := body.RegisterActionParameter(param); err != nil {
			return nil, err
		}
	}

	return &models.Method{Signature: signature, Body: body}, nil
}

func buildParameter(param models.MethodParameterDefinition) *models.Property {
	property := &models.Property{
		Name:    param.Name,
		Type:    typemap.AdaptAnnotation(param.TypeSimple),
		Default: defaultExpression(param.DefaultValue),
		Refs:    typemap.ExtractRefs(param.Type),
	}
	if property.Default == "" && param.IsOptional {
		property.Optional = models.Optional
	}
	return property
}

// defaultExpression renders a JSON default value as a client literal.
func defaultExpression(v interface{}) string {
	switch value := v.(type) {
	case string:
		return "'" + strings.ReplaceAll(value, "'", `\'`) + "'"
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	default:
		return ""
	}
}

// actionRefs returns the registry refs of the return type and method
// parameters of action and marks them as touched.
func (b *serviceBuilder) actionRefs(action models.ActionDefinition) []string {
	types := []string{action.ReturnValue.Type}
	for _, param := range action.ParametersOnMethod {
		types = append(types, param.Type)
	}

	var refs []string
	for _, typ := range types {
		for _, ref := range typemap.ExtractRefs(typ) {
			if _, ok := b.models.types.Lookup(ref); !ok {
				continue
			}
			b.touched[ref] = true
			refs = append(refs, ref)
		}
	}
	return refs
}

// touchedRefs returns every registry ref recorded so far, sorted.
func (b *serviceBuilder) touchedRefs() []string {
	refs := make([]string, 0, len(b.touched))
	for ref := range b.touched {
		refs = append(refs, ref)
	}
	sort.Strings(refs)
	return refs
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
