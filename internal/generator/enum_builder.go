package generator

import (
	"sort"

	"github.com/toyz/proxygen/internal/errors"
	"github.com/toyz/proxygen/internal/models"
	"github.com/toyz/proxygen/internal/namespace"
	"github.com/toyz/proxygen/internal/typemap"
)

// buildEnum maps the parallel name and value arrays of an enum type into
// its descriptor.
func buildEnum(root string, types models.TypeRegistry, ref string) (*models.EnumDescriptor, error) {
	def, ok := types.Lookup(ref)
	if !ok || !def.IsEnum {
		return nil, errors.Newf(errors.SchemaErrorCode, "type '%s' is not a known enum", ref).
			WithContext("type_name", ref)
	}
	if def.EnumNames == nil {
		return nil, errors.EnumDataMissing(ref, "enumNames")
	}
	if def.EnumValues == nil {
		return nil, errors.EnumDataMissing(ref, "enumValues")
	}
	if len(def.EnumNames) != len(def.EnumValues) {
		return nil, errors.EnumDataMismatch(ref, len(def.EnumNames), len(def.EnumValues))
	}

	ns := namespace.Parse(root, ref)
	name := typemap.Simplify(ref)
	enum := &models.EnumDescriptor{
		Namespace: ns,
		Name:      name,
		Path:      namespace.EnumPath(ns, name),
		Ref:       ref,
		Members:   make([]models.EnumMember, len(def.EnumNames)),
	}
	for i, key := range def.EnumNames {
		enum.Members[i] = models.EnumMember{Key: key, Value: enumValue(def.EnumValues[i])}
	}
	return enum, nil
}

// enumValue turns integral JSON numbers into int64 so members serialize
// without a fractional part.
func enumValue(v interface{}) interface{} {
	if f, ok := v.(float64); ok && f == float64(int64(f)) {
		return int64(f)
	}
	return v
}

// enumRefs returns the sorted enum refs behind imports.
func enumRefs(types models.TypeRegistry, groups ...[]*models.Import) []string {
	seen := make(map[string]bool)
	var refs []string
	for _, group := range groups {
		for _, imp := range group {
			for _, ref := range imp.Refs {
				if !seen[ref] && types.IsEnum(ref) {
					seen[ref] = true
					refs = append(refs, ref)
				}
			}
		}
	}
	sort.Strings(refs)
	return refs
}
